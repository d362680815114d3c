package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"wonderpay-server/src/models"
	"wonderpay-server/src/monite"
	"wonderpay-server/src/notify"
	"wonderpay-server/src/retry"
)

const maxDocumentSize = 10 << 20 // 10 MB

var allowedDocumentTypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
}

// DefaultOCRPolicy matches the dashboard's processing loop: three
// attempts, two seconds apart.
var DefaultOCRPolicy = retry.Policy{MaxAttempts: 3, Delay: 2 * time.Second}

// OCRService uploads a bill document and runs vendor OCR over it with a
// bounded retry. Upload failures are terminal; only the process step is
// retried.
type OCRService struct {
	base
	policy   retry.Policy
	attempts atomic.Int32
}

func NewOCRService(sessions *monite.SessionManager, notifier notify.Notifier, policy retry.Policy) *OCRService {
	if policy.MaxAttempts <= 0 {
		policy = DefaultOCRPolicy
	}
	return &OCRService{
		base:   base{sessions: sessions, notifier: notifier},
		policy: policy,
	}
}

// Attempts returns the failed-attempt count of the most recent
// ProcessDocument call, for progress display.
func (s *OCRService) Attempts() int {
	return int(s.attempts.Load())
}

func (s *OCRService) MaxAttempts() int {
	return s.policy.MaxAttempts
}

// ValidateDocument rejects files the OCR pipeline will not accept,
// before anything touches the network.
func ValidateDocument(mimeType string, size int64) error {
	if !allowedDocumentTypes[mimeType] {
		return &Error{Kind: KindValidation, Message: fmt.Sprintf("Unsupported file type %q: expected PDF, PNG, or JPEG", mimeType)}
	}
	if size > maxDocumentSize {
		return &Error{Kind: KindValidation, Message: "File exceeds the 10 MB limit"}
	}
	return nil
}

func (s *OCRService) ProcessDocument(ctx context.Context, fileName, mimeType string, size int64, file io.Reader) (*models.Payable, error) {
	if err := s.requireSession("OCR service"); err != nil {
		return nil, err
	}
	defer s.begin()()
	s.attempts.Store(0)

	if err := ValidateDocument(mimeType, size); err != nil {
		var e *Error
		errors.As(err, &e)
		s.reportError(e.Message)
		return nil, err
	}

	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	document, err := client.UploadDocument(ctx, fileName, mimeType, file)
	if err != nil || document.ID == "" {
		e := &Error{Kind: KindOCR, Message: "Failed to upload document", Err: err}
		s.reportError(e.Message)
		return nil, e
	}

	var payable *models.Payable
	err = s.policy.Do(ctx, func(ctx context.Context) error {
		p, err := client.ProcessDocument(ctx, document.ID)
		if err != nil {
			return err
		}
		payable = p
		return nil
	}, func(failed int) {
		s.attempts.Store(int32(failed))
	})
	if err != nil {
		message := fmt.Sprintf("Failed to process document after %d attempts", s.policy.MaxAttempts)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			message = "Document processing was canceled"
		}
		e := &Error{Kind: KindOCR, Message: message, Err: err}
		s.reportError(e.Message)
		return nil, e
	}

	s.reportSuccess("Document processed successfully")
	return payable, nil
}
