package services

import (
	"errors"

	"wonderpay-server/src/monite"
)

// Kind names the failing resource family.
type Kind string

const (
	KindSession      Kind = "session"
	KindValidation   Kind = "validation"
	KindBanking      Kind = "banking"
	KindCounterparts Kind = "counterparts"
	KindPayables     Kind = "payables"
	KindPayments     Kind = "payments"
	KindOCR          Kind = "ocr"
	KindWorkflows    Kind = "workflows"
	KindAnalytics    Kind = "analytics"
	KindEntity       Kind = "entity"
)

// ErrNoSession marks operations attempted before sign-in. It is kept
// distinct from remote failures so callers can tell "not signed in"
// apart from "the network failed".
var ErrNoSession = errors.New("no active session")

// Error is what every service operation returns on failure, alongside
// the sentinel value. Message is user-facing and matches the emitted
// notification.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// describe prefers the remote error's own message, falling back to the
// family default.
func describe(err error, fallback string) string {
	var apiErr *monite.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
