package monite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"wonderpay-server/src/models"
)

// UploadDocument sends the raw file to the document endpoint and returns
// the vendor-assigned document id.
func (c *Client) UploadDocument(ctx context.Context, fileName, mimeType string, file io.Reader) (*models.Document, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, fileName))
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to create form part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to copy file contents: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL+"/documents", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	token, err := c.bearer(ctx)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("x-monite-version", c.cfg.APIVersion)
	req.Header.Set("x-monite-entity-id", c.cfg.EntityID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.parseError(resp)
	}

	var document models.Document
	if err := json.NewDecoder(resp.Body).Decode(&document); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &document, nil
}

// ProcessDocument runs OCR over a previously uploaded document and
// returns the extracted payable draft.
func (c *Client) ProcessDocument(ctx context.Context, documentID string) (*models.Payable, error) {
	var payable models.Payable
	if err := c.do(ctx, http.MethodPost, "/documents/"+documentID+"/process", nil, nil, &payable); err != nil {
		return nil, err
	}
	return &payable, nil
}
