package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"discordsend/internal/config"
	"discordsend/internal/errorwrapper"
	"discordsend/internal/httpclient"

	"github.com/rs/zerolog"
)

// DiscordNotifier delivers a single notification to a Discord webhook.
// File mode and text mode are mutually exclusive: when the record carries
// a file path, the message/title/description fields are ignored and the
// body is a multipart upload; otherwise the body is the JSON payload.
type DiscordNotifier struct {
	logger     zerolog.Logger
	httpClient *httpclient.HTTPClient
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(httpClient *httpclient.HTTPClient, logger zerolog.Logger) *DiscordNotifier {
	return &DiscordNotifier{
		logger:     logger.With().Str("module", "DiscordNotifier").Logger(),
		httpClient: httpClient,
	}
}

// Send builds the mode-appropriate body from the record and POSTs it to
// the webhook URL. Any response outside the 2xx range is a failure
// carrying the literal status.
func (dn *DiscordNotifier) Send(ctx context.Context, webhookURL string, nc *config.NotificationConfig) error {
	if nc.FilePath != "" {
		return dn.sendFile(ctx, webhookURL, nc.FilePath)
	}
	return dn.sendText(ctx, webhookURL, nc)
}

// sendText serializes the text/embed payload and POSTs it as JSON.
func (dn *DiscordNotifier) sendText(ctx context.Context, webhookURL string, nc *config.NotificationConfig) error {
	payload, err := BuildMessagePayload(nc)
	if err != nil {
		return err
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return errorwrapper.WrapError(err, "failed to marshal discord payload")
	}

	dn.logger.Debug().RawJSON("payload", payloadJSON).Msg("Sending text notification")

	return dn.post(ctx, webhookURL, "application/json", bytes.NewReader(payloadJSON))
}

// sendFile uploads the attachment as a multipart form with a single
// field named "file".
func (dn *DiscordNotifier) sendFile(ctx context.Context, webhookURL, filePath string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return errorwrapper.WrapError(err, fmt.Sprintf("failed to stat attachment '%s'", filePath))
	}
	if info.Size() > maxAttachmentSize {
		return errorwrapper.NewValidationError("file", filePath, fmt.Sprintf("attachment exceeds %d bytes", maxAttachmentSize))
	}

	f, err := os.Open(filePath)
	if err != nil {
		return errorwrapper.WrapError(err, fmt.Sprintf("failed to open attachment '%s'", filePath))
	}
	defer f.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return errorwrapper.WrapError(err, "failed to create form file")
	}
	if _, err := io.Copy(part, f); err != nil {
		return errorwrapper.WrapError(err, "failed to copy attachment into multipart form")
	}

	if err := writer.Close(); err != nil {
		return errorwrapper.WrapError(err, "failed to close multipart writer")
	}

	dn.logger.Debug().Str("file", filePath).Int64("size", info.Size()).Msg("Sending file notification")

	return dn.post(ctx, webhookURL, writer.FormDataContentType(), body)
}

// post dispatches the prepared body and classifies the response status.
func (dn *DiscordNotifier) post(ctx context.Context, webhookURL, contentType string, body io.Reader) error {
	resp, err := dn.httpClient.Do(&httpclient.HTTPRequest{
		URL:    webhookURL,
		Method: http.MethodPost,
		Headers: map[string]string{
			"Content-Type": contentType,
		},
		Body:    body,
		Context: ctx,
	})
	if err != nil {
		dn.logger.Error().Err(err).Str("webhook_url", webhookURL).Msg("Failed to send Discord notification")
		return err
	}

	if !resp.IsSuccess() {
		respBody := resp.Body
		if len(respBody) > 1024 {
			respBody = respBody[:1024]
		}
		dn.logger.Error().Str("status", resp.Status).Str("response_body", string(respBody)).Str("webhook_url", webhookURL).Msg("Discord notification failed")
		return errorwrapper.NewHTTPErrorWithURL(resp.StatusCode, resp.Status, webhookURL)
	}

	dn.logger.Info().Int("status_code", resp.StatusCode).Str("webhook_url", webhookURL).Msg("Discord notification sent successfully")
	return nil
}
