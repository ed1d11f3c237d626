package webhook

import (
	"context"
	"fmt"
	"net/http"
	"regexp"

	"discordsend/internal/httpclient"

	"github.com/rs/zerolog"
)

// webhookURLPattern is the only accepted webhook shape: numeric channel id
// followed by the opaque token.
var webhookURLPattern = regexp.MustCompile(`^https://discord\.com/api/webhooks/[0-9]+/[A-Za-z0-9_-]+$`)

// VerificationError reports a webhook that failed the shape check or the
// existence probe.
type VerificationError struct {
	URL        string
	Reason     string
	StatusCode int
	Wrapped    error
}

func (e *VerificationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("webhook verification failed for '%s': %s (status %d)", e.URL, e.Reason, e.StatusCode)
	}
	return fmt.Sprintf("webhook verification failed for '%s': %s", e.URL, e.Reason)
}

func (e *VerificationError) Unwrap() error {
	return e.Wrapped
}

// Verifier checks that a resolved webhook URL has the expected shape and
// answers a header-only probe.
type Verifier struct {
	logger     zerolog.Logger
	httpClient *httpclient.HTTPClient
	urlPattern *regexp.Regexp
}

// NewVerifier creates a new Verifier instance
func NewVerifier(httpClient *httpclient.HTTPClient, logger zerolog.Logger) *Verifier {
	return &Verifier{
		logger:     logger.With().Str("component", "WebhookVerifier").Logger(),
		httpClient: httpClient,
		urlPattern: webhookURLPattern,
	}
}

// WithURLPattern overrides the accepted URL shape.
func (v *Verifier) WithURLPattern(pattern *regexp.Regexp) *Verifier {
	v.urlPattern = pattern
	return v
}

// Verify validates the URL shape and probes the webhook with a HEAD
// request. Any probe status other than exactly 200 rejects the webhook;
// the webhook API answers GET/HEAD on a live webhook with 200, so a 204 or
// a redirect here means the URL does not name a usable webhook.
func (v *Verifier) Verify(ctx context.Context, webhookURL string) error {
	if !v.urlPattern.MatchString(webhookURL) {
		v.logger.Error().Str("webhook_url", webhookURL).Msg("Webhook URL does not match the expected shape")
		return &VerificationError{
			URL:    webhookURL,
			Reason: "url must look like https://discord.com/api/webhooks/<id>/<token>",
		}
	}

	resp, err := v.httpClient.Do(&httpclient.HTTPRequest{
		URL:     webhookURL,
		Method:  http.MethodHead,
		Context: ctx,
	})
	if err != nil {
		v.logger.Error().Err(err).Str("webhook_url", webhookURL).Msg("Webhook probe failed")
		return &VerificationError{
			URL:     webhookURL,
			Reason:  "probe request failed",
			Wrapped: err,
		}
	}

	if resp.StatusCode != http.StatusOK {
		v.logger.Error().Int("status_code", resp.StatusCode).Str("webhook_url", webhookURL).Msg("Webhook probe returned unexpected status")
		return &VerificationError{
			URL:        webhookURL,
			Reason:     "probe returned non-200 status",
			StatusCode: resp.StatusCode,
		}
	}

	v.logger.Debug().Str("webhook_url", webhookURL).Msg("Webhook verified")
	return nil
}
