package notifier_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"discordsend/internal/config"
	"discordsend/internal/exitcode"
	"discordsend/internal/httpclient"
	"discordsend/internal/notifier"
	"discordsend/internal/webhook"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testURLPattern = regexp.MustCompile(`^http://.+/api/webhooks/[0-9]+/[A-Za-z0-9_-]+$`)

// TestVerifyThenSend_Success covers the happy path against a mocked
// transport: the probe answers 200 and the send answers 204, which is
// inside the 2xx success range.
func TestVerifyThenSend_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodHead:
			w.WriteHeader(http.StatusOK)
		case http.MethodPost:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer server.Close()

	client, err := httpclient.NewHTTPClientBuilder(zerolog.Nop()).WithHTTP2(false).Build()
	require.NoError(t, err)

	webhookURL := server.URL + "/api/webhooks/123/token"
	ctx := context.Background()

	verifier := webhook.NewVerifier(client, zerolog.Nop()).WithURLPattern(testURLPattern)
	require.NoError(t, verifier.Verify(ctx, webhookURL))

	dn := notifier.NewDiscordNotifier(client, zerolog.Nop())
	err = dn.Send(ctx, webhookURL, &config.NotificationConfig{Message: "done"})

	assert.NoError(t, err)
	assert.Equal(t, exitcode.OK, exitcode.FromError(err))
}

// TestVerifyThenSend_ProbeFailureStopsPipeline covers the failing probe:
// the verification error maps to the webhook exit status and no POST is
// ever issued.
func TestVerifyThenSend_ProbeFailureStopsPipeline(t *testing.T) {
	postSeen := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			postSeen = true
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := httpclient.NewHTTPClientBuilder(zerolog.Nop()).WithHTTP2(false).Build()
	require.NoError(t, err)

	webhookURL := server.URL + "/api/webhooks/123/token"

	verifier := webhook.NewVerifier(client, zerolog.Nop()).WithURLPattern(testURLPattern)
	err = verifier.Verify(context.Background(), webhookURL)

	require.Error(t, err)
	assert.Equal(t, exitcode.Webhook, exitcode.FromError(err))
	assert.False(t, postSeen)
}
