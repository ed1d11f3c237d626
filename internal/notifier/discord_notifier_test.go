package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"discordsend/internal/config"
	"discordsend/internal/errorwrapper"
	"discordsend/internal/httpclient"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotifier(t *testing.T) *DiscordNotifier {
	t.Helper()
	client, err := httpclient.NewHTTPClientBuilder(zerolog.Nop()).WithHTTP2(false).Build()
	require.NoError(t, err)
	return NewDiscordNotifier(client, zerolog.Nop())
}

func TestDiscordNotifier_SendText(t *testing.T) {
	var gotContentType string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	dn := newTestNotifier(t)
	err := dn.Send(context.Background(), server.URL, &config.NotificationConfig{
		Message:  "release 1.2.3 deployed",
		Username: "deploy-bot",
	})

	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	assert.Equal(t, "release 1.2.3 deployed", decoded["content"])
	assert.Equal(t, "deploy-bot", decoded["username"])
}

func TestDiscordNotifier_SendAccepts2xx(t *testing.T) {
	// 204 is the webhook API's normal success answer
	for _, status := range []int{http.StatusOK, http.StatusNoContent} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		dn := newTestNotifier(t)
		err := dn.Send(context.Background(), server.URL, &config.NotificationConfig{Message: "hi"})
		assert.NoError(t, err, "status %d", status)

		server.Close()
	}
}

func TestDiscordNotifier_SendNon2xxFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Unknown Webhook"}`, http.StatusNotFound)
	}))
	defer server.Close()

	dn := newTestNotifier(t)
	err := dn.Send(context.Background(), server.URL, &config.NotificationConfig{Message: "hi"})

	require.Error(t, err)
	var httpErr *errorwrapper.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
}

func TestDiscordNotifier_SendFile(t *testing.T) {
	tempDir := t.TempDir()
	attachment := filepath.Join(tempDir, "report.html")
	require.NoError(t, os.WriteFile(attachment, []byte("<html>report</html>"), 0644))

	var gotFileName string
	var gotFileData []byte
	var gotFieldCount int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		for range r.MultipartForm.File {
			gotFieldCount++
		}
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFileName = header.Filename
		gotFileData, _ = io.ReadAll(file)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dn := newTestNotifier(t)
	err := dn.Send(context.Background(), server.URL, &config.NotificationConfig{
		FilePath: attachment,
		// Ignored in file mode
		Message: "should not be sent",
		Title:   "should not be sent either",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, gotFieldCount)
	assert.Equal(t, "report.html", gotFileName)
	assert.Equal(t, "<html>report</html>", string(gotFileData))
}

func TestDiscordNotifier_SendFileMissing(t *testing.T) {
	dn := newTestNotifier(t)
	err := dn.Send(context.Background(), "http://127.0.0.1:1", &config.NotificationConfig{
		FilePath: "/nonexistent/report.html",
	})

	assert.Error(t, err)
}

func TestDiscordNotifier_SendUnreachable(t *testing.T) {
	dn := newTestNotifier(t)
	err := dn.Send(context.Background(), "http://127.0.0.1:1", &config.NotificationConfig{Message: "hi"})

	require.Error(t, err)
	var netErr *errorwrapper.NetworkError
	assert.True(t, errors.As(err, &netErr))
}
