package urlhandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateURLFormat(t *testing.T) {
	assert.NoError(t, ValidateURLFormat("https://discord.com/api/webhooks/1/t"))
	assert.NoError(t, ValidateURLFormat("  https://example.com/path  "))
	assert.Error(t, ValidateURLFormat(""))
	assert.Error(t, ValidateURLFormat("   "))
	assert.Error(t, ValidateURLFormat("not a url"))
}

func TestValidateHTTPURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "https", url: "https://discord.com/api/webhooks/1/t", wantErr: false},
		{name: "http", url: "http://localhost:8080/hook", wantErr: false},
		{name: "mixed case scheme", url: "HTTPS://example.com/a.png", wantErr: false},
		{name: "empty", url: "", wantErr: true},
		{name: "ftp scheme", url: "ftp://example.com/file", wantErr: true},
		{name: "no host", url: "https:///path-only", wantErr: true},
		{name: "relative path", url: "/just/a/path", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHTTPURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
