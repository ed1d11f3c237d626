package webhook

import (
	"os"
	"path/filepath"
	"strings"

	"discordsend/internal/config"
	"discordsend/internal/errorwrapper"

	"github.com/rs/zerolog"
)

// Resolver determines the destination webhook URL.
//
// Precedence: a -w value naming a readable file (the URL is read from its
// contents), then a literal -w value, then $HOME/.discord_webhook, then the
// DISCORD_WEBHOOK_URL environment variable, then the config-file value.
type Resolver struct {
	logger zerolog.Logger
}

// NewResolver creates a new Resolver instance
func NewResolver(logger zerolog.Logger) *Resolver {
	return &Resolver{
		logger: logger.With().Str("component", "WebhookResolver").Logger(),
	}
}

// Resolve returns the webhook URL to use, or an error when no source
// yields one.
func (r *Resolver) Resolve(flagValue, configValue string) (string, error) {
	if flagValue != "" {
		if isReadableFile(flagValue) {
			url, err := readURLFile(flagValue)
			if err != nil {
				return "", err
			}
			r.logger.Debug().Str("file", flagValue).Msg("Webhook URL read from file given on the command line")
			return url, nil
		}
		r.logger.Debug().Msg("Using webhook URL given on the command line")
		return flagValue, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		homeFile := filepath.Join(home, config.WebhookFileName)
		if isReadableFile(homeFile) {
			url, err := readURLFile(homeFile)
			if err != nil {
				return "", err
			}
			r.logger.Debug().Str("file", homeFile).Msg("Webhook URL read from home directory file")
			return url, nil
		}
	}

	if envURL := os.Getenv(config.WebhookURLEnv); envURL != "" {
		r.logger.Debug().Str("env", config.WebhookURLEnv).Msg("Webhook URL read from environment")
		return envURL, nil
	}

	if configValue != "" {
		r.logger.Debug().Msg("Webhook URL read from config file")
		return configValue, nil
	}

	return "", errorwrapper.WrapError(errorwrapper.ErrInvalidConfiguration, "no webhook url provided")
}

// isReadableFile reports whether path names an existing regular file the
// process can open.
func isReadableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// readURLFile reads a webhook URL from a file, trimming surrounding
// whitespace.
func readURLFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errorwrapper.WrapError(err, "failed to read webhook url file")
	}
	url := strings.TrimSpace(string(data))
	if url == "" {
		return "", errorwrapper.WrapError(errorwrapper.ErrInvalidConfiguration, "webhook url file is empty")
	}
	return url, nil
}
