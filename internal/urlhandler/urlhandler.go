package urlhandler

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateURLFormat validates URL format using net/url parsing (for config validation)
func ValidateURLFormat(rawURL string) error {
	trimmedURL := strings.TrimSpace(rawURL)
	if trimmedURL == "" {
		return fmt.Errorf("URL is empty")
	}

	_, err := url.ParseRequestURI(trimmedURL)
	if err != nil {
		return fmt.Errorf("invalid URL format '%s': %w", trimmedURL, err)
	}

	return nil
}

// ValidateHTTPURL validates that a URL parses and uses the http or https
// scheme with a non-empty host.
func ValidateHTTPURL(rawURL string) error {
	trimmedURL := strings.TrimSpace(rawURL)
	if trimmedURL == "" {
		return fmt.Errorf("URL is empty")
	}

	parsed, err := url.ParseRequestURI(trimmedURL)
	if err != nil {
		return fmt.Errorf("invalid URL format '%s': %w", trimmedURL, err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("unsupported scheme '%s' in URL '%s': only http and https are allowed", parsed.Scheme, trimmedURL)
	}

	if parsed.Host == "" {
		return fmt.Errorf("URL '%s' has no host", trimmedURL)
	}

	return nil
}
