package config

import (
	"strconv"
	"strings"

	"discordsend/internal/errorwrapper"
)

// NotificationConfig is the single notification this process delivers.
// Every field is optional on its own, but at least one of Message, Title,
// Description or FilePath must be present for the record to be sendable.
// When FilePath is set the payload builder ignores Message, Title and
// Description; file and text mode are mutually exclusive at dispatch time.
type NotificationConfig struct {
	WebhookURL  string `json:"webhook_url,omitempty" yaml:"webhook_url,omitempty" validate:"omitempty,url"`
	Username    string `json:"username,omitempty" yaml:"username,omitempty" validate:"omitempty,min=1,max=80"`
	Message     string `json:"message,omitempty" yaml:"message,omitempty" validate:"omitempty,min=1,max=2000"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty" validate:"omitempty,min=1,max=256"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" validate:"omitempty,min=1,max=4096"`
	AvatarURL   string `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty" validate:"omitempty,httpurl"`
	Color       string `json:"color,omitempty" yaml:"color,omitempty" validate:"omitempty,colorcode"`
	FilePath    string `json:"file_path,omitempty" yaml:"file_path,omitempty" validate:"omitempty,attachment"`
}

// NewDefaultNotificationConfig creates default notification configuration
func NewDefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{}
}

// HasContent reports whether any content-bearing field is set.
func (nc *NotificationConfig) HasContent() bool {
	return nc.Message != "" || nc.Title != "" || nc.Description != "" || nc.FilePath != ""
}

// HasEmbed reports whether the payload should carry an embed object.
// Color alone never opens an embed.
func (nc *NotificationConfig) HasEmbed() bool {
	return nc.Title != "" || nc.Description != ""
}

// ColorDecimal converts the configured color code to its decimal value.
// The second return value is false when no color is configured.
func (nc *NotificationConfig) ColorDecimal() (int, bool, error) {
	if nc.Color == "" {
		return 0, false, nil
	}
	value, err := ParseColorCode(nc.Color)
	if err != nil {
		return 0, false, err
	}
	return value, true, nil
}

// ParseColorCode converts a 6-hex-digit color code, with optional leading
// '#', to its decimal value. "#1a2b3c" and "1a2b3c" both yield 1715004.
func ParseColorCode(code string) (int, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(code), "#")
	if len(trimmed) != 6 {
		return 0, errorwrapper.NewValidationError("color", code, "color code must be exactly 6 hex digits")
	}
	value, err := strconv.ParseInt(trimmed, 16, 32)
	if err != nil {
		return 0, errorwrapper.NewValidationError("color", code, "color code must be hexadecimal")
	}
	return int(value), nil
}
