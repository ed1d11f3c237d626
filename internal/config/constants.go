package config

const (
	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 10
	DefaultMaxLogBackups = 3

	// HTTP Defaults
	DefaultHTTPTimeoutSecs = 20

	// Webhook resolution
	WebhookFileName = ".discord_webhook"
	WebhookURLEnv   = "DISCORD_WEBHOOK_URL"

	// Config file discovery
	ConfigPathEnv = "DISCORDSEND_CONFIG_PATH"

	// Discord limits for notification fields
	MaxUsernameLength    = 80
	MaxMessageLength     = 2000
	MaxTitleLength       = 256
	MaxDescriptionLength = 4096
)
