package main

import (
	"flag"
	"fmt"
	"os"
)

// AppFlags holds the raw command-line values before they are merged into
// the configuration record.
type AppFlags struct {
	WebhookArg  string
	Username    string
	Message     string
	Title       string
	Description string
	AvatarURL   string
	Color       string
	FilePath    string
	ConfigFile  string
	TimeoutSecs int
	Quiet       bool
}

// ParseFlags parses the command line. Unknown flags and malformed values
// print usage on stderr and exit with status 2; -h prints usage and exits 0.
func ParseFlags() AppFlags {
	webhookArg := flag.String("webhook", "", "Webhook URL, or path to a file containing it. Falls back to $HOME/.discord_webhook, then the DISCORD_WEBHOOK_URL environment variable.")
	webhookArgAlias := flag.String("w", "", "Alias for -webhook")

	username := flag.String("username", "", "Override the webhook's default username (1-80 characters).")
	usernameAlias := flag.String("u", "", "Alias for -username")

	message := flag.String("message", "", "Message text to send (1-2000 characters).")
	messageAlias := flag.String("m", "", "Alias for -message")

	title := flag.String("title", "", "Embed title (1-256 characters).")
	titleAlias := flag.String("t", "", "Alias for -title")

	description := flag.String("description", "", "Embed description (1-4096 characters).")
	descriptionAlias := flag.String("d", "", "Alias for -description")

	avatarURL := flag.String("avatar", "", "Override the webhook's avatar with an http(s) image URL.")
	avatarURLAlias := flag.String("a", "", "Alias for -avatar")

	color := flag.String("color", "", "Embed accent color as 6 hex digits, optional leading '#'. Only used when a title or description opens an embed.")
	colorAlias := flag.String("c", "", "Alias for -color")

	filePath := flag.String("file", "", "Path to a file to upload instead of a text message. Message, title and description are ignored in file mode.")
	filePathAlias := flag.String("f", "", "Alias for -file")

	configFile := flag.String("config", "", "Path to a YAML/JSON configuration file. If not set, searches default locations.")
	timeoutSecs := flag.Int("timeout", 0, "HTTP timeout in seconds for the probe and the send (default 20).")
	quiet := flag.Bool("quiet", false, "Only log errors.")
	quietAlias := flag.Bool("q", false, "Alias for -quiet")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "discordsend - send a message or file to a Discord channel via webhook\n\nUsage:\n  discordsend [flags]\n\nFlags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	flags := AppFlags{
		ConfigFile:  *configFile,
		TimeoutSecs: *timeoutSecs,
		Quiet:       *quiet || *quietAlias,
	}

	if *webhookArg != "" {
		flags.WebhookArg = *webhookArg
	} else if *webhookArgAlias != "" {
		flags.WebhookArg = *webhookArgAlias
	}

	if *username != "" {
		flags.Username = *username
	} else if *usernameAlias != "" {
		flags.Username = *usernameAlias
	}

	if *message != "" {
		flags.Message = *message
	} else if *messageAlias != "" {
		flags.Message = *messageAlias
	}

	if *title != "" {
		flags.Title = *title
	} else if *titleAlias != "" {
		flags.Title = *titleAlias
	}

	if *description != "" {
		flags.Description = *description
	} else if *descriptionAlias != "" {
		flags.Description = *descriptionAlias
	}

	if *avatarURL != "" {
		flags.AvatarURL = *avatarURL
	} else if *avatarURLAlias != "" {
		flags.AvatarURL = *avatarURLAlias
	}

	if *color != "" {
		flags.Color = *color
	} else if *colorAlias != "" {
		flags.Color = *colorAlias
	}

	if *filePath != "" {
		flags.FilePath = *filePath
	} else if *filePathAlias != "" {
		flags.FilePath = *filePathAlias
	}

	return flags
}
