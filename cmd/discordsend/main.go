package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"discordsend/internal/config"
	"discordsend/internal/exitcode"
	"discordsend/internal/httpclient"
	"discordsend/internal/logger"
	"discordsend/internal/notifier"
	"discordsend/internal/webhook"

	"github.com/rs/zerolog"
)

func main() {
	os.Exit(run())
}

// run executes the pipeline top to bottom: flags, config, logger, webhook
// resolution, verification, payload build and dispatch. Each stage fails
// fast; the returned value is the process exit status.
func run() int {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.ConfigFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load configuration: %v\n", err)
		return exitcode.Environment
	}

	mergeFlags(gCfg, flags)

	log, err := buildLogger(gCfg.LogConfig, flags.Quiet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not initialize logger: %v\n", err)
		return exitcode.Environment
	}

	if err := config.ValidateNotification(&gCfg.NotificationConfig); err != nil {
		log.Error().Err(err).Msg("Invalid notification options")
		return exitcode.FromError(err)
	}

	httpClient, err := httpclient.NewHTTPClientBuilder(log).
		WithTimeout(time.Duration(gCfg.HTTPConfig.TimeoutSeconds) * time.Second).
		WithInsecureSkipVerify(gCfg.HTTPConfig.InsecureSkipVerify).
		WithProxy(gCfg.HTTPConfig.Proxy).
		Build()
	if err != nil {
		log.Error().Err(err).Msg("Could not build HTTP client")
		return exitcode.Environment
	}

	ctx := context.Background()

	resolver := webhook.NewResolver(log)
	webhookURL, err := resolver.Resolve(flags.WebhookArg, gCfg.NotificationConfig.WebhookURL)
	if err != nil {
		log.Error().Err(err).Msg("Could not resolve webhook URL")
		return exitcode.FromError(err)
	}

	verifier := webhook.NewVerifier(httpClient, log)
	if err := verifier.Verify(ctx, webhookURL); err != nil {
		log.Error().Err(err).Msg("Webhook verification failed")
		return exitcode.FromError(err)
	}

	discordNotifier := notifier.NewDiscordNotifier(httpClient, log)
	if err := discordNotifier.Send(ctx, webhookURL, &gCfg.NotificationConfig); err != nil {
		log.Error().Err(err).Msg("Notification delivery failed")
		return exitcode.FromError(err)
	}

	return exitcode.OK
}

// buildLogger constructs the process logger; with -quiet only errors reach
// the console.
func buildLogger(cfg config.LogConfig, quiet bool) (zerolog.Logger, error) {
	if quiet {
		return logger.NewQuiet(cfg)
	}
	return logger.New(cfg)
}

// mergeFlags overlays command-line values onto the config-file defaults;
// flags always win.
func mergeFlags(gCfg *config.GlobalConfig, flags AppFlags) {
	nc := &gCfg.NotificationConfig

	if flags.Username != "" {
		nc.Username = flags.Username
	}
	if flags.Message != "" {
		nc.Message = flags.Message
	}
	if flags.Title != "" {
		nc.Title = flags.Title
	}
	if flags.Description != "" {
		nc.Description = flags.Description
	}
	if flags.AvatarURL != "" {
		nc.AvatarURL = flags.AvatarURL
	}
	if flags.Color != "" {
		nc.Color = flags.Color
	}
	if flags.FilePath != "" {
		nc.FilePath = flags.FilePath
	}

	if flags.TimeoutSecs > 0 {
		gCfg.HTTPConfig.TimeoutSeconds = flags.TimeoutSecs
	}
	if gCfg.HTTPConfig.TimeoutSeconds <= 0 {
		gCfg.HTTPConfig.TimeoutSeconds = config.DefaultHTTPTimeoutSecs
	}
}
