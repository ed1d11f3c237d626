package notifier

import (
	"discordsend/internal/config"
	"discordsend/internal/notifier/discord"
)

// BuildMessagePayload assembles the text-mode payload from the notification
// record. Only keys whose source field is set appear in the result; an
// embed is opened when title or description is present, and color is
// attached only inside an open embed.
func BuildMessagePayload(nc *config.NotificationConfig) (discord.MessagePayload, error) {
	builder := discord.NewMessagePayloadBuilder()

	if nc.Message != "" {
		builder.WithContent(nc.Message)
	}
	if nc.Username != "" {
		builder.WithUsername(nc.Username)
	}
	if nc.AvatarURL != "" {
		builder.WithAvatarURL(nc.AvatarURL)
	}

	if nc.HasEmbed() {
		embedBuilder := discord.NewEmbedBuilder()
		if nc.Title != "" {
			embedBuilder.WithTitle(nc.Title)
		}
		if nc.Description != "" {
			embedBuilder.WithDescription(nc.Description)
		}

		color, hasColor, err := nc.ColorDecimal()
		if err != nil {
			return discord.MessagePayload{}, err
		}
		if hasColor {
			embedBuilder.WithColor(color)
		}

		embed, err := embedBuilder.Build()
		if err != nil {
			return discord.MessagePayload{}, err
		}
		builder.AddEmbed(embed)
	}

	return builder.Build(), nil
}
