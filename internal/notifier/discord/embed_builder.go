package discord

import (
	"time"
)

// EmbedBuilder helps in constructing Embed objects.
type EmbedBuilder struct {
	embed     Embed
	validator *EmbedValidator
}

// NewEmbedBuilder creates a new embed builder
func NewEmbedBuilder() *EmbedBuilder {
	return &EmbedBuilder{
		embed:     Embed{},
		validator: NewEmbedValidator(),
	}
}

// WithTitle sets the embed title
func (eb *EmbedBuilder) WithTitle(title string) *EmbedBuilder {
	eb.embed.Title = title
	return eb
}

// WithDescription sets the embed description
func (eb *EmbedBuilder) WithDescription(description string) *EmbedBuilder {
	eb.embed.Description = description
	return eb
}

// WithTimestamp sets the embed timestamp
func (eb *EmbedBuilder) WithTimestamp(timestamp time.Time) *EmbedBuilder {
	eb.embed.Timestamp = timestamp.Format(time.RFC3339)
	return eb
}

// WithColor sets the embed color as its decimal value
func (eb *EmbedBuilder) WithColor(color int) *EmbedBuilder {
	eb.embed.Color = &color
	return eb
}

// WithFooter sets the embed footer
func (eb *EmbedBuilder) WithFooter(text, iconURL string) *EmbedBuilder {
	eb.embed.Footer = NewEmbedFooter(text, iconURL)
	return eb
}

// Validate validates the current embed
func (eb *EmbedBuilder) Validate() error {
	return eb.validator.ValidateEmbed(eb.embed)
}

// Build builds the Discord embed
func (eb *EmbedBuilder) Build() (Embed, error) {
	if err := eb.Validate(); err != nil {
		return Embed{}, err
	}
	return eb.embed, nil
}
