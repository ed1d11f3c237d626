package discord

import (
	"discordsend/internal/errorwrapper"
)

// EmbedValidator validates Discord embed objects
type EmbedValidator struct{}

// NewEmbedValidator creates a new embed validator
func NewEmbedValidator() *EmbedValidator {
	return &EmbedValidator{}
}

// ValidateEmbed validates an embed against Discord's field limits
func (ev *EmbedValidator) ValidateEmbed(embed Embed) error {
	if len([]rune(embed.Title)) > 256 {
		return errorwrapper.NewValidationError("title", embed.Title, "title cannot exceed 256 characters")
	}

	if len([]rune(embed.Description)) > 4096 {
		return errorwrapper.NewValidationError("description", embed.Description, "description cannot exceed 4096 characters")
	}

	if embed.Footer != nil && len([]rune(embed.Footer.Text)) > 2048 {
		return errorwrapper.NewValidationError("footer_text", embed.Footer.Text, "footer text cannot exceed 2048 characters")
	}

	if embed.Color != nil && (*embed.Color < 0 || *embed.Color > 0xFFFFFF) {
		return errorwrapper.NewValidationError("color", *embed.Color, "color must be between 0 and 16777215")
	}

	return nil
}
