package discord

// MessagePayload represents the JSON payload sent to a Discord webhook.
// Every field carries omitempty so the serialized object contains exactly
// the keys that were set, whatever combination that is.
type MessagePayload struct {
	Content   string  `json:"content,omitempty"`    // Message content (text)
	Username  string  `json:"username,omitempty"`   // Override the default webhook username
	AvatarURL string  `json:"avatar_url,omitempty"` // Override the default webhook avatar
	Embeds    []Embed `json:"embeds,omitempty"`     // Array of embed objects
}
