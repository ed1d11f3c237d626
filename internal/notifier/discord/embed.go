package discord

// Embed represents a Discord embed object.
type Embed struct {
	Title       string       `json:"title,omitempty"`       // Title of embed
	Description string       `json:"description,omitempty"` // Description of embed
	Timestamp   string       `json:"timestamp,omitempty"`   // ISO8601 timestamp
	Color       *int         `json:"color,omitempty"`       // Color code of the embed, decimal; pointer so black (0) survives serialization
	Footer      *EmbedFooter `json:"footer,omitempty"`
}

// EmbedFooter represents the footer of an embed.
type EmbedFooter struct {
	Text    string `json:"text"`               // Footer text
	IconURL string `json:"icon_url,omitempty"` // URL of footer icon (only supports http(s))
}

// NewEmbedFooter creates a new embed footer
func NewEmbedFooter(text, iconURL string) *EmbedFooter {
	return &EmbedFooter{
		Text:    text,
		IconURL: iconURL,
	}
}
