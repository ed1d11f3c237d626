package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "with hash", input: "#1a2b3c", want: 1715004},
		{name: "without hash", input: "1a2b3c", want: 1715004},
		{name: "uppercase", input: "FF0000", want: 16711680},
		{name: "black", input: "000000", want: 0},
		{name: "white", input: "ffffff", want: 16777215},
		{name: "too short", input: "fff", wantErr: true},
		{name: "too long", input: "1234567", wantErr: true},
		{name: "not hex", input: "zzzzzz", wantErr: true},
		{name: "hash only", input: "#", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColorCode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNotificationConfig_HasContent(t *testing.T) {
	assert.False(t, (&NotificationConfig{}).HasContent())
	assert.False(t, (&NotificationConfig{Username: "bot", Color: "1a2b3c"}).HasContent())
	assert.True(t, (&NotificationConfig{Message: "hi"}).HasContent())
	assert.True(t, (&NotificationConfig{Title: "t"}).HasContent())
	assert.True(t, (&NotificationConfig{Description: "d"}).HasContent())
	assert.True(t, (&NotificationConfig{FilePath: "a.txt"}).HasContent())
}

func TestNotificationConfig_HasEmbed(t *testing.T) {
	assert.True(t, (&NotificationConfig{Title: "t"}).HasEmbed())
	assert.True(t, (&NotificationConfig{Description: "d"}).HasEmbed())
	// Color alone never opens an embed
	assert.False(t, (&NotificationConfig{Message: "hi", Color: "1a2b3c"}).HasEmbed())
}

func TestNotificationConfig_ColorDecimal(t *testing.T) {
	nc := &NotificationConfig{Color: "#1a2b3c"}
	value, set, err := nc.ColorDecimal()
	require.NoError(t, err)
	assert.True(t, set)
	assert.Equal(t, 1715004, value)

	nc = &NotificationConfig{}
	_, set, err = nc.ColorDecimal()
	require.NoError(t, err)
	assert.False(t, set)
}
