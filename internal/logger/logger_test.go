package logger

import (
	"path/filepath"
	"testing"

	"discordsend/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerBuilder_Build(t *testing.T) {
	log, err := NewLoggerBuilder().Build()

	require.NoError(t, err)
	assert.NotNil(t, log)
	assert.Equal(t, zerolog.InfoLevel, log.GetZerolog().GetLevel())
}

func TestLoggerBuilder_WithConfig(t *testing.T) {
	cfg := config.LogConfig{
		LogLevel:  "debug",
		LogFormat: "json",
	}

	log, err := NewLoggerBuilder().WithConfig(cfg).Build()

	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, log.GetZerolog().GetLevel())
}

func TestLoggerBuilder_WithQuiet(t *testing.T) {
	log, err := NewLoggerBuilder().WithQuiet(true).Build()

	require.NoError(t, err)
	assert.Equal(t, zerolog.ErrorLevel, log.GetZerolog().GetLevel())
}

func TestLoggerBuilder_QuietKeepsStricterLevel(t *testing.T) {
	cfg := config.LogConfig{LogLevel: "fatal", LogFormat: "console"}

	log, err := NewLoggerBuilder().WithConfig(cfg).WithQuiet(true).Build()

	require.NoError(t, err)
	assert.Equal(t, zerolog.FatalLevel, log.GetZerolog().GetLevel())
}

func TestLoggerBuilder_FileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "discordsend.log")
	cfg := config.LogConfig{
		LogLevel:  "info",
		LogFormat: "json",
		LogFile:   logFile,
	}

	log, err := NewLoggerBuilder().WithConfig(cfg).Build()

	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestNew(t *testing.T) {
	log, err := New(config.LogConfig{LogLevel: "debug", LogFormat: "json"})

	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}

func TestNewQuiet(t *testing.T) {
	log, err := NewQuiet(config.LogConfig{LogLevel: "info", LogFormat: "console"})

	require.NoError(t, err)
	assert.Equal(t, zerolog.ErrorLevel, log.GetLevel())
}

func TestLogLevelParser_ParseLevel(t *testing.T) {
	parser := NewLogLevelParser()

	level, err := parser.ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, level)

	_, err = parser.ParseLevel("loud")
	assert.Error(t, err)
}

func TestLogFormatParser_ParseFormat(t *testing.T) {
	parser := NewLogFormatParser()

	assert.Equal(t, FormatJSON, parser.ParseFormat("json"))
	assert.Equal(t, FormatConsole, parser.ParseFormat("console"))
	assert.Equal(t, FormatText, parser.ParseFormat("text"))
	assert.Equal(t, FormatConsole, parser.ParseFormat("unknown"))
}

func TestConfigConverter_DefaultsRotationValues(t *testing.T) {
	converter := NewConfigConverter()

	loggerCfg, err := converter.ConvertConfig(config.LogConfig{
		LogLevel:  "info",
		LogFormat: "console",
	})

	require.NoError(t, err)
	assert.Equal(t, DefaultLoggerConfig().MaxSizeMB, loggerCfg.MaxSizeMB)
	assert.Equal(t, DefaultLoggerConfig().MaxBackups, loggerCfg.MaxBackups)
	assert.True(t, loggerCfg.EnableConsole)
	assert.False(t, loggerCfg.EnableFile)
}
