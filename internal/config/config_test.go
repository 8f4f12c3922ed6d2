package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/ledpanel/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Cleanup(viper.Reset)
	return path
}

func Test_InitialiseConfig(t *testing.T) {

	t.Run("reads the strips and applies defaults", func(t *testing.T) {
		// arrange
		path := writeConfig(t, `{
			"strips": [
				{"name": "desk", "host": "10.0.0.10"},
				{"name": "shelf", "host": "shelf.local"}
			],
			"inFlightResetDelay": "2s",
			"logLevel": "debug"
		}`)

		// act
		cfg, err := config.InitialiseConfig(path)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, []config.StripConfig{
			{Name: "desk", Host: "10.0.0.10"},
			{Name: "shelf", Host: "shelf.local"},
		}, cfg.Strips)
		assert.Equal(t, 2*time.Second, cfg.InFlightResetDelay)
		assert.Equal(t, 256, cfg.SpectrumWidth)
		assert.Equal(t, 101, cfg.PreviewLedCount)
		assert.Equal(t, ":memory:", cfg.Database)
		assert.Equal(t, log.DebugLevel, cfg.Level())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Cleanup(viper.Reset)

		_, err := config.InitialiseConfig(filepath.Join(t.TempDir(), "nope.json"))

		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeConfig(t, `{"strips": [`)

		_, err := config.InitialiseConfig(path)

		assert.Error(t, err)
	})
}

func Test_Level(t *testing.T) {

	tests := []struct {
		level    string
		expected log.Level
	}{
		{level: "debug", expected: log.DebugLevel},
		{level: "WARN", expected: log.WarnLevel},
		{level: "error", expected: log.ErrorLevel},
		{level: "fatal", expected: log.FatalLevel},
		{level: "", expected: log.InfoLevel},
		{level: "chatty", expected: log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, config.Config{LogLevel: tt.level}.Level())
		})
	}
}

func Test_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := config.NewLogger(&buf, &config.Config{LogLevel: "warn"})

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
