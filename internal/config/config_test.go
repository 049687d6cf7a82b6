package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads the YAML file and fills defaults", func(t *testing.T) {
		// Given: a config file overriding a few values
		path := filepath.Join(t.TempDir(), "config.yml")
		data := "log-level: debug\nserver:\n  host: game.example\n  port: 8080\nnotifier:\n  dismiss-after: 5s\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: file values win and the rest is defaulted
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "ws://game.example:8080/ws", conf.Server.GetURL())
		assert.Equal(t, 5*time.Second, conf.Notifier.DismissAfter)
		assert.InDelta(t, 400.0, conf.Board.PixelWidth, 0)
		assert.Equal(t, "My room", conf.Session.DefaultRoomName)
		assert.False(t, conf.Notifier.NoHaptics)
	})

	t.Run("Falls back to the environment without a file", func(t *testing.T) {
		// Given: no file and an env override
		t.Setenv("SERVER_PORT", "12345")
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading
		conf, err := Load(path)

		// Then: env and defaults are used
		require.NoError(t, err)
		assert.Equal(t, "ws://localhost:12345/ws", conf.Server.GetURL())
		assert.Equal(t, 16, conf.Session.OutboxSize)
		assert.Empty(t, conf.HTTPPort)
	})

	t.Run("MustLoad panics on a broken file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("server: [oops"), 0o600))

		assert.Panics(t, func() { MustLoad(path) })
	})
}
