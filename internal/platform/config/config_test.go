package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func env(values map[string]string) func(string) string {
	return func(k string) string { return values[k] }
}

func TestFromLookup(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := fromLookup(env(nil))
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Empty(t, cfg.SeedFile)
		assert.Empty(t, cfg.AdminToken)
		assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg := fromLookup(env(map[string]string{
			"FORMTYPES_ADDR":             "127.0.0.1:9090",
			"FORMTYPES_LOG_LEVEL":        "debug",
			"FORMTYPES_SEED_FILE":        "/etc/formtypes.yaml",
			"FORMTYPES_SHUTDOWN_TIMEOUT": "3s",
			"FORMTYPES_ADMIN_TOKEN":      "s3cret",
		}))
		assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "/etc/formtypes.yaml", cfg.SeedFile)
		assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, "s3cret", cfg.AdminToken)
	})

	t.Run("invalid timeout falls back", func(t *testing.T) {
		cfg := fromLookup(env(map[string]string{"FORMTYPES_SHUTDOWN_TIMEOUT": "soon"}))
		assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)

		cfg = fromLookup(env(map[string]string{"FORMTYPES_SHUTDOWN_TIMEOUT": "-1s"}))
		assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
	})
}
