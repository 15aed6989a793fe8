package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("DATA_DIR", t.TempDir())
		for _, key := range []string{"APP_ENV", "LOG_FILE", "SESSION_SECRET", "PASSWORD_SCHEME", "LOGIN_RATE", "LOGIN_BURST"} {
			t.Setenv(key, "")
		}

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "development", cfg.AppEnv)
		assert.Equal(t, "tillbox.log", cfg.LogFile)
		assert.Equal(t, "legacy", cfg.PasswordScheme)
		assert.Equal(t, float64(2), cfg.LoginRate)
		assert.Equal(t, 5, cfg.LoginBurst)
		assert.Empty(t, cfg.SessionSecret)
	})

	t.Run("EnvOverrides", func(t *testing.T) {
		t.Setenv("DATA_DIR", t.TempDir())
		t.Setenv("APP_ENV", "production")
		t.Setenv("LOG_FILE", "/tmp/pos.log")
		t.Setenv("SESSION_SECRET", "topsecret")
		t.Setenv("PASSWORD_SCHEME", "bcrypt")
		t.Setenv("LOGIN_RATE", "0.5")
		t.Setenv("LOGIN_BURST", "3")

		cfg := LoadConfig()

		assert.Equal(t, "production", cfg.AppEnv)
		assert.Equal(t, "/tmp/pos.log", cfg.LogFile)
		assert.Equal(t, "topsecret", cfg.SessionSecret)
		assert.Equal(t, "bcrypt", cfg.PasswordScheme)
		assert.Equal(t, 0.5, cfg.LoginRate)
		assert.Equal(t, 3, cfg.LoginBurst)
	})

	t.Run("MalformedNumbersFallBack", func(t *testing.T) {
		t.Setenv("DATA_DIR", t.TempDir())
		t.Setenv("LOGIN_RATE", "fast")
		t.Setenv("LOGIN_BURST", "lots")

		cfg := LoadConfig()

		assert.Equal(t, float64(2), cfg.LoginRate)
		assert.Equal(t, 5, cfg.LoginBurst)
	})
}
