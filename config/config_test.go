package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := load(v)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "jwt", cfg.Session.Store)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "adminpassword", cfg.Admin.Password)
	assert.Equal(t, 10, cfg.PasswordCost)
	assert.Empty(t, cfg.Gemini.APIKey)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "SQLite")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := load(v)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "redis", cfg.Session.Store)
	assert.Equal(t, 90*time.Minute, cfg.Session.TTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSAllowedOrigins)
}

func TestDefaultSessionSecretIsFlagged(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	assert.True(t, load(v).Session.UsesDefaultSecret())

	t.Setenv("SESSION_SECRET", "a-long-random-production-secret")
	v = viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	assert.False(t, load(v).Session.UsesDefaultSecret())

	assert.True(t, Session{}.UsesDefaultSecret())
}

func TestDefaultSessionSecretLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = original })

	v := viper.New()
	setDefaults(v)
	load(v)

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "SESSION_SECRET is not set")
}
