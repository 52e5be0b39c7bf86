package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/promptloom/promptloom/internal/errors"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost:8080", cfg.Server.Addr())
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "simple", cfg.Logging.Profile)

	assert.Empty(t, cfg.Pipeline.Endpoint)
	assert.Equal(t, 120*time.Second, cfg.Pipeline.Timeout)

	assert.NotEmpty(t, cfg.Prompt.Dir)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
prompt:
  dir: /data/prompts
server:
  port: 9000
  read_timeout: 5s
pipeline:
  endpoint: http://edit.local/v1
  model: edit-model
logging:
  profile: structured
`), 0o644))

	v := newViper()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "/data/prompts", cfg.Prompt.Dir)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "http://edit.local/v1", cfg.Pipeline.Endpoint)
	assert.Equal(t, "edit-model", cfg.Pipeline.Model)
	assert.Equal(t, "structured", cfg.Logging.Profile)
}

func TestLoadStoresSnapshot(t *testing.T) {
	cfg, err := Load(newViper())
	require.NoError(t, err)
	assert.Same(t, cfg, GetConfig())
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty prompt dir", func(c *Config) { c.Prompt.Dir = " " }},
		{"port too low", func(c *Config) { c.Server.Port = 0 }},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }},
		{"negative timeout", func(c *Config) { c.Pipeline.Timeout = -time.Second }},
		{"unknown profile", func(c *Config) { c.Logging.Profile = "enterprise" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(newViper())
			require.NoError(t, err)
			tc.mutate(cfg)

			err = cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, apperrors.CodeConfigInvalid, apperrors.CodeOf(err))
		})
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	v := newViper()
	v.Set("server.port", 0)

	_, err := Load(v)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeConfigInvalid, apperrors.CodeOf(err))
}
