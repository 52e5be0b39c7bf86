// Package config provides centralized configuration management. Values are
// layered: built-in defaults, an optional YAML config file, environment
// variables with the PROMPTLOOM_ prefix, then flag overrides.
package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	apperrors "github.com/promptloom/promptloom/internal/errors"
)

var (
	appConfig *Config
	configMu  sync.RWMutex
)

// SetDefaults installs the built-in defaults on v. Called once before any
// config file or environment variable is read.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("prompt.dir", DefaultPromptDir())

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("pipeline.endpoint", "")
	v.SetDefault("pipeline.api_key", "")
	v.SetDefault("pipeline.model", "")
	v.SetDefault("pipeline.timeout", "120s")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.profile", "simple")
}

// DefaultPromptDir returns the prompt library location when none is
// configured: ./prompts under the working directory.
func DefaultPromptDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "prompts"
	}
	return cwd + string(os.PathSeparator) + "prompts"
}

// Load unmarshals and validates the merged viper state.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	setConfig(cfg)
	return cfg, nil
}

// Validate checks field ranges. Violations return a CONFIG_INVALID envelope.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Prompt.Dir) == "" {
		return apperrors.NewConfigInvalidError("prompt.dir must not be empty")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return apperrors.NewConfigInvalidError(fmt.Sprintf("server.port %d out of range 1-65535", c.Server.Port))
	}
	if c.Pipeline.Timeout < 0 {
		return apperrors.NewConfigInvalidError("pipeline.timeout must not be negative")
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Profile)) {
	case "", "simple", "structured":
	default:
		return apperrors.NewConfigInvalidError(fmt.Sprintf("logging.profile %q is not simple or structured", c.Logging.Profile))
	}
	return nil
}

// GetConfig returns the current application configuration (thread-safe).
func GetConfig() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return appConfig
}

func setConfig(cfg *Config) {
	configMu.Lock()
	defer configMu.Unlock()
	appConfig = cfg
}
