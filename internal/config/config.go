package config

import (
	"fmt"
	"time"
)

// Config is the complete application configuration. Values come from the
// config file, environment variables with the PROMPTLOOM_ prefix, and
// command-line flags, in increasing priority.
type Config struct {
	Prompt   PromptConfig   `mapstructure:"prompt"`
	Server   ServerConfig   `mapstructure:"server"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// PromptConfig locates the prompt text-file library.
type PromptConfig struct {
	// Dir holds the .txt tag files, one entry per line.
	Dir string `mapstructure:"dir"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// PipelineConfig configures the external image-edit endpoint. An empty
// endpoint disables the feature; commands that need it fail fast with
// DEPENDENCY_UNAVAILABLE instead of dialing nowhere.
type PipelineConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	APIKey   string        `mapstructure:"api_key"`
	Model    string        `mapstructure:"model"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// LoggingConfig contains logging configuration.
// Supports progressive logging profiles:
// - SIMPLE: Console output only, minimal configuration (CLI commands)
// - STRUCTURED: Structured sinks, correlation IDs (serve mode)
type LoggingConfig struct {
	// Level controls the minimum log level.
	// Valid values: trace, debug, info, warn, error
	Level string `mapstructure:"level"`

	// Profile selects the logging complexity level.
	// Valid values: SIMPLE, STRUCTURED
	Profile string `mapstructure:"profile"`
}
