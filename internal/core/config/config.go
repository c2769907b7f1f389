// Package config handles configuration loading and validation for the board.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// ServerURL is the root of the activity signup service.
	ServerURL string `yaml:"server_url"`
	// RequestTimeout bounds each request. Zero leaves it to the transport.
	RequestTimeout time.Duration `yaml:"request_timeout"`
	Serve          ServeConfig   `yaml:"serve"`
}

// ServeConfig configures the development server.
type ServeConfig struct {
	Addr string `yaml:"addr"`
	// DataFile persists activities between runs. Empty keeps them in memory.
	DataFile string `yaml:"data_file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ServerURL: "http://localhost:8000",
		Serve: ServeConfig{
			Addr: ":8000",
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.ServerURL == "" {
		c.ServerURL = defaults.ServerURL
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = defaults.Serve.Addr
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return c.fieldErrors(criterio.FieldErrorsBuilder{}).ToError()
}

func (c *Config) fieldErrors(errs criterio.FieldErrorsBuilder) criterio.FieldErrorsBuilder {
	if err := validateServerURL(c.ServerURL); err != nil {
		errs = errs.Append("server_url", err)
	}

	if c.RequestTimeout < 0 {
		errs = errs.Append("request_timeout", fmt.Errorf("must not be negative"))
	}

	if c.Serve.Addr == "" {
		errs = errs.Append("serve.addr", fmt.Errorf("cannot be empty"))
	}

	return errs
}

func validateServerURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("cannot be empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
