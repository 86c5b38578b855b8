// Package config loads and validates the fetchbind configuration file.
package config

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load reads the configuration from the given path, or from the standard
// locations (./fetchbind.yaml, ~/.config/fetchbind/, /etc/fetchbind/) when
// the path is empty.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("fetchbind")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "fetchbind"))
		}
		v.AddConfigPath("/etc/fetchbind/")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	normalize(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("auto_run", true)

	v.SetDefault("ui.poll_ms", 250)
	v.SetDefault("ui.watch_seconds", 5)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// normalize fills per-request defaults so downstream code never sees an
// empty method.
func normalize(cfg *Config) {
	for name, req := range cfg.Requests {
		if req.Method == "" {
			req.Method = http.MethodGet
		}
		req.Method = strings.ToUpper(req.Method)
		cfg.Requests[name] = req
	}
	if cfg.Default == "" && len(cfg.Requests) == 1 {
		for name := range cfg.Requests {
			cfg.Default = name
		}
	}
}

// validate checks the configuration for mistakes worth failing fast on.
func validate(cfg *Config) error {
	if len(cfg.Requests) == 0 {
		return fmt.Errorf("at least one request must be defined under requests")
	}

	if cfg.Default == "" {
		return fmt.Errorf("default must name one of the configured requests")
	}
	if _, ok := cfg.Requests[cfg.Default]; !ok {
		return fmt.Errorf("default request %q is not defined", cfg.Default)
	}

	for name, req := range cfg.Requests {
		if req.URL == "" && cfg.BaseURL == "" {
			return fmt.Errorf("request %q has no url and no base_url is set", name)
		}
		if req.Timeout < 0 {
			return fmt.Errorf("request %q has a negative timeout", name)
		}
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// Request returns the named request definition, falling back to the default
// when name is empty.
func (c *Config) Request(name string) (RequestConfig, error) {
	if name == "" {
		name = c.Default
	}
	req, ok := c.Requests[name]
	if !ok {
		return RequestConfig{}, fmt.Errorf("request %q is not defined", name)
	}
	return req, nil
}
