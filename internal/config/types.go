package config

import (
	"net/url"
	"time"

	"github.com/Alessio99-a/fetchbind/internal/fetch"
)

// Config is the full fetchbind configuration.
type Config struct {
	// BaseURL is prepended to relative request URLs.
	BaseURL string `mapstructure:"base_url"`

	// Default names the request the TUI binds to when none is given.
	Default string `mapstructure:"default"`

	// AutoRun triggers one execution when the TUI mounts.
	AutoRun bool `mapstructure:"auto_run"`

	// Requests are the named request definitions.
	Requests map[string]RequestConfig `mapstructure:"requests"`

	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// RequestConfig describes one named request.
type RequestConfig struct {
	URL     string            `mapstructure:"url"`
	Method  string            `mapstructure:"method"`
	Headers map[string]string `mapstructure:"headers"`
	Query   map[string]string `mapstructure:"query"`
	Body    string            `mapstructure:"body"`
	Timeout time.Duration     `mapstructure:"timeout"`
}

// Options converts the definition into coordinator base options.
func (r RequestConfig) Options() fetch.Options {
	opts := fetch.Options{
		URL:     r.URL,
		Method:  r.Method,
		Body:    r.Body,
		Timeout: r.Timeout,
	}
	if len(r.Headers) > 0 {
		headers := make(map[string]string, len(r.Headers))
		for k, v := range r.Headers {
			headers[k] = v
		}
		opts.Headers = headers
	}
	if len(r.Query) > 0 {
		values := make(url.Values, len(r.Query))
		for k, v := range r.Query {
			values.Set(k, v)
		}
		opts.Query = values
	}
	return opts
}

// UIConfig tunes the terminal host.
type UIConfig struct {
	// PollMS is the snapshot poll cadence in milliseconds.
	PollMS int `mapstructure:"poll_ms"`

	// WatchSeconds is the re-execute cadence when watch mode is on.
	WatchSeconds int `mapstructure:"watch_seconds"`
}

// PollInterval returns the poll cadence as a duration.
func (u UIConfig) PollInterval() time.Duration {
	if u.PollMS <= 0 {
		return 250 * time.Millisecond
	}
	return time.Duration(u.PollMS) * time.Millisecond
}

// WatchInterval returns the watch cadence as a duration.
func (u UIConfig) WatchInterval() time.Duration {
	if u.WatchSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(u.WatchSeconds) * time.Second
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
