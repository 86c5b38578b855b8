package config

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		BaseURL: "http://localhost:8080",
		Default: "me",
		Requests: map[string]RequestConfig{
			"me": {URL: "/users/1", Method: http.MethodGet},
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "no requests",
			mutate:  func(c *Config) { c.Requests = nil },
			wantErr: true,
		},
		{
			name:    "default missing",
			mutate:  func(c *Config) { c.Default = "nope" },
			wantErr: true,
		},
		{
			name: "request without url or base",
			mutate: func(c *Config) {
				c.BaseURL = ""
				c.Requests["me"] = RequestConfig{Method: http.MethodGet}
			},
			wantErr: true,
		},
		{
			name: "negative timeout",
			mutate: func(c *Config) {
				c.Requests["me"] = RequestConfig{URL: "/users/1", Timeout: -time.Second}
			},
			wantErr: true,
		},
		{
			name:    "bad level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: true,
		},
		{
			name:    "bad format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	cfg := &Config{
		Requests: map[string]RequestConfig{
			"only": {URL: "/x", Method: "post"},
		},
	}
	normalize(cfg)

	if got := cfg.Requests["only"].Method; got != http.MethodPost {
		t.Errorf("method = %q, want POST", got)
	}
	if cfg.Default != "only" {
		t.Errorf("default = %q, want the single request name", cfg.Default)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fetchbind.yaml")
	content := `
base_url: http://localhost:9000
default: me
auto_run: false
requests:
  me:
    url: /users/1
    headers:
      X-Api-Key: secret
    timeout: 10s
  submit:
    url: /submit
    method: post
    body: '{"x":1}'
ui:
  poll_ms: 100
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.BaseURL != "http://localhost:9000" {
		t.Errorf("base_url = %q", cfg.BaseURL)
	}
	if cfg.AutoRun {
		t.Errorf("auto_run should be false")
	}
	me := cfg.Requests["me"]
	if me.Method != http.MethodGet {
		t.Errorf("me.method = %q, want default GET", me.Method)
	}
	if me.Headers["X-Api-Key"] != "secret" {
		t.Errorf("me.headers = %v", me.Headers)
	}
	if me.Timeout != 10*time.Second {
		t.Errorf("me.timeout = %v", me.Timeout)
	}
	if cfg.Requests["submit"].Method != http.MethodPost {
		t.Errorf("submit.method = %q", cfg.Requests["submit"].Method)
	}
	if cfg.UI.PollInterval() != 100*time.Millisecond {
		t.Errorf("poll interval = %v", cfg.UI.PollInterval())
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %q", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestRequestLookup(t *testing.T) {
	cfg := validConfig()

	if _, err := cfg.Request(""); err != nil {
		t.Errorf("empty name should fall back to default: %v", err)
	}
	if _, err := cfg.Request("me"); err != nil {
		t.Errorf("named lookup failed: %v", err)
	}
	if _, err := cfg.Request("ghost"); err == nil {
		t.Error("expected error for unknown request name")
	}
}

func TestRequestConfigOptions(t *testing.T) {
	req := RequestConfig{
		URL:     "/users/1",
		Method:  http.MethodGet,
		Headers: map[string]string{"A": "1"},
		Query:   map[string]string{"page": "2"},
		Body:    "b",
		Timeout: time.Second,
	}
	opts := req.Options()

	if opts.URL != "/users/1" || opts.Method != http.MethodGet || opts.Body != "b" {
		t.Fatalf("opts = %+v", opts)
	}
	if opts.Headers["A"] != "1" {
		t.Fatalf("headers = %v", opts.Headers)
	}
	if opts.Query.Get("page") != "2" {
		t.Fatalf("query = %v", opts.Query)
	}

	// The converted maps are copies.
	opts.Headers["A"] = "mutated"
	if req.Headers["A"] != "1" {
		t.Fatal("request headers mutated through options")
	}
}
