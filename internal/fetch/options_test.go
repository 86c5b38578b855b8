package fetch

import (
	"net/url"
	"testing"
	"time"
)

func TestMergeNilOverrideCopiesBase(t *testing.T) {
	base := Options{
		URL:     "/users/1",
		Method:  "GET",
		Headers: map[string]string{"Accept": "application/json"},
		Query:   url.Values{"page": {"1"}},
	}

	merged := base.Merge(nil)
	if merged.URL != base.URL || merged.Method != base.Method {
		t.Fatalf("merged = %+v, want copy of base", merged)
	}

	// The merged maps are independent of the base.
	merged.Headers["Accept"] = "text/plain"
	merged.Query.Set("page", "2")
	if base.Headers["Accept"] != "application/json" {
		t.Fatalf("base headers mutated through merged copy")
	}
	if base.Query.Get("page") != "1" {
		t.Fatalf("base query mutated through merged copy")
	}
}

func TestMergeOverrideWinsPerField(t *testing.T) {
	base := Options{
		URL:     "/users/1",
		Method:  "GET",
		Headers: map[string]string{"X-Api-Key": "base", "Accept": "application/json"},
		Body:    "",
		Timeout: 5 * time.Second,
	}

	tests := []struct {
		name     string
		override Options
		check    func(t *testing.T, m Options)
	}{
		{
			name:     "url",
			override: Options{URL: "/users/2"},
			check: func(t *testing.T, m Options) {
				if m.URL != "/users/2" || m.Method != "GET" {
					t.Fatalf("got %+v", m)
				}
			},
		},
		{
			name:     "method",
			override: Options{Method: "DELETE"},
			check: func(t *testing.T, m Options) {
				if m.Method != "DELETE" || m.URL != "/users/1" {
					t.Fatalf("got %+v", m)
				}
			},
		},
		{
			name:     "headers replaced wholesale",
			override: Options{Headers: map[string]string{"X-Other": "v"}},
			check: func(t *testing.T, m Options) {
				if _, ok := m.Headers["X-Api-Key"]; ok {
					t.Fatalf("base header survived a wholesale replacement: %+v", m.Headers)
				}
				if m.Headers["X-Other"] != "v" {
					t.Fatalf("override header missing: %+v", m.Headers)
				}
			},
		},
		{
			name:     "body",
			override: Options{Body: `{"x":1}`},
			check: func(t *testing.T, m Options) {
				if m.Body != `{"x":1}` {
					t.Fatalf("got body %q", m.Body)
				}
			},
		},
		{
			name:     "timeout",
			override: Options{Timeout: time.Second},
			check: func(t *testing.T, m Options) {
				if m.Timeout != time.Second {
					t.Fatalf("got timeout %v", m.Timeout)
				}
			},
		},
		{
			name:     "zero fields keep base",
			override: Options{},
			check: func(t *testing.T, m Options) {
				if m.URL != "/users/1" || m.Method != "GET" || m.Timeout != 5*time.Second {
					t.Fatalf("got %+v", m)
				}
				if m.Headers["X-Api-Key"] != "base" {
					t.Fatalf("base headers lost: %+v", m.Headers)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, base.Merge(&tt.override))
		})
	}
}

func TestMergeEmptyMapsNormalizeToNil(t *testing.T) {
	merged := Options{Headers: map[string]string{}, Query: url.Values{}}.Merge(nil)
	if merged.Headers != nil {
		t.Fatalf("empty headers should normalize to nil")
	}
	if merged.Query != nil {
		t.Fatalf("empty query should normalize to nil")
	}
}
