package fetch

import (
	"net/url"
	"time"
)

// Options describes a single request the transport should perform. The zero
// value of a field means "not specified"; Merge treats unspecified override
// fields as absent.
type Options struct {
	// URL is the request target, either absolute or relative to the
	// transport's base URL.
	URL string

	// Method is the HTTP method. Transports default it to GET when empty.
	Method string

	// Headers are sent verbatim. An override replaces the whole map, it is
	// not combined key by key.
	Headers map[string]string

	// Query parameters appended to the URL.
	Query url.Values

	// Body is the raw request body. Empty means no body.
	Body string

	// Timeout bounds a single invocation. Zero uses the transport default.
	Timeout time.Duration
}

// Merge returns a copy of the base options with the override's specified
// fields applied on top. The merge is shallow: each specified override field
// replaces the base field wholesale. A nil override yields a plain copy.
//
// Cancellation is never part of Options; the coordinator derives a fresh
// cancellation context for every invocation regardless of the caller.
func (o Options) Merge(override *Options) Options {
	merged := o
	if override != nil {
		if override.URL != "" {
			merged.URL = override.URL
		}
		if override.Method != "" {
			merged.Method = override.Method
		}
		if override.Headers != nil {
			merged.Headers = override.Headers
		}
		if override.Query != nil {
			merged.Query = override.Query
		}
		if override.Body != "" {
			merged.Body = override.Body
		}
		if override.Timeout > 0 {
			merged.Timeout = override.Timeout
		}
	}
	merged.Headers = cloneHeaders(merged.Headers)
	merged.Query = cloneQuery(merged.Query)
	return merged
}

func cloneHeaders(h map[string]string) map[string]string {
	if len(h) == 0 {
		return nil
	}
	dup := make(map[string]string, len(h))
	for k, v := range h {
		dup[k] = v
	}
	return dup
}

func cloneQuery(q url.Values) url.Values {
	if len(q) == 0 {
		return nil
	}
	dup := make(url.Values, len(q))
	for k, v := range q {
		vals := make([]string, len(v))
		copy(vals, v)
		dup[k] = vals
	}
	return dup
}
