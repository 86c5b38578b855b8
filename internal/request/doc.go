// Package request provides the HTTP transport behind the fetch coordinator.
//
// # Overview
//
// Client is a generic JSON client: it builds a request from fetch.Options
// (URL, method, headers, query, body, timeout), executes it under the
// caller's context and decodes the response into the payload type. It is the
// only package that touches net/http; the coordinator sees it purely through
// the fetch.Transport interface.
//
// # Error handling
//
// The client distinguishes:
//
//   - target errors: ErrNoTarget, ErrInvalidTarget (bad configuration)
//   - network errors: wrapped with "execute request:" context
//   - HTTP errors: *StatusError carrying the status and a body excerpt,
//     with IsNotFound/IsUnauthorized classifiers
//   - decode errors: wrapped with "decode response:" context
//
// Cancellation always settles: the net/http stack returns a context error
// rather than hanging, which the coordinator folds into a cancellation
// Failure.
//
// # URL resolution
//
// A client may carry a base URL ("127.0.0.1:8080" normalizes to
// http://127.0.0.1:8080); request URLs are resolved against it, so both
// relative paths and absolute URLs work. Without a base URL, every request
// must be absolute.
package request
