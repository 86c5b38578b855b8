package fetch

import (
	"context"
	"errors"
)

// Failure describes why an invocation did not produce data. It is the only
// error shape the coordinator ever exposes: transport errors, decode errors
// and cancellations are all folded into it.
type Failure struct {
	// Message is a human-readable description, always set.
	Message string

	// Status is the HTTP status code when the transport reported one,
	// zero otherwise.
	Status int

	// Canceled is true when the invocation failed because its cancellation
	// signal fired (superseded by a newer invocation or torn down).
	Canceled bool
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return f.Message
}

// statusCoder is implemented by transport errors that carry an HTTP status.
// Declared as a local interface so the coordinator stays decoupled from any
// concrete transport package.
type statusCoder interface {
	StatusCode() int
}

// classify folds an arbitrary transport error into a Failure. A nil error
// yields nil.
func classify(err error) *Failure {
	if err == nil {
		return nil
	}
	f := &Failure{Message: err.Error()}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		f.Canceled = true
	}
	var sc statusCoder
	if errors.As(err, &sc) {
		f.Status = sc.StatusCode()
	}
	return f
}

// Outcome is the settled result of a single Execute invocation: either Data
// or Err, never both. Every invocation receives its own Outcome even when a
// newer invocation superseded it and its result never reached the snapshot.
type Outcome[T any] struct {
	Data T
	Err  *Failure
}

// OK reports whether the invocation produced data.
func (o Outcome[T]) OK() bool {
	return o.Err == nil
}
