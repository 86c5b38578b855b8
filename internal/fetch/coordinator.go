package fetch

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Transport performs the actual network call described by Options and decodes
// the response payload into T. Implementations must honor cancellation of the
// supplied context and settle (return a value or an error) even when
// cancelled, rather than hanging indefinitely.
type Transport[T any] interface {
	Do(ctx context.Context, opts Options) (T, error)
}

// TransportFunc adapts a plain function to the Transport interface.
type TransportFunc[T any] func(ctx context.Context, opts Options) (T, error)

// Do implements Transport.
func (f TransportFunc[T]) Do(ctx context.Context, opts Options) (T, error) {
	return f(ctx, opts)
}

// Snapshot is the externally visible request state. At any observation point
// exactly one of {Data set, Err set, both nil} holds; Loading is true strictly
// between the start of an invocation and the settlement of whichever
// invocation is current at that moment.
type Snapshot[T any] struct {
	Data    *T
	Loading bool
	Err     *Failure
}

// Idle reports whether the snapshot is the pristine triple.
func (s Snapshot[T]) Idle() bool {
	return s.Data == nil && s.Err == nil && !s.Loading
}

// token identifies one invocation. Exactly one token is current at a time;
// a superseded token's settlement never reaches the snapshot.
type token struct {
	ctx     context.Context
	cancel  context.CancelFunc
	gen     uint64
	settled bool // guarded by Coordinator.mu
}

// Coordinator sequences invocations of a single logical request and owns the
// observable state triple. It guarantees that only the most recently issued
// invocation ever mutates the snapshot: calling Execute again before a prior
// call settles cancels the prior invocation's token and discards its result
// on arrival, regardless of network arrival order.
//
// All methods are safe for concurrent use. The coordinator itself never
// panics and never returns an out-of-band error; every failure is captured
// into the returned Outcome and, when still authoritative, into the snapshot.
type Coordinator[T any] struct {
	transport Transport[T]
	base      Options
	parent    context.Context
	logger    zerolog.Logger

	mu   sync.Mutex
	snap Snapshot[T]
	cur  *token
	gen  uint64
}

type coordinatorSettings struct {
	parent context.Context
	logger zerolog.Logger
}

// CoordinatorOption customizes a Coordinator at construction.
type CoordinatorOption func(*coordinatorSettings)

// WithParent sets the context every invocation derives its cancellation
// context from. Cancelling it tears down any in-flight request.
func WithParent(ctx context.Context) CoordinatorOption {
	return func(s *coordinatorSettings) {
		s.parent = ctx
	}
}

// WithLogger sets the logger used for invocation tracing.
func WithLogger(logger zerolog.Logger) CoordinatorOption {
	return func(s *coordinatorSettings) {
		s.logger = logger
	}
}

// New builds a Coordinator around the given transport and base options. The
// snapshot starts as the idle triple.
func New[T any](transport Transport[T], base Options, opts ...CoordinatorOption) *Coordinator[T] {
	settings := coordinatorSettings{
		parent: context.Background(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&settings)
	}
	return &Coordinator[T]{
		transport: transport,
		base:      base,
		parent:    settings.parent,
		logger:    settings.logger,
	}
}

// Execute runs the request with the override shallow-merged onto the base
// options and blocks until it settles. It returns the invocation's own
// Outcome even when a newer Execute call superseded it in the meantime; in
// that case the result is returned to the caller but never written to the
// snapshot.
//
// Any cancellation handle the caller might encode in the override is
// irrelevant: the coordinator installs its own per-invocation token and
// cancels the previous one before the new request starts.
func (c *Coordinator[T]) Execute(override *Options) Outcome[T] {
	merged := c.base.Merge(override)

	c.mu.Lock()
	if c.cur != nil {
		// Best effort: the transport may or may not observe the signal
		// before completing. Ordering is protected by the token check
		// below, not by this cancel.
		c.cur.cancel()
	}
	c.gen++
	ctx, cancel := context.WithCancel(c.parent)
	tok := &token{ctx: ctx, cancel: cancel, gen: c.gen}
	c.cur = tok
	c.snap = Snapshot[T]{Loading: true}
	c.mu.Unlock()

	defer tok.cancel()

	c.logger.Debug().
		Uint64("gen", tok.gen).
		Str("method", merged.Method).
		Str("url", merged.URL).
		Msg("invocation issued")

	data, err := c.transport.Do(tok.ctx, merged)
	out := Outcome[T]{Err: classify(err)}
	if out.Err == nil {
		out.Data = data
	}

	c.mu.Lock()
	tok.settled = true
	if c.cur == tok {
		if out.Err != nil {
			c.snap = Snapshot[T]{Err: out.Err}
		} else {
			d := out.Data
			c.snap = Snapshot[T]{Data: &d}
		}
		c.mu.Unlock()
		c.logger.Debug().Uint64("gen", tok.gen).Bool("ok", out.OK()).Msg("invocation settled")
		return out
	}
	c.mu.Unlock()

	c.logger.Debug().Uint64("gen", tok.gen).Msg("superseded result discarded")
	return out
}

// Snapshot returns a copy of the current observable state.
func (c *Coordinator[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := c.snap
	if c.snap.Data != nil {
		d := *c.snap.Data
		snap.Data = &d
	}
	if c.snap.Err != nil {
		e := *c.snap.Err
		snap.Err = &e
	}
	return snap
}

// Reset unconditionally restores the idle triple. It does not cancel the
// current token: an invocation issued before Reset can still settle
// afterwards and, being still current, repopulate the snapshot. Callers that
// want both should call CancelCurrent first.
func (c *Coordinator[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = Snapshot[T]{}
}

// CancelCurrent signals the in-flight invocation, if any, to cancel. Settled
// tokens are left alone so teardown after a completed request emits no
// signal. Safe to call at any time, any number of times.
func (c *Coordinator[T]) CancelCurrent() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cur != nil && !c.cur.settled {
		c.cur.cancel()
		c.logger.Debug().Uint64("gen", c.cur.gen).Msg("in-flight invocation cancelled")
	}
}
