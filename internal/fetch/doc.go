// Package fetch coordinates a single asynchronous request and exposes its
// status as observable state.
//
// # Overview
//
// The package is a thin state-binding layer between a host component's
// lifecycle and one logical network request. It owns three things:
//
//   - Snapshot: the externally visible triple (data, loading, error)
//   - the current invocation token: an opaque, single-slot cancellation handle
//   - the Binder: an adapter from host mount/unmount events to coordinator calls
//
// The actual network I/O, URL construction and payload decoding live behind
// the narrow Transport interface; package request provides the HTTP
// implementation.
//
// # Supersession
//
// Calling Execute while a prior invocation is still in flight does not queue
// or block on it. The coordinator cancels the prior invocation's token,
// installs a fresh one and proceeds. When the older request eventually
// settles, the token comparison fails and its result is discarded without
// touching the snapshot: last issued wins, independent of network arrival
// order. The superseded caller still receives its own settled Outcome, so a
// caller awaiting a specific invocation is never left hanging.
//
// # State invariants
//
// The snapshot always satisfies:
//
//   - Data and Err are never both set
//   - Loading is true strictly between invocation start and the settlement
//     of whichever invocation is current at that moment
//   - Execute clears both Data and Err at start; nothing is shown while loading
//
// # Cancellation
//
// Cancellation is cooperative. Cancelling a token tells the transport to stop
// via its context; the coordinator does not wait for it and does not assume
// the transport noticed. Correctness comes from the token gate, not from the
// cancel signal. Teardown (Binder.Unmount) fires one final cancel for an
// in-flight request and none when the request already settled.
//
// # Reset semantics
//
// Reset restores the idle triple but leaves the current token untouched. A
// request issued before Reset can therefore settle afterwards and repopulate
// the snapshot. This quirk is intentional and pinned by a test; callers that
// want a hard stop call CancelCurrent first.
//
// # Concurrency model
//
// A mutex guards the snapshot, the token slot and the generation counter. The
// lock is held only for bookkeeping, never across transport I/O. Snapshot()
// returns defensive copies so readers can never observe a torn or shared
// value.
package fetch
