package fetch

import "sync"

// Binder ties a Coordinator to a host component's mount/unmount cycle without
// knowing anything about the host's UI framework. The host translates its own
// lifecycle events into exactly one Mount and exactly one Unmount call; the
// binder tolerates repeats so a sloppy host cannot double-fire or panic.
type Binder[T any] struct {
	coord   *Coordinator[T]
	autoRun bool

	mu        sync.Mutex
	mounted   bool
	unmounted bool
}

// NewBinder wraps the coordinator. When autoRun is set, Mount fires one
// Execute with no overrides.
func NewBinder[T any](coord *Coordinator[T], autoRun bool) *Binder[T] {
	return &Binder[T]{coord: coord, autoRun: autoRun}
}

// Mount runs the optional initial execution. The Outcome is deliberately
// discarded; the coordinator still updates the snapshot, which is the only
// channel the host observes.
func (b *Binder[T]) Mount() {
	b.mu.Lock()
	if b.mounted {
		b.mu.Unlock()
		return
	}
	b.mounted = true
	b.mu.Unlock()

	if b.autoRun {
		go func() {
			_ = b.coord.Execute(nil)
		}()
	}
}

// Unmount cancels any in-flight invocation. It runs its effect at most once
// per mount cycle and never panics, whether or not a request is in flight.
func (b *Binder[T]) Unmount() {
	b.mu.Lock()
	if b.unmounted {
		b.mu.Unlock()
		return
	}
	b.unmounted = true
	b.mu.Unlock()

	b.coord.CancelCurrent()
}

// Bind mounts immediately and returns the matching unbind function, for hosts
// that express teardown as a deferred call rather than an event.
func (b *Binder[T]) Bind() (unbind func()) {
	b.Mount()
	return b.Unmount
}
