// Package ui implements the terminal host component.
//
// The Bubble Tea model is the reference host for the fetch binder: Init
// mounts (firing the optional auto-run execution), and every quit path
// unmounts, which cancels whatever is still in flight. The model never reads
// coordinator internals: it polls Snapshot() on a tick, the same way it
// would observe any other store, and re-executes through commands that run
// off the UI loop.
//
// Re-execution (the r key, an edited URL, or watch mode) simply calls
// Execute again; the coordinator's supersession rules guarantee the view
// only ever shows the most recently issued invocation's result, no matter
// how slowly an older one settles.
package ui
