// Package app is the composition root for the fetchbind TUI.
//
// Run connects the pieces in dependency order: configuration selects the
// request definition, the transport client is built against the configured
// base URL, the coordinator wraps the transport with the request as its base
// options, the binder wraps the coordinator with the auto-run flag, and the
// UI hosts the binder. Cancelling ctx tears down any in-flight request
// through the coordinator's parent context.
//
// Business logic lives in the domain packages (fetch, request, config, ui);
// this package only wires them with sensible defaults.
package app
