// Package notify carries resolution events out of the planning core.
//
// The core never prints. Detection, matrix building and config loading
// report their decisions (dropped languages, fallbacks, ignored overrides)
// as Events to whatever Notifier the caller put in the context.
//
// Core types:
//   - Notifier: Interface for receiving events
//   - Event: Event with type, message, severity and metadata
//   - EventType: Type of event (language_dropped, config_fallback, ...)
//
// Implementations:
//   - LogNotifier: Logs events via slog
//   - WebhookNotifier: POSTs events as JSON to an HTTP endpoint
//   - MultiNotifier: Combines multiple notifiers
//   - RecordingNotifier: Keeps events in memory (for tests)
//   - NopNotifier: Discards events
//
// Example usage:
//
//	ctx = notify.WithNotifier(ctx, notify.NewLogNotifier(logger))
//	ctx = notify.WithRunID(ctx, runID)
//	plan := matrix.Build(ctx, detected, overrides)
package notify
