package notify

import (
	"context"
	"time"
)

// =============================================================================
// Event Types
// =============================================================================

// EventType represents the type of resolution event.
type EventType string

// Event type constants.
const (
	EventLanguageDropped EventType = "language_dropped"
	EventFallbackUsed    EventType = "fallback_used"
	EventLanguageIgnored EventType = "language_ignored"
	EventPlanBuilt       EventType = "plan_built"
	EventConfigLoaded    EventType = "config_loaded"
	EventConfigFallback  EventType = "config_fallback"
	EventInputsResolved  EventType = "inputs_resolved"
	EventSourceFailed    EventType = "source_failed"
)

// Severity constants for events.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
	SeverityDebug   = "debug"
)

// Event describes a decision made while resolving a scan plan.
type Event struct {
	Type      EventType      `json:"type"`
	RunID     string         `json:"run_id,omitempty"`
	Repo      string         `json:"repo,omitempty"`
	Language  string         `json:"language,omitempty"`
	Message   string         `json:"message"`
	Severity  string         `json:"severity"` // SeverityDebug, SeverityInfo, SeverityWarning, SeverityError
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// =============================================================================
// Notifier Interface
// =============================================================================

// Notifier receives resolution events.
type Notifier interface {
	// Notify delivers an event. Implementations must not block resolution
	// and should swallow their own delivery failures after reporting them.
	Notify(ctx context.Context, event Event) error
}

// =============================================================================
// Context Injection
// =============================================================================

type serviceContextKey string

const (
	notifierServiceKey serviceContextKey = "scanplan.notifier"
	runIDServiceKey    serviceContextKey = "scanplan.run_id"
)

// WithNotifier adds a Notifier to the context.
func WithNotifier(ctx context.Context, n Notifier) context.Context {
	return context.WithValue(ctx, notifierServiceKey, n)
}

// NotifierFromContext extracts the Notifier from context.
// Returns nil if no notifier is configured.
func NotifierFromContext(ctx context.Context) Notifier {
	if n, ok := ctx.Value(notifierServiceKey).(Notifier); ok {
		return n
	}
	return nil
}

// WithRunID tags every event emitted under ctx with runID.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDServiceKey, runID)
}

// RunIDFromContext returns the run ID stored by WithRunID, or "".
func RunIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(runIDServiceKey).(string); ok {
		return id
	}
	return ""
}

// Emit sends event to the notifier stored in ctx. It fills in the run ID,
// timestamp and severity when unset. Without a notifier it does nothing.
func Emit(ctx context.Context, event Event) {
	n := NotifierFromContext(ctx)
	if n == nil {
		return
	}
	if event.RunID == "" {
		event.RunID = RunIDFromContext(ctx)
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.Severity == "" {
		event.Severity = SeverityInfo
	}
	_ = n.Notify(ctx, event)
}
