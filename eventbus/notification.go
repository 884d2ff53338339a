package eventbus

// Notification is the wire shape of one scheduler observation, published to
// a channel the caller names (cmd/toolsched-demo publishes one per call on
// every on_update firing, all to its single configured channel). It's a flat,
// JSON-friendly projection of scheduler.Snapshot — eventbus doesn't import
// package scheduler, so callers build these at the call site (see
// cmd/toolsched-demo) rather than eventbus depending on the state machine.
type Notification struct {
	BatchID string `json:"batch_id"`
	CallID  string `json:"call_id"`
	Name    string `json:"name"`

	// State is the lower-case scheduler.StateName for this call.
	State string `json:"state"`

	// Outcome is the confirmation outcome string, empty if none was recorded.
	Outcome string `json:"outcome,omitempty"`

	// Kind is the toolerr.ErrorKind string, set only when State is "error".
	Kind string `json:"kind,omitempty"`

	// ResultDisplay is set only once State is terminal.
	ResultDisplay string `json:"result_display,omitempty"`

	DurationMs int64 `json:"duration_ms,omitempty"`

	// Complete is true when this notification accompanies an
	// on_all_complete firing rather than a mid-batch on_update.
	Complete bool `json:"complete,omitempty"`
}
