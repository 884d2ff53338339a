package scheduler

import (
	"time"

	"github.com/outpost-run/toolsched/confirm"
	"github.com/outpost-run/toolsched/tool"
	"github.com/outpost-run/toolsched/types"
)

// Outcome mirrors confirm.Outcome but adds the zero value meaning "no
// confirmation outcome recorded yet" (a ToolCall that bypassed confirmation
// entirely still ends up with ProceedAlways per spec §4.3, so the zero
// value is reserved for calls that error out before reaching a decision).
type Outcome struct {
	set   bool
	value confirm.Outcome
}

// Get returns the recorded outcome and whether one was ever set.
func (o Outcome) Get() (confirm.Outcome, bool) { return o.value, o.set }

// recordOutcome sets o to value unless a persistent outcome (Cancel or a
// ProceedAlways* hint) was already recorded — I4: outcome is never
// overwritten once a terminal-grade decision has been made.
func (o *Outcome) recordOutcome(value confirm.Outcome) {
	if o.set && (o.value == confirm.Cancel || o.value.IsPersistent()) {
		return
	}
	o.set = true
	o.value = value
}

// ToolCall is the central entity: one request moving through the
// confirmation/execution state machine.
type ToolCall struct {
	CallID     string
	Request    types.Request
	Tool       tool.Tool
	Invocation tool.Invocation
	State      State
	Outcome    Outcome
	StartTime  time.Time
	DurationMs int64

	cancel *types.CancelSignal

	// resolved guards the IDE-resolution race (§9 "IDE-resolution race"):
	// whichever of the interactive answer or the IDE channel calls
	// tryResolve first wins; the other finds resolved already true.
	resolved bool
}

// tryResolve performs the compare-and-swap the spec requires for the
// IDE-resolution race: returns true the first time it's called for this
// ToolCall, false on every subsequent call. Must be called with the
// scheduler's mutex held.
func (c *ToolCall) tryResolve() bool {
	if c.resolved {
		return false
	}
	c.resolved = true
	return true
}

// transition moves c into next, honoring I1 (terminal states never leave)
// and stamping DurationMs on the first transition into a terminal state.
// Must be called with the scheduler's mutex held.
func (c *ToolCall) transition(next State) {
	if IsTerminal(c.State) {
		return
	}
	c.State = next
	if IsTerminal(next) && !c.StartTime.IsZero() {
		c.DurationMs = time.Since(c.StartTime).Milliseconds()
	}
}

// Snapshot is a read-only copy of a ToolCall's observable fields, handed to
// on_update/on_all_complete subscribers so they can't mutate scheduler
// state from inside a callback.
type Snapshot struct {
	CallID     string
	Name       string
	State      State
	Outcome    confirm.Outcome
	HasOutcome bool
	StartTime  time.Time
	DurationMs int64
}

func snapshot(c *ToolCall) Snapshot {
	outcome, hasOutcome := c.Outcome.Get()
	return Snapshot{
		CallID:     c.CallID,
		Name:       c.Request.Name,
		State:      c.State,
		Outcome:    outcome,
		HasOutcome: hasOutcome,
		StartTime:  c.StartTime,
		DurationMs: c.DurationMs,
	}
}
