package scheduler

import (
	"fmt"

	"github.com/outpost-run/toolsched/confirm"
	"github.com/outpost-run/toolsched/response"
	"github.com/outpost-run/toolsched/toolerr"
)

// State is the closed, seven-variant tagged union a ToolCall moves through.
// The only implementations are the types declared in this file; the
// unexported marker method keeps the set closed to this package.
type State interface {
	schedulerState()
}

type stateBase struct{}

func (stateBase) schedulerState() {}

// Validating is the initial state: the call was built, awaiting a
// confirmation decision.
type Validating struct{ stateBase }

// AwaitingApproval means the user or IDE must respond before the call can
// proceed. IsModifying is true while an editor-modify round trip is open.
type AwaitingApproval struct {
	stateBase
	Details     confirm.Details
	IsModifying bool
}

// Scheduled means the call was approved and is queued to execute.
type Scheduled struct{ stateBase }

// Executing means the call is running. LiveOutput holds the most recently
// coalesced output chunk, if the tool streams output.
type Executing struct {
	stateBase
	LiveOutput string
}

// Success is terminal: Response is the canonical function-response part(s).
// ResultDisplay is a UI-renderable summary (e.g. a diff for an edit, a
// stylised command for a shell), truncated past the scheduler's configured
// display limit.
type Success struct {
	stateBase
	Response      []response.Part
	ResultDisplay string
}

// Error is terminal: Response is an error-shaped function-response part,
// Kind classifies why.
type Error struct {
	stateBase
	Response      []response.Part
	Kind          toolerr.ErrorKind
	ResultDisplay string
}

// PreservedDisplay carries the edit payload fields an AwaitingApproval call
// was showing at the moment it was cancelled, so the UI can still render
// what would have changed.
type PreservedDisplay struct {
	FileDiff        string
	FileName        string
	OriginalContent string
	NewContent      string
}

// Cancelled is terminal: Response carries a cancellation reason.
// PreservedDisplay is non-nil only when the cancelled call was showing an
// Edit confirmation.
type Cancelled struct {
	stateBase
	Response         []response.Part
	PreservedDisplay *PreservedDisplay
	ResultDisplay    string
}

// IsTerminal reports whether s is Success, Error, or Cancelled (I1).
func IsTerminal(s State) bool {
	switch s.(type) {
	case Success, Error, Cancelled:
		return true
	case Validating, AwaitingApproval, Scheduled, Executing:
		return false
	default:
		// A default branch here means a new State variant was added without
		// updating every switch over State in this package. Implementers
		// must assert exhaustiveness rather than silently fall through.
		panic(unexhaustiveStateError(s))
	}
}

// StateName returns a stable, lower-case label for s, used in logging and
// OnTransition notifications.
func StateName(s State) string {
	switch s.(type) {
	case Validating:
		return "validating"
	case AwaitingApproval:
		return "awaiting_approval"
	case Scheduled:
		return "scheduled"
	case Executing:
		return "executing"
	case Success:
		return "success"
	case Error:
		return "error"
	case Cancelled:
		return "cancelled"
	default:
		panic(unexhaustiveStateError(s))
	}
}

func unexhaustiveStateError(s State) string {
	return fmt.Sprintf("scheduler: unhandled State variant in exhaustive switch: %T", s)
}
