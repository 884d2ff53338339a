package policy

import "github.com/outpost-run/toolsched/confirm"

// ApprovalPolicy decides, ahead of an Invocation's own ShouldConfirmExecute,
// whether a tool call should skip interactive confirmation altogether — and
// records confirmation outcomes so later decisions can reflect earlier ones
// (spec's "approval-mode upgrade" open question).
type ApprovalPolicy interface {
	// RequiresConfirmation reports whether toolName (invoked through
	// serverName, empty for built-in tools) should still go through
	// AwaitingApproval. Returning false makes the scheduler record
	// ProceedAlways for the call and move it straight to Scheduled, without
	// calling ShouldConfirmExecute or surfacing a confirmation.
	RequiresConfirmation(toolName, serverName string) bool

	// Record is called once a confirmation resolves, so the policy can
	// react to ProceedAlways/ProceedAlwaysTool/ProceedAlwaysServer hints.
	Record(toolName, serverName string, outcome confirm.Outcome)
}

// bypassAll never requires confirmation. Grounds spec scenario 1's
// "approval-mode bypass".
type bypassAll struct{}

// NewBypassPolicy returns a policy that skips confirmation for every call.
func NewBypassPolicy() ApprovalPolicy { return bypassAll{} }

func (bypassAll) RequiresConfirmation(string, string) bool { return false }
func (bypassAll) Record(string, string, confirm.Outcome)   {}

// alwaysConfirm always defers to the invocation's own ShouldConfirmExecute,
// ignoring any ProceedAlways* hints.
type alwaysConfirm struct{}

// NewAlwaysConfirmPolicy returns a policy that never auto-approves.
func NewAlwaysConfirmPolicy() ApprovalPolicy { return alwaysConfirm{} }

func (alwaysConfirm) RequiresConfirmation(string, string) bool { return true }
func (alwaysConfirm) Record(string, string, confirm.Outcome)   {}
