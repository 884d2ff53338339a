package confirm

// Outcome is the wire enum a caller resolves a pending confirmation with.
type Outcome int

const (
	// ProceedOnce approves this single invocation only.
	ProceedOnce Outcome = iota

	// ProceedAlways approves this invocation and hints that future calls to
	// the same tool (any args) should skip confirmation too.
	ProceedAlways

	// ProceedAlwaysTool is identical to ProceedAlways for state purposes; it
	// distinguishes the tool-scoped upgrade hint from the server-scoped one
	// for the surrounding policy layer (see package policy).
	ProceedAlwaysTool

	// ProceedAlwaysServer hints that future calls to every tool behind the
	// same MCP server should skip confirmation.
	ProceedAlwaysServer

	// ModifyWithEditor sends the invocation to an external editor instead of
	// approving or denying it outright.
	ModifyWithEditor

	// Cancel denies the invocation.
	Cancel
)

// String renders the outcome the way it appears in logs and result displays.
func (o Outcome) String() string {
	switch o {
	case ProceedOnce:
		return "proceed_once"
	case ProceedAlways:
		return "proceed_always"
	case ProceedAlwaysTool:
		return "proceed_always_tool"
	case ProceedAlwaysServer:
		return "proceed_always_server"
	case ModifyWithEditor:
		return "modify_with_editor"
	case Cancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// IsProceed reports whether o approves execution (every variant except
// Cancel and ModifyWithEditor, which route to the editor instead of running).
func (o Outcome) IsProceed() bool {
	switch o {
	case ProceedOnce, ProceedAlways, ProceedAlwaysTool, ProceedAlwaysServer:
		return true
	default:
		return false
	}
}

// IsPersistent reports whether o is one of the ProceedAlways* hints that the
// surrounding policy layer may use to upgrade approval mode for future calls.
func (o Outcome) IsPersistent() bool {
	switch o {
	case ProceedAlways, ProceedAlwaysTool, ProceedAlwaysServer:
		return true
	default:
		return false
	}
}
