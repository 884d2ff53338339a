package policy

import "testing"

import "github.com/outpost-run/toolsched/confirm"

func TestBypassPolicyNeverConfirms(t *testing.T) {
	p := NewBypassPolicy()
	if p.RequiresConfirmation("shell", "") {
		t.Error("expected bypass policy to never require confirmation")
	}
}

func TestAlwaysConfirmPolicyIgnoresHints(t *testing.T) {
	p := NewAlwaysConfirmPolicy()
	p.Record("shell", "", confirm.ProceedAlwaysTool)
	if !p.RequiresConfirmation("shell", "") {
		t.Error("expected always-confirm policy to still require confirmation")
	}
}

func TestStickyPolicyUpgradesOnProceedAlwaysTool(t *testing.T) {
	p := NewStickyPolicy()
	if !p.RequiresConfirmation("shell", "") {
		t.Fatal("expected confirmation required before any resolution")
	}

	p.Record("shell", "", confirm.ProceedAlwaysTool)
	if p.RequiresConfirmation("shell", "") {
		t.Error("expected confirmation to be skipped after ProceedAlwaysTool")
	}
	if !p.RequiresConfirmation("other_tool", "") {
		t.Error("expected the upgrade to stay scoped to the recorded tool")
	}
}

func TestStickyPolicyUpgradesOnProceedAlwaysServer(t *testing.T) {
	p := NewStickyPolicy()
	p.Record("remote_tool", "acme-mcp", confirm.ProceedAlwaysServer)

	if p.RequiresConfirmation("remote_tool", "acme-mcp") {
		t.Error("expected confirmation to be skipped for the recorded server")
	}
	if !p.RequiresConfirmation("remote_tool", "other-mcp") {
		t.Error("expected the upgrade to stay scoped to the recorded server")
	}
}

func TestStickyPolicyIgnoresProceedOnce(t *testing.T) {
	p := NewStickyPolicy()
	p.Record("shell", "", confirm.ProceedOnce)
	if !p.RequiresConfirmation("shell", "") {
		t.Error("expected ProceedOnce to not persist across calls")
	}
}

func TestCELPolicyScopesByExpression(t *testing.T) {
	p, err := NewCELPolicy(`tool_name == "shell"`)
	if err != nil {
		t.Fatalf("NewCELPolicy: %v", err)
	}

	if !p.RequiresConfirmation("shell", "") {
		t.Error("expected shell to require confirmation per the expression")
	}
	if p.RequiresConfirmation("read_file", "") {
		t.Error("expected read_file to bypass confirmation per the expression")
	}
}

func TestCELPolicyInvalidExpression(t *testing.T) {
	if _, err := NewCELPolicy("tool_name ==="); err == nil {
		t.Error("expected an error compiling an invalid CEL expression")
	}
}
