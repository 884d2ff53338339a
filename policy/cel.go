package policy

import (
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/outpost-run/toolsched/confirm"
)

// CELPolicy evaluates a CEL boolean expression over tool_name/server_name to
// decide whether a call requires confirmation, letting an operator declare
// approval rules in configuration instead of Go code. It wraps a
// StickyPolicy so ProceedAlwaysTool/ProceedAlwaysServer hints still apply on
// top of the declarative rule.
type CELPolicy struct {
	sticky  *StickyPolicy
	program cel.Program
}

// NewCELPolicy compiles expr, a CEL expression over the variables
// tool_name and server_name (both string) that must evaluate to a bool:
// true means "requires confirmation". A typical expr is
// `tool_name in ["shell", "edit_file"]` to require confirmation only for
// the named tools and bypass everything else.
func NewCELPolicy(expr string) (*CELPolicy, error) {
	env, err := cel.NewEnv(
		cel.Variable("tool_name", cel.StringType),
		cel.Variable("server_name", cel.StringType),
	)
	if err != nil {
		return nil, fmt.Errorf("policy: building CEL environment: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("policy: compiling CEL expression %q: %w", expr, issues.Err())
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("policy: building CEL program: %w", err)
	}

	return &CELPolicy{sticky: NewStickyPolicy(), program: program}, nil
}

func (p *CELPolicy) RequiresConfirmation(toolName, serverName string) bool {
	if !p.sticky.RequiresConfirmation(toolName, serverName) {
		return false
	}

	out, _, err := p.program.Eval(map[string]any{
		"tool_name":   toolName,
		"server_name": serverName,
	})
	if err != nil {
		// A misbehaving expression fails closed: still confirm.
		return true
	}

	required, ok := out.Value().(bool)
	if !ok {
		return true
	}
	return required
}

func (p *CELPolicy) Record(toolName, serverName string, outcome confirm.Outcome) {
	p.sticky.Record(toolName, serverName, outcome)
}

var _ ApprovalPolicy = (*CELPolicy)(nil)
