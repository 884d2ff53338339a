package tool

import (
	"context"

	"github.com/outpost-run/toolsched/confirm"
	"github.com/outpost-run/toolsched/schema"
	"github.com/outpost-run/toolsched/types"
)

// Tool is the interface the Tool Registry resolves invocations against.
// Implementations are expected to be immutable and safe for concurrent use —
// the scheduler may call Build on the same Tool from many goroutines for
// different ToolCalls at once.
type Tool interface {
	// Name is the exact registry key; lookup is by exact name, no fuzzy match.
	Name() string

	// DisplayName is a short human-facing label, distinct from Name so a
	// registry key like "edit_file" can render as "Edit File".
	DisplayName() string

	// Description explains what the tool does, shown to the model and to
	// confirmation dialogs.
	Description() string

	// ParameterSchema is the contract raw args are validated against before
	// an Invocation is built.
	ParameterSchema() schema.JSON

	// CanUpdateOutput reports whether Execute streams incremental chunks
	// through the live-output callback.
	CanUpdateOutput() bool

	// IsModifiable reports whether invocations of this tool support
	// in-editor modification.
	IsModifiable() bool

	// Build validates rawArgs against ParameterSchema and any tool-specific
	// constraints, returning a bound Invocation. Build is synchronous and
	// pure; any I/O needed to decide whether to execute happens later, in
	// ShouldConfirmExecute or Execute.
	Build(rawArgs map[string]any) (Invocation, *schema.SchemaError)
}

// Invocation is a validated binding of a Tool to specific arguments.
type Invocation interface {
	// Tool returns the bound tool handle. ToolCalls reference their tool by
	// this handle, not by ownership — the registry owns tools for the
	// process lifetime.
	Tool() Tool

	// Args returns the validated arguments this invocation was built from.
	Args() map[string]any

	// Description returns a deterministic, human-readable summary of what
	// executing this invocation will do.
	Description() string

	// ShouldConfirmExecute decides whether this invocation needs interactive
	// approval before running. Returning (nil, nil) means no confirmation is
	// needed. It may perform I/O (e.g. checking whether a file already
	// matches the proposed edit).
	ShouldConfirmExecute(ctx context.Context, cancel *types.CancelSignal) (confirm.Details, error)

	// Execute runs the invocation. onOutput, if non-nil, is called once per
	// streamed chunk in source order. The scheduler passes a non-nil
	// onOutput to every invocation it runs; it does not check
	// Tool().CanUpdateOutput() or whether anyone observes the output.
	Execute(ctx context.Context, cancel *types.CancelSignal, onOutput OutputFunc) (Result, error)
}

// OutputFunc receives one streamed output chunk at a time.
type OutputFunc func(chunk string)

// Result is the raw outcome of Invocation.Execute, before the response
// converter canonicalises it into function-response parts.
type Result struct {
	// LLMContent is a string, a single Part, or an ordered []Part.
	LLMContent any

	// ReturnDisplay is a human-facing rendering of the result (diff, command
	// output, summary) used to populate the ToolCall's result display.
	ReturnDisplay string
}

// ModifyContext lets the scheduler rebuild an invocation's arguments after
// an in-dialog edit.
type ModifyContext interface {
	// CurrentContent returns the on-disk (or otherwise live) content the
	// proposed change would apply against.
	CurrentContent(ctx context.Context) (string, error)

	// UpdatedParams synthesises new invocation arguments from the current
	// content, the user-supplied replacement content, and the original
	// arguments.
	UpdatedParams(current, newContent string, originalArgs map[string]any) (map[string]any, error)
}

// ModifiableInvocation is the optional interface an Invocation implements
// when Tool().IsModifiable() is true. Kept as a type-assertable capability
// rather than a required method so plain, non-modifiable invocations don't
// need a no-op implementation.
type ModifiableInvocation interface {
	Invocation
	GetModifyContext() ModifyContext
}

// GetModifyContext retrieves inv's ModifyContext if it implements
// ModifiableInvocation. ok is false for any other Invocation.
func GetModifyContext(inv Invocation) (modifyCtx ModifyContext, ok bool) {
	m, ok := inv.(ModifiableInvocation)
	if !ok {
		return nil, false
	}
	return m.GetModifyContext(), true
}

// Descriptor is a metadata snapshot of a Tool, without its execution logic —
// the shape a registry listing or a confirmation dialog renders.
type Descriptor struct {
	Name            string      `json:"name"`
	DisplayName     string      `json:"display_name"`
	Description     string      `json:"description"`
	ParameterSchema schema.JSON `json:"parameter_schema"`
	CanUpdateOutput bool        `json:"can_update_output"`
	IsModifiable    bool        `json:"is_modifiable"`
}

// ToDescriptor extracts t's metadata without its execution logic.
func ToDescriptor(t Tool) Descriptor {
	return Descriptor{
		Name:            t.Name(),
		DisplayName:     t.DisplayName(),
		Description:     t.Description(),
		ParameterSchema: t.ParameterSchema(),
		CanUpdateOutput: t.CanUpdateOutput(),
		IsModifiable:    t.IsModifiable(),
	}
}
