package types

import (
	"google.golang.org/protobuf/types/known/structpb"
)

// Request is the wire shape a caller submits to the scheduler (spec §6).
// CallID is minted by the producer of the request (the model streaming
// layer in the real system); the scheduler never generates it.
type Request struct {
	// CallID uniquely identifies this tool call across the process.
	CallID string

	// Name is the registry key the scheduler resolves against the Tool Registry.
	Name string

	// Args is the tool-defined, unstructured input. It stays a
	// *structpb.Struct end to end — the same "unstructured mapping until
	// validated" shape spec §3 describes for request.args — so it survives a
	// JSON round trip without a bespoke schema per tool.
	Args *structpb.Struct

	// PromptID is an opaque correlation id for observability; the scheduler
	// passes it through untouched.
	PromptID string
}

// ArgsMap decodes Args into a plain Go map for validation and tool
// execution. Returns an empty, non-nil map if Args is nil.
func (r Request) ArgsMap() map[string]any {
	if r.Args == nil {
		return map[string]any{}
	}
	return r.Args.AsMap()
}

// NewArgs builds a *structpb.Struct from a plain Go map. Returns an error if
// m contains a value structpb cannot represent (non-JSON-shaped data).
func NewArgs(m map[string]any) (*structpb.Struct, error) {
	if m == nil {
		return structpb.NewStruct(map[string]any{})
	}
	return structpb.NewStruct(m)
}
