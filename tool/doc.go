// Package tool defines the Tool Registry: the Tool and Invocation interfaces
// the scheduler drives a ToolCall through, plus Registry, the process-lifetime
// name-to-handle map tool calls are resolved against.
//
// # Core Concepts
//
// Tool is a named, immutable capability: a parameter schema, a pair of
// capability flags (CanUpdateOutput, IsModifiable), and a Build method that
// turns raw, unstructured arguments into a validated Invocation.
//
// Invocation is a validated binding of a Tool to specific arguments. It
// exposes ShouldConfirmExecute, for deciding whether a ToolCall needs
// interactive approval, and Execute, for running it.
//
// Registry resolves tool names to Tool handles for the Scheduler. Tool
// construction (schema validation, the funcTool convenience builder) lives
// in package invocation, which depends on this package rather than the
// reverse.
//
// # Usage
//
// Building a registry and resolving a call:
//
//	reg := tool.NewRegistry()
//	if err := reg.Register(echoTool); err != nil {
//		log.Fatal(err)
//	}
//
//	t, ok := reg.Get("echo")
//	if !ok {
//		// ToolNotRegistered
//	}
//
//	inv, schemaErr := t.Build(map[string]any{"message": "hi"})
//	if schemaErr != nil {
//		// InvalidToolParams
//	}
//
// # Thread Safety
//
// Tool instances are immutable after construction and safe for concurrent
// use; Registry is safe for concurrent Register/Get/List.
package tool
