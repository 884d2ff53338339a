// Package invocation is the Invocation Builder: it validates raw tool-call
// arguments against a tool.Tool's parameter schema and produces a bound
// tool.Invocation, or a *schema.SchemaError naming the first violated
// constraint. Validation is synchronous and pure; any I/O a tool needs
// happens later, in ShouldConfirmExecute or Execute.
//
// Package invocation depends on package tool, never the reverse, so a tool
// author can implement tool.Tool directly without importing this package —
// FuncTool is a convenience for the common case of a tool whose behavior is
// a single Go function.
package invocation
