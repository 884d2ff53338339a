// Package policy supplies the pluggable approval-mode layer the scheduler
// consults before surfacking a ToolCall's confirmation. The source this
// system was built from pairs ProceedAlwaysTool/ProceedAlwaysServer hints
// with an approval-mode upgrade that skips confirmation for future calls;
// this package records that decision as an ApprovalPolicy rather than a
// process-wide singleton.
//
// NewStickyPolicy is the in-memory default: once a confirmation resolves
// with ProceedAlways or ProceedAlwaysTool (future calls to the same tool)
// or ProceedAlwaysServer (future calls through the same MCP server), those
// calls skip confirmation for the lifetime of the
// policy instance. NewCELPolicy lets an operator express the same decision
// declaratively, for deployments that want to configure approval rules
// without recompiling.
package policy
