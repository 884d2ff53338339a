// Package confirm defines the confirmation protocol attached to a ToolCall
// while it sits in AwaitingApproval: the payload variants a tool can ask the
// user to review (Edit, Shell, Info, McpServer), the outcome values a caller
// resolves a confirmation with, and the IDEResolution hook an Edit payload
// can carry. The first-write-wins guard between a user's and an IDE's answer
// is not here: it is ToolCall.tryResolve in package scheduler.
//
// Payloads are a closed sum type: Details is implemented only by the four
// variants declared here. Callers type-switch on the concrete type to render
// the appropriate dialog.
package confirm
