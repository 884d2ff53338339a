// Package toolsched implements the tool call scheduler for an interactive
// agent CLI: the concurrent state machine that takes a batch of model-issued
// tool calls, validates and (optionally) confirms each one, executes the
// approved calls, and reports back a canonical batch of function-response
// parts.
//
// # Core Concepts
//
// The scheduler is organized around six collaborating pieces:
//
//   - Tool Registry (package tool): resolves a call's name to a Tool handle.
//   - Invocation Builder (package invocation): validates raw args against a
//     Tool's schema and produces a bound Invocation.
//   - Confirmation Protocol (package confirm): the payload variants and
//     outcome enum a pending ToolCall is resolved with.
//   - Scheduler Core (package scheduler): owns the ToolCall state machine,
//     serialises batches, and emits update/completion notifications.
//   - Execution Engine (package execution): runs approved invocations
//     concurrently and forwards streamed output.
//   - Response Converter (package response): normalises tool output into
//     function-response parts.
//
// # Getting Started
//
// Construct a scheduler with a populated tool registry and an approval
// policy, then submit a batch:
//
//	reg := tool.NewRegistry()
//	reg.Register(echoTool)
//
//	sched := toolsched.New(toolsched.Config{
//		Registry: reg,
//		Policy:   policy.NewStickyPolicy(),
//	})
//
//	batch, err := sched.Schedule(ctx, []types.Request{
//		{CallID: "1", Name: "echo", Args: args},
//	})
//
// # Confirmation
//
// A ToolCall that needs interactive approval surfaces through the
// scheduler's OnUpdate callback in AwaitingApproval; resolve it with:
//
//	sched.HandleConfirmation(callID, confirm.ProceedOnce, nil)
//
// # Cancellation
//
// Cancellation is cooperative: a types.CancelSignal is attached to each
// submission. Tripping it rejects the submission if it is still queued, and
// moves the batch's Executing calls to Cancelled. Calls that are
// AwaitingApproval or Scheduled do not watch the signal; Scheduler.CancelAll
// cancels those along with every other non-terminal call in the active batch.
//
// # Error Handling
//
// Errors never cross the scheduler boundary as Go errors once a ToolCall
// exists — they become a terminal Error state and a function-response part
// with response.error set. See package toolerr for the error-kind taxonomy.
//
// # Observability
//
// The scheduler and execution engine integrate OpenTelemetry for tracing:
//
//	import "go.opentelemetry.io/otel"
//
//	tracer := otel.Tracer("toolsched")
//
// # Thread Safety
//
// A Scheduler is safe for concurrent Schedule/HandleConfirmation/CancelAll
// calls; it serialises batch admission internally.
package toolsched
