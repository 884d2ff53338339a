// Package scheduler is the Scheduler Core (C4): it owns the list of active
// ToolCalls, drives each through its state machine, serialises batches via a
// FIFO queue, and emits update/completion notifications to subscribers.
//
// A Scheduler holds at most one in-flight batch at a time. New submissions
// made while a batch is active are queued and drained in order as soon as
// the active batch reaches completion. Scheduler state is serialised by a
// single mutex; tool executions themselves run concurrently on their own
// goroutines via package execution.
package scheduler
