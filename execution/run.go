package execution

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/outpost-run/toolsched/tool"
	"github.com/outpost-run/toolsched/types"
)

// PanicError is returned by Run when inv.Execute panics instead of
// returning an error. Callers can type-assert it to classify the failure
// as unhandled rather than a reported execution failure.
type PanicError struct {
	ToolName string
	Value    any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("tool %s panicked: %v", e.ToolName, e.Value)
}

// Run executes inv on its own goroutine and returns once it completes or
// cancel fires, whichever happens first. A panic inside inv.Execute is
// recovered and returned as an error rather than propagated, so one
// misbehaving tool can't take the process down.
func Run(ctx context.Context, tracer trace.Tracer, callID, toolName string, inv tool.Invocation, cancel *types.CancelSignal, onOutput tool.OutputFunc) (tool.Result, error) {
	spanCtx, span := tracer.Start(ctx, "toolsched.execute",
		trace.WithAttributes(
			attribute.String("call_id", callID),
			attribute.String("tool", toolName),
		),
	)
	defer span.End()

	type outcome struct {
		result tool.Result
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: &PanicError{ToolName: toolName, Value: r}}
			}
		}()
		result, err := inv.Execute(spanCtx, cancel, onOutput)
		done <- outcome{result: result, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			span.RecordError(out.err)
			span.SetStatus(codes.Error, out.err.Error())
		}
		return out.result, out.err
	case <-cancel.Done():
		span.SetStatus(codes.Error, "cancelled")
		return tool.Result{}, context.Cause(cancel.Context())
	}
}
