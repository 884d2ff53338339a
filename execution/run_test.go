package execution

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/outpost-run/toolsched/confirm"
	"github.com/outpost-run/toolsched/tool"
	"github.com/outpost-run/toolsched/types"
)

type fakeInvocation struct {
	execute func(ctx context.Context, cancel *types.CancelSignal, onOutput tool.OutputFunc) (tool.Result, error)
}

func (f fakeInvocation) Tool() tool.Tool      { return nil }
func (f fakeInvocation) Args() map[string]any { return nil }
func (f fakeInvocation) Description() string  { return "fake" }
func (f fakeInvocation) ShouldConfirmExecute(context.Context, *types.CancelSignal) (confirm.Details, error) {
	return nil, nil
}
func (f fakeInvocation) Execute(ctx context.Context, cancel *types.CancelSignal, onOutput tool.OutputFunc) (tool.Result, error) {
	return f.execute(ctx, cancel, onOutput)
}

func testTracer() trace.Tracer { return noop.NewTracerProvider().Tracer("test") }

func TestRunHappyPath(t *testing.T) {
	inv := fakeInvocation{execute: func(context.Context, *types.CancelSignal, tool.OutputFunc) (tool.Result, error) {
		return tool.Result{LLMContent: "ok"}, nil
	}}
	cancel := types.NewCancelSignal(context.Background())

	result, err := Run(context.Background(), testTracer(), "call-1", "echo", inv, cancel, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.LLMContent != "ok" {
		t.Errorf("LLMContent = %v, want ok", result.LLMContent)
	}
}

func TestRunPropagatesToolError(t *testing.T) {
	wantErr := errors.New("boom")
	inv := fakeInvocation{execute: func(context.Context, *types.CancelSignal, tool.OutputFunc) (tool.Result, error) {
		return tool.Result{}, wantErr
	}}
	cancel := types.NewCancelSignal(context.Background())

	_, err := Run(context.Background(), testTracer(), "call-1", "echo", inv, cancel, nil)
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}

func TestRunRecoversPanic(t *testing.T) {
	inv := fakeInvocation{execute: func(context.Context, *types.CancelSignal, tool.OutputFunc) (tool.Result, error) {
		panic("kaboom")
	}}
	cancel := types.NewCancelSignal(context.Background())

	_, err := Run(context.Background(), testTracer(), "call-1", "echo", inv, cancel, nil)
	if err == nil {
		t.Fatal("expected an error recovered from the panic")
	}
}

func TestRunCancellationRacesCompletion(t *testing.T) {
	started := make(chan struct{})
	inv := fakeInvocation{execute: func(ctx context.Context, cancel *types.CancelSignal, _ tool.OutputFunc) (tool.Result, error) {
		close(started)
		<-ctx.Done()
		time.Sleep(50 * time.Millisecond)
		return tool.Result{LLMContent: "too late"}, nil
	}}
	cancel := types.NewCancelSignal(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := Run(context.Background(), testTracer(), "call-1", "echo", inv, cancel, nil)
		done <- err
	}()

	<-started
	cancel.Cancel("cancelled by test")

	select {
	case err := <-done:
		if err == nil {
			t.Error("expected a cancellation error")
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return promptly after cancellation")
	}
}
