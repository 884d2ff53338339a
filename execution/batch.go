package execution

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/trace"

	"github.com/outpost-run/toolsched/tool"
	"github.com/outpost-run/toolsched/types"
)

// Job is one invocation queued for concurrent execution as part of a batch.
type Job struct {
	CallID     string
	ToolName   string
	Invocation tool.Invocation
	Cancel     *types.CancelSignal
	OnOutput   tool.OutputFunc
}

// Result pairs a Job's outcome back to its CallID.
type Result struct {
	CallID string
	Result tool.Result
	Err    error
}

// RunBatch runs every job concurrently, bounded by concurrency in-flight at
// once (0 or negative means unbounded). Results are delivered to onResult as
// each job finishes, in completion order rather than submission order —
// callers that need submission order should key off Result.CallID.
func RunBatch(ctx context.Context, tracer trace.Tracer, jobs []Job, concurrency int, onResult func(Result)) {
	var wg sync.WaitGroup

	var sem chan struct{}
	if concurrency > 0 {
		sem = make(chan struct{}, concurrency)
	}

	for _, job := range jobs {
		job := job
		wg.Add(1)

		run := func() {
			defer wg.Done()
			result, err := Run(ctx, tracer, job.CallID, job.ToolName, job.Invocation, job.Cancel, job.OnOutput)
			onResult(Result{CallID: job.CallID, Result: result, Err: err})
		}

		if sem == nil {
			go run()
			continue
		}

		go func() {
			sem <- struct{}{}
			defer func() { <-sem }()
			run()
		}()
	}

	wg.Wait()
}
