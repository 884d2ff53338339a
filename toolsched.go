package toolsched

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/outpost-run/toolsched/confirm"
	"github.com/outpost-run/toolsched/policy"
	"github.com/outpost-run/toolsched/scheduler"
	"github.com/outpost-run/toolsched/tool"
	"github.com/outpost-run/toolsched/types"
)

// Config builds a Scheduler. Registry and Policy are required; everything
// else has the same defaults as package scheduler.
type Config struct {
	Registry *tool.Registry
	Policy   policy.ApprovalPolicy

	Logger       *slog.Logger
	Tracer       trace.Tracer
	Concurrency  int
	DisplayLimit int

	OnUpdate      scheduler.UpdateFunc
	OnAllComplete scheduler.CompleteFunc
	OnTransition  scheduler.TransitionFunc
}

// Scheduler is the package's facade over scheduler.Scheduler: Schedule
// mints a CancelSignal from ctx automatically so callers who don't need
// fine-grained cancellation control don't have to build one by hand.
type Scheduler struct {
	inner *scheduler.Scheduler
}

// New builds a Scheduler from cfg.
func New(cfg Config) *Scheduler {
	var opts []scheduler.Option
	if cfg.Logger != nil {
		opts = append(opts, scheduler.WithLogger(cfg.Logger))
	}
	if cfg.Tracer != nil {
		opts = append(opts, scheduler.WithTracer(cfg.Tracer))
	}
	if cfg.Concurrency > 0 {
		opts = append(opts, scheduler.WithConcurrency(cfg.Concurrency))
	}
	if cfg.DisplayLimit > 0 {
		opts = append(opts, scheduler.WithDisplayLimit(cfg.DisplayLimit))
	}
	if cfg.OnUpdate != nil {
		opts = append(opts, scheduler.WithOnUpdate(cfg.OnUpdate))
	}
	if cfg.OnAllComplete != nil {
		opts = append(opts, scheduler.WithOnAllComplete(cfg.OnAllComplete))
	}
	if cfg.OnTransition != nil {
		opts = append(opts, scheduler.WithOnTransition(cfg.OnTransition))
	}

	return &Scheduler{inner: scheduler.New(cfg.Registry, cfg.Policy, opts...)}
}

// Schedule submits requests as a new batch, deriving its cancellation scope
// from ctx. Blocks until the batch completes or ctx is cancelled.
func (s *Scheduler) Schedule(ctx context.Context, requests []types.Request) ([]scheduler.Snapshot, error) {
	return s.inner.Schedule(ctx, requests, types.NewCancelSignal(ctx))
}

// ScheduleWithCancel is Schedule, but lets the caller supply (and later
// trip) the batch's CancelSignal directly instead of deriving one from ctx.
func (s *Scheduler) ScheduleWithCancel(ctx context.Context, requests []types.Request, cancel *types.CancelSignal) ([]scheduler.Snapshot, error) {
	return s.inner.Schedule(ctx, requests, cancel)
}

// HandleConfirmation resolves an AwaitingApproval call. See
// scheduler.Scheduler.HandleConfirmation.
func (s *Scheduler) HandleConfirmation(callID string, outcome confirm.Outcome, modify *confirm.ModifyPayload) error {
	return s.inner.HandleConfirmation(callID, outcome, modify)
}

// CancelAll cancels every non-terminal call in the active batch.
func (s *Scheduler) CancelAll(reason string) {
	s.inner.CancelAll(reason)
}
