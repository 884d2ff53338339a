package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pmezard/go-difflib/difflib"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/outpost-run/toolsched/confirm"
	"github.com/outpost-run/toolsched/execution"
	"github.com/outpost-run/toolsched/policy"
	"github.com/outpost-run/toolsched/response"
	"github.com/outpost-run/toolsched/tool"
	"github.com/outpost-run/toolsched/toolerr"
	"github.com/outpost-run/toolsched/types"
)

// ErrNotFound is returned by HandleConfirmation when call_id names no
// currently AwaitingApproval call (it may never have existed, already be
// resolved, or have lost the IDE-resolution race).
var ErrNotFound = errors.New("scheduler: no matching awaiting-approval call")

const defaultDisplayLimit = 32 * 1024

// UpdateFunc is invoked on every state change or live-output mutation
// within a batch (spec §4.4 on_update).
type UpdateFunc func(batchID string, calls []Snapshot)

// CompleteFunc is invoked exactly once per batch, after every ToolCall in
// it has reached a terminal state (spec §4.4 on_all_complete).
type CompleteFunc func(batchID string, calls []Snapshot)

// TransitionFunc is an additional per-call observability hook (supplements
// the coarser on_update/on_all_complete pair).
type TransitionFunc func(callID, from, to string)

// Option configures a Scheduler at construction time.
type Option func(*Scheduler)

func WithLogger(l *slog.Logger) Option          { return func(s *Scheduler) { s.logger = l } }
func WithTracer(t trace.Tracer) Option          { return func(s *Scheduler) { s.tracer = t } }
func WithOnUpdate(fn UpdateFunc) Option         { return func(s *Scheduler) { s.onUpdate = fn } }
func WithOnAllComplete(fn CompleteFunc) Option  { return func(s *Scheduler) { s.onAllComplete = fn } }
func WithOnTransition(fn TransitionFunc) Option { return func(s *Scheduler) { s.onTransition = fn } }
func WithConcurrency(n int) Option              { return func(s *Scheduler) { s.concurrency = n } }
func WithDisplayLimit(n int) Option             { return func(s *Scheduler) { s.displayLimit = n } }

// Scheduler is the Scheduler Core (C4). Zero value is not usable; build one
// with New.
type Scheduler struct {
	registry *tool.Registry
	policy   policy.ApprovalPolicy
	tracer   trace.Tracer
	logger   *slog.Logger

	concurrency  int
	displayLimit int

	onUpdate      UpdateFunc
	onAllComplete CompleteFunc
	onTransition  TransitionFunc

	mu     sync.Mutex
	active *activeBatch
	queue  []*submission
}

// New builds a Scheduler backed by registry and approvalPolicy.
func New(registry *tool.Registry, approvalPolicy policy.ApprovalPolicy, opts ...Option) *Scheduler {
	s := &Scheduler{
		registry:     registry,
		policy:       approvalPolicy,
		tracer:       noop.NewTracerProvider().Tracer("toolsched/scheduler"),
		logger:       slog.New(slog.NewJSONHandler(os.Stdout, nil)),
		concurrency:  8,
		displayLimit: defaultDisplayLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type submission struct {
	requests  []types.Request
	cancel    *types.CancelSignal
	resultCh  chan batchOutcome
	activated chan struct{}
}

type batchOutcome struct {
	snapshots []Snapshot
	err       error
}

type activeBatch struct {
	id       string
	calls    []*ToolCall
	cancel   *types.CancelSignal
	resultCh chan batchOutcome

	dispatched bool
	running    int
}

// Schedule introduces a new batch built from requests. If another batch is
// already in flight, the submission is enqueued FIFO and Schedule blocks
// until its turn comes up and that batch completes (I5, P5). Returns the
// terminal snapshot of every call in the batch.
func (s *Scheduler) Schedule(ctx context.Context, requests []types.Request, cancel *types.CancelSignal) ([]Snapshot, error) {
	sub := &submission{
		requests:  requests,
		cancel:    cancel,
		resultCh:  make(chan batchOutcome, 1),
		activated: make(chan struct{}),
	}

	s.mu.Lock()
	if s.active == nil {
		s.startBatchLocked(sub)
		s.mu.Unlock()
	} else {
		s.queue = append(s.queue, sub)
		s.mu.Unlock()
		go s.watchQueued(sub)
	}

	select {
	case out := <-sub.resultCh:
		return out.snapshots, out.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// watchQueued rejects a queued submission with CancelledInQueue the instant
// its cancel signal fires, provided it hasn't already been activated.
func (s *Scheduler) watchQueued(sub *submission) {
	select {
	case <-sub.cancel.Done():
		s.mu.Lock()
		removed := false
		for i, q := range s.queue {
			if q == sub {
				s.queue = append(s.queue[:i], s.queue[i+1:]...)
				removed = true
				break
			}
		}
		s.mu.Unlock()
		if removed {
			sub.resultCh <- batchOutcome{
				err: toolerr.NewKind("", "schedule", toolerr.KindCancelledInQueue, "submission cancelled while queued"),
			}
		}
	case <-sub.activated:
	}
}

// startBatchLocked promotes sub to the active batch and builds every
// ToolCall in it. Must be called with s.mu held; returns with s.mu still
// held.
func (s *Scheduler) startBatchLocked(sub *submission) {
	close(sub.activated)

	batch := &activeBatch{
		id:       uuid.NewString(),
		cancel:   sub.cancel,
		resultCh: sub.resultCh,
	}
	s.active = batch

	for _, req := range sub.requests {
		batch.calls = append(batch.calls, s.buildCallLocked(batch, req))
	}

	s.emitUpdateLocked()
	s.maybeDispatchLocked()
}

// buildCallLocked resolves req against the registry and drives it to
// Validating's immediate successor: Error (unregistered tool / bad params),
// Scheduled (no confirmation needed), or AwaitingApproval.
func (s *Scheduler) buildCallLocked(batch *activeBatch, req types.Request) *ToolCall {
	call := &ToolCall{
		CallID:  req.CallID,
		Request: req,
		cancel:  batch.cancel,
		State:   Validating{},
	}

	t, ok := s.registry.Get(req.Name)
	if !ok {
		s.failCallLocked(call, toolerr.KindToolNotRegistered, fmt.Sprintf("tool %q is not registered", req.Name))
		return call
	}
	call.Tool = t

	inv, schemaErr := t.Build(req.ArgsMap())
	if schemaErr != nil {
		s.failCallLocked(call, toolerr.KindInvalidToolParams, schemaErr.Error())
		return call
	}
	call.Invocation = inv
	call.StartTime = time.Now()

	if !s.policy.RequiresConfirmation(req.Name, "") {
		s.approveWithoutConfirmationLocked(call)
		return call
	}

	details, err := inv.ShouldConfirmExecute(context.Background(), batch.cancel)
	if err != nil {
		s.failCallLocked(call, toolerr.KindUnhandledException, err.Error())
		return call
	}
	if details == nil {
		s.approveWithoutConfirmationLocked(call)
		return call
	}
	if serverName := mcpServerName(details); serverName != "" && !s.policy.RequiresConfirmation(req.Name, serverName) {
		s.approveWithoutConfirmationLocked(call)
		return call
	}

	s.transitionLocked(call, AwaitingApproval{Details: details})
	return call
}

func (s *Scheduler) approveWithoutConfirmationLocked(call *ToolCall) {
	call.Outcome.recordOutcome(confirm.ProceedAlways)
	s.transitionLocked(call, Scheduled{})
}

func mcpServerName(d confirm.Details) string {
	if m, ok := d.(*confirm.McpServer); ok {
		return m.ServerName
	}
	return ""
}

// failCallLocked transitions call straight to a terminal Error built from
// kind/message (I3: every terminal state carries a matching
// function-response part).
func (s *Scheduler) failCallLocked(call *ToolCall, kind toolerr.ErrorKind, message string) {
	parts := []response.Part{{FunctionResponse: &response.FunctionResponsePart{
		ID:       call.CallID,
		Name:     call.Request.Name,
		Response: response.ErrorResponse(message),
	}}}
	s.transitionLocked(call, Error{Response: parts, Kind: kind, ResultDisplay: s.truncate(message)})
}

// truncate caps a result_display string at the scheduler's display limit,
// matching the original's terminal-output safeguard. Only the display
// string is truncated; the function-response part a model sees is never
// cut.
func (s *Scheduler) truncate(display string) string {
	if s.displayLimit <= 0 || len(display) <= s.displayLimit {
		return display
	}
	return fmt.Sprintf("%s... (%d bytes truncated)", display[:s.displayLimit], len(display)-s.displayLimit)
}

// transitionLocked applies next to call, honoring I1, and fires
// OnTransition. Entering AwaitingApproval with an Edit payload that carries
// an IDEResolution attaches the race-losing listener described in spec §9
// "IDE-resolution race". Must be called with s.mu held.
func (s *Scheduler) transitionLocked(call *ToolCall, next State) {
	from := "created"
	if call.State != nil {
		from = StateName(call.State)
	}
	call.transition(next)
	if s.onTransition != nil {
		s.onTransition(call.CallID, from, StateName(call.State))
	}

	if awaiting, ok := next.(AwaitingApproval); ok {
		if edit, ok := awaiting.Details.(*confirm.Edit); ok && edit.IDEResolution != nil {
			s.watchIDEResolution(edit, call.CallID)
		}
	}
}

// watchIDEResolution waits for the IDE's out-of-band answer and feeds it
// through the normal HandleConfirmation path, which arbitrates against a
// concurrent interactive answer via ToolCall.tryResolve (first write wins).
func (s *Scheduler) watchIDEResolution(edit *confirm.Edit, callID string) {
	go func() {
		res, ok := <-edit.IDEResolution.Chan()
		if !ok {
			return
		}
		outcome := confirm.Cancel
		if res == confirm.Accepted {
			outcome = confirm.ProceedOnce
		}
		_ = s.HandleConfirmation(callID, outcome, nil)
	}()
}

// HandleConfirmation drives call_id's response to an AwaitingApproval
// decision per spec §4.3.
func (s *Scheduler) HandleConfirmation(callID string, outcome confirm.Outcome, modify *confirm.ModifyPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	call := s.findActiveCallLocked(callID)
	if call == nil {
		return ErrNotFound
	}
	awaiting, ok := call.State.(AwaitingApproval)
	if !ok {
		return ErrNotFound
	}
	if !call.tryResolve() {
		return ErrNotFound
	}

	switch outcome {
	case confirm.Cancel:
		s.cancelAwaitingLocked(call, awaiting, "User did not allow tool call")
	case confirm.ModifyWithEditor:
		call.resolved = false
		s.transitionLocked(call, AwaitingApproval{Details: awaiting.Details, IsModifying: true})
	default:
		call.Outcome.recordOutcome(outcome)
		s.policy.Record(call.Request.Name, mcpServerName(awaiting.Details), outcome)

		if modify != nil && modify.NewContent != "" {
			if err := s.applyInlineModifyLocked(call, awaiting, modify); err != nil {
				s.failCallLocked(call, toolerr.KindInvalidToolParams, err.Error())
				break
			}
		}
		s.transitionLocked(call, Scheduled{})
	}

	if err := awaiting.Details.OnConfirm(outcome, modify); err != nil {
		s.logger.Error("confirmation callback failed", "call_id", callID, "error", err)
	}

	s.emitUpdateLocked()
	s.maybeDispatchLocked()
	return nil
}

// applyInlineModifyLocked rebuilds call's invocation from the edited
// content per spec §4.3 "Inline modify".
func (s *Scheduler) applyInlineModifyLocked(call *ToolCall, awaiting AwaitingApproval, modify *confirm.ModifyPayload) error {
	modifyCtx, ok := tool.GetModifyContext(call.Invocation)
	if !ok {
		return nil
	}

	current, err := modifyCtx.CurrentContent(context.Background())
	if err != nil {
		return fmt.Errorf("reading current content: %w", err)
	}

	updatedArgs, err := modifyCtx.UpdatedParams(current, modify.NewContent, call.Invocation.Args())
	if err != nil {
		return fmt.Errorf("computing updated params: %w", err)
	}

	rebuilt, schemaErr := call.Invocation.Tool().Build(updatedArgs)
	if schemaErr != nil {
		return schemaErr
	}
	call.Invocation = rebuilt

	if edit, ok := awaiting.Details.(*confirm.Edit); ok {
		edit.NewContent = modify.NewContent
		edit.FileDiff = unifiedDiff(edit.FileName, edit.OriginalContent, modify.NewContent)
	}
	return nil
}

func unifiedDiff(fileName, original, updated string) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(updated),
		FromFile: fileName,
		ToFile:   fileName,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return ""
	}
	return text
}

// cancelAwaitingLocked transitions an AwaitingApproval call to Cancelled,
// preserving its Edit display if it had one (spec §4.4
// "Cancelled-edit display preservation").
func (s *Scheduler) cancelAwaitingLocked(call *ToolCall, awaiting AwaitingApproval, reason string) {
	call.Outcome.recordOutcome(confirm.Cancel)

	var preserved *PreservedDisplay
	if edit, ok := awaiting.Details.(*confirm.Edit); ok {
		preserved = &PreservedDisplay{
			FileDiff:        edit.FileDiff,
			FileName:        edit.FileName,
			OriginalContent: edit.OriginalContent,
			NewContent:      edit.NewContent,
		}
	}

	display := "[Operation Cancelled] Reason: " + reason
	parts := []response.Part{{FunctionResponse: &response.FunctionResponsePart{
		ID:       call.CallID,
		Name:     call.Request.Name,
		Response: response.ErrorResponse(display),
	}}}
	s.transitionLocked(call, Cancelled{Response: parts, PreservedDisplay: preserved, ResultDisplay: s.truncate(display)})
}

func (s *Scheduler) findActiveCallLocked(callID string) *ToolCall {
	if s.active == nil {
		return nil
	}
	for _, c := range s.active.calls {
		if c.CallID == callID {
			return c
		}
	}
	return nil
}

// CancelAll transitions every non-terminal call in the active batch to
// Cancelled with reason and trips the batch's cancel signal. Calls already
// Executing are moved to Cancelled by the execution path once Run returns,
// with the reason "User cancelled tool execution." A no-op if no batch is
// active.
func (s *Scheduler) CancelAll(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return
	}
	s.active.cancel.Cancel(reason)

	for _, call := range s.active.calls {
		switch st := call.State.(type) {
		case AwaitingApproval:
			s.cancelAwaitingLocked(call, st, reason)
		case Validating, Scheduled:
			display := "[Operation Cancelled] Reason: " + reason
			parts := []response.Part{{FunctionResponse: &response.FunctionResponsePart{
				ID:       call.CallID,
				Name:     call.Request.Name,
				Response: response.ErrorResponse(display),
			}}}
			call.Outcome.recordOutcome(confirm.Cancel)
			s.transitionLocked(call, Cancelled{Response: parts, ResultDisplay: s.truncate(display)})
		case Executing:
			// Already dispatched: execution.Run races cancel.Done() itself
			// and the RunBatch completion handler will transition this
			// call once Run returns.
		}
	}

	s.emitUpdateLocked()
	s.maybeFinalizeLocked()
}

// maybeDispatchLocked advances the active batch's Scheduled calls to
// Executing once every non-terminal call in it is Scheduled (batch
// readiness, spec §4.3). Must be called with s.mu held.
func (s *Scheduler) maybeDispatchLocked() {
	batch := s.active
	if batch == nil || batch.dispatched {
		s.maybeFinalizeLocked()
		return
	}

	var jobs []execution.Job
	for _, call := range batch.calls {
		switch call.State.(type) {
		case Scheduled:
			jobs = append(jobs, s.jobForLocked(batch, call))
		case Validating, AwaitingApproval:
			return // not ready: some call is still awaiting a decision
		}
	}
	if len(jobs) == 0 {
		s.maybeFinalizeLocked()
		return
	}

	batch.dispatched = true
	batch.running = len(jobs)
	for _, call := range batch.calls {
		if _, ok := call.State.(Scheduled); ok {
			s.transitionLocked(call, Executing{})
		}
	}
	s.emitUpdateLocked()

	go execution.RunBatch(context.Background(), s.tracer, jobs, s.concurrency, func(result execution.Result) {
		s.onJobResult(batch, result)
	})
}

func (s *Scheduler) jobForLocked(batch *activeBatch, call *ToolCall) execution.Job {
	return execution.Job{
		CallID:     call.CallID,
		ToolName:   call.Request.Name,
		Invocation: call.Invocation,
		Cancel:     batch.cancel,
		OnOutput: func(chunk string) {
			s.onLiveOutput(batch, call.CallID, chunk)
		},
	}
}

func (s *Scheduler) onLiveOutput(batch *activeBatch, callID, chunk string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != batch {
		return
	}
	for _, call := range batch.calls {
		if call.CallID != callID {
			continue
		}
		if _, ok := call.State.(Executing); ok {
			call.State = Executing{LiveOutput: chunk}
		}
		break
	}
	s.emitUpdateLocked()
}

// onJobResult is the execution.RunBatch completion callback for one call.
func (s *Scheduler) onJobResult(batch *activeBatch, result execution.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != batch {
		return
	}

	var call *ToolCall
	for _, c := range batch.calls {
		if c.CallID == result.CallID {
			call = c
			break
		}
	}
	if call == nil {
		return
	}

	switch {
	case call.cancel.Fired():
		const display = "[Operation Cancelled] Reason: User cancelled tool execution."
		parts := []response.Part{{FunctionResponse: &response.FunctionResponsePart{
			ID:       call.CallID,
			Name:     call.Request.Name,
			Response: response.ErrorResponse(display),
		}}}
		call.Outcome.recordOutcome(confirm.Cancel)
		s.transitionLocked(call, Cancelled{Response: parts, ResultDisplay: display})
	case result.Err != nil:
		kind := toolerr.KindExecutionFailed
		var panicErr *execution.PanicError
		if errors.As(result.Err, &panicErr) {
			kind = toolerr.KindUnhandledException
		}
		s.failCallLocked(call, kind, result.Err.Error())
	default:
		parts := response.Convert(call.CallID, call.Request.Name, result.Result.LLMContent)
		s.transitionLocked(call, Success{Response: parts, ResultDisplay: s.truncate(result.Result.ReturnDisplay)})
	}

	batch.running--
	s.emitUpdateLocked()
	s.maybeFinalizeLocked()
}

// maybeFinalizeLocked delivers on_all_complete once every call in the
// active batch is terminal, then drains the next queued submission (P1).
func (s *Scheduler) maybeFinalizeLocked() {
	batch := s.active
	if batch == nil {
		return
	}
	for _, c := range batch.calls {
		if !IsTerminal(c.State) {
			return
		}
	}

	snapshots := snapshotsOf(batch.calls)
	if s.onAllComplete != nil {
		s.onAllComplete(batch.id, snapshots)
	}
	batch.resultCh <- batchOutcome{snapshots: snapshots}

	s.active = nil
	if len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		s.startBatchLocked(next)
	}
}

func (s *Scheduler) emitUpdateLocked() {
	if s.onUpdate == nil || s.active == nil {
		return
	}
	s.onUpdate(s.active.id, snapshotsOf(s.active.calls))
}

func snapshotsOf(calls []*ToolCall) []Snapshot {
	out := make([]Snapshot, len(calls))
	for i, c := range calls {
		out[i] = snapshot(c)
	}
	return out
}
