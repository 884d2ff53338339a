// Command toolsched-demo drives a Scheduler against a handful of built-in
// tools from the command line, printing each call's snapshot as it settles
// and prompting on stdin whenever a call reaches AwaitingApproval.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/outpost-run/toolsched"
	"github.com/outpost-run/toolsched/confirm"
	"github.com/outpost-run/toolsched/eventbus"
	"github.com/outpost-run/toolsched/policy"
	"github.com/outpost-run/toolsched/scheduler"
	"github.com/outpost-run/toolsched/telemetry"
	"github.com/outpost-run/toolsched/tool"
	"github.com/outpost-run/toolsched/types"
)

func main() {
	configPath := flag.String("config", "", "path to toolsched-demo.yaml")
	message := flag.String("echo", "hello from toolsched", "message argument for the echo call")
	command := flag.String("shell", "", "shell command to run alongside the echo call, if set")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		logger.Error("loading config", "error", err)
		os.Exit(1)
	}

	registry, err := buildRegistry(cfg)
	if err != nil {
		logger.Error("building registry", "error", err)
		os.Exit(1)
	}

	approvalPolicy, err := buildPolicy(cfg.ApprovalMode)
	if err != nil {
		logger.Error("building policy", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracerProvider, err := telemetry.NewProvider(ctx, telemetry.Config{ServiceName: "toolsched-demo"})
	if err != nil {
		logger.Error("building tracer provider", "error", err)
		os.Exit(1)
	}
	defer tracerProvider.Shutdown(ctx)

	var bus eventbus.Client
	if cfg.EventBus != nil {
		client, err := eventbus.NewRedisClient(eventbus.RedisOptions{URL: cfg.EventBus.URL})
		if err != nil {
			logger.Error("connecting event bus", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		bus = client
	}

	sched := toolsched.New(toolsched.Config{
		Registry:     registry,
		Policy:       approvalPolicy,
		Logger:       logger,
		Tracer:       tracerProvider.Tracer("toolsched-demo"),
		Concurrency:  cfg.Concurrency,
		DisplayLimit: cfg.DisplayLimitBytes,
		OnUpdate:     onUpdate(logger, bus, cfg),
	})

	requests := buildRequests(*message, *command)

	go promptForConfirmations(ctx, sched, logger)

	snapshots, err := sched.Schedule(ctx, requests)
	if err != nil {
		logger.Error("batch failed", "error", err)
		os.Exit(1)
	}

	for _, snap := range snapshots {
		fmt.Println(describeSnapshot(snap))
	}
}

func buildRequests(message, command string) []types.Request {
	echoArgs, _ := types.NewArgs(map[string]any{"message": message})
	requests := []types.Request{
		{CallID: "demo-echo", Name: "echo", Args: echoArgs},
	}
	if command != "" {
		shellArgs, _ := types.NewArgs(map[string]any{"command": command})
		requests = append(requests, types.Request{CallID: "demo-shell", Name: "execute_shell_command", Args: shellArgs})
	}
	return requests
}

func buildRegistry(cfg Config) (*tool.Registry, error) {
	registry := tool.NewRegistry()

	echoTool, err := newEchoTool()
	if err != nil {
		return nil, fmt.Errorf("building echo tool: %w", err)
	}
	if err := registry.Register(echoTool); err != nil {
		return nil, err
	}

	shellTool, err := newShellTool(cfg.Shell)
	if err != nil {
		return nil, fmt.Errorf("building shell tool: %w", err)
	}
	if err := registry.Register(shellTool); err != nil {
		return nil, err
	}

	return registry, nil
}

func buildPolicy(mode string) (policy.ApprovalPolicy, error) {
	switch mode {
	case "", "sticky":
		return policy.NewStickyPolicy(), nil
	case "bypass":
		return policy.NewBypassPolicy(), nil
	case "always_confirm":
		return policy.NewAlwaysConfirmPolicy(), nil
	default:
		return nil, fmt.Errorf("unknown approval_mode %q", mode)
	}
}

// onUpdate prints every snapshot in a batch update as it happens and, when
// an event bus is configured, mirrors each one to Redis pub/sub.
func onUpdate(logger *slog.Logger, bus eventbus.Client, cfg Config) scheduler.UpdateFunc {
	return func(batchID string, calls []scheduler.Snapshot) {
		for _, snap := range calls {
			logger.Info("call updated", "batch_id", batchID, "call_id", snap.CallID, "state", scheduler.StateName(snap.State))
			if bus == nil || cfg.EventBus == nil {
				continue
			}
			note := eventbus.Notification{
				BatchID: batchID,
				CallID:  snap.CallID,
				Name:    snap.Name,
				State:   scheduler.StateName(snap.State),
			}
			if err := bus.Publish(context.Background(), cfg.EventBus.Channel, note); err != nil {
				logger.Warn("publishing notification", "error", err)
			}
		}
	}
}

// promptForConfirmations reads "<call-id> yes|no" lines from stdin and
// resolves the named call with ProceedOnce or Cancel. It prints no prompt of
// its own: calls waiting for approval show up in the "call updated" log
// lines. Once an answer for a call ID has been accepted, later lines naming
// that ID are ignored.
func promptForConfirmations(ctx context.Context, sched *toolsched.Scheduler, logger *slog.Logger) {
	reader := bufio.NewReader(os.Stdin)
	asked := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		callID, outcome, ok := parseConfirmationLine(strings.TrimSpace(line))
		if !ok || asked[callID] {
			continue
		}
		if err := sched.HandleConfirmation(callID, outcome, nil); err != nil {
			logger.Warn("resolving confirmation", "call_id", callID, "error", err)
			continue
		}
		asked[callID] = true
	}
}

// parseConfirmationLine accepts lines of the form "<call-id> yes|no".
func parseConfirmationLine(line string) (callID string, outcome confirm.Outcome, ok bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", confirm.Cancel, false
	}
	switch fields[1] {
	case "yes", "y":
		return fields[0], confirm.ProceedOnce, true
	case "no", "n":
		return fields[0], confirm.Cancel, true
	default:
		return "", confirm.Cancel, false
	}
}

func describeSnapshot(snap scheduler.Snapshot) string {
	switch state := snap.State.(type) {
	case scheduler.Success:
		return fmt.Sprintf("%s: success\n%s", snap.CallID, state.ResultDisplay)
	case scheduler.Error:
		return fmt.Sprintf("%s: error (%s)\n%s", snap.CallID, state.Kind, state.ResultDisplay)
	case scheduler.Cancelled:
		return fmt.Sprintf("%s: cancelled\n%s", snap.CallID, state.ResultDisplay)
	default:
		return fmt.Sprintf("%s: %T", snap.CallID, snap.State)
	}
}
