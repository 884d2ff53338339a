package main

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/outpost-run/toolsched/confirm"
	"github.com/outpost-run/toolsched/exec"
	"github.com/outpost-run/toolsched/invocation"
	"github.com/outpost-run/toolsched/schema"
	"github.com/outpost-run/toolsched/tool"
	"github.com/outpost-run/toolsched/types"
)

// newEchoTool builds a trivial tool that never needs confirmation, useful
// for exercising the scheduler's no-confirmation fast path.
func newEchoTool() (tool.Tool, error) {
	cfg := invocation.NewConfig().
		SetName("echo").
		SetDisplayName("Echo").
		SetDescription("Returns its message argument unchanged.").
		SetParameterSchema(schema.Object(map[string]schema.JSON{
			"message": schema.String(),
		}, "message")).
		SetExecuteFunc(func(_ context.Context, _ *types.CancelSignal, args map[string]any, _ tool.OutputFunc) (tool.Result, error) {
			message, _ := args["message"].(string)
			return tool.Result{LLMContent: message, ReturnDisplay: message}, nil
		})
	return invocation.NewFuncTool(cfg)
}

// newShellTool builds a demo shell-command tool that exercises the
// confirm.Shell confirmation payload end to end: commands whose root binary
// isn't in cfg.AllowedCommands ask for interactive approval unless the
// approval policy pre-approves the call, and approved executions stream
// their output live.
func newShellTool(cfg ShellConfig) (tool.Tool, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	funcCfg := invocation.NewConfig().
		SetName("execute_shell_command").
		SetDisplayName("Shell Command").
		SetDescription("Runs a shell command and returns its combined output.").
		SetCanUpdateOutput(true).
		SetParameterSchema(schema.Object(map[string]schema.JSON{
			"command": schema.String(),
		}, "command")).
		SetShouldConfirmFunc(func(_ context.Context, _ *types.CancelSignal, args map[string]any) (confirm.Details, error) {
			command, _ := args["command"].(string)
			root := rootCommand(command)
			if slices.Contains(cfg.AllowedCommands, root) {
				return nil, nil
			}
			return confirm.NewShell(command, root, nil), nil
		}).
		SetExecuteFunc(func(ctx context.Context, cancel *types.CancelSignal, args map[string]any, onOutput tool.OutputFunc) (tool.Result, error) {
			command, _ := args["command"].(string)
			result, err := exec.Run(ctx, exec.Config{
				Command: "sh",
				Args:    []string{"-c", command},
				Timeout: timeout,
			})
			if err != nil {
				return tool.Result{}, err
			}
			if onOutput != nil && len(result.Stdout) > 0 {
				onOutput(string(result.Stdout))
			}
			if result.ExitCode != 0 {
				return tool.Result{}, fmt.Errorf("command exited with status %d: %s", result.ExitCode, result.Stderr)
			}
			return tool.Result{
				LLMContent:    string(result.Stdout),
				ReturnDisplay: fmt.Sprintf("$ %s\n%s", command, result.Stdout),
			}, nil
		})

	return invocation.NewFuncTool(funcCfg)
}

func rootCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
