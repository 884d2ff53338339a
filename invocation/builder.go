package invocation

import (
	"context"
	"errors"

	"github.com/outpost-run/toolsched/confirm"
	"github.com/outpost-run/toolsched/schema"
	"github.com/outpost-run/toolsched/tool"
	"github.com/outpost-run/toolsched/types"
)

// ExecuteFunc implements a FuncTool's execution logic. cancel fires if the
// surrounding ToolCall is cancelled; onOutput, when non-nil, should be
// called once per streamed chunk in source order.
type ExecuteFunc func(ctx context.Context, cancel *types.CancelSignal, args map[string]any, onOutput tool.OutputFunc) (tool.Result, error)

// ShouldConfirmFunc decides whether a FuncTool invocation needs interactive
// approval. Returning (nil, nil) skips confirmation.
type ShouldConfirmFunc func(ctx context.Context, cancel *types.CancelSignal, args map[string]any) (confirm.Details, error)

// DescribeFunc renders a human-readable summary of what an invocation will
// do. Falls back to the tool name if unset.
type DescribeFunc func(args map[string]any) string

// ModifyContextFunc builds a tool.ModifyContext for a FuncTool invocation's
// args. Only consulted when Config.IsModifiable is true.
type ModifyContextFunc func(args map[string]any) tool.ModifyContext

// Config holds the configuration for building a FuncTool, the convenience
// Tool implementation for tools whose behavior is a single Go function.
type Config struct {
	name            string
	displayName     string
	description     string
	parameterSchema schema.JSON
	canUpdateOutput bool
	isModifiable    bool
	executeFunc     ExecuteFunc
	shouldConfirm   ShouldConfirmFunc
	describe        DescribeFunc
	modifyContext   ModifyContextFunc
}

// NewConfig creates a Config with an empty-object parameter schema.
func NewConfig() *Config {
	return &Config{
		parameterSchema: schema.Object(map[string]schema.JSON{}),
	}
}

func (c *Config) SetName(name string) *Config                        { c.name = name; return c }
func (c *Config) SetDisplayName(name string) *Config                 { c.displayName = name; return c }
func (c *Config) SetDescription(desc string) *Config                 { c.description = desc; return c }
func (c *Config) SetParameterSchema(s schema.JSON) *Config            { c.parameterSchema = s; return c }
func (c *Config) SetCanUpdateOutput(v bool) *Config                  { c.canUpdateOutput = v; return c }
func (c *Config) SetIsModifiable(v bool) *Config                     { c.isModifiable = v; return c }
func (c *Config) SetExecuteFunc(fn ExecuteFunc) *Config              { c.executeFunc = fn; return c }
func (c *Config) SetShouldConfirmFunc(fn ShouldConfirmFunc) *Config  { c.shouldConfirm = fn; return c }
func (c *Config) SetDescribeFunc(fn DescribeFunc) *Config            { c.describe = fn; return c }
func (c *Config) SetModifyContextFunc(fn ModifyContextFunc) *Config  { c.modifyContext = fn; return c }

// funcTool is the Tool implementation backing NewFuncTool.
type funcTool struct {
	cfg *Config
}

// NewFuncTool builds a tool.Tool from cfg. Returns an error if required
// fields (name, execute function) are missing.
func NewFuncTool(cfg *Config) (tool.Tool, error) {
	if cfg == nil {
		return nil, errors.New("invocation: config cannot be nil")
	}
	if cfg.name == "" {
		return nil, errors.New("invocation: tool name is required")
	}
	if cfg.executeFunc == nil {
		return nil, errors.New("invocation: execute function is required")
	}
	if cfg.displayName == "" {
		cfg.displayName = cfg.name
	}
	return &funcTool{cfg: cfg}, nil
}

func (t *funcTool) Name() string                      { return t.cfg.name }
func (t *funcTool) DisplayName() string                { return t.cfg.displayName }
func (t *funcTool) Description() string                { return t.cfg.description }
func (t *funcTool) ParameterSchema() schema.JSON        { return t.cfg.parameterSchema }
func (t *funcTool) CanUpdateOutput() bool               { return t.cfg.canUpdateOutput }
func (t *funcTool) IsModifiable() bool                  { return t.cfg.isModifiable }

// Build validates rawArgs against the tool's parameter schema and binds a
// funcInvocation. This is the one place in the tree that turns raw,
// unstructured request.args into something an Invocation can trust.
func (t *funcTool) Build(rawArgs map[string]any) (tool.Invocation, *schema.SchemaError) {
	if rawArgs == nil {
		rawArgs = map[string]any{}
	}
	if err := t.cfg.parameterSchema.Validate(rawArgs); err != nil {
		return nil, &schema.SchemaError{Tool: t.cfg.name, Cause: err}
	}

	fi := &funcInvocation{tool: t, args: rawArgs}

	if t.cfg.isModifiable && t.cfg.modifyContext != nil {
		return &modifiableFuncInvocation{funcInvocation: fi, modifyCtx: t.cfg.modifyContext(rawArgs)}, nil
	}
	return fi, nil
}

// funcInvocation is the tool.Invocation bound by funcTool.Build.
type funcInvocation struct {
	tool *funcTool
	args map[string]any
}

func (i *funcInvocation) Tool() tool.Tool        { return i.tool }
func (i *funcInvocation) Args() map[string]any   { return i.args }

func (i *funcInvocation) Description() string {
	if i.tool.cfg.describe != nil {
		return i.tool.cfg.describe(i.args)
	}
	return i.tool.cfg.name
}

func (i *funcInvocation) ShouldConfirmExecute(ctx context.Context, cancel *types.CancelSignal) (confirm.Details, error) {
	if i.tool.cfg.shouldConfirm == nil {
		return nil, nil
	}
	return i.tool.cfg.shouldConfirm(ctx, cancel, i.args)
}

func (i *funcInvocation) Execute(ctx context.Context, cancel *types.CancelSignal, onOutput tool.OutputFunc) (tool.Result, error) {
	return i.tool.cfg.executeFunc(ctx, cancel, i.args, onOutput)
}

// modifiableFuncInvocation adds tool.ModifiableInvocation to funcInvocation
// without forcing every FuncTool to carry an unused GetModifyContext method.
type modifiableFuncInvocation struct {
	*funcInvocation
	modifyCtx tool.ModifyContext
}

func (i *modifiableFuncInvocation) GetModifyContext() tool.ModifyContext {
	return i.modifyCtx
}
