package confirm

// Details is the confirmation payload attached to a ToolCall in
// AwaitingApproval. It is a closed sum type: Edit, Shell, Info, and
// McpServer are its only implementations. Callers type-switch on the
// concrete type to render a dialog.
type Details interface {
	// OnConfirm is called once the user (or the IDE) has resolved the
	// confirmation. modify carries inline-modify content when the outcome
	// is ProceedOnce/ProceedAlways* with edited content attached; it is nil
	// otherwise. OnConfirm is owned by the tool implementation — the
	// scheduler wraps it so the scheduler observes the resolution first and
	// can advance the ToolCall's state before the tool's own callback runs.
	OnConfirm(outcome Outcome, modify *ModifyPayload) error

	confirmDetails()
}

// ModifyPayload is the inline-modify payload: replacement content supplied
// directly in the confirmation response rather than round-tripped through an
// external editor. Attached to a non-Edit confirmation, it is ignored.
type ModifyPayload struct {
	NewContent string
}

// Resolution is the outcome of an IDE-initiated resolution channel.
type Resolution int

const (
	Accepted Resolution = iota
	Rejected
)

// IDEResolution is an optional async channel an Edit payload can carry,
// letting the IDE resolve the confirmation out of band from the CLI/TUI
// prompt. Exactly one of the IDE answer and the interactive answer wins;
// whichever reaches the scheduler first is applied, and the other is
// dropped (spec's "IDE-resolution race").
type IDEResolution struct {
	ch <-chan Resolution
}

// NewIDEResolution wraps ch as an IDEResolution.
func NewIDEResolution(ch <-chan Resolution) *IDEResolution {
	return &IDEResolution{ch: ch}
}

// Chan exposes the underlying channel for a select alongside the
// interactive-answer path.
func (r *IDEResolution) Chan() <-chan Resolution {
	return r.ch
}

// confirmBase implements the confirmDetails marker shared by every variant.
type confirmBase struct{}

func (confirmBase) confirmDetails() {}

// Edit is the confirmation payload for a file-modifying invocation.
type Edit struct {
	confirmBase

	Title            string
	FileName         string
	FilePath         string
	FileDiff         string // unified diff against OriginalContent
	OriginalContent  string
	NewContent       string
	IDEResolution    *IDEResolution // optional
	IsModifying      bool           // scheduler-managed: true while routed to an editor

	onConfirm func(outcome Outcome, modify *ModifyPayload) error
}

// NewEdit builds an Edit payload. onConfirm is the tool-owned callback; pass
// nil if the tool has no side effect to run on resolution.
func NewEdit(title, fileName, filePath, fileDiff, originalContent, newContent string, onConfirm func(Outcome, *ModifyPayload) error) *Edit {
	return &Edit{
		Title:           title,
		FileName:        fileName,
		FilePath:        filePath,
		FileDiff:        fileDiff,
		OriginalContent: originalContent,
		NewContent:      newContent,
		onConfirm:       onConfirm,
	}
}

func (e *Edit) OnConfirm(outcome Outcome, modify *ModifyPayload) error {
	if e.onConfirm == nil {
		return nil
	}
	return e.onConfirm(outcome, modify)
}

// Shell is the confirmation payload for a command-executing invocation.
type Shell struct {
	confirmBase

	Command     string
	RootCommand string // the leading binary/command name, used for per-tool allow-listing

	onConfirm func(outcome Outcome, modify *ModifyPayload) error
}

func NewShell(command, rootCommand string, onConfirm func(Outcome, *ModifyPayload) error) *Shell {
	return &Shell{Command: command, RootCommand: rootCommand, onConfirm: onConfirm}
}

func (s *Shell) OnConfirm(outcome Outcome, modify *ModifyPayload) error {
	if s.onConfirm == nil {
		return nil
	}
	return s.onConfirm(outcome, modify)
}

// Info is a plain informational confirmation, e.g. an MCP tool's
// first-use disclosure.
type Info struct {
	confirmBase

	Prompt string
	URLs   []string // optional

	onConfirm func(outcome Outcome, modify *ModifyPayload) error
}

func NewInfo(prompt string, urls []string, onConfirm func(Outcome, *ModifyPayload) error) *Info {
	return &Info{Prompt: prompt, URLs: urls, onConfirm: onConfirm}
}

func (i *Info) OnConfirm(outcome Outcome, modify *ModifyPayload) error {
	if i.onConfirm == nil {
		return nil
	}
	return i.onConfirm(outcome, modify)
}

// McpServer confirms the first use of a tool proxied through an MCP server.
type McpServer struct {
	confirmBase

	ServerName      string
	ToolName        string
	ToolDisplayName string

	onConfirm func(outcome Outcome, modify *ModifyPayload) error
}

func NewMcpServer(serverName, toolName, toolDisplayName string, onConfirm func(Outcome, *ModifyPayload) error) *McpServer {
	return &McpServer{ServerName: serverName, ToolName: toolName, ToolDisplayName: toolDisplayName, onConfirm: onConfirm}
}

func (m *McpServer) OnConfirm(outcome Outcome, modify *ModifyPayload) error {
	if m.onConfirm == nil {
		return nil
	}
	return m.onConfirm(outcome, modify)
}
