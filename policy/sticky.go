package policy

import (
	"sync"

	"github.com/outpost-run/toolsched/confirm"
)

// StickyPolicy is the in-memory default ApprovalPolicy: every call requires
// confirmation until a resolution records ProceedAlways or ProceedAlwaysTool
// (both scoped to that tool name) or ProceedAlwaysServer (scoped to that MCP
// server name), after
// which matching future calls skip confirmation for the lifetime of the
// policy instance.
type StickyPolicy struct {
	mu      sync.Mutex
	tools   map[string]bool
	servers map[string]bool
}

// NewStickyPolicy returns an empty StickyPolicy.
func NewStickyPolicy() *StickyPolicy {
	return &StickyPolicy{
		tools:   make(map[string]bool),
		servers: make(map[string]bool),
	}
}

func (p *StickyPolicy) RequiresConfirmation(toolName, serverName string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.tools[toolName] {
		return false
	}
	if serverName != "" && p.servers[serverName] {
		return false
	}
	return true
}

func (p *StickyPolicy) Record(toolName, serverName string, outcome confirm.Outcome) {
	if !outcome.IsPersistent() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	switch outcome {
	case confirm.ProceedAlways, confirm.ProceedAlwaysTool:
		p.tools[toolName] = true
	case confirm.ProceedAlwaysServer:
		if serverName != "" {
			p.servers[serverName] = true
		}
	}
}
