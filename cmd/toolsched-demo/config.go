package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the demo binary's toolsched-demo.yaml configuration file.
type Config struct {
	// Concurrency bounds how many tool executions a batch runs at once.
	Concurrency int `yaml:"concurrency,omitempty"`

	// DisplayLimitBytes caps a terminal call's result_display length.
	DisplayLimitBytes int `yaml:"display_limit_bytes,omitempty"`

	// ApprovalMode selects the built-in policy: "bypass", "always_confirm",
	// or "sticky" (the default).
	ApprovalMode string `yaml:"approval_mode,omitempty"`

	// Shell configures the demo's shell command tool.
	Shell ShellConfig `yaml:"shell,omitempty"`

	// EventBus, when set, mirrors batch notifications to Redis pub/sub.
	EventBus *EventBusConfig `yaml:"event_bus,omitempty"`
}

// ShellConfig bounds what the demo's shell tool is allowed to run.
type ShellConfig struct {
	// AllowedCommands is the root-command allow-list (e.g. "ls", "echo").
	// Any command outside this list still runs, but asks for confirmation
	// unless the approval policy pre-approves the call: ApprovalMode
	// "bypass", or a "sticky" ProceedAlways/ProceedAlwaysTool recorded
	// earlier for the shell tool.
	AllowedCommands []string `yaml:"allowed_commands,omitempty"`

	// TimeoutSeconds bounds a single invocation's wall-clock time.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`
}

// EventBusConfig points at the Redis instance notifications are mirrored to.
type EventBusConfig struct {
	URL     string `yaml:"url"`
	Channel string `yaml:"channel"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Concurrency:       8,
		DisplayLimitBytes: 32 * 1024,
		ApprovalMode:      "sticky",
		Shell: ShellConfig{
			AllowedCommands: []string{"echo", "ls", "pwd", "cat"},
			TimeoutSeconds:  30,
		},
	}
}

// LoadConfig reads and parses a YAML config file at path, filling in
// DefaultConfig's values for anything the file leaves unset.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
