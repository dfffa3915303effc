package model

import "strings"

// DefaultComparisons are the operators understood by the alert worker.
var DefaultComparisons = []string{"<", ">", "="}

// ActionName is the logical name of an external action hook.
type ActionName string

const (
	// ActionPush uploads the saved job file to the server.
	ActionPush ActionName = "push"
	// ActionPull retrieves the job file from the server.
	ActionPull ActionName = "pull"
)

// ActionsConfig is the "actions" block of the UI config.
type ActionsConfig struct {
	Enable bool   `json:"enable"`
	Push   string `json:"push,omitempty"`
	Pull   string `json:"pull,omitempty"`
}

// Command returns the configured command for name, or "".
func (a ActionsConfig) Command(name ActionName) string {
	switch name {
	case ActionPush:
		return strings.TrimSpace(a.Push)
	case ActionPull:
		return strings.TrimSpace(a.Pull)
	default:
		return ""
	}
}

// Enabled reports whether the hook is both switched on and configured.
func (a ActionsConfig) Enabled(name ActionName) bool {
	return a.Enable && a.Command(name) != ""
}

// UIConfig is the editor's behavior configuration (configui.json).
type UIConfig struct {
	Comparison []string      `json:"comparison"`
	Actions    ActionsConfig `json:"actions"`
}

// Comparisons returns the configured operator set, falling back to DefaultComparisons.
func (c UIConfig) Comparisons() []string {
	if len(c.Comparison) == 0 {
		out := make([]string, len(DefaultComparisons))
		copy(out, DefaultComparisons)
		return out
	}
	out := make([]string, len(c.Comparison))
	copy(out, c.Comparison)
	return out
}
