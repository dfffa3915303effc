package config

import (
	"strings"
	"time"
)

const defaultLogLevel = "info"

// LogConfig controls the structured logger.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// Sanitize lowercases the level and falls back to info for unknown values.
func (c *LogConfig) Sanitize() {
	c.Level = strings.ToLower(strings.TrimSpace(c.Level))
	switch c.Level {
	case "debug", "info", "warn", "error":
	case "warning":
		c.Level = "warn"
	default:
		c.Level = defaultLogLevel
	}
}

// TerminalConfig controls the interactive terminal host.
type TerminalConfig struct {
	// HistoryFile persists command history between sessions. Empty disables it.
	HistoryFile string `env:"HISTORY_FILE"`
	// HookTimeout bounds a single push or pull command. Zero means no limit.
	HookTimeout time.Duration `env:"HOOK_TIMEOUT" envDefault:"0s"`
}

// Sanitize trims the history path and rejects negative timeouts.
func (c *TerminalConfig) Sanitize() {
	c.HistoryFile = strings.TrimSpace(c.HistoryFile)
	if c.HookTimeout < 0 {
		c.HookTimeout = 0
	}
}
