package config

import "strings"

const (
	defaultJobsConfigPath = "config.json"
	defaultUIConfigPath   = "configui.json"
	defaultJSONIndent     = 4
	maxJSONIndent         = 8
)

// FilesConfig locates the editable job config and the editor's UI config.
type FilesConfig struct {
	// JobsConfigPath is the job config file shared with the alert worker.
	JobsConfigPath string `env:"JOBS_CONFIG_PATH" envDefault:"config.json"`
	// UIConfigPath holds the comparison operators and action hooks.
	UIConfigPath string `env:"UI_CONFIG_PATH" envDefault:"configui.json"`
	// JSONIndent is the number of spaces per level when the job config is written.
	JSONIndent int `env:"JSON_INDENT" envDefault:"4"`
}

// Sanitize restores defaults for blank paths and clamps the indent to 1..8.
func (c *FilesConfig) Sanitize() {
	c.JobsConfigPath = strings.TrimSpace(c.JobsConfigPath)
	if c.JobsConfigPath == "" {
		c.JobsConfigPath = defaultJobsConfigPath
	}
	c.UIConfigPath = strings.TrimSpace(c.UIConfigPath)
	if c.UIConfigPath == "" {
		c.UIConfigPath = defaultUIConfigPath
	}
	if c.JSONIndent < 1 {
		c.JSONIndent = 1
	}
	if c.JSONIndent > maxJSONIndent {
		c.JSONIndent = maxJSONIndent
	}
}
