package config

// AppConfig is the main application configuration struct that composes
// the per-concern configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual config files for
// details on available environment variables:
//   - files.go: job config, UI config and JSON formatting
//   - catalog.go: ticker catalog location and download
//   - terminal.go: logging and terminal host settings
type AppConfig struct {
	// Job and UI config files
	Files FilesConfig

	// Ticker catalog
	Catalog CatalogConfig `envPrefix:"CATALOG_"`

	// Logging configuration
	Log LogConfig

	// Terminal host configuration
	Terminal TerminalConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Files.Sanitize()
	c.Catalog.Sanitize()
	c.Log.Sanitize()
	c.Terminal.Sanitize()
}
