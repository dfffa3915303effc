package config

import (
	"strings"
	"time"
)

const (
	defaultCatalogPath         = "cryptos.json"
	defaultCatalogValuesExpr   = "values"
	defaultCatalogFetchTimeout = 30 * time.Second
)

// CatalogConfig locates the ticker catalog and, optionally, where to download it from.
type CatalogConfig struct {
	Path string `env:"PATH" envDefault:"cryptos.json"`
	// ValuesExpr is a JMESPath expression selecting the tuple array in the catalog.
	ValuesExpr string `env:"VALUES_EXPR" envDefault:"values"`
	// Endpoint is fetched when Path does not exist. Empty disables the download.
	Endpoint     string        `env:"ENDPOINT"`
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"30s"`
}

// Sanitize normalises paths and enforces a positive fetch timeout.
func (c *CatalogConfig) Sanitize() {
	c.Path = strings.TrimSpace(c.Path)
	if c.Path == "" {
		c.Path = defaultCatalogPath
	}
	c.ValuesExpr = strings.TrimSpace(c.ValuesExpr)
	if c.ValuesExpr == "" {
		c.ValuesExpr = defaultCatalogValuesExpr
	}
	c.Endpoint = strings.TrimSpace(c.Endpoint)
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = defaultCatalogFetchTimeout
	}
}

// DownloadEnabled reports whether a missing catalog should be fetched.
func (c *CatalogConfig) DownloadEnabled() bool {
	return c.Endpoint != ""
}
