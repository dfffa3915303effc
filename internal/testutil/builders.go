// Package testutil provides testing utilities and helpers for the job editor.
package testutil

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jxcryptonotify/job-editor/internal/domain/model"
	"github.com/tidwall/sjson"
)

// JobConfigBuilder provides a fluent interface for building job config documents for testing.
type JobConfigBuilder struct {
	doc string
}

// NewJobConfig creates a JobConfigBuilder holding an empty jobs array.
func NewJobConfig() *JobConfigBuilder {
	return &JobConfigBuilder{doc: `{"jobs": []}`}
}

// WithSibling sets a top-level key other than "jobs" to a raw JSON value.
func (b *JobConfigBuilder) WithSibling(key, raw string) *JobConfigBuilder {
	b.doc = mustSet(sjson.SetRaw(b.doc, key, raw))
	return b
}

// WithRow appends a job whose keys follow the column order. Value and count
// cells that are valid JSON numbers are written as numbers, everything else as strings.
func (b *JobConfigBuilder) WithRow(row model.RawRow) *JobConfigBuilder {
	obj := "{}"
	for _, c := range model.Columns {
		v := row.Get(c.Field)
		if isNumberColumn(c.Type) && isJSONNumber(v) {
			obj = mustSet(sjson.SetRaw(obj, c.Name, v))
			continue
		}
		obj = mustSet(sjson.Set(obj, c.Name, v))
	}
	b.doc = mustSet(sjson.SetRaw(b.doc, "jobs.-1", obj))
	return b
}

// Build returns the document.
func (b *JobConfigBuilder) Build() string {
	return b.doc
}

// CatalogBuilder provides a fluent interface for building ticker catalogs for testing.
type CatalogBuilder struct {
	doc string
}

// NewCatalog creates a CatalogBuilder with an empty values array.
func NewCatalog() *CatalogBuilder {
	return &CatalogBuilder{doc: `{"values": []}`}
}

// WithTicker appends a catalog tuple. Numeric ids are written as numbers.
func (b *CatalogBuilder) WithTicker(t model.Ticker) *CatalogBuilder {
	var id any = t.ID
	if isJSONNumber(t.ID) {
		id = json.Number(t.ID)
	}
	tuple := []any{id, t.Name, t.Symbol, strings.ToLower(t.Name), t.MarketCapFlag, t.VolumeFlag}
	b.doc = mustSet(sjson.Set(b.doc, "values.-1", tuple))
	return b
}

// WithActive appends an active ticker.
func (b *CatalogBuilder) WithActive(id, symbol, name string) *CatalogBuilder {
	return b.WithTicker(model.Ticker{ID: id, Name: name, Symbol: symbol, MarketCapFlag: 1, VolumeFlag: 1})
}

// Build returns the document.
func (b *CatalogBuilder) Build() string {
	return b.doc
}

// DefaultCatalog returns a catalog with Bitcoin (1), Ethereum (1027) and Bitcoin Cash (1831).
func DefaultCatalog() string {
	return NewCatalog().
		WithActive("1", "BTC", "Bitcoin").
		WithActive("1027", "ETH", "Ethereum").
		WithActive("1831", "BCH", "Bitcoin Cash").
		Build()
}

func isNumberColumn(t model.SemanticType) bool {
	return t == model.SemanticDecimal || t == model.SemanticCount
}

func isJSONNumber(v string) bool {
	if v == "" {
		return false
	}
	var n json.Number
	return json.Unmarshal([]byte(v), &n) == nil
}

func mustSet(doc string, err error) string {
	if err != nil {
		//nolint:forbidigo // test builders fail fast on programmer error
		panic(fmt.Sprintf("testutil: build document: %v", err))
	}
	return doc
}
