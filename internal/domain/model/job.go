// Package model defines the data types shared by the job editor: job rows, the column
// schema, ticker catalog entries and the UI configuration.
package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Job is a validated alert rule ready to be persisted.
type Job struct {
	Email          string
	SourceCoin     string
	TargetCoin     string
	SourceValue    decimal.Decimal
	TargetValue    decimal.Decimal
	Comparison     string
	EmailSentCount int64
}

// RawRow holds the editable text of one table row, indexed by Field.
type RawRow [FieldCount]string

// Get returns the raw value of field f, or "" for an invalid field.
func (r RawRow) Get(f Field) string {
	if !f.Valid() {
		return ""
	}
	return r[f]
}

// With returns a copy of r with field f set to v.
func (r RawRow) With(f Field, v string) RawRow {
	if f.Valid() {
		r[f] = v
	}
	return r
}

// IsBlank reports whether every visible field is empty or whitespace.
// Blank rows are placeholders and are never validated or persisted.
func (r RawRow) IsBlank() bool {
	for _, v := range r {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
