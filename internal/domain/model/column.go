package model

import "fmt"

// Field identifies a job column by position.
type Field int

const (
	FieldEmail Field = iota
	FieldSourceCoin
	FieldTargetCoin
	FieldSourceValue
	FieldTargetValue
	FieldComparison
	FieldEmailSentCount

	// FieldCount is the number of job columns.
	FieldCount = int(FieldEmailSentCount) + 1
)

// SemanticType describes what a column holds, independent of its label.
type SemanticType string

const (
	SemanticEmail      SemanticType = "email"
	SemanticTicker     SemanticType = "ticker"
	SemanticDecimal    SemanticType = "decimal"
	SemanticComparison SemanticType = "comparison"
	SemanticCount      SemanticType = "count"
)

// EditorKind selects the in-place editor behavior for a column.
type EditorKind int

const (
	// EditorFreeText is a plain text entry.
	EditorFreeText EditorKind = iota
	// EditorFixedChoice picks from a short closed set (comparison operators).
	EditorFixedChoice
	// EditorFilteredChoice is a type-ahead filter over the active ticker displays.
	EditorFilteredChoice
)

func (k EditorKind) String() string {
	switch k {
	case EditorFreeText:
		return "free_text"
	case EditorFixedChoice:
		return "fixed_choice"
	case EditorFilteredChoice:
		return "filtered_choice"
	default:
		return fmt.Sprintf("editor_kind(%d)", int(k))
	}
}

// ColumnDef describes one job column.
type ColumnDef struct {
	Field  Field
	Name   string // JSON key in the job config
	Label  string // display heading
	Type   SemanticType
	Editor EditorKind
}

// Columns is the job table schema in display and persistence order.
var Columns = [FieldCount]ColumnDef{
	{FieldEmail, "email", "Email", SemanticEmail, EditorFreeText},
	{FieldSourceCoin, "source_coin", "Source Coin", SemanticTicker, EditorFilteredChoice},
	{FieldTargetCoin, "target_coin", "Target Coin", SemanticTicker, EditorFilteredChoice},
	{FieldSourceValue, "source_value", "Source Value", SemanticDecimal, EditorFreeText},
	{FieldTargetValue, "target_value", "Target Value", SemanticDecimal, EditorFreeText},
	{FieldComparison, "comparison", "Comparison", SemanticComparison, EditorFixedChoice},
	{FieldEmailSentCount, "email_sent_count", "Email Sent Count", SemanticCount, EditorFreeText},
}

// Valid reports whether f names a job column.
func (f Field) Valid() bool {
	return f >= 0 && int(f) < FieldCount
}

// Def returns the column descriptor for f. It panics on an invalid field.
func (f Field) Def() ColumnDef {
	return Columns[f]
}

// String returns the JSON key of the field.
func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return Columns[f].Name
}

// ParseField looks a column up by JSON key.
func ParseField(name string) (Field, error) {
	for _, c := range Columns {
		if c.Name == name {
			return c.Field, nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", name)
}
