package rules

import (
	"fmt"

	"github.com/jxcryptonotify/job-editor/internal/domain/model"
	apperrors "github.com/jxcryptonotify/job-editor/internal/errors"
)

// RuleID names one validation check.
type RuleID string

// Checks in evaluation order.
const (
	RuleEmailFormat             RuleID = "email_format"
	RuleSourceCoinKnown         RuleID = "source_coin_known"
	RuleTargetCoinKnown         RuleID = "target_coin_known"
	RuleSourceValueDecimal      RuleID = "source_value_decimal"
	RuleSourceValuePositive     RuleID = "source_value_positive"
	RuleTargetValueDecimal      RuleID = "target_value_decimal"
	RuleTargetValuePositive     RuleID = "target_value_positive"
	RuleComparisonMember        RuleID = "comparison_member"
	RuleCountNonNegativeInteger RuleID = "email_sent_count_non_negative_integer"
	RuleCountRange              RuleID = "email_sent_count_range"
)

// TickerResolver maps a coin cell to a known ticker id.
type TickerResolver interface {
	ResolveID(input string) (string, error)
}

// FieldError reports the first failed check of a row.
type FieldError struct {
	// Row is the zero-based position of the row among the rows validated, or -1.
	Row     int
	Field   model.Field
	Rule    RuleID
	Value   string
	Message string
}

func (e *FieldError) Error() string {
	if e.Row < 0 {
		return e.Message
	}
	return fmt.Sprintf("row %d: %s", e.Row+1, e.Message)
}

// Unwrap exposes the error as a validation AppError.
func (e *FieldError) Unwrap() error {
	return apperrors.ValidationField(e.Field.String(), e.Message)
}
