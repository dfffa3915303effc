// Package rules validates raw job rows before they are persisted.
package rules

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jxcryptonotify/job-editor/internal/domain/model"
	"github.com/jxcryptonotify/job-editor/internal/validation"
	"github.com/shopspring/decimal"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Rule checks one field of a raw row and returns a message on failure.
type Rule interface {
	ID() RuleID
	Field() model.Field
	Check(row model.RawRow) string
}

type fieldRule struct {
	id    RuleID
	field model.Field
	check validation.Validator
}

func (r fieldRule) ID() RuleID         { return r.id }
func (r fieldRule) Field() model.Field { return r.field }

func (r fieldRule) Check(row model.RawRow) string {
	return r.check(row.Get(r.field))
}

// Engine runs the job rules in a fixed order and stops at the first failure.
type Engine struct {
	rules   []Rule
	tickers TickerResolver
}

// NewEngine builds the rule chain for the given ticker directory and operator set.
func NewEngine(tickers TickerResolver, comparisons []string) *Engine {
	if tickers == nil {
		panic("rules: ticker resolver is required")
	}
	ops := make([]string, len(comparisons))
	copy(ops, comparisons)

	return &Engine{
		tickers: tickers,
		rules: []Rule{
			fieldRule{RuleEmailFormat, model.FieldEmail, validation.Pattern("Email", emailPattern)},
			fieldRule{RuleSourceCoinKnown, model.FieldSourceCoin, knownTicker(tickers, "Source Coin")},
			fieldRule{RuleTargetCoinKnown, model.FieldTargetCoin, knownTicker(tickers, "Target Coin")},
			fieldRule{RuleSourceValueDecimal, model.FieldSourceValue, validation.Decimal("Source Value")},
			fieldRule{RuleSourceValuePositive, model.FieldSourceValue, validation.PositiveDecimal("Source Value")},
			fieldRule{RuleTargetValueDecimal, model.FieldTargetValue, validation.Decimal("Target Value")},
			fieldRule{RuleTargetValuePositive, model.FieldTargetValue, validation.PositiveDecimal("Target Value")},
			fieldRule{RuleComparisonMember, model.FieldComparison, validation.OneOf("Comparison", ops)},
			fieldRule{RuleCountNonNegativeInteger, model.FieldEmailSentCount, validation.NumericToken("Email Sent Count")},
			fieldRule{RuleCountRange, model.FieldEmailSentCount, validation.NonNegativeInt("Email Sent Count")},
		},
	}
}

// Rules returns the checks in evaluation order.
func (e *Engine) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Validate checks a single row. The returned error is a *FieldError with Row -1.
func (e *Engine) Validate(row model.RawRow) (model.Job, error) {
	for _, r := range e.rules {
		if msg := r.Check(row); msg != "" {
			return model.Job{}, &FieldError{
				Row:     -1,
				Field:   r.Field(),
				Rule:    r.ID(),
				Value:   row.Get(r.Field()),
				Message: msg,
			}
		}
	}
	return e.build(row)
}

// ValidateAll validates every non-blank row. Blank rows are skipped and produce
// no job. The first failing row aborts the whole batch.
func (e *Engine) ValidateAll(rows []model.RawRow) ([]model.Job, error) {
	jobs := make([]model.Job, 0, len(rows))
	for i, row := range rows {
		if row.IsBlank() {
			continue
		}
		job, err := e.Validate(row)
		if err != nil {
			if fe, ok := err.(*FieldError); ok {
				fe.Row = i
			}
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// build converts a row that passed every rule.
func (e *Engine) build(row model.RawRow) (model.Job, error) {
	src, err := e.tickers.ResolveID(row.Get(model.FieldSourceCoin))
	if err != nil {
		return model.Job{}, err
	}
	dst, err := e.tickers.ResolveID(row.Get(model.FieldTargetCoin))
	if err != nil {
		return model.Job{}, err
	}
	sv, err := decimal.NewFromString(strings.TrimSpace(row.Get(model.FieldSourceValue)))
	if err != nil {
		return model.Job{}, err
	}
	tv, err := decimal.NewFromString(strings.TrimSpace(row.Get(model.FieldTargetValue)))
	if err != nil {
		return model.Job{}, err
	}
	count, err := strconv.ParseInt(strings.TrimSpace(row.Get(model.FieldEmailSentCount)), 10, 64)
	if err != nil {
		return model.Job{}, err
	}
	return model.Job{
		Email:          strings.TrimSpace(row.Get(model.FieldEmail)),
		SourceCoin:     src,
		TargetCoin:     dst,
		SourceValue:    sv,
		TargetValue:    tv,
		Comparison:     strings.TrimSpace(row.Get(model.FieldComparison)),
		EmailSentCount: count,
	}, nil
}

func knownTicker(tickers TickerResolver, fieldName string) validation.Validator {
	return func(v string) string {
		if _, err := tickers.ResolveID(v); err != nil {
			return fieldName + " refers to an unknown ticker."
		}
		return ""
	}
}
