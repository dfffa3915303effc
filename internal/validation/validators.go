// Package validation provides small single-value validators for raw cell text.
// Each validator returns an empty string when the value is acceptable and a
// human-readable message otherwise.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Validator is a function that validates a string value and returns an error message if invalid.
type Validator func(v string) string

// Required validates that a field is not empty.
func Required(fieldName string) Validator {
	return func(v string) string {
		if strings.TrimSpace(v) == "" {
			return fieldName + " is required."
		}
		return ""
	}
}

// Pattern validates that a field matches the provided regular expression.
// An empty value does not match.
func Pattern(fieldName string, re *regexp.Regexp) Validator {
	return func(v string) string {
		if !re.MatchString(strings.TrimSpace(v)) {
			return fieldName + " has an invalid format."
		}
		return ""
	}
}

// Decimal validates that a field parses as a decimal number.
func Decimal(fieldName string) Validator {
	return func(v string) string {
		if _, err := decimal.NewFromString(strings.TrimSpace(v)); err != nil {
			return fieldName + " must be a number."
		}
		return ""
	}
}

// PositiveDecimal validates that a decimal field is strictly greater than zero.
func PositiveDecimal(fieldName string) Validator {
	return func(v string) string {
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return fieldName + " must be a number."
		}
		if !d.IsPositive() {
			return fieldName + " must be greater than 0."
		}
		return ""
	}
}

// OneOf validates that a field exactly matches one of the provided options.
func OneOf(fieldName string, options []string) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		for _, opt := range options {
			if v == opt {
				return ""
			}
		}
		return fmt.Sprintf("%s must be one of: %s", fieldName, strings.Join(options, ", "))
	}
}

// NumericToken validates that a field consists of ASCII digits only.
// Signs, separators and exponents are rejected.
func NumericToken(fieldName string) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return fieldName + " must be a whole number."
		}
		for i := 0; i < len(v); i++ {
			if v[i] < '0' || v[i] > '9' {
				return fieldName + " must be a whole number."
			}
		}
		return ""
	}
}

// NonNegativeInt validates that a field is an integer greater than or equal to zero.
func NonNegativeInt(fieldName string) Validator {
	return func(v string) string {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fieldName + " must be a whole number."
		}
		if n < 0 {
			return fieldName + " cannot be negative."
		}
		return ""
	}
}

// First runs validators in order and returns the first failure message.
func First(v string, validators ...Validator) string {
	for _, fn := range validators {
		if msg := fn(v); msg != "" {
			return msg
		}
	}
	return ""
}
