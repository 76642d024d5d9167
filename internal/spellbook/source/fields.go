package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/platform/errors"
)

// Lookup returns the raw value for label.
func (b Block) Lookup(label string) (Field, bool) {
	f, ok := b.fields[fieldKey(label)]
	return f, ok
}

// Has reports whether the block declares label.
func (b Block) Has(label string) bool {
	_, ok := b.Lookup(label)
	return ok
}

// Len returns the number of distinct labels in the block.
func (b Block) Len() int {
	return len(b.fields)
}

// String returns the value for label, or fallback when the label is absent.
func (b Block) String(label, fallback string) string {
	if f, ok := b.Lookup(label); ok {
		return f.Value
	}
	return fallback
}

// Required returns the value for label or a missing-field error.
func (b Block) Required(label string) (Field, error) {
	f, ok := b.Lookup(label)
	if !ok || f.Value == "" {
		return Field{}, b.missing(label)
	}
	return f, nil
}

// Bool reads a yes/no flag. Absent flags are false.
func (b Block) Bool(label string) (bool, error) {
	f, ok := b.Lookup(label)
	if !ok {
		return false, nil
	}
	switch strings.ToLower(f.Value) {
	case "yes", "true":
		return true, nil
	case "no", "false", "":
		return false, nil
	default:
		return false, b.fieldError(apperrors.CodeParseInvalidFlag, f, "expected yes or no")
	}
}

// Int reads a required whole number.
func (b Block) Int(label string) (int, error) {
	f, err := b.Required(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(f.Value)
	if err != nil {
		return 0, b.wrapField(apperrors.CodeParseInvalidNumber, f, err)
	}
	return n, nil
}

// IntOr reads an optional whole number, returning fallback when absent.
func (b Block) IntOr(label string, fallback int) (int, error) {
	if !b.Has(label) {
		return fallback, nil
	}
	return b.Int(label)
}

// Decimal reads a required exact decimal number.
func (b Block) Decimal(label string) (decimal.Decimal, error) {
	f, err := b.Required(label)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := decimal.NewFromString(f.Value)
	if err != nil {
		return decimal.Decimal{}, b.wrapField(apperrors.CodeParseInvalidNumber, f, err)
	}
	return d, nil
}

// Error builds a parse error about field f of this block.
func (b Block) Error(code apperrors.Code, f Field, reason string) error {
	return b.fieldError(code, f, reason)
}

// Wrap builds a parse error about field f of this block around cause.
func (b Block) Wrap(code apperrors.Code, f Field, cause error) error {
	return b.wrapField(code, f, cause)
}

func (b Block) missing(label string) error {
	return apperrors.WithMetadata(apperrors.CodeParseMissingField,
		fmt.Sprintf("%s (line %d): missing %s", b.displayName(), b.Line, label),
		map[string]string{"Record": b.displayName(), "Field": label})
}

func (b Block) fieldError(code apperrors.Code, f Field, reason string) error {
	return apperrors.WithMetadata(code,
		fmt.Sprintf("%s (line %d): %s %q: %s", b.displayName(), f.Line, f.Label, f.Value, reason),
		map[string]string{"Record": b.displayName(), "Field": f.Label, "Value": f.Value})
}

func (b Block) wrapField(code apperrors.Code, f Field, cause error) error {
	return apperrors.WrapWithMetadata(code,
		fmt.Sprintf("%s (line %d): %s %q", b.displayName(), f.Line, f.Label, f.Value),
		map[string]string{"Record": b.displayName(), "Field": f.Label, "Value": f.Value},
		cause)
}

func (b Block) displayName() string {
	if b.Name == "" {
		return fmt.Sprintf("block at line %d", b.Line)
	}
	return b.Name
}
