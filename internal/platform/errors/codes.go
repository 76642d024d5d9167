// Package errors provides structured error handling with i18n support.
package errors

import "strings"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Arithmetic errors
	CodeDomainZeroDenominator          Code = "DOMAIN_ZERO_DENOMINATOR"
	CodeDomainNonFinite                Code = "DOMAIN_NON_FINITE"
	CodeDomainDivideByZero             Code = "DOMAIN_DIVIDE_BY_ZERO"
	CodeDomainToleranceOutOfRange      Code = "DOMAIN_TOLERANCE_OUT_OF_RANGE"
	CodeDomainMaxDenominatorOutOfRange Code = "DOMAIN_MAX_DENOMINATOR_OUT_OF_RANGE"

	// Balance errors
	CodeDomainTierGapOutOfRange Code = "DOMAIN_TIER_GAP_OUT_OF_RANGE"
	CodeDomainInvalidTier       Code = "DOMAIN_INVALID_TIER"
	CodeDomainInvalidPowerBoost Code = "DOMAIN_INVALID_POWER_BOOST"
	CodeDomainMissingUnit       Code = "DOMAIN_MISSING_UNIT"
	CodeDomainNonPositiveRatio  Code = "DOMAIN_NON_POSITIVE_RATIO"

	// Source text errors
	CodeParseMalformedHeading Code = "PARSE_MALFORMED_HEADING"
	CodeParseMissingField     Code = "PARSE_MISSING_FIELD"
	CodeParseInvalidNumber    Code = "PARSE_INVALID_NUMBER"
	CodeParseInvalidTier      Code = "PARSE_INVALID_TIER"
	CodeParseInvalidFlag      Code = "PARSE_INVALID_FLAG"
	CodeParseUnknownUnit      Code = "PARSE_UNKNOWN_UNIT"
	CodeParseUnknownMode      Code = "PARSE_UNKNOWN_MODE"
	CodeParseMalformedSide    Code = "PARSE_MALFORMED_SIDE"
)

// Category groups codes into the two failure families callers branch on.
type Category string

const (
	// CategoryDomain covers invalid arithmetic or balance input.
	CategoryDomain Category = "domain"
	// CategoryParse covers malformed or incomplete source text.
	CategoryParse Category = "parse"
	// CategoryInternal covers anything else.
	CategoryInternal Category = "internal"
)

// Category maps a code to its failure family.
func (c Code) Category() Category {
	switch {
	case strings.HasPrefix(string(c), "DOMAIN_"):
		return CategoryDomain
	case strings.HasPrefix(string(c), "PARSE_"):
		return CategoryParse
	default:
		return CategoryInternal
	}
}
