package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeDomainZeroDenominator          = "DOMAIN_ZERO_DENOMINATOR"
	CodeDomainNonFinite                = "DOMAIN_NON_FINITE"
	CodeDomainDivideByZero             = "DOMAIN_DIVIDE_BY_ZERO"
	CodeDomainToleranceOutOfRange      = "DOMAIN_TOLERANCE_OUT_OF_RANGE"
	CodeDomainMaxDenominatorOutOfRange = "DOMAIN_MAX_DENOMINATOR_OUT_OF_RANGE"
	CodeDomainTierGapOutOfRange        = "DOMAIN_TIER_GAP_OUT_OF_RANGE"
	CodeDomainInvalidTier              = "DOMAIN_INVALID_TIER"
	CodeDomainInvalidPowerBoost        = "DOMAIN_INVALID_POWER_BOOST"
	CodeDomainMissingUnit              = "DOMAIN_MISSING_UNIT"
	CodeDomainNonPositiveRatio         = "DOMAIN_NON_POSITIVE_RATIO"
	CodeParseMalformedHeading          = "PARSE_MALFORMED_HEADING"
	CodeParseMissingField              = "PARSE_MISSING_FIELD"
	CodeParseInvalidNumber             = "PARSE_INVALID_NUMBER"
	CodeParseInvalidTier               = "PARSE_INVALID_TIER"
	CodeParseInvalidFlag               = "PARSE_INVALID_FLAG"
	CodeParseUnknownUnit               = "PARSE_UNKNOWN_UNIT"
	CodeParseUnknownMode               = "PARSE_UNKNOWN_MODE"
	CodeParseMalformedSide             = "PARSE_MALFORMED_SIDE"
)

var enUSCatalog = &Catalog{
	locale: BaseLocale,
	messages: map[Code]string{
		// Arithmetic errors
		CodeDomainZeroDenominator:          "Denominator cannot be zero",
		CodeDomainNonFinite:                "Fraction inputs must be finite numbers",
		CodeDomainDivideByZero:             "{{if .Unit}}{{.Unit}} is worth nothing at this tier, cannot divide by zero{{else}}Cannot divide by zero{{end}}",
		CodeDomainToleranceOutOfRange:      "Tolerance {{.Tolerance}}% must be between 0 and 100 (exclusive)",
		CodeDomainMaxDenominatorOutOfRange: "Maximum approximation denominator {{.MaxDenominator}} must be at least 1",

		// Balance errors
		CodeDomainTierGapOutOfRange: "{{.Unit}} is too far from tier {{.Tier}} to balance",
		CodeDomainInvalidTier:       "Tier {{.Tier}} must be in range 1..5",
		CodeDomainInvalidPowerBoost: "Power boost {{.PowerBoost}} must be zero or more",
		CodeDomainMissingUnit:       "Both sides of an exchange need a unit",
		CodeDomainNonPositiveRatio:  "{{if .Spell}}{{.Spell}}{{else}}Exchange{{end}} balances to {{.Ratio}}, counts must be positive",

		// Source text errors
		CodeParseMalformedHeading: "Heading {{.Heading}} must end with a colon",
		CodeParseMissingField:     "{{.Record}} is missing {{.Field}}",
		CodeParseInvalidNumber:    "{{if .Record}}{{.Record}} has a non-numeric {{.Field}}: {{.Value}}{{else}}{{.Value}} is not a number{{end}}",
		CodeParseInvalidTier:      "{{.Record}} has tier {{.Value}}, expected 1..5",
		CodeParseInvalidFlag:      "{{.Record}} has {{.Field}} set to {{.Value}}, expected yes or no",
		CodeParseUnknownUnit:      "Unknown unit \"{{.Unit}}\"{{if .Suggestion}}, did you mean \"{{.Suggestion}}\"?{{end}}",
		CodeParseUnknownMode:      "{{if .Record}}{{.Record}} uses unknown mode {{.Mode}}{{else}}Unknown mode {{.Mode}}{{end}}",
		CodeParseMalformedSide:    "{{.Record}} has a malformed {{.Field}}: {{.Value}}",
	},
}
