package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := stderrors.New("strconv: bad digit")
	err := Wrap(CodeParseInvalidNumber, "Fire (line 3): Tier \"x\"", cause)

	if got := err.Error(); got != "Fire (line 3): Tier \"x\": strconv: bad digit" {
		t.Fatalf("Error() = %q", got)
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
}

func TestCodeHelpers(t *testing.T) {
	inner := WithMetadata(CodeParseUnknownUnit, "unknown unit", map[string]string{"Unit": "Watr"})
	outer := fmt.Errorf("load spells: %w", WrapWithMetadata(CodeParseUnknownUnit, "spell", map[string]string{"Spell": "Drench"}, inner))

	if CodeOf(outer) != CodeParseUnknownUnit {
		t.Fatalf("CodeOf = %s", CodeOf(outer))
	}
	if !IsParse(outer) || IsDomain(outer) {
		t.Fatal("expected parse category")
	}
	if !HasCode(outer, CodeParseUnknownUnit) || HasCode(outer, CodeDomainInvalidTier) {
		t.Fatal("HasCode mismatch")
	}
	if CodeOf(stderrors.New("plain")) != CodeUnknown {
		t.Fatal("expected unknown code for plain error")
	}
	if IsDomain(nil) || IsParse(nil) {
		t.Fatal("nil error has no category")
	}
}

func TestCategory(t *testing.T) {
	tests := []struct {
		code Code
		want Category
	}{
		{CodeDomainDivideByZero, CategoryDomain},
		{CodeParseMissingField, CategoryParse},
		{CodeUnknown, CategoryInternal},
	}
	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.want {
			t.Fatalf("%s category = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestMergedMetadataOuterWins(t *testing.T) {
	inner := WithMetadata(CodeDomainTierGapOutOfRange, "gap", map[string]string{"Unit": "Storm", "Tier": "1"})
	outer := WrapWithMetadata(CodeDomainTierGapOutOfRange, "spell", map[string]string{"Spell": "Tempest", "Tier": "2"}, inner)

	got := MergedMetadata(outer)
	if got["Unit"] != "Storm" || got["Spell"] != "Tempest" || got["Tier"] != "2" {
		t.Fatalf("merged metadata = %v", got)
	}
}

func TestLocalize(t *testing.T) {
	inner := WithMetadata(CodeParseUnknownUnit, "unknown unit", map[string]string{"Unit": "Watr", "Suggestion": "Water"})
	err := WrapWithMetadata(CodeParseUnknownUnit, "spell", map[string]string{"Spell": "Drench"}, inner)

	want := `Drench: Unknown unit "Watr", did you mean "Water"?`
	if got := Localize(err, "en-GB"); got != want {
		t.Fatalf("Localize = %q, want %q", got, want)
	}

	ratio := WrapWithMetadata(CodeDomainNonPositiveRatio, "spell", map[string]string{"Spell": "Debt"},
		WithMetadata(CodeDomainNonPositiveRatio, "ratio", map[string]string{"Ratio": "-2/1"}))
	if got := Localize(ratio, ""); got != "Debt balances to -2/1, counts must be positive" {
		t.Fatalf("Localize = %q", got)
	}

	if got := Localize(stderrors.New("disk full"), "en-US"); got != "disk full" {
		t.Fatalf("Localize plain = %q", got)
	}
}
