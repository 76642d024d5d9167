package source

import (
	stderrors "errors"
	"testing"

	apperrors "github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/platform/errors"
)

func mustBlock(t *testing.T, text string) Block {
	t.Helper()
	blocks, err := ScanString(text)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("expected one block, got %d", len(blocks))
	}
	return blocks[0]
}

func TestBlock_Bool(t *testing.T) {
	b := mustBlock(t, "### U:\n* **Can pay**: yes\n* **Can gain**: no\n* **Can give**: maybe\n")

	if got, err := b.Bool("Can pay"); err != nil || !got {
		t.Fatalf("Bool(Can pay) = %v, %v", got, err)
	}
	if got, err := b.Bool("Can gain"); err != nil || got {
		t.Fatalf("Bool(Can gain) = %v, %v", got, err)
	}
	if got, err := b.Bool("Can take"); err != nil || got {
		t.Fatalf("Bool(absent) = %v, %v", got, err)
	}
	if _, err := b.Bool("Can give"); !apperrors.HasCode(err, apperrors.CodeParseInvalidFlag) {
		t.Fatalf("Bool(maybe) error = %v", err)
	}
}

func TestBlock_Numbers(t *testing.T) {
	b := mustBlock(t, "### U:\n* **Tier**: 2\n* **Multiplier**: 1.25\n* **Bad**: two\n")

	if n, err := b.Int("Tier"); err != nil || n != 2 {
		t.Fatalf("Int(Tier) = %d, %v", n, err)
	}
	if d, err := b.Decimal("Multiplier"); err != nil || d.String() != "1.25" {
		t.Fatalf("Decimal(Multiplier) = %s, %v", d, err)
	}
	if n, err := b.IntOr("Power boost", 0); err != nil || n != 0 {
		t.Fatalf("IntOr(absent) = %d, %v", n, err)
	}
	if _, err := b.Int("Bad"); !apperrors.HasCode(err, apperrors.CodeParseInvalidNumber) {
		t.Fatalf("Int(Bad) error = %v", err)
	}
	if _, err := b.Decimal("Missing"); !apperrors.HasCode(err, apperrors.CodeParseMissingField) {
		t.Fatalf("Decimal(Missing) error = %v", err)
	}
}

func TestBlock_ErrorsNameTheRecord(t *testing.T) {
	b := mustBlock(t, "### Ember:\n* **Tier**: x\n")
	_, err := b.Int("Tier")
	var domainErr *apperrors.Error
	if !stderrors.As(err, &domainErr) {
		t.Fatalf("expected *errors.Error, got %T", err)
	}
	if domainErr.Metadata["Record"] != "Ember" || domainErr.Metadata["Field"] != "Tier" {
		t.Fatalf("metadata = %v", domainErr.Metadata)
	}
}

func TestBlock_UnnamedBlockUsesLine(t *testing.T) {
	b := mustBlock(t, "\n### :\n")
	_, err := b.Required("Tier")
	if err == nil || err.Error() != "block at line 2 (line 2): missing Tier" {
		t.Fatalf("Required() error = %v", err)
	}
}
