package unit

import (
	"testing"

	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/core/fraction"
)

func mustMultiplier(t *testing.T, text string) fraction.Fraction {
	t.Helper()
	f, err := fraction.Parse(text)
	if err != nil {
		t.Fatalf("parse multiplier %q: %v", text, err)
	}
	return f
}
