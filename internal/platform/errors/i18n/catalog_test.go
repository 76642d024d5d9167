package i18n

import (
	"strings"
	"testing"
)

func TestGetCatalogFallback(t *testing.T) {
	base := GetCatalog(BaseLocale)
	if base == nil {
		t.Fatal("expected base catalog")
	}
	fallback := GetCatalog("missing-locale")
	if fallback != base {
		t.Fatal("expected fallback to en-US catalog")
	}
	if GetCatalog("") != base {
		t.Fatal("expected blank locale to resolve to en-US")
	}
}

func TestGetCatalogMatchesRegionVariant(t *testing.T) {
	base := GetCatalog(BaseLocale)
	if got := GetCatalog("en-GB"); got != base {
		t.Fatalf("expected en-GB to match en-US catalog, got %q", got.Locale())
	}
}

func TestFormatFallbacks(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "hello {{.Name}}",
	})

	if cat.Format("unknown", nil) != "unknown" {
		t.Fatal("expected code fallback when template missing")
	}
	if got := cat.Format("code", nil); got != "hello " {
		t.Fatalf("missing metadata rendered %q, want empty variable", got)
	}
}

func TestFormatBaseCatalogWithoutMetadata(t *testing.T) {
	cat := GetCatalog(BaseLocale)
	for code := range enUSCatalog.messages {
		got := cat.Format(code, nil)
		if strings.Contains(got, "<no value>") {
			t.Fatalf("%s rendered %q", code, got)
		}
	}
}

func TestFormatOptionalRecord(t *testing.T) {
	cat := GetCatalog(BaseLocale)
	tests := []struct {
		code     Code
		metadata map[string]string
		want     string
	}{
		{CodeParseInvalidNumber, map[string]string{"Value": "abc"}, "abc is not a number"},
		{CodeParseInvalidNumber, map[string]string{"Record": "Spark", "Field": "Tier", "Value": "x"}, "Spark has a non-numeric Tier: x"},
		{CodeParseUnknownMode, map[string]string{"Mode": "Burn"}, "Unknown mode Burn"},
		{CodeParseUnknownMode, map[string]string{"Record": "Spark", "Mode": "Burn"}, "Spark uses unknown mode Burn"},
		{CodeDomainDivideByZero, nil, "Cannot divide by zero"},
		{CodeDomainDivideByZero, map[string]string{"Unit": "Void"}, "Void is worth nothing at this tier, cannot divide by zero"},
	}
	for _, tt := range tests {
		if got := cat.Format(tt.code, tt.metadata); got != tt.want {
			t.Fatalf("Format(%s, %v) = %q, want %q", tt.code, tt.metadata, got, tt.want)
		}
	}
}

func TestFormatTemplateErrorFallback(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "{{ if .Name }}",
	})
	if cat.Format("code", map[string]string{"Name": "X"}) != "{{ if .Name }}" {
		t.Fatal("expected template fallback on parse error")
	}
}

func TestFormatUnknownUnitSuggestion(t *testing.T) {
	cat := GetCatalog(BaseLocale)
	got := cat.Format(CodeParseUnknownUnit, map[string]string{"Unit": "Fier", "Suggestion": "Fire"})
	want := `Unknown unit "Fier", did you mean "Fire"?`
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
	got = cat.Format(CodeParseUnknownUnit, map[string]string{"Unit": "Zzz"})
	if got != `Unknown unit "Zzz"` {
		t.Fatalf("Format() without suggestion = %q", got)
	}
}

func TestRegisterCatalog(t *testing.T) {
	custom := NewCatalog("custom", map[Code]string{"code": "ok"})
	RegisterCatalog("custom", custom)
	if got := GetCatalog("custom"); got != custom {
		t.Fatal("expected registered catalog")
	}
}
