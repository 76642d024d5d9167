package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/storage"
)

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func sampleCatalog(now time.Time) storage.Catalog {
	return storage.Catalog{
		GeneratedAt: now,
		Units: []storage.UnitRecord{
			{Name: "Fire", Position: 0, Tier: 1, Multiplier: "1/1", Modes: []string{"pay", "give"}, Used: true, UnusedModes: []string{"give"}, InputUses: 1},
			{Name: "Water", Position: 1, Tier: 1, Multiplier: "3/4", Modes: []string{"gain"}, Used: true, OutputUses: 1},
			{Name: "Stone", Position: 2, Tier: 2, Multiplier: "2/1", Modes: []string{"pay"}, UnusedModes: []string{"pay"}},
		},
		Spells: []storage.SpellRecord{
			{
				Position: 0, Name: "Spark", SetName: "Basics", SetIndex: 0, Tier: 1, Flavor: "A small hiss.",
				InputUnit: "Fire", InputMode: "pay", InputCount: 1, InputText: "Pay 1 Fire",
				OutputUnit: "Water", OutputMode: "gain", OutputCount: 2, OutputText: "Gain 2 Water",
				Ratio: "2/1",
			},
		},
	}
}

func TestReplaceCatalogRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	now := time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)
	input := sampleCatalog(now)

	if err := store.ReplaceCatalog(ctx, input); err != nil {
		t.Fatalf("replace catalog: %v", err)
	}

	units, err := store.ListUnits(ctx)
	if err != nil {
		t.Fatalf("list units: %v", err)
	}
	if diff := cmp.Diff(input.Units, units); diff != "" {
		t.Fatalf("units mismatch (-want +got):\n%s", diff)
	}

	spells, err := store.ListSpells(ctx)
	if err != nil {
		t.Fatalf("list spells: %v", err)
	}
	if diff := cmp.Diff(input.Spells, spells); diff != "" {
		t.Fatalf("spells mismatch (-want +got):\n%s", diff)
	}

	generatedAt, err := store.GeneratedAt(ctx)
	if err != nil {
		t.Fatalf("generated at: %v", err)
	}
	if !generatedAt.Equal(now) {
		t.Fatalf("generated at = %v, want %v", generatedAt, now)
	}
}

func TestReplaceCatalogDropsPreviousRows(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	now := time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)

	if err := store.ReplaceCatalog(ctx, sampleCatalog(now)); err != nil {
		t.Fatalf("replace catalog: %v", err)
	}
	next := storage.Catalog{
		GeneratedAt: now.Add(time.Hour),
		Units:       []storage.UnitRecord{{Name: "Air", Tier: 3, Multiplier: "5/2"}},
	}
	if err := store.ReplaceCatalog(ctx, next); err != nil {
		t.Fatalf("replace catalog again: %v", err)
	}

	units, err := store.ListUnits(ctx)
	if err != nil {
		t.Fatalf("list units: %v", err)
	}
	if len(units) != 1 || units[0].Name != "Air" {
		t.Fatalf("units = %+v, want only Air", units)
	}
	spells, err := store.ListSpells(ctx)
	if err != nil {
		t.Fatalf("list spells: %v", err)
	}
	if len(spells) != 0 {
		t.Fatalf("spells = %d, want 0", len(spells))
	}
	if _, err := store.GetUnit(ctx, "Fire"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get replaced unit error = %v, want ErrNotFound", err)
	}
}

func TestReplaceCatalogRejectsDuplicateUnitsAtomically(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	now := time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)
	if err := store.ReplaceCatalog(ctx, sampleCatalog(now)); err != nil {
		t.Fatalf("replace catalog: %v", err)
	}

	bad := storage.Catalog{
		Units: []storage.UnitRecord{
			{Name: "Air", Tier: 1, Multiplier: "1/1"},
			{Name: "Air", Tier: 2, Multiplier: "1/1"},
		},
	}
	err := store.ReplaceCatalog(ctx, bad)
	if !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("replace error = %v, want ErrAlreadyExists", err)
	}

	got, err := store.GetUnit(ctx, "Fire")
	if err != nil {
		t.Fatalf("previous catalog should survive a failed replace: %v", err)
	}
	if got.Multiplier != "1/1" {
		t.Fatalf("multiplier = %q, want 1/1", got.Multiplier)
	}
}

func TestReplaceCatalogRejectsUnknownSpellUnit(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	catalog := sampleCatalog(time.Now())
	catalog.Spells[0].OutputUnit = "Lightning"

	if err := store.ReplaceCatalog(context.Background(), catalog); err == nil {
		t.Fatal("expected foreign key error")
	}
}

func TestGeneratedAtBeforeFirstSave(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.GeneratedAt(context.Background()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("generated at error = %v, want ErrNotFound", err)
	}
}

func TestCancelledContext(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.ReplaceCatalog(ctx, storage.Catalog{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("replace error = %v, want context.Canceled", err)
	}
	if _, err := store.ListSpells(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("list error = %v, want context.Canceled", err)
	}
}

func TestReopenKeepsCatalog(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.ReplaceCatalog(context.Background(), sampleCatalog(time.Now())); err != nil {
		t.Fatalf("replace catalog: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })

	units, err := reopened.ListUnits(context.Background())
	if err != nil {
		t.Fatalf("list units: %v", err)
	}
	if len(units) != 3 {
		t.Fatalf("units = %d, want 3", len(units))
	}
}

func TestMigrationsListsCatalogSchema(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	applied, err := store.Migrations(context.Background())
	if err != nil {
		t.Fatalf("migrations: %v", err)
	}
	if len(applied) != 1 || applied[0].Name != "001_catalog.sql" {
		t.Fatalf("migrations = %+v", applied)
	}
	if applied[0].AppliedAt.IsZero() {
		t.Fatal("expected applied time")
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}
