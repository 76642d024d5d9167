// Package spellbook loads the unit and spell documents, balances every spell,
// audits unit usage and reports or persists the resulting catalog.
package spellbook

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"

	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/platform/otel"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/audit"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/balance"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/phrase"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/spell"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/storage"
	storagesqlite "github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/storage/sqlite"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/unit"
)

var (
	tracer = otel.Tracer("internal/tools/spellbook")
	now    = func() time.Time { return time.Now().UTC() }
)

// Run executes the spellbook pipeline using the provided Config.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	ctx, span := tracer.Start(ctx, "spellbook.run", trace.WithAttributes(
		attribute.String("spellbook.units_path", cfg.UnitsPath),
		attribute.String("spellbook.spells_path", cfg.SpellsPath),
		attribute.Bool("spellbook.dry_run", cfg.DryRun),
	))
	defer span.End()

	report, err := build(ctx, cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build catalog")
		return err
	}

	if !cfg.DryRun {
		if err := persist(ctx, cfg.DBPath, report); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "persist catalog")
			return err
		}
	}

	if cfg.JSONOutput {
		return writeJSON(out, report)
	}
	if err := writeText(out, report); err != nil {
		return err
	}
	if cfg.DryRun {
		_, err = fmt.Fprintln(out, "dry run: catalog not saved")
		return err
	}
	_, err = fmt.Fprintf(out, "saved catalog to %s\n", cfg.DBPath)
	return err
}

func build(ctx context.Context, cfg Config) (Report, error) {
	registry, err := loadUnits(ctx, cfg.UnitsPath)
	if err != nil {
		return Report{}, err
	}
	raws, err := loadSpells(ctx, cfg.SpellsPath)
	if err != nil {
		return Report{}, err
	}

	_, span := tracer.Start(ctx, "spellbook.build")
	calculator := balance.New(
		balance.WithTolerance(cfg.Tolerance),
		balance.WithMaxDenominator(cfg.MaxDenominator),
	)
	catalog, err := spell.NewBuilder(registry, calculator).Build(raws)
	if err != nil {
		span.RecordError(err)
		span.End()
		return Report{}, fmt.Errorf("build spells: %w", err)
	}
	span.SetAttributes(
		attribute.Int("spellbook.spells", catalog.Total()),
		attribute.Int("spellbook.sets", len(catalog.Sets)),
	)
	span.End()
	log.Printf("spellbook: balanced %d spell(s) in %d set group(s)", catalog.Total(), len(catalog.Sets))

	_, span = tracer.Start(ctx, "spellbook.audit")
	usage := audit.Audit(registry.Units(), catalog.Spells())
	span.SetAttributes(attribute.Int("spellbook.unused_units", len(usage.Unused())))
	span.End()

	return buildReport(registry, catalog, usage, cfg.SheetSize, phrase.NewRenderer(localeTag(cfg.locale()))), nil
}

func loadUnits(ctx context.Context, path string) (*unit.Registry, error) {
	_, span := tracer.Start(ctx, "spellbook.load_units")
	defer span.End()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open units: %w", err)
	}
	defer f.Close()

	registry, err := unit.Load(f)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("load units: %w", err)
	}
	span.SetAttributes(attribute.Int("spellbook.units", registry.Len()))
	log.Printf("spellbook: loaded %d unit(s) from %s", registry.Len(), path)
	return registry, nil
}

func loadSpells(ctx context.Context, path string) ([]spell.RawSpell, error) {
	_, span := tracer.Start(ctx, "spellbook.load_spells")
	defer span.End()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open spells: %w", err)
	}
	defer f.Close()

	raws, err := spell.Parse(f)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("load spells: %w", err)
	}
	log.Printf("spellbook: read %d spell declaration(s) from %s", len(raws), path)
	return raws, nil
}

func persist(ctx context.Context, dbPath string, report Report) error {
	ctx, span := tracer.Start(ctx, "spellbook.persist", trace.WithAttributes(
		attribute.String("spellbook.db_path", dbPath),
	))
	defer span.End()

	store, err := openCatalogStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	applied, err := store.Migrations(ctx)
	if err != nil {
		return fmt.Errorf("list catalog migrations: %w", err)
	}
	if len(applied) > 0 {
		log.Printf("spellbook: catalog schema at %s (%d migration(s))", applied[len(applied)-1].Name, len(applied))
	}

	return save(ctx, store, report)
}

func openCatalogStore(path string) (*storagesqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := storagesqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog store: %w", err)
	}
	return store, nil
}

func save(ctx context.Context, store storage.CatalogStore, report Report) error {
	catalog := toStorageCatalog(report, now())
	if err := store.ReplaceCatalog(ctx, catalog); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	log.Printf("spellbook: saved %d unit(s) and %d spell(s)", len(catalog.Units), len(catalog.Spells))
	return nil
}

func localeTag(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	return tag
}
