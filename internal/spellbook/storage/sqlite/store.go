// Package sqlite provides a SQLite-backed catalog storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	sqlitemigrate "github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/platform/storage/sqlitemigrate"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/storage"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/storage/sqlite/migrations"
)

const listSeparator = ","

// Store persists generated catalogs in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite catalog store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL&_pragma=foreign_keys(1)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Migrations lists the schema migrations applied to this database.
func (s *Store) Migrations(ctx context.Context) ([]sqlitemigrate.Migration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	return sqlitemigrate.Applied(ctx, s.sqlDB)
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ReplaceCatalog swaps the stored catalog for catalog in one transaction.
func (s *Store) ReplaceCatalog(ctx context.Context, catalog storage.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	generatedAt := catalog.GeneratedAt.UTC()
	if generatedAt.IsZero() {
		generatedAt = time.Now().UTC()
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace catalog: %w", err)
	}
	if err := replaceCatalog(ctx, tx, catalog, generatedAt); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace catalog: %w", err)
	}
	return nil
}

func replaceCatalog(ctx context.Context, tx *sql.Tx, catalog storage.Catalog, generatedAt time.Time) error {
	for _, table := range []string{"spells", "units"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, u := range catalog.Units {
		name := strings.TrimSpace(u.Name)
		if name == "" {
			return fmt.Errorf("unit name is required")
		}
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO units (
			   name, position, tier, multiplier, modes,
			   used, unused_modes, input_uses, output_uses
			 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			name,
			u.Position,
			u.Tier,
			u.Multiplier,
			joinList(u.Modes),
			boolToInt(u.Used),
			joinList(u.UnusedModes),
			u.InputUses,
			u.OutputUses,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("unit %q: %w", name, storage.ErrAlreadyExists)
			}
			return fmt.Errorf("insert unit %q: %w", name, err)
		}
	}

	for _, sp := range catalog.Spells {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO spells (
			   position, name, set_name, set_index, tier, power_boost, flavor,
			   input_unit, input_mode, input_count, input_text,
			   output_unit, output_mode, output_count, output_text,
			   ratio
			 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			sp.Position,
			sp.Name,
			sp.SetName,
			sp.SetIndex,
			sp.Tier,
			sp.PowerBoost,
			sp.Flavor,
			sp.InputUnit,
			sp.InputMode,
			sp.InputCount,
			sp.InputText,
			sp.OutputUnit,
			sp.OutputMode,
			sp.OutputCount,
			sp.OutputText,
			sp.Ratio,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("spell %q at %d: %w", sp.Name, sp.Position, storage.ErrAlreadyExists)
			}
			return fmt.Errorf("insert spell %q: %w", sp.Name, err)
		}
	}

	_, err := tx.ExecContext(
		ctx,
		`INSERT INTO catalog_runs (id, generated_at, unit_count, spell_count)
		 VALUES (1, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   generated_at = excluded.generated_at,
		   unit_count = excluded.unit_count,
		   spell_count = excluded.spell_count`,
		toMillis(generatedAt),
		len(catalog.Units),
		len(catalog.Spells),
	)
	if err != nil {
		return fmt.Errorf("record catalog run: %w", err)
	}
	return nil
}

// ListUnits returns stored units in declaration order.
func (s *Store) ListUnits(ctx context.Context) ([]storage.UnitRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT name, position, tier, multiplier, modes,
		        used, unused_modes, input_uses, output_uses
		   FROM units
		  ORDER BY position ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var units []storage.UnitRecord
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("list units: %w", err)
		}
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	return units, nil
}

// GetUnit returns one stored unit by name.
func (s *Store) GetUnit(ctx context.Context, name string) (storage.UnitRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.UnitRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.UnitRecord{}, fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.UnitRecord{}, fmt.Errorf("unit name is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT name, position, tier, multiplier, modes,
		        used, unused_modes, input_uses, output_uses
		   FROM units
		  WHERE name = ?`,
		name,
	)
	u, err := scanUnit(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.UnitRecord{}, storage.ErrNotFound
		}
		return storage.UnitRecord{}, fmt.Errorf("get unit: %w", err)
	}
	return u, nil
}

// ListSpells returns stored spells in declaration order.
func (s *Store) ListSpells(ctx context.Context) ([]storage.SpellRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT position, name, set_name, set_index, tier, power_boost, flavor,
		        input_unit, input_mode, input_count, input_text,
		        output_unit, output_mode, output_count, output_text,
		        ratio
		   FROM spells
		  ORDER BY position ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list spells: %w", err)
	}
	defer rows.Close()

	var spells []storage.SpellRecord
	for rows.Next() {
		var sp storage.SpellRecord
		if err := rows.Scan(
			&sp.Position,
			&sp.Name,
			&sp.SetName,
			&sp.SetIndex,
			&sp.Tier,
			&sp.PowerBoost,
			&sp.Flavor,
			&sp.InputUnit,
			&sp.InputMode,
			&sp.InputCount,
			&sp.InputText,
			&sp.OutputUnit,
			&sp.OutputMode,
			&sp.OutputCount,
			&sp.OutputText,
			&sp.Ratio,
		); err != nil {
			return nil, fmt.Errorf("list spells: %w", err)
		}
		spells = append(spells, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list spells: %w", err)
	}
	return spells, nil
}

// GeneratedAt returns when the stored catalog was produced.
func (s *Store) GeneratedAt(ctx context.Context) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}
	if s == nil || s.sqlDB == nil {
		return time.Time{}, fmt.Errorf("storage is not configured")
	}

	var generatedAt int64
	err := s.sqlDB.QueryRowContext(ctx, `SELECT generated_at FROM catalog_runs WHERE id = 1`).Scan(&generatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, storage.ErrNotFound
		}
		return time.Time{}, fmt.Errorf("get catalog run: %w", err)
	}
	return fromMillis(generatedAt), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUnit(row rowScanner) (storage.UnitRecord, error) {
	var (
		u           storage.UnitRecord
		modes       string
		used        int
		unusedModes string
	)
	if err := row.Scan(
		&u.Name,
		&u.Position,
		&u.Tier,
		&u.Multiplier,
		&modes,
		&used,
		&unusedModes,
		&u.InputUses,
		&u.OutputUses,
	); err != nil {
		return storage.UnitRecord{}, err
	}
	u.Modes = splitList(modes)
	u.Used = used != 0
	u.UnusedModes = splitList(unusedModes)
	return u, nil
}

func joinList(values []string) string {
	return strings.Join(values, listSeparator)
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, listSeparator)
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var _ storage.CatalogStore = (*Store)(nil)
