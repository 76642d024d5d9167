// Package storage defines persistence contracts for generated spellbook catalogs.
package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a requested catalog record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a uniqueness-constrained record already exists.
	ErrAlreadyExists = errors.New("record already exists")
)

// UnitRecord stores one unit with its audit annotations.
type UnitRecord struct {
	Name        string
	Position    int
	Tier        int
	Multiplier  string
	Modes       []string
	Used        bool
	UnusedModes []string
	InputUses   int
	OutputUses  int
}

// SpellRecord stores one balanced spell.
type SpellRecord struct {
	Position    int
	Name        string
	SetName     string
	SetIndex    int
	Tier        int
	PowerBoost  int
	Flavor      string
	InputUnit   string
	InputMode   string
	InputCount  int
	InputText   string
	OutputUnit  string
	OutputMode  string
	OutputCount int
	OutputText  string
	Ratio       string
}

// Catalog is one full generated catalog.
type Catalog struct {
	GeneratedAt time.Time
	Units       []UnitRecord
	Spells      []SpellRecord
}

// CatalogStore persists generated catalogs. Saving replaces the previous
// catalog as a whole.
type CatalogStore interface {
	ReplaceCatalog(ctx context.Context, catalog Catalog) error
	ListUnits(ctx context.Context) ([]UnitRecord, error)
	ListSpells(ctx context.Context) ([]SpellRecord, error)
	GetUnit(ctx context.Context, name string) (UnitRecord, error)
	GeneratedAt(ctx context.Context) (time.Time, error)
}
