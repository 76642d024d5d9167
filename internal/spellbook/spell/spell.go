package spell

import (
	"fmt"

	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/core/fraction"
	apperrors "github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/platform/errors"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/balance"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/unit"
)

// SheetSize is how many spells fit on one bulk print sheet.
const SheetSize = 70

// Side is a resolved end of an exchange. Unit points into the registry the
// spell was built from.
type Side struct {
	Unit  *unit.Unit
	Mode  unit.Mode
	Count int
}

// Spell is a balanced spell record.
type Spell struct {
	Name       string
	Tier       int
	Flavor     string
	Set        string
	PowerBoost int
	Input      Side
	Output     Side
	// Ratio is OutputCount/InputCount in lowest terms.
	Ratio fraction.Fraction
}

// Set is a run of consecutive spells sharing a set name.
type Set struct {
	Name   string
	Spells []Spell
}

// Catalog is every built spell grouped into sets in declaration order.
type Catalog struct {
	Sets []Set
}

// Total returns the number of spells across all sets.
func (c Catalog) Total() int {
	total := 0
	for _, s := range c.Sets {
		total += len(s.Spells)
	}
	return total
}

// Spells returns every spell in declaration order.
func (c Catalog) Spells() []Spell {
	out := make([]Spell, 0, c.Total())
	for _, s := range c.Sets {
		out = append(out, s.Spells...)
	}
	return out
}

// Pages splits the flattened catalog into sheets of at most size spells.
// A size below 1 uses SheetSize.
func (c Catalog) Pages(size int) [][]Spell {
	if size < 1 {
		size = SheetSize
	}
	all := c.Spells()
	var pages [][]Spell
	for start := 0; start < len(all); start += size {
		end := min(start+size, len(all))
		pages = append(pages, all[start:end])
	}
	return pages
}

// Builder resolves raw spells against a registry.
type Builder struct {
	registry   *unit.Registry
	calculator *balance.Calculator
}

// NewBuilder returns a Builder. A nil calculator uses the default tables.
func NewBuilder(registry *unit.Registry, calculator *balance.Calculator) *Builder {
	if calculator == nil {
		calculator = balance.New()
	}
	return &Builder{registry: registry, calculator: calculator}
}

// Build resolves raws against registry with the default calculator.
func Build(registry *unit.Registry, raws []RawSpell) (Catalog, error) {
	return NewBuilder(registry, nil).Build(raws)
}

// Build balances every raw spell and groups the results. A spell whose set
// differs from the one before it opens a new group, so a set name that comes
// back later forms a second group.
func (b *Builder) Build(raws []RawSpell) (Catalog, error) {
	var catalog Catalog
	for i, raw := range raws {
		s, err := b.resolve(raw)
		if err != nil {
			return Catalog{}, err
		}
		if i == 0 || catalog.Sets[len(catalog.Sets)-1].Name != s.Set {
			catalog.Sets = append(catalog.Sets, Set{Name: s.Set})
		}
		last := &catalog.Sets[len(catalog.Sets)-1]
		last.Spells = append(last.Spells, s)
	}
	return catalog, nil
}

func (b *Builder) resolve(raw RawSpell) (Spell, error) {
	input, err := b.registry.Lookup(raw.Input.UnitName)
	if err != nil {
		return Spell{}, spellError(raw, err)
	}
	output, err := b.registry.Lookup(raw.Output.UnitName)
	if err != nil {
		return Spell{}, spellError(raw, err)
	}

	result, err := b.calculator.Calculate(balance.Request{
		Tier:       raw.Tier,
		Input:      balance.Side{Unit: input, Mode: raw.Input.Mode},
		Output:     balance.Side{Unit: output, Mode: raw.Output.Mode},
		PowerBoost: raw.PowerBoost,
	})
	if err != nil {
		return Spell{}, spellError(raw, err)
	}

	return Spell{
		Name:       raw.Name,
		Tier:       raw.Tier,
		Flavor:     raw.Flavor,
		Set:        raw.Set,
		PowerBoost: raw.PowerBoost,
		Input:      Side{Unit: input, Mode: raw.Input.Mode, Count: result.InputCount},
		Output:     Side{Unit: output, Mode: raw.Output.Mode, Count: result.OutputCount},
		Ratio:      result.Ratio,
	}, nil
}

func spellError(raw RawSpell, cause error) error {
	return apperrors.WrapWithMetadata(apperrors.CodeOf(cause),
		fmt.Sprintf("spell %q (line %d)", raw.Name, raw.Line),
		map[string]string{"Spell": raw.Name},
		cause)
}
