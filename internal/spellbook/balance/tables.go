package balance

import (
	"fmt"

	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/core/fraction"
	apperrors "github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/platform/errors"
)

// Tables holds the fixed balance constants.
type Tables struct {
	// SpellScale is indexed by spell tier - 1.
	SpellScale []fraction.Fraction
	// Boosts raise units below the spell tier, indexed by gap - 1.
	Boosts []fraction.Fraction
	// Nerfs lower units above the spell tier, indexed by gap - 1.
	Nerfs []fraction.Fraction
}

// DefaultTables returns the shipped balance constants.
func DefaultTables() Tables {
	return Tables{
		SpellScale: parseAll("1", "1.1", "1.25", "1.5", "2"),
		Boosts:     parseAll("1.1", "1.2", "1.3", "1.4"),
		Nerfs:      parseAll("1.25", "1.5", "2", "3"),
	}
}

func parseAll(values ...string) []fraction.Fraction {
	out := make([]fraction.Fraction, len(values))
	for i, v := range values {
		out[i] = fraction.MustParse(v)
	}
	return out
}

// adjustment reads one table by tier gap. offset shifts the index past the
// usual gap-1 position.
type adjustment struct {
	name   string
	table  []fraction.Fraction
	offset int
}

func (t Tables) inputBoost() adjustment  { return adjustment{name: "boost", table: t.Boosts} }
func (t Tables) inputNerf() adjustment   { return adjustment{name: "nerf", table: t.Nerfs} }
func (t Tables) outputBoost() adjustment { return adjustment{name: "boost", table: t.Boosts} }

// outputNerf reads two entries further into the nerf table than inputNerf.
func (t Tables) outputNerf() adjustment {
	return adjustment{name: "nerf", table: t.Nerfs, offset: 2}
}

// tierAdjustment returns the factor for a unit of unitTier in a spell of
// tier. It fails unless 1 <= |tier-unitTier| and the resulting index lies
// inside the table.
func (a adjustment) tierAdjustment(tier, unitTier int, unitName string) (fraction.Fraction, error) {
	gap := tier - unitTier
	if gap < 0 {
		gap = -gap
	}
	index := gap - 1 + a.offset
	if gap < 1 || index < 0 || index >= len(a.table) {
		return fraction.Fraction{}, apperrors.WithMetadata(apperrors.CodeDomainTierGapOutOfRange,
			fmt.Sprintf("%s tier %d is %d away from spell tier %d: %s table has no entry %d",
				unitName, unitTier, gap, tier, a.name, index),
			map[string]string{
				"Unit":     unitName,
				"UnitTier": fmt.Sprint(unitTier),
				"Tier":     fmt.Sprint(tier),
				"Table":    a.name,
			})
	}
	return a.table[index], nil
}

// spellScale returns the scale for tier.
func (t Tables) spellScale(tier int) (fraction.Fraction, error) {
	if tier < 1 || tier > len(t.SpellScale) {
		return fraction.Fraction{}, invalidTier(tier)
	}
	return t.SpellScale[tier-1], nil
}

func invalidTier(tier int) error {
	return apperrors.WithMetadata(apperrors.CodeDomainInvalidTier,
		fmt.Sprintf("tier %d must be in range 1..5", tier),
		map[string]string{"Tier": fmt.Sprint(tier)})
}
