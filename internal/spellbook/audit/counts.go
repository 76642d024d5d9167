package audit

import (
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/spell"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/unit"
)

// UseCount is how heavily spells lean on one unit.
type UseCount struct {
	Name   string
	Input  int
	Output int
}

// Counts tallies input and output appearances per unit, in the order of
// units. A give input or a take output counts twice.
func Counts(units []*unit.Unit, spells []spell.Spell) []UseCount {
	index := make(map[string]int, len(units))
	out := make([]UseCount, 0, len(units))
	for _, u := range units {
		if u == nil {
			continue
		}
		if _, seen := index[u.Name]; seen {
			continue
		}
		index[u.Name] = len(out)
		out = append(out, UseCount{Name: u.Name})
	}

	for _, s := range spells {
		if s.Input.Unit != nil {
			if i, ok := index[s.Input.Unit.Name]; ok {
				out[i].Input += weight(s.Input.Mode, unit.ModeGive)
			}
		}
		if s.Output.Unit != nil {
			if i, ok := index[s.Output.Unit.Name]; ok {
				out[i].Output += weight(s.Output.Mode, unit.ModeTake)
			}
		}
	}
	return out
}

// MaxUses returns the largest single input or output count.
func MaxUses(counts []UseCount) int {
	highest := 0
	for _, c := range counts {
		highest = max(highest, c.Input, c.Output)
	}
	return highest
}

func weight(mode, doubled unit.Mode) int {
	if mode == doubled {
		return 2
	}
	return 1
}
