// Package audit reports which unit capabilities the spell catalog exercises.
package audit

import (
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/spell"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/unit"
)

// Usage annotates one unit.
type Usage struct {
	// Used is true when at least one declared capability appears in a spell.
	Used bool
	// UnusedModes lists declared capabilities no spell exercises, in
	// canonical mode order.
	UnusedModes []unit.Mode
}

// Report holds the usage of every audited unit, keyed by unit name.
type Report struct {
	usage map[string]Usage
	order []string
}

// Audit checks every declared capability of units against spells. It only
// reads its inputs, so running it twice yields the same report.
func Audit(units []*unit.Unit, spells []spell.Spell) Report {
	type key struct {
		name string
		mode unit.Mode
	}
	observed := make(map[key]bool, len(spells)*2)
	for _, s := range spells {
		if s.Input.Unit != nil {
			observed[key{s.Input.Unit.Name, s.Input.Mode}] = true
		}
		if s.Output.Unit != nil {
			observed[key{s.Output.Unit.Name, s.Output.Mode}] = true
		}
	}

	report := Report{usage: make(map[string]Usage, len(units))}
	for _, u := range units {
		if u == nil {
			continue
		}
		if _, seen := report.usage[u.Name]; !seen {
			report.order = append(report.order, u.Name)
		}
		var usage Usage
		for _, m := range u.Modes() {
			if observed[key{u.Name, m}] {
				usage.Used = true
			} else {
				usage.UnusedModes = append(usage.UnusedModes, m)
			}
		}
		report.usage[u.Name] = usage
	}
	return report
}

// Usage returns the annotation for the named unit.
func (r Report) Usage(name string) (Usage, bool) {
	u, ok := r.usage[name]
	return u, ok
}

// Names returns audited unit names in the order they were given.
func (r Report) Names() []string {
	return append([]string(nil), r.order...)
}

// Unused returns units that no spell exercises.
func (r Report) Unused() []string {
	var out []string
	for _, name := range r.order {
		if !r.usage[name].Used {
			out = append(out, name)
		}
	}
	return out
}

// PartiallyUsed returns used units that still have unexercised capabilities.
func (r Report) PartiallyUsed() []string {
	var out []string
	for _, name := range r.order {
		u := r.usage[name]
		if u.Used && len(u.UnusedModes) > 0 {
			out = append(out, name)
		}
	}
	return out
}
