package spellbook

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/audit"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/phrase"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/spell"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/unit"
)

// Report is the printable result of one run.
type Report struct {
	Sets          []SetReport  `json:"sets"`
	Units         []UnitReport `json:"units"`
	Unused        []string     `json:"unused"`
	PartiallyUsed []string     `json:"partially_used"`
	Total         int          `json:"total"`
	Sheets        int          `json:"sheets"`
	// MaxUses is the largest per-unit input or output count, the scale of
	// the unit usage graph.
	MaxUses int `json:"max_uses"`
}

// SetReport is one contiguous group of spells.
type SetReport struct {
	Name   string        `json:"name"`
	Spells []SpellReport `json:"spells"`
}

// SpellReport is one balanced spell with its card text.
type SpellReport struct {
	Name        string `json:"name"`
	Tier        int    `json:"tier"`
	PowerBoost  int    `json:"power_boost,omitempty"`
	Flavor      string `json:"flavor,omitempty"`
	InputUnit   string `json:"input_unit"`
	InputMode   string `json:"input_mode"`
	InputCount  int    `json:"input_count"`
	InputText   string `json:"input_text"`
	OutputUnit  string `json:"output_unit"`
	OutputMode  string `json:"output_mode"`
	OutputCount int    `json:"output_count"`
	OutputText  string `json:"output_text"`
	Ratio       string `json:"ratio"`
}

// UnitReport is one unit in unit sheet order with its usage.
type UnitReport struct {
	Name        string   `json:"name"`
	Tier        int      `json:"tier"`
	Multiplier  string   `json:"multiplier"`
	Modes       []string `json:"modes"`
	Used        bool     `json:"used"`
	UnusedModes []string `json:"unused_modes,omitempty"`
	InputUses   int      `json:"input_uses"`
	OutputUses  int      `json:"output_uses"`
}

func buildReport(registry *unit.Registry, catalog spell.Catalog, usage audit.Report, sheetSize int, renderer *phrase.Renderer) Report {
	report := Report{
		Unused:        usage.Unused(),
		PartiallyUsed: usage.PartiallyUsed(),
		Total:         catalog.Total(),
		Sheets:        len(catalog.Pages(sheetSize)),
	}

	for _, set := range catalog.Sets {
		sr := SetReport{Name: set.Name}
		for _, s := range set.Spells {
			sr.Spells = append(sr.Spells, SpellReport{
				Name:        s.Name,
				Tier:        s.Tier,
				PowerBoost:  s.PowerBoost,
				Flavor:      s.Flavor,
				InputUnit:   s.Input.Unit.Name,
				InputMode:   string(s.Input.Mode),
				InputCount:  s.Input.Count,
				InputText:   sideText(renderer, s.Input),
				OutputUnit:  s.Output.Unit.Name,
				OutputMode:  string(s.Output.Mode),
				OutputCount: s.Output.Count,
				OutputText:  sideText(renderer, s.Output),
				Ratio:       s.Ratio.String(),
			})
		}
		report.Sets = append(report.Sets, sr)
	}

	useCounts := audit.Counts(registry.Units(), catalog.Spells())
	report.MaxUses = audit.MaxUses(useCounts)
	counts := make(map[string]audit.UseCount, len(useCounts))
	for _, c := range useCounts {
		counts[c.Name] = c
	}
	for _, u := range registry.Sorted() {
		ur := UnitReport{
			Name:       u.Name,
			Tier:       u.Tier,
			Multiplier: u.Multiplier.String(),
			Modes:      modeStrings(u.Modes()),
			InputUses:  counts[u.Name].Input,
			OutputUses: counts[u.Name].Output,
		}
		if usage, ok := usage.Usage(u.Name); ok {
			ur.Used = usage.Used
			ur.UnusedModes = modeStrings(usage.UnusedModes)
		}
		report.Units = append(report.Units, ur)
	}
	return report
}

// sideText renders the unit's card phrase, or "<Mode> <count> <Unit>" when the
// unit declares no template for the mode.
func sideText(renderer *phrase.Renderer, side spell.Side) string {
	if text := renderer.Describe(side, true); text != "" {
		return text
	}
	return fmt.Sprintf("%s %d %s", side.Mode.Title(), side.Count, side.Unit.Name)
}

func modeStrings(modes []unit.Mode) []string {
	if len(modes) == 0 {
		return nil
	}
	out := make([]string, len(modes))
	for i, m := range modes {
		out[i] = string(m)
	}
	return out
}

func writeJSON(out io.Writer, report Report) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func writeText(out io.Writer, report Report) error {
	var b strings.Builder
	for _, set := range report.Sets {
		name := set.Name
		if name == "" {
			name = "(no set)"
		}
		fmt.Fprintf(&b, "## %s\n", name)
		for _, s := range set.Spells {
			fmt.Fprintf(&b, "  %s (tier %d): %s → %s\n", s.Name, s.Tier, s.InputText, s.OutputText)
		}
	}
	fmt.Fprintf(&b, "\n%d spell(s) on %d sheet(s)\n", report.Total, report.Sheets)

	if len(report.Unused) > 0 {
		fmt.Fprintf(&b, "Unused units: %s\n", strings.Join(report.Unused, ", "))
	}
	if len(report.PartiallyUsed) > 0 {
		byName := make(map[string]UnitReport, len(report.Units))
		for _, u := range report.Units {
			byName[u.Name] = u
		}
		parts := make([]string, 0, len(report.PartiallyUsed))
		for _, name := range report.PartiallyUsed {
			parts = append(parts, fmt.Sprintf("%s (%s)", name, strings.Join(byName[name].UnusedModes, ", ")))
		}
		fmt.Fprintf(&b, "Partially used units: %s\n", strings.Join(parts, "; "))
	}

	_, err := io.WriteString(out, b.String())
	return err
}
