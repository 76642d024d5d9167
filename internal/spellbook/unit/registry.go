package unit

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/shopspring/decimal"

	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/core/fraction"
	apperrors "github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/platform/errors"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/source"
)

const (
	labelTier       = "Tier"
	labelMultiplier = "Multiplier"
)

// Registry owns every Unit loaded from one units document.
type Registry struct {
	units map[string]*Unit
	order []string
}

// NewRegistry builds a registry from already-constructed units. A later unit
// with the same name replaces an earlier one but keeps its position.
func NewRegistry(units ...Unit) *Registry {
	r := &Registry{units: make(map[string]*Unit, len(units))}
	for _, u := range units {
		r.put(u)
	}
	return r
}

// Load reads a units document.
func Load(in io.Reader) (*Registry, error) {
	blocks, err := source.Scan(in)
	if err != nil {
		return nil, err
	}
	return FromBlocks(blocks)
}

// LoadString reads a units document held in memory.
func LoadString(text string) (*Registry, error) {
	return Load(strings.NewReader(text))
}

// FromBlocks converts scanned blocks into units. The first invalid block
// aborts the load.
func FromBlocks(blocks []source.Block) (*Registry, error) {
	r := &Registry{units: make(map[string]*Unit, len(blocks))}
	for _, block := range blocks {
		u, err := unitFromBlock(block)
		if err != nil {
			return nil, err
		}
		r.put(u)
	}
	return r, nil
}

func unitFromBlock(block source.Block) (Unit, error) {
	if strings.TrimSpace(block.Name) == "" {
		return Unit{}, apperrors.WithMetadata(apperrors.CodeParseMissingField,
			fmt.Sprintf("unit at line %d: missing name", block.Line),
			map[string]string{"Record": fmt.Sprintf("unit at line %d", block.Line), "Field": "name"})
	}

	tier, err := block.Int(labelTier)
	if err != nil {
		return Unit{}, err
	}
	if tier < MinTier || tier > MaxTier {
		f, _ := block.Lookup(labelTier)
		return Unit{}, block.Error(apperrors.CodeParseInvalidTier, f, "expected 1..5")
	}

	rawMultiplier, err := block.Decimal(labelMultiplier)
	if err != nil {
		return Unit{}, err
	}
	multiplier, err := fraction.FromDecimal(rawMultiplier, decimal.NewFromInt(1))
	if err != nil {
		return Unit{}, err
	}

	u := Unit{
		Name:       block.Name,
		Tier:       tier,
		Multiplier: multiplier,
	}
	for _, m := range Modes {
		enabled, err := block.Bool("Can " + string(m))
		if err != nil {
			return Unit{}, err
		}
		u.setCapability(m, Capability{
			Enabled:     enabled,
			Description: block.String(m.Title()+" description", ""),
		})
	}
	return u, nil
}

func (r *Registry) put(u Unit) {
	if _, exists := r.units[u.Name]; !exists {
		r.order = append(r.order, u.Name)
	}
	stored := u
	r.units[u.Name] = &stored
}

// Len returns the number of distinct units.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.units)
}

// Get returns the unit named name.
func (r *Registry) Get(name string) (*Unit, bool) {
	if r == nil {
		return nil, false
	}
	u, ok := r.units[name]
	return u, ok
}

// Lookup returns the unit named name, or a parse error suggesting the closest
// known name.
func (r *Registry) Lookup(name string) (*Unit, error) {
	if u, ok := r.Get(name); ok {
		return u, nil
	}
	metadata := map[string]string{"Unit": name}
	message := fmt.Sprintf("unknown unit %q", name)
	if suggestion := r.suggest(name); suggestion != "" {
		metadata["Suggestion"] = suggestion
		message += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return nil, apperrors.WithMetadata(apperrors.CodeParseUnknownUnit, message, metadata)
}

// Names returns unit names in declaration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.order...)
}

// Units returns the units in declaration order.
func (r *Registry) Units() []*Unit {
	if r == nil {
		return nil
	}
	out := make([]*Unit, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.units[name])
	}
	return out
}

// Sorted returns the units ordered by tier, then multiplier, then name.
func (r *Registry) Sorted() []*Unit {
	out := r.Units()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Tier != out[j].Tier {
			return out[i].Tier < out[j].Tier
		}
		if c := out[i].Multiplier.Cmp(out[j].Multiplier); c != 0 {
			return c < 0
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// suggest returns the known name closest to name by edit distance, or "" when
// nothing is close enough.
func (r *Registry) suggest(name string) string {
	if r == nil || strings.TrimSpace(name) == "" {
		return ""
	}
	needle := strings.ToLower(name)
	best := ""
	bestDist := -1
	for _, candidate := range r.order {
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(candidate))
		if dist > suggestionLimit(len(candidate)) {
			continue
		}
		if bestDist < 0 || dist < bestDist || (dist == bestDist && candidate < best) {
			best = candidate
			bestDist = dist
		}
	}
	return best
}

func suggestionLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
