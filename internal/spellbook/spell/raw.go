// Package spell turns spell declarations into balanced card records.
package spell

import (
	"fmt"
	"io"
	"strings"

	apperrors "github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/platform/errors"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/source"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/unit"
)

const (
	labelTier       = "Tier"
	labelInput      = "Input"
	labelOutput     = "Output"
	labelFlavor     = "Flavor"
	labelPowerBoost = "Power boost"
)

// Endpoint names one side of a declared exchange before units are resolved.
type Endpoint struct {
	UnitName string
	Mode     unit.Mode
}

// RawSpell is a spell as declared in a spells document.
type RawSpell struct {
	Name       string
	Tier       int
	Flavor     string
	Input      Endpoint
	Output     Endpoint
	Set        string
	PowerBoost int
	Line       int
}

// Parse reads a spells document.
func Parse(in io.Reader) ([]RawSpell, error) {
	blocks, err := source.Scan(in)
	if err != nil {
		return nil, err
	}
	return FromBlocks(blocks)
}

// ParseString reads a spells document held in memory.
func ParseString(text string) ([]RawSpell, error) {
	return Parse(strings.NewReader(text))
}

// FromBlocks converts scanned blocks into raw spells in declaration order.
func FromBlocks(blocks []source.Block) ([]RawSpell, error) {
	spells := make([]RawSpell, 0, len(blocks))
	for _, block := range blocks {
		raw, err := rawFromBlock(block)
		if err != nil {
			return nil, err
		}
		spells = append(spells, raw)
	}
	return spells, nil
}

func rawFromBlock(block source.Block) (RawSpell, error) {
	if strings.TrimSpace(block.Name) == "" {
		return RawSpell{}, apperrors.WithMetadata(apperrors.CodeParseMissingField,
			fmt.Sprintf("spell at line %d: missing name", block.Line),
			map[string]string{"Record": fmt.Sprintf("spell at line %d", block.Line), "Field": "name"})
	}

	tier, err := block.Int(labelTier)
	if err != nil {
		return RawSpell{}, err
	}
	if tier < unit.MinTier || tier > unit.MaxTier {
		f, _ := block.Lookup(labelTier)
		return RawSpell{}, block.Error(apperrors.CodeParseInvalidTier, f, "expected 1..5")
	}

	input, err := endpoint(block, labelInput)
	if err != nil {
		return RawSpell{}, err
	}
	output, err := endpoint(block, labelOutput)
	if err != nil {
		return RawSpell{}, err
	}

	powerBoost, err := block.IntOr(labelPowerBoost, 0)
	if err != nil {
		return RawSpell{}, err
	}
	if powerBoost < 0 {
		f, _ := block.Lookup(labelPowerBoost)
		return RawSpell{}, block.Error(apperrors.CodeParseInvalidNumber, f, "must be zero or more")
	}

	return RawSpell{
		Name:       block.Name,
		Tier:       tier,
		Flavor:     block.String(labelFlavor, ""),
		Input:      input,
		Output:     output,
		Set:        block.Set,
		PowerBoost: powerBoost,
		Line:       block.Line,
	}, nil
}

// endpoint reads "<Mode> <Unit name>".
func endpoint(block source.Block, label string) (Endpoint, error) {
	f, err := block.Required(label)
	if err != nil {
		return Endpoint{}, err
	}
	modeText, unitName, ok := strings.Cut(strings.TrimSpace(f.Value), " ")
	unitName = strings.TrimSpace(unitName)
	if !ok || unitName == "" {
		return Endpoint{}, block.Error(apperrors.CodeParseMalformedSide, f, `expected "<Mode> <Unit name>"`)
	}
	mode, err := unit.ParseMode(modeText)
	if err != nil {
		return Endpoint{}, block.Wrap(apperrors.CodeParseUnknownMode, f, err)
	}
	return Endpoint{UnitName: unitName, Mode: mode}, nil
}
