package audit

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/core/fraction"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/spell"
	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/unit"
)

func fixtures() (fire, water, stone *unit.Unit) {
	fire = &unit.Unit{
		Name: "Fire", Tier: 1, Multiplier: fraction.One,
		Pay:  unit.Capability{Enabled: true},
		Give: unit.Capability{Enabled: true},
	}
	water = &unit.Unit{
		Name: "Water", Tier: 1, Multiplier: fraction.One,
		Gain: unit.Capability{Enabled: true},
		Take: unit.Capability{Enabled: true},
	}
	stone = &unit.Unit{
		Name: "Stone", Tier: 2, Multiplier: fraction.One,
		Pay: unit.Capability{Enabled: true},
	}
	return fire, water, stone
}

func exchange(in *unit.Unit, inMode unit.Mode, out *unit.Unit, outMode unit.Mode) spell.Spell {
	return spell.Spell{
		Input:  spell.Side{Unit: in, Mode: inMode, Count: 1},
		Output: spell.Side{Unit: out, Mode: outMode, Count: 1},
	}
}

func TestAudit(t *testing.T) {
	fire, water, stone := fixtures()
	units := []*unit.Unit{fire, water, stone}
	spells := []spell.Spell{
		exchange(fire, unit.ModePay, water, unit.ModeGain),
		// Stone cannot drain, so this does not count as using it.
		exchange(fire, unit.ModePay, stone, unit.ModeDrain),
	}

	report := Audit(units, spells)

	tests := []struct {
		name string
		want Usage
	}{
		{name: "Fire", want: Usage{Used: true, UnusedModes: []unit.Mode{unit.ModeGive}}},
		{name: "Water", want: Usage{Used: true, UnusedModes: []unit.Mode{unit.ModeTake}}},
		{name: "Stone", want: Usage{Used: false, UnusedModes: []unit.Mode{unit.ModePay}}},
	}
	for _, tt := range tests {
		got, ok := report.Usage(tt.name)
		if !ok {
			t.Fatalf("no usage for %s", tt.name)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Fatalf("%s usage mismatch (-want +got):\n%s", tt.name, diff)
		}
	}

	if diff := cmp.Diff([]string{"Stone"}, report.Unused()); diff != "" {
		t.Fatalf("unused mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Fire", "Water"}, report.PartiallyUsed()); diff != "" {
		t.Fatalf("partially used mismatch (-want +got):\n%s", diff)
	}
}

func TestAudit_UnusedPay(t *testing.T) {
	_, water, stone := fixtures()
	report := Audit([]*unit.Unit{stone}, []spell.Spell{exchange(water, unit.ModeGain, water, unit.ModeTake)})

	got, _ := report.Usage("Stone")
	if got.Used {
		t.Fatal("expected Stone unused")
	}
	if diff := cmp.Diff([]unit.Mode{unit.ModePay}, got.UnusedModes); diff != "" {
		t.Fatalf("unused modes mismatch (-want +got):\n%s", diff)
	}
}

func TestAudit_Idempotent(t *testing.T) {
	fire, water, stone := fixtures()
	units := []*unit.Unit{fire, water, stone}
	spells := []spell.Spell{exchange(fire, unit.ModeGive, water, unit.ModeTake)}

	first := Audit(units, spells)
	second := Audit(units, spells)
	for _, name := range first.Names() {
		a, _ := first.Usage(name)
		b, _ := second.Usage(name)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Fatalf("%s differs between runs (-first +second):\n%s", name, diff)
		}
	}
	if !fire.Give.Enabled || !fire.Pay.Enabled {
		t.Fatal("audit changed unit capabilities")
	}
}

func TestCounts(t *testing.T) {
	fire, water, stone := fixtures()
	spells := []spell.Spell{
		exchange(fire, unit.ModePay, water, unit.ModeGain),
		exchange(fire, unit.ModeGive, water, unit.ModeTake),
		exchange(stone, unit.ModePay, fire, unit.ModeGain),
	}

	got := Counts([]*unit.Unit{fire, water, stone}, spells)
	want := []UseCount{
		{Name: "Fire", Input: 3, Output: 1},
		{Name: "Water", Input: 0, Output: 3},
		{Name: "Stone", Input: 1, Output: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("counts mismatch (-want +got):\n%s", diff)
	}
	if MaxUses(got) != 3 {
		t.Fatalf("max uses = %d, want 3", MaxUses(got))
	}
}
