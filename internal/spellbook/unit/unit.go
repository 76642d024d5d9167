// Package unit holds the catalog of exchange units spells trade between.
package unit

import "github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/core/fraction"

const (
	// MinTier and MaxTier bound unit and spell tiers.
	MinTier = 1
	MaxTier = 5
)

// Capability is one mode a unit supports, with its card phrase template.
//
// Templates use X for the count and S for a plural suffix, e.g.
// "Pay X Ember ChipS". Every capital S is a plural marker.
type Capability struct {
	Enabled     bool
	Description string
}

// Unit is an abstract resource with a tier and exchange multiplier.
type Unit struct {
	Name       string
	Tier       int
	Multiplier fraction.Fraction

	Pay   Capability
	Gain  Capability
	Grant Capability
	Drain Capability
	Give  Capability
	Take  Capability
}

// Capability returns the capability for mode m. Unknown modes yield the zero
// capability.
func (u *Unit) Capability(m Mode) Capability {
	switch m {
	case ModePay:
		return u.Pay
	case ModeGain:
		return u.Gain
	case ModeGrant:
		return u.Grant
	case ModeDrain:
		return u.Drain
	case ModeGive:
		return u.Give
	case ModeTake:
		return u.Take
	default:
		return Capability{}
	}
}

// Can reports whether the unit declares mode m.
func (u *Unit) Can(m Mode) bool {
	return u.Capability(m).Enabled
}

// Description returns the phrase template for mode m.
func (u *Unit) Description(m Mode) string {
	return u.Capability(m).Description
}

// Modes returns the declared capabilities in canonical order.
func (u *Unit) Modes() []Mode {
	var out []Mode
	for _, m := range Modes {
		if u.Can(m) {
			out = append(out, m)
		}
	}
	return out
}

func (u *Unit) setCapability(m Mode, c Capability) {
	switch m {
	case ModePay:
		u.Pay = c
	case ModeGain:
		u.Gain = c
	case ModeGrant:
		u.Grant = c
	case ModeDrain:
		u.Drain = c
	case ModeGive:
		u.Give = c
	case ModeTake:
		u.Take = c
	}
}
