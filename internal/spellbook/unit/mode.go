package unit

import (
	"fmt"
	"strings"

	apperrors "github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/platform/errors"
)

// Mode is the verb describing how a unit enters or leaves an exchange.
type Mode string

const (
	ModePay   Mode = "pay"
	ModeGain  Mode = "gain"
	ModeGrant Mode = "grant"
	ModeDrain Mode = "drain"
	ModeGive  Mode = "give"
	ModeTake  Mode = "take"
	ModeNone  Mode = "none"
)

// Modes lists the capability modes in canonical order.
var Modes = []Mode{ModePay, ModeGain, ModeGrant, ModeDrain, ModeGive, ModeTake}

// ParseMode reads a mode name case-insensitively. "none" is accepted.
func ParseMode(text string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(text)))
	if mode == ModeNone || mode.IsCapability() {
		return mode, nil
	}
	return "", apperrors.WithMetadata(apperrors.CodeParseUnknownMode,
		fmt.Sprintf("unknown mode %q", text),
		map[string]string{"Mode": text})
}

// IsCapability reports whether m is one of the six capability modes.
func (m Mode) IsCapability() bool {
	switch m {
	case ModePay, ModeGain, ModeGrant, ModeDrain, ModeGive, ModeTake:
		return true
	default:
		return false
	}
}

// Title returns the mode with its first letter upper-cased ("Pay").
func (m Mode) Title() string {
	if m == "" {
		return ""
	}
	return strings.ToUpper(string(m[:1])) + string(m[1:])
}
