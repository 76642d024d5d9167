// Package phrase renders the card text for one side of a spell.
//
// A unit declares a template per mode such as "Pay X Ember ChipS". X becomes
// the count and every capital S becomes a plural suffix: nothing for a count
// of one and "s" otherwise.
//
// Mode none has no template of its own and renders as "", even for a unit
// that declares a take template. Callers print their own fallback text.
package phrase

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/spellbook/spell"
)

// Renderer applies locale-aware casing to templates.
type Renderer struct {
	tag language.Tag
}

// NewRenderer returns a Renderer for tag.
func NewRenderer(tag language.Tag) *Renderer {
	return &Renderer{tag: tag}
}

var english = NewRenderer(language.English)

// Describe renders side with English casing.
func Describe(side spell.Side, capitalize bool) string {
	return english.Describe(side, capitalize)
}

// Describe renders the template side.Unit declares for side.Mode. A missing
// unit, an unnamed unit or an empty template renders as "".
func (r *Renderer) Describe(side spell.Side, capitalize bool) string {
	if side.Unit == nil || side.Unit.Name == "" {
		return ""
	}
	return r.Render(side.Unit.Description(side.Mode), side.Count, capitalize)
}

// Render fills template for count.
func (r *Renderer) Render(template string, count int, capitalize bool) string {
	if template == "" {
		return ""
	}
	text := mapFirst(template, cases.Lower(r.tag))

	plural := "s"
	if count == 1 {
		plural = ""
	}
	text = strings.ReplaceAll(text, "S", plural)
	text = strings.ReplaceAll(text, "X", strconv.Itoa(count))

	if capitalize {
		text = mapFirst(text, cases.Upper(r.tag))
	}
	return text
}

func mapFirst(text string, caser cases.Caser) string {
	_, size := utf8.DecodeRuneInString(text)
	if size == 0 {
		return text
	}
	return caser.String(text[:size]) + text[size:]
}
