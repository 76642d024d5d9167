package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/Jacks-underscore-username/Wizarding-Academy-for-Magic/internal/platform/errors/i18n"
)

// MergedMetadata collects the metadata of every *Error in err's chain. Outer
// errors win on key clashes.
func MergedMetadata(err error) map[string]string {
	var chain []*Error
	for current := err; current != nil; current = stderrors.Unwrap(current) {
		if e, ok := current.(*Error); ok {
			chain = append(chain, e)
		}
	}
	merged := map[string]string{}
	for i := len(chain) - 1; i >= 0; i-- {
		for k, v := range chain[i].Metadata {
			merged[k] = v
		}
	}
	return merged
}

// Localize renders a user-facing message for err in locale. Errors without a
// code fall back to err.Error().
func Localize(err error, locale string) string {
	if err == nil {
		return ""
	}
	code := CodeOf(err)
	if code == CodeUnknown {
		return err.Error()
	}
	metadata := MergedMetadata(err)
	message := i18n.GetCatalog(locale).Format(string(code), metadata)
	if spell := metadata["Spell"]; spell != "" && !strings.Contains(message, spell) {
		message = fmt.Sprintf("%s: %s", spell, message)
	}
	return message
}
