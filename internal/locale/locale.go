package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Fallback is the locale used when the environment names none.
const Fallback = "en"

// envKeys are consulted in POSIX precedence order.
var envKeys = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// Provider supplies the default locale of the host environment.
type Provider interface {
	DefaultLocale() string
}

// Fixed is a Provider that always returns the same tag.
type Fixed string

// DefaultLocale implements Provider.
func (f Fixed) DefaultLocale() string { return string(f) }

// Environment derives the default locale from POSIX locale variables.
type Environment struct {
	// Lookup reads an environment variable; nil means os.LookupEnv.
	Lookup func(key string) (string, bool)
}

// DefaultLocale implements Provider. The first variable holding a parseable
// locale wins; otherwise Fallback is returned.
func (e Environment) DefaultLocale() string {
	lookup := e.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for _, key := range envKeys {
		value, ok := lookup(key)
		if !ok {
			continue
		}
		if tag, ok := FromPOSIX(value); ok {
			return tag
		}
	}
	return Fallback
}

// FromPOSIX converts a POSIX locale name such as "de_DE.UTF-8@euro" into a
// BCP 47 tag ("de-DE"). The C and POSIX locales carry no language and are
// rejected.
func FromPOSIX(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if idx := strings.IndexAny(value, ".@"); idx >= 0 {
		value = value[:idx]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return "", false
	}
	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return "", false
	}
	return tag.String(), true
}
