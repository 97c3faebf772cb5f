package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Inspect reports why tag is not a usable BCP 47 locale, or nil. A tag whose
// language is known but whose region or script subtag is not (such as
// "en-EN") is accepted.
func Inspect(tag string) error {
	if strings.TrimSpace(tag) == "" {
		return fmt.Errorf("empty locale tag")
	}
	if _, err := parseLenient(tag); err != nil {
		return fmt.Errorf("locale %q: %w", tag, err)
	}
	return nil
}

// parseLenient parses tag, tolerating unknown subtags as long as the
// language itself was recognized.
func parseLenient(tag string) (language.Tag, error) {
	parsed, err := language.Parse(tag)
	if err == nil {
		return parsed, nil
	}
	var unknown language.ValueError
	if !errors.As(err, &unknown) {
		return language.Und, err
	}
	if _, conf := parsed.Base(); conf != language.Exact {
		return language.Und, err
	}
	return parsed, nil
}

// Duplicates returns the tags that repeat an earlier entry, compared case
// insensitively. Order follows the input.
func Duplicates(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	var dups []string
	for _, tag := range tags {
		key := strings.ToLower(strings.TrimSpace(tag))
		if _, ok := seen[key]; ok {
			dups = append(dups, tag)
			continue
		}
		seen[key] = struct{}{}
	}
	return dups
}

// DisplayName returns the English name of a locale tag, or the tag itself
// when it cannot be named.
func DisplayName(tag string) string {
	parsed, err := parseLenient(tag)
	if err != nil {
		return tag
	}
	if name := display.Tags(language.English).Name(parsed); name != "" {
		return name
	}
	return tag
}
