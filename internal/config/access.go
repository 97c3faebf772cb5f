package config

import (
	"iter"
	"slices"

	"sitecfg/internal/locale"
)

// ActiveSocialLinks yields the active social links in display order. The
// sequence is lazy and can be ranged over any number of times.
func (c *Config) ActiveSocialLinks() iter.Seq[SocialLink] {
	return func(yield func(SocialLink) bool) {
		for _, link := range c.Socials {
			if !link.Active {
				continue
			}
			if !yield(link) {
				return
			}
		}
	}
}

// ResolvedLocales returns the configured locales verbatim, or the default
// locale of env when none are configured.
func (c *Config) ResolvedLocales(env locale.Provider) []string {
	if len(c.Locale) > 0 {
		return slices.Clone(c.Locale)
	}
	if env == nil {
		env = locale.Environment{}
	}
	return []string{env.DefaultLocale()}
}
