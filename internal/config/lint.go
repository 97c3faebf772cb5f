package config

import (
	"fmt"

	"sitecfg/internal/locale"
)

// Finding is a non-fatal observation about a valid configuration.
type Finding struct {
	Field   string
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

// Lint reports questionable but loadable settings.
func (c *Config) Lint() []Finding {
	var findings []Finding
	for _, dup := range locale.Duplicates(c.Locale) {
		findings = append(findings, Finding{Field: "locale", Message: fmt.Sprintf("duplicate locale %q has no effect", dup)})
	}
	for i, tag := range c.Locale {
		if err := locale.Inspect(tag); err != nil {
			findings = append(findings, Finding{Field: fmt.Sprintf("locale[%d]", i), Message: err.Error()})
		}
	}
	if len(c.Socials) > 0 {
		active := 0
		for range c.ActiveSocialLinks() {
			active++
		}
		if active == 0 {
			findings = append(findings, Finding{Field: "socials", Message: "no social link is active"})
		}
	}
	if logo := c.Site.LogoImage; logo != nil && !logo.Enable && (logo.Width <= 0 || logo.Height <= 0) {
		findings = append(findings, Finding{Field: "site.logo_image", Message: "disabled logo has no dimensions; set width and height before enabling it"})
	}
	return findings
}
