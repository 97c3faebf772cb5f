package config

import "strings"

// TitlePlaceholder is replaced with the site title inside social link titles.
const TitlePlaceholder = "{title}"

// FormatLinkTitle interpolates siteTitle into a link title template.
func FormatLinkTitle(template, siteTitle string) string {
	return strings.ReplaceAll(template, TitlePlaceholder, siteTitle)
}

// normalize derives computed values. Literal values are otherwise kept
// verbatim; invalid values are left for Validate to reject.
func (c *Config) normalize() {
	for i := range c.Socials {
		c.Socials[i].LinkTitle = FormatLinkTitle(c.Socials[i].LinkTitle, c.Site.Title)
	}
}
