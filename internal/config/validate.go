package config

import (
	"fmt"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
)

// Validate ensures the configuration is usable. It reports the first problem
// found as a *ValidationError.
func (c *Config) Validate() error {
	if err := c.validateSite(); err != nil {
		return err
	}
	if err := c.validateLogo(); err != nil {
		return err
	}
	if err := c.validateSocials(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSite() error {
	if reason := checkWebURL(c.Site.Website); reason != "" {
		return invalid("site.website", c.Site.Website, reason)
	}
	for _, field := range []struct {
		key   string
		value string
	}{
		{"site.author", c.Site.Author},
		{"site.title", c.Site.Title},
		{"site.desc", c.Site.Desc},
	} {
		if strings.TrimSpace(field.value) == "" {
			return invalid(field.key, "", "must be set")
		}
	}
	if c.Site.PostPerPage < 1 {
		return invalid("site.post_per_page", strconv.Itoa(c.Site.PostPerPage), "must be >= 1")
	}
	return nil
}

func (c *Config) validateLogo() error {
	logo := c.Site.LogoImage
	if logo == nil || !logo.Enable {
		return nil
	}
	if logo.Width <= 0 {
		return invalid("site.logo_image.width", strconv.Itoa(logo.Width), "must be positive when site.logo_image.enable is true")
	}
	if logo.Height <= 0 {
		return invalid("site.logo_image.height", strconv.Itoa(logo.Height), "must be positive when site.logo_image.enable is true")
	}
	return nil
}

func (c *Config) validateSocials() error {
	for i, link := range c.Socials {
		prefix := fmt.Sprintf("socials[%d]", i)
		if err := checkPlatform(link.Name); err != nil {
			return invalid(prefix+".name", link.Name, err.Error())
		}
		if reason := checkHref(link.Href); reason != "" {
			return invalid(prefix+".href", link.Href, reason)
		}
	}
	return nil
}

// checkWebURL returns a reason when raw is not an absolute http(s) URL.
func checkWebURL(raw string) string {
	if raw == "" {
		return "must be set"
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "is not a well-formed URL"
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "must be an absolute http(s) URL"
	}
	if parsed.Hostname() == "" {
		return "must include a host"
	}
	return checkPort(parsed.Port())
}

func checkPort(port string) string {
	if port == "" {
		return ""
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return "has an out of range port"
	}
	return ""
}

// checkHref accepts absolute http(s) URLs and mailto: URIs carrying at least
// one parseable address.
func checkHref(raw string) string {
	if raw == "" {
		return "must be set"
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "is not a well-formed URL"
	}
	if parsed.Scheme == "mailto" {
		return checkMailto(parsed)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "must be an absolute http(s) URL or a mailto: URI"
	}
	if parsed.Hostname() == "" {
		return "must include a host"
	}
	return checkPort(parsed.Port())
}

func checkMailto(parsed *url.URL) string {
	target := parsed.Opaque
	if target == "" {
		target = parsed.Path
	}
	target, err := url.PathUnescape(target)
	if err != nil || strings.TrimSpace(target) == "" {
		return "mailto: URI must name an address"
	}
	for _, addr := range strings.Split(target, ",") {
		if _, err := mail.ParseAddress(strings.TrimSpace(addr)); err != nil {
			return "mailto: URI has a malformed address"
		}
	}
	return ""
}
