package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// platforms lists the social link names the site templates have icons for.
var platforms = []string{
	"Github",
	"Facebook",
	"Instagram",
	"LinkedIn",
	"Mail",
	"Twitter",
	"Twitch",
	"YouTube",
	"WhatsApp",
	"Snapchat",
	"Pinterest",
	"TikTok",
	"CodePen",
	"Discord",
	"GitLab",
	"Reddit",
	"Skype",
	"Steam",
	"Telegram",
	"Mastodon",
}

// Platforms returns the recognized social link names.
func Platforms() []string {
	return slices.Clone(platforms)
}

// IsPlatform reports whether name is a recognized social link name. Matching
// is exact.
func IsPlatform(name string) bool {
	return slices.Contains(platforms, name)
}

func checkPlatform(name string) error {
	if IsPlatform(name) {
		return nil
	}
	if strings.TrimSpace(name) == "" {
		return errors.New("must be set")
	}
	for _, known := range platforms {
		if strings.EqualFold(known, strings.TrimSpace(name)) {
			return fmt.Errorf("is not a recognized platform (did you mean %q?)", known)
		}
	}
	return errors.New("is not a recognized platform")
}
