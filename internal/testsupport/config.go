package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"sitecfg/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	cfg *config.Config
}

// NewConfig produces a valid configuration literal with one active and one
// inactive social link. The result has not been passed through config.Build.
func NewConfig(t testing.TB, opts ...ConfigOption) config.Config {
	t.Helper()

	cfg := config.Config{
		Site: config.Site{
			Website:          "https://blog.example.com/",
			Author:           "Test Author",
			Desc:             "A blog used in tests",
			Title:            "Test Blog",
			LightAndDarkMode: true,
			PostPerPage:      10,
		},
		Locale: []string{"en-US"},
		Socials: []config.SocialLink{
			{Name: "Github", Href: "https://github.com/example", LinkTitle: "Test Blog on Github", Active: true},
			{Name: "Mail", Href: "mailto:author@example.com", LinkTitle: "Send an email to Test Blog", Active: false},
		},
	}

	builder := &configBuilder{cfg: &cfg}
	for _, opt := range opts {
		opt(builder)
	}
	return cfg
}

// WithSocials replaces the social links.
func WithSocials(links ...config.SocialLink) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Socials = links
	}
}

// WithLocales replaces the locale list; no arguments clears it.
func WithLocales(tags ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Locale = tags
	}
}

// WithPostPerPage overrides the pagination size.
func WithPostPerPage(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Site.PostPerPage = n
	}
}

// WithWebsite overrides the site URL.
func WithWebsite(website string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Site.Website = website
	}
}

// WithLogo sets the logo options.
func WithLogo(logo config.LogoImage) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Site.LogoImage = &logo
	}
}

// WriteConfig writes body to dir/name and returns the full path.
func WriteConfig(t testing.TB, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteEncoded encodes cfg in the given format and writes it to dir/name.
func WriteEncoded(t testing.TB, dir, name string, format config.Format, cfg config.Config) string {
	t.Helper()

	var (
		data []byte
		err  error
	)
	switch format {
	case config.FormatYAML:
		data, err = yaml.Marshal(cfg)
	default:
		data, err = toml.Marshal(cfg)
	}
	if err != nil {
		t.Fatalf("encode %s config: %v", format, err)
	}
	return WriteConfig(t, dir, name, string(data))
}
