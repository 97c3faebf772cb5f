package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed sample_site.toml
var sampleTOML string

//go:embed sample_site.yaml
var sampleYAML string

// EnvConfigPath names the environment variable that selects the configuration
// file when no explicit path is given.
const EnvConfigPath = "SITE_CONFIG"

const defaultUserConfigPath = "~/.config/sitecfg/site.toml"

// projectConfigFiles are looked up in the working directory, in order.
var projectConfigFiles = []string{"site.toml", "site.yaml", "site.yml"}

// LogoImage controls the optional header logo.
type LogoImage struct {
	Enable bool `toml:"enable" yaml:"enable" json:"enable"`
	SVG    bool `toml:"svg" yaml:"svg" json:"svg"`
	Width  int  `toml:"width" yaml:"width" json:"width"`
	Height int  `toml:"height" yaml:"height" json:"height"`
}

// Site contains the identity and presentation fields of the blog.
type Site struct {
	Website          string     `toml:"website" yaml:"website" json:"website"`
	Author           string     `toml:"author" yaml:"author" json:"author"`
	Desc             string     `toml:"desc" yaml:"desc" json:"desc"`
	Title            string     `toml:"title" yaml:"title" json:"title"`
	LightAndDarkMode bool       `toml:"light_and_dark_mode" yaml:"light_and_dark_mode" json:"lightAndDarkMode"`
	PostPerPage      int        `toml:"post_per_page" yaml:"post_per_page" json:"postPerPage"`
	LogoImage        *LogoImage `toml:"logo_image,omitempty" yaml:"logo_image,omitempty" json:"logoImage,omitempty"`
}

// SocialLink is an outbound link to a profile or contact method. Slice order
// is display order.
type SocialLink struct {
	Name      string `toml:"name" yaml:"name" json:"name"`
	Href      string `toml:"href" yaml:"href" json:"href"`
	LinkTitle string `toml:"link_title" yaml:"link_title" json:"linkTitle"`
	Active    bool   `toml:"active" yaml:"active" json:"active"`
}

// Config is the complete site configuration.
//
// A *Config returned by this package is validated and must be treated as
// read-only; it is safe to share between goroutines.
type Config struct {
	Site    Site         `toml:"site" yaml:"site" json:"site"`
	Locale  []string     `toml:"locale" yaml:"locale" json:"locale"`
	Socials []SocialLink `toml:"socials" yaml:"socials" json:"socials"`
}

// Format identifies a configuration file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a user supplied format name.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported config format %q (want toml or yaml)", value)
	}
}

// FormatFromPath infers the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("config %s: unsupported extension %q (want .toml, .yaml or .yml)", path, filepath.Ext(path))
	}
}

// DefaultConfigPath returns the absolute path of the per-user configuration file.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultUserConfigPath)
}

// Load locates, parses, and validates the configuration file. It returns the
// validated config together with the path it was read from.
func Load(path string) (*Config, string, error) {
	resolvedPath, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", err
	}

	format, err := FormatFromPath(resolvedPath)
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(resolvedPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, resolvedPath, fmt.Errorf("site config %s: %w (create one with 'sitecfg init')", resolvedPath, fs.ErrNotExist)
		}
		return nil, resolvedPath, fmt.Errorf("open config: %w", err)
	}

	cfg, err := Parse(data, format)
	if err != nil {
		return nil, resolvedPath, err
	}
	return cfg, resolvedPath, nil
}

// Parse decodes, normalizes, and validates configuration data already in memory.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	if err := decode(data, format, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Build normalizes and validates a configuration written as a Go literal. The
// literal is copied; later changes to it do not affect the returned config.
func Build(literal Config) (*Config, error) {
	cfg := literal.clone()
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Sample returns the embedded reference configuration.
func Sample() (*Config, error) {
	return Parse([]byte(sampleTOML), FormatTOML)
}

// SampleData returns the embedded reference configuration in the given encoding.
func SampleData(format Format) []byte {
	if format == FormatYAML {
		return []byte(sampleYAML)
	}
	return []byte(sampleTOML)
}

func decode(data []byte, format Format, cfg *Config) error {
	switch format {
	case FormatTOML:
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		return decoder.Decode(cfg)
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unsupported config format %q", format)
	}
}

func (c Config) clone() Config {
	out := c
	if c.Site.LogoImage != nil {
		logo := *c.Site.LogoImage
		out.Site.LogoImage = &logo
	}
	out.Locale = slices.Clone(c.Locale)
	out.Socials = slices.Clone(c.Socials)
	return out
}

// resolveConfigPath picks exactly one configuration file. Candidates that
// exist side by side in the project directory are an error rather than merged.
func resolveConfigPath(path string) (string, error) {
	if strings.TrimSpace(path) != "" {
		return expandPath(path)
	}
	if value, ok := os.LookupEnv(EnvConfigPath); ok && strings.TrimSpace(value) != "" {
		expanded, err := expandPath(value)
		if err != nil {
			return "", fmt.Errorf("%s: %w", EnvConfigPath, err)
		}
		return expanded, nil
	}

	var found []string
	for _, name := range projectConfigFiles {
		candidate, err := filepath.Abs(name)
		if err != nil {
			return "", err
		}
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			found = append(found, candidate)
		}
	}
	switch len(found) {
	case 0:
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("ambiguous site config: found %s; select one with --config or %s", strings.Join(found, ", "), EnvConfigPath)
	}

	return DefaultConfigPath()
}

func expandPath(pathValue string) (string, error) {
	pathValue = strings.TrimSpace(pathValue)
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// ExpandPath exposes the path expansion rules (tilde, cleaning, absolute) to
// other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
