package config

const (
	defaultLightAndDarkMode = true
	defaultPostPerPage      = 3
)

// Default returns the values used for keys absent from a configuration file.
// Identity fields (website, author, desc, title) have no default and must be
// supplied.
func Default() Config {
	return Config{
		Site: Site{
			LightAndDarkMode: defaultLightAndDarkMode,
			PostPerPage:      defaultPostPerPage,
		},
	}
}
