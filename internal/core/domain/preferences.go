package domain

// ThemeMode selects one of the fixed UI themes.
type ThemeMode string

const (
	ThemeDark      ThemeMode = "dark"
	ThemeLight     ThemeMode = "light"
	ThemePride     ThemeMode = "pride"
	ThemeBW        ThemeMode = "bw"
	ThemeParchment ThemeMode = "parchment"
)

// ThemeModes lists every valid theme, in cycle order.
var ThemeModes = []ThemeMode{ThemeDark, ThemeLight, ThemePride, ThemeBW, ThemeParchment}

// ValidThemeMode reports whether m is one of the fixed themes.
func ValidThemeMode(m ThemeMode) bool {
	for _, t := range ThemeModes {
		if t == m {
			return true
		}
	}
	return false
}

// Preferences holds the scalar user settings. SheetsURL is the optional
// remote-mirror endpoint; empty means the mirror is disabled.
type Preferences struct {
	ThemeMode ThemeMode `json:"themeMode"`
	SheetsURL string    `json:"sheetsURL,omitempty"`
}

// DefaultPreferences returns the settings used before the user changes
// anything.
func DefaultPreferences() Preferences {
	return Preferences{ThemeMode: ThemeDark}
}
