package board

// Theme is the visual theme of the board. The zero value is light.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

// Toggle labels.
const (
	DarkModeLabel  = "🌙 Dark Mode"
	LightModeLabel = "☀️ Light Mode"
)

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Dark reports whether the dark theme is active.
func (t Theme) Dark() bool {
	return t == ThemeDark
}

// Label returns the toggle control text, which names the theme a toggle
// would switch to.
func (t Theme) Label() string {
	if t == ThemeDark {
		return LightModeLabel
	}
	return DarkModeLabel
}

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}
