package viz

import "github.com/charmbracelet/lipgloss"

// Theme picks the hues for clockwise and counter-clockwise clocks and the
// panel accents.
type Theme struct {
	Name        string
	PositiveHue float64
	NegativeHue float64
	Accent      lipgloss.Color
	Muted       lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:        "classic",
		PositiveHue: 130, // green
		NegativeHue: 355, // red
		Accent:      lipgloss.Color("86"),
		Muted:       lipgloss.Color("240"),
	}

	ThemeOcean = Theme{
		Name:        "ocean",
		PositiveHue: 195,
		NegativeHue: 45,
		Accent:      lipgloss.Color("#00a8cc"),
		Muted:       lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:        "sunset",
		PositiveHue: 45,
		NegativeHue: 300,
		Accent:      lipgloss.Color("#ff6b6b"),
		Muted:       lipgloss.Color("#8b6b8c"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClassic
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
