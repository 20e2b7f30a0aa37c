package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the colour scheme of the viewer and of exported drawings.
type Theme struct {
	Name       string
	Shape      lipgloss.Color
	Selected   lipgloss.Color
	Ray        lipgloss.Color
	Hit        lipgloss.Color
	Axis       lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Warning    lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Shape:      lipgloss.Color("#00ffff"),
		Selected:   lipgloss.Color("#ff00ff"),
		Ray:        lipgloss.Color("#ffff00"),
		Hit:        lipgloss.Color("#00ff00"),
		Axis:       lipgloss.Color("#666666"),
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Warning:    lipgloss.Color("#ff8800"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Shape:      lipgloss.Color("#00ff00"),
		Selected:   lipgloss.Color("#88ff88"),
		Ray:        lipgloss.Color("#00cc00"),
		Hit:        lipgloss.Color("#ffff00"),
		Axis:       lipgloss.Color("#005500"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Warning:    lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Shape:      lipgloss.Color("#ffffff"),
		Selected:   lipgloss.Color("#0088ff"),
		Ray:        lipgloss.Color("#cccccc"),
		Hit:        lipgloss.Color("#00ff00"),
		Axis:       lipgloss.Color("#888888"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Warning:    lipgloss.Color("#ffaa00"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Shape:      lipgloss.Color("#00a8cc"),
		Selected:   lipgloss.Color("#ffd700"),
		Ray:        lipgloss.Color("#0077be"),
		Hit:        lipgloss.Color("#00ff88"),
		Axis:       lipgloss.Color("#4488aa"),
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Warning:    lipgloss.Color("#ffcc00"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Shape:      lipgloss.Color("#ff6b6b"),
		Selected:   lipgloss.Color("#ff9ff3"),
		Ray:        lipgloss.Color("#feca57"),
		Hit:        lipgloss.Color("#5fd068"),
		Axis:       lipgloss.Color("#8b6b8c"),
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Warning:    lipgloss.Color("#ffc048"),
	}

	CurrentTheme = ThemeCyberpunk

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// Color picks the colour an edge of kind k is drawn in.
func (t Theme) Color(k EdgeKind) lipgloss.Color {
	switch k {
	case EdgeSelected:
		return t.Selected
	case EdgeRay:
		return t.Ray
	case EdgeHit:
		return t.Hit
	case EdgeAxis:
		return t.Axis
	default:
		return t.Shape
	}
}

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme moves CurrentTheme along the theme list.
func NextTheme() Theme {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			SetTheme(names[(i+1)%len(names)])
			break
		}
	}
	return CurrentTheme
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
