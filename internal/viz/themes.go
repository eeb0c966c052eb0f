package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/step"
)

// Theme defines the color scheme for the player and formatter.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Roles   map[step.Role]lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:    "classic",
		Primary: lipgloss.Color("#00ffff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666688"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffaa00"),
		Error:   lipgloss.Color("#ff4444"),
		Roles: map[step.Role]lipgloss.Color{
			step.RoleCompared: "#ffcc00",
			step.RoleSwapped:  "#ff4444",
			step.RoleSorted:   "#00ff88",
			step.RoleActive:   "#00ccff",
			step.RoleVisited:  "#888899",
			step.RoleFound:    "#00ff00",
			step.RoleFrontier: "#ff9ff3",
			step.RoleLow:      "#0077be",
			step.RoleMid:      "#ff00ff",
			step.RoleHigh:     "#0077be",
			step.RoleInserted: "#00ff88",
			step.RoleRemoved:  "#ff4444",
			step.RoleUpdated:  "#feca57",
			step.RoleFront:    "#00a8cc",
			step.RoleRear:     "#ff9ff3",
			step.RoleKey:      "#ff6b6b",
			step.RolePointer:  "#ffff00",
		},
	}

	ThemeRetro = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Success: lipgloss.Color("#88ff88"),
		Warning: lipgloss.Color("#ffff00"),
		Error:   lipgloss.Color("#ff0000"),
		Roles: map[step.Role]lipgloss.Color{
			step.RoleCompared: "#ffff00",
			step.RoleSwapped:  "#ff0000",
			step.RoleSorted:   "#88ff88",
			step.RoleActive:   "#ccffcc",
			step.RoleVisited:  "#007700",
			step.RoleFound:    "#88ff88",
			step.RoleFrontier: "#00cc00",
			step.RoleLow:      "#00cc00",
			step.RoleMid:      "#ffff00",
			step.RoleHigh:     "#00cc00",
			step.RoleInserted: "#88ff88",
			step.RoleRemoved:  "#ff0000",
			step.RoleUpdated:  "#ffff00",
			step.RoleFront:    "#00cc00",
			step.RoleRear:     "#00cc00",
			step.RoleKey:      "#ffff00",
			step.RolePointer:  "#ccffcc",
		},
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Primary: lipgloss.Color("#0077be"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Success: lipgloss.Color("#00ff88"),
		Warning: lipgloss.Color("#ffcc00"),
		Error:   lipgloss.Color("#ff4444"),
		Roles: map[step.Role]lipgloss.Color{
			step.RoleCompared: "#ffd700",
			step.RoleSwapped:  "#ff4444",
			step.RoleSorted:   "#00ff88",
			step.RoleActive:   "#00a8cc",
			step.RoleVisited:  "#4488aa",
			step.RoleFound:    "#00ff88",
			step.RoleFrontier: "#88ccff",
			step.RoleLow:      "#88ccff",
			step.RoleMid:      "#ffd700",
			step.RoleHigh:     "#88ccff",
			step.RoleInserted: "#00ff88",
			step.RoleRemoved:  "#ff4444",
			step.RoleUpdated:  "#ffcc00",
			step.RoleFront:    "#00a8cc",
			step.RoleRear:     "#88ccff",
			step.RoleKey:      "#ffd700",
			step.RolePointer:  "#ffffff",
		},
	}

	CurrentTheme = ThemeClassic

	Themes = []Theme{
		ThemeClassic,
		ThemeRetro,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to the classic theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// nextTheme returns the name of the theme after the current one.
func nextTheme() string {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
