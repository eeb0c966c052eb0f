package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/san-kum/algoviz/internal/step"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)
	panelStyle = lipgloss.NewStyle().Padding(1, 2)
	labelStyle = lipgloss.NewStyle().Width(10)
	helpStyle  = lipgloss.NewStyle().Italic(true).MarginTop(1)
)

// rolePriority orders roles when an element holds several; the first match
// decides its color.
var rolePriority = []step.Role{
	step.RoleFound,
	step.RoleRemoved,
	step.RoleInserted,
	step.RoleUpdated,
	step.RoleSwapped,
	step.RoleCompared,
	step.RoleKey,
	step.RoleMid,
	step.RoleLow,
	step.RoleHigh,
	step.RoleActive,
	step.RolePointer,
	step.RoleFront,
	step.RoleRear,
	step.RoleFrontier,
	step.RoleSorted,
	step.RoleVisited,
}

// DisableColor switches lipgloss to plain ASCII output.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func subtle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted)
}

func errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Error)
}

func messageStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Text)
}

// roleOf returns the highest-priority role held by id.
func roleOf(h step.Highlights, id string) (step.Role, bool) {
	for _, r := range rolePriority {
		if h.Has(r, id) {
			return r, true
		}
	}
	return "", false
}

// paint renders text in the color of the role id holds, if any.
func paint(h step.Highlights, id, text string) string {
	r, ok := roleOf(h, id)
	if !ok {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Roles[r]).Render(text)
}

// ProgressBar renders the cursor position within the history.
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(CurrentTheme.Success).Render(bar)
}
