package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/playback"
)

const (
	minInterval = 50 * time.Millisecond
	maxInterval = 2 * time.Second
	barWidth    = 30
)

// ChangeMsg carries a controller change into the Bubble Tea loop.
type ChangeMsg playback.Change

// Player is a Bubble Tea model driving a playback controller. The
// controller owns history, cursor and timing; the player only renders it
// and forwards key presses.
type Player struct {
	ctrl    *playback.Controller
	title   string
	changes chan playback.Change
	last    playback.Change
	width   int
}

// NewPlayer subscribes to ctrl. Changes are buffered and dropped when the
// buffer is full; the view always reads the controller directly.
func NewPlayer(ctrl *playback.Controller, title string) *Player {
	p := &Player{
		ctrl:    ctrl,
		title:   title,
		changes: make(chan playback.Change, 64),
	}
	ctrl.OnChange(func(c playback.Change) {
		select {
		case p.changes <- c:
		default:
		}
	})
	return p
}

func (p *Player) waitForChange() tea.Cmd {
	return func() tea.Msg {
		return ChangeMsg(<-p.changes)
	}
}

func (p *Player) Init() tea.Cmd {
	return p.waitForChange()
}

// Update handles key presses and controller changes.
func (p *Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			p.ctrl.Stop()
			return p, tea.Quit
		case " ":
			p.ctrl.Toggle()
		case "n", "right", "l":
			p.ctrl.Next()
		case "p", "left", "h":
			p.ctrl.Prev()
		case "g", "home":
			p.ctrl.Jump(0)
		case "G", "end":
			p.ctrl.Jump(p.ctrl.Len() - 1)
		case "r":
			p.ctrl.Reset()
		case "+", "=":
			p.ctrl.SetInterval(max(p.ctrl.Interval()/2, minInterval))
		case "-", "_":
			p.ctrl.SetInterval(min(p.ctrl.Interval()*2, maxInterval))
		case "t":
			SetTheme(nextTheme())
		}
	case tea.WindowSizeMsg:
		p.width = msg.Width
	case ChangeMsg:
		p.last = playback.Change(msg)
		return p, p.waitForChange()
	}
	return p, nil
}

// View renders the current step and the playback status.
func (p *Player) View() string {
	cur, n := p.ctrl.Cursor(), p.ctrl.Len()
	var s strings.Builder
	s.WriteString(headerStyle.BorderForeground(CurrentTheme.Muted).
		Foreground(CurrentTheme.Primary).Render(strings.ToUpper(p.title)) + "\n")
	s.WriteString(p.status() + "\n")
	if n > 1 {
		s.WriteString(ProgressBar(float64(cur)/float64(n-1), barWidth) + "\n")
	}
	s.WriteString(labelStyle.Render("Step") + fmt.Sprintf("%d/%d", cur+1, n) + "\n")
	s.WriteString(labelStyle.Render("Speed") + p.ctrl.Interval().String() + "\n\n")
	s.WriteString(Format(p.ctrl.CurrentStep()))
	s.WriteString(helpStyle.Foreground(CurrentTheme.Muted).Render(
		"\nSP:Play/Pause  N/P:Step  G/End:Jump  R:Reset  +/-:Speed  T:Theme  Q:Quit"))
	return panelStyle.Render(s.String())
}

func (p *Player) status() string {
	st := p.ctrl.State()
	label := strings.ToUpper(st.String())
	var color lipgloss.Color
	switch st {
	case playback.Playing:
		color = CurrentTheme.Success
	case playback.Finished:
		color = CurrentTheme.Primary
	default:
		color = CurrentTheme.Warning
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(label)
}

// Last returns the most recent change delivered to the model.
func (p *Player) Last() playback.Change {
	return p.last
}

// Play runs the player until the user quits.
func Play(ctrl *playback.Controller, title string) error {
	_, err := tea.NewProgram(NewPlayer(ctrl, title)).Run()
	return err
}
