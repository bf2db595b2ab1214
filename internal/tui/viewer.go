// Package tui replays a recorded game one round at a time.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/flip7/internal/display"
	"github.com/lox/flip7/internal/game"
	"github.com/lox/flip7/internal/simulation"
)

const sidebarWidth = 30

// page is the formatted log of one round
type page struct {
	round     int
	lines     []string
	standings []game.PlayerState
}

// Viewer is a bubbletea model paging through a game's action log
type Viewer struct {
	title    string
	pages    []page
	index    int
	viewport viewport.Model
	width    int
	height   int
	ready    bool
	quitting bool
}

var _ tea.Model = (*Viewer)(nil)

// NewViewer groups events by round. Events before the first round_start
// are shown on the first page and trailing events on the last.
func NewViewer(title string, events []simulation.Event) *Viewer {
	v := &Viewer{title: title, viewport: viewport.New(10, 5)}

	var pending []string
	for _, e := range events {
		if e.Type == simulation.RoundStart {
			v.pages = append(v.pages, page{round: e.Round, lines: pending})
			pending = nil
		}
		line := display.FormatEvent(e)
		if len(v.pages) == 0 {
			pending = append(pending, line)
			continue
		}
		p := &v.pages[len(v.pages)-1]
		p.lines = append(p.lines, line)
		if e.Type == simulation.RoundEnd {
			p.standings = e.Details.Standings
			p.lines = append(p.lines, display.RenderRoundResults(e.Details.Results))
		}
	}
	if len(v.pages) == 0 {
		v.pages = append(v.pages, page{lines: pending})
	}

	v.viewport.SetContent(v.content())
	return v
}

// Round returns the round number on screen
func (v *Viewer) Round() int {
	return v.pages[v.index].round
}

// Pages returns the number of rounds available
func (v *Viewer) Pages() int {
	return len(v.pages)
}

func (v *Viewer) Init() tea.Cmd {
	return nil
}

func (v *Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.resize()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			v.quitting = true
			return v, tea.Quit
		case "n", "right", "l":
			v.goTo(v.index + 1)
			return v, nil
		case "p", "left", "h":
			v.goTo(v.index - 1)
			return v, nil
		case "home", "g":
			v.viewport.GotoTop()
			return v, nil
		case "end", "G":
			v.viewport.GotoBottom()
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v *Viewer) View() string {
	if v.quitting {
		return ""
	}
	if !v.ready {
		return "Loading..."
	}

	header := headerStyle.Render(fmt.Sprintf("%s  round %d (%d/%d)", v.title, v.Round(), v.index+1, len(v.pages)))
	log := paneStyle.Width(v.viewport.Width).Render(v.viewport.View())
	sidebar := sidebarStyle.
		Width(sidebarWidth - 4).
		Height(v.viewport.Height).
		Render(v.renderStandings())
	help := helpStyle.Render("n/p round  ↑/↓ scroll  g/G top/bottom  q quit")

	body := lipgloss.JoinHorizontal(lipgloss.Top, log, sidebar)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, help)
}

func (v *Viewer) goTo(i int) {
	if i < 0 || i >= len(v.pages) || i == v.index {
		return
	}
	v.index = i
	v.viewport.SetContent(v.content())
	v.viewport.GotoTop()
}

func (v *Viewer) resize() {
	// header, help, and the log pane border
	height := v.height - 4
	width := v.width - sidebarWidth - 2
	v.viewport.Width = max(width, 1)
	v.viewport.Height = max(height, 1)
	v.ready = true
	v.viewport.SetContent(v.content())
}

func (v *Viewer) content() string {
	return strings.Join(v.pages[v.index].lines, "\n")
}

func (v *Viewer) renderStandings() string {
	standings := v.pages[v.index].standings
	if len(standings) == 0 {
		return display.MutedStyle.Render("No scores yet")
	}
	var b strings.Builder
	b.WriteString(display.HeaderStyle.Render("Standings"))
	b.WriteString("\n")
	for i, p := range standings {
		fmt.Fprintf(&b, "%d. %-14s %4d\n", i+1, p.Name, p.TotalScore)
	}
	return strings.TrimRight(b.String(), "\n")
}
