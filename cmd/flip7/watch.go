package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/flip7/internal/tui"
)

type WatchCmd struct {
	Table
}

func (c *WatchCmd) Run(g *Globals) error {
	s, err := c.session(g)
	if err != nil {
		return err
	}
	if _, err := s.PlayGame(); err != nil {
		return err
	}

	title := fmt.Sprintf("Flip 7 | %s wins", s.Summary().Winner)
	p := tea.NewProgram(tui.NewViewer(title, s.Log()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}
