package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// pointerTracker is the pointer-motion subscription held while the todo view
// is active. Acquire and Release return the commands that switch terminal
// mouse reporting on and off.
type pointerTracker struct {
	enabled bool
	active  bool
	log     *zap.Logger
}

func (p *pointerTracker) Acquire() tea.Cmd {
	if !p.enabled || p.active {
		return nil
	}
	p.active = true
	return tea.EnableMouseAllMotion
}

func (p *pointerTracker) Release() tea.Cmd {
	if !p.active {
		return nil
	}
	p.active = false
	return tea.DisableMouse
}

func (p *pointerTracker) Active() bool { return p.active }

func (p *pointerTracker) Handle(msg tea.MouseMsg) {
	if !p.active {
		return
	}
	p.log.Debug("pointer moved", zap.Int("x", msg.X), zap.Int("y", msg.Y))
}
