package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tada/internal/session"
	"github.com/idilsaglam/tada/internal/ui"
)

type authView struct {
	sess *session.Session
}

func (v authView) Update(msg tea.Msg, keys keyMap) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, keys.LogIn) {
		v.sess.LogIn()
	}
	return nil
}

func (v authView) View(keys keyMap) string {
	t := ui.Current()
	status := t.Muted.Render("not logged in")
	if v.sess.Status() {
		status = t.Success.Render("logged in")
	}
	return t.Title.Render("Auth Component") + "\n\n" +
		ui.Button(keys.LogIn.Help().Key, "Log in!") + "  " + status
}
