package tui

import (
	"strings"

	"github.com/idilsaglam/tada/internal/session"
	"github.com/idilsaglam/tada/internal/ui"
)

// header is always rendered. The todo list control only exists once the
// session is logged in; the auth control is unconditional.
type header struct {
	sess *session.Session
}

func (h header) showTodos() bool { return h.sess.Status() }

func (h header) View(keys keyMap) string {
	var buttons []string
	if h.showTodos() {
		buttons = append(buttons, ui.Button(keys.Todos.Help().Key, "TodoList"))
	}
	buttons = append(buttons, ui.Button(keys.Auth.Help().Key, "Auth"))
	return strings.Join(buttons, "  ")
}
