package directory

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// FetchedMsg carries the outcome of a directory fetch back into the UI loop.
// Exactly one of Users and Err is meaningful.
type FetchedMsg struct {
	Users []User
	Err   error
}

// FetchCmd runs Fetch off the UI loop.
func (c *Client) FetchCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		users, err := c.Fetch(ctx)
		return FetchedMsg{Users: users, Err: err}
	}
}
