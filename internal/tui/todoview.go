package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	model.Item
}

func (i listItem) FilterValue() string { return i.Title }

// single-line rendering, keyed by item ID rather than title
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	t := ui.Current()
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(t.Cursor)
	}
	fmt.Fprintf(w, "%s%s %s", prefix, t.Muted.Render(t.Bullet), it.Title)
}

type focus int

const (
	focusInput focus = iota
	focusList
)

// todoView is mounted when the router selects the todo view and dropped when
// it leaves; its list does not outlive it.
type todoView struct {
	mgr   *todo.Manager
	input textinput.Model
	list  list.Model
	focus focus
}

func newTodoView(width, height int) *todoView {
	ti := textinput.New()
	ti.Placeholder = "Add Todo here..."
	ti.Prompt = "> "
	ti.CharLimit = 200

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = "Todos"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("todo", "todos")
	l.DisableQuitKeybindings()
	l.Styles.Title = ui.Current().Title

	v := &todoView{
		mgr:   todo.NewManager(),
		input: ti,
		list:  l,
	}
	v.SetSize(width, height)
	return v
}

// Focus puts the cursor in the entry field.
func (v *todoView) Focus() tea.Cmd {
	v.focus = focusInput
	return v.input.Focus()
}

func (v *todoView) SetSize(width, height int) {
	// header, rule, input and help lines plus panel chrome
	h := height - 10
	if h < 3 {
		h = 3
	}
	v.list.SetSize(width-4, h)
	v.input.Width = width - 8
}

func (v *todoView) Update(msg tea.Msg, keys keyMap) tea.Cmd {
	k, isKey := msg.(tea.KeyMsg)
	if isKey && key.Matches(k, keys.Focus) {
		if v.focus == focusInput {
			v.focus = focusList
			v.input.Blur()
			return nil
		}
		return v.Focus()
	}

	if v.focus == focusInput {
		if isKey && key.Matches(k, keys.Add) {
			v.mgr.AddCurrentEntry()
			return v.sync()
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		v.mgr.SetDraft(v.input.Value())
		return cmd
	}

	if isKey {
		switch {
		case key.Matches(k, keys.Remove):
			if it, ok := v.list.SelectedItem().(listItem); ok {
				v.mgr.Dispatch(todo.Remove{ID: it.ID})
				return v.sync()
			}
			return nil
		case key.Matches(k, keys.Clear):
			v.mgr.Dispatch(todo.Set{})
			return v.sync()
		case key.Matches(k, keys.Undo):
			if v.mgr.Undo() {
				return v.sync()
			}
			return nil
		}
	}
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return cmd
}

func (v *todoView) sync() tea.Cmd {
	items := v.mgr.Items()
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{it})
	}
	v.list.Title = fmt.Sprintf("Todos  %d", len(items))
	return v.list.SetItems(li)
}

func (v *todoView) View() string {
	return v.input.View() + "\n\n" + v.list.View()
}

func (v *todoView) HelpKeys(keys keyMap) []key.Binding {
	if v.focus == focusInput {
		return []key.Binding{keys.Add, keys.Focus}
	}
	return []key.Binding{keys.Remove, keys.Clear, keys.Undo, keys.Focus}
}
