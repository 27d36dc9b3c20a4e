package todo

import "github.com/idilsaglam/tada/internal/model"

// Manager owns one todo list and the text currently typed into the entry
// field. A Manager lives as long as the todo view that created it.
type Manager struct {
	items []model.Item
	draft string

	// single-level undo
	prev    []model.Item
	canUndo bool
}

// NewManager returns a Manager with an empty list and an empty draft.
func NewManager() *Manager {
	return &Manager{items: []model.Item{}}
}

// SetDraft stores the full current value of the entry field.
func (m *Manager) SetDraft(text string) { m.draft = text }

// Draft returns the current entry text.
func (m *Manager) Draft() string { return m.draft }

// AddCurrentEntry appends the draft as a new entry. The draft is kept.
func (m *Manager) AddCurrentEntry() {
	m.Dispatch(Add{Title: m.draft})
}

// Dispatch applies a to the list and remembers the previous list for Undo.
func (m *Manager) Dispatch(a Action) {
	m.prev = m.items
	m.canUndo = true
	m.items = Reduce(m.items, a)
}

// Undo restores the list as it was before the last Dispatch.
// It reports false when there is nothing to undo.
func (m *Manager) Undo() bool {
	if !m.canUndo {
		return false
	}
	m.items = Reduce(m.items, Set{Items: m.prev})
	m.prev = nil
	m.canUndo = false
	return true
}

// Items returns a copy of the list in order.
func (m *Manager) Items() []model.Item { return clone(m.items) }

// Len returns the number of entries.
func (m *Manager) Len() int { return len(m.items) }
