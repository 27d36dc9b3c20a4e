package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerStartsEmpty(t *testing.T) {
	m := NewManager()
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Items())
	assert.Equal(t, "", m.Draft())
}

func TestManagerAddCurrentEntryKeepsDraft(t *testing.T) {
	m := NewManager()
	m.SetDraft("b")
	m.SetDraft("buy milk")
	m.AddCurrentEntry()

	require.Equal(t, 1, m.Len())
	assert.Equal(t, "buy milk", m.Items()[0].Title)
	assert.Equal(t, "buy milk", m.Draft())

	m.AddCurrentEntry()
	assert.Equal(t, []string{"buy milk", "buy milk"}, titles(m.Items()))
}

func TestManagerItemsReturnsCopy(t *testing.T) {
	m := NewManager()
	m.SetDraft("a")
	m.AddCurrentEntry()

	items := m.Items()
	items[0].Title = "mutated"
	assert.Equal(t, "a", m.Items()[0].Title)
}

func TestManagerUndo(t *testing.T) {
	m := NewManager()
	assert.False(t, m.Undo(), "nothing to undo yet")

	m.SetDraft("a")
	m.AddCurrentEntry()
	m.SetDraft("b")
	m.AddCurrentEntry()
	before := m.Items()

	m.Dispatch(Set{})
	require.Equal(t, 0, m.Len())

	assert.True(t, m.Undo())
	assert.Equal(t, before, m.Items())
	assert.False(t, m.Undo(), "undo is single-level")
}
