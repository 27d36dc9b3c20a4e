// Package todo holds the todo list transition function and the manager that
// owns a list plus the draft entry text.
package todo

import "github.com/idilsaglam/tada/internal/model"

// Action is a transition applied to a todo list. The set is closed: only
// Add, Set and Remove implement it.
type Action interface {
	isAction()
}

// Add appends a new entry with Title.
type Add struct {
	Title string
}

// Set replaces the whole list.
type Set struct {
	Items []model.Item
}

// Remove drops every entry whose ID equals ID.
type Remove struct {
	ID string
}

func (Add) isAction()    {}
func (Set) isAction()    {}
func (Remove) isAction() {}

// Reduce returns the list that results from applying a to list.
// The input slice is never modified.
func Reduce(list []model.Item, a Action) []model.Item {
	switch a := a.(type) {
	case Add:
		out := make([]model.Item, 0, len(list)+1)
		out = append(out, list...)
		return append(out, model.NewItem(a.Title))
	case Set:
		return clone(a.Items)
	case Remove:
		out := make([]model.Item, 0, len(list))
		for _, it := range list {
			if it.ID != a.ID {
				out = append(out, it)
			}
		}
		return out
	}
	// unreachable: Action is sealed
	return list
}

func clone(items []model.Item) []model.Item {
	out := make([]model.Item, len(items))
	copy(out, items)
	return out
}
