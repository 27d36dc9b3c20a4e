package model

import "github.com/google/uuid"

// Item is the domain model for a todo entry.
// ID is the identity key; Title is display text only and may repeat.
type Item struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// NewItem returns an Item with a freshly generated ID.
func NewItem(title string) Item {
	return Item{ID: uuid.NewString(), Title: title}
}
