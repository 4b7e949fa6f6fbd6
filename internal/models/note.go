package models

import "time"

// Note is a single note with the labels attached to it
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Labels    []*Label  `json:"labels,omitempty"`
}

// HasLabel reports whether the label with the given ID is attached to the note
func (n *Note) HasLabel(labelID string) bool {
	for _, l := range n.Labels {
		if l.ID == labelID {
			return true
		}
	}
	return false
}
