package models

// Label is a user-defined tag that can be attached to notes.
// IDs are opaque strings assigned by the caller, never by the store.
type Label struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
