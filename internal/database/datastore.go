package database

// DataStore is the unified interface for all data operations.
// Consumers should depend on the smaller LabelRepository or NoteRepository
// when they only need one of them.
type DataStore interface {
	LabelRepository
	NoteRepository
}

var _ DataStore = (*Repository)(nil)
