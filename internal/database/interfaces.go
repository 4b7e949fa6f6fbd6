package database

import (
	"context"

	"github.com/thenoetrevino/notely/internal/models"
)

// LabelRepository defines label storage operations
type LabelRepository interface {
	GetAllLabels(ctx context.Context) ([]*models.Label, error)
	GetLabelByID(ctx context.Context, id string) (*models.Label, error)
	AddLabel(ctx context.Context, label *models.Label) error
	UpdateLabel(ctx context.Context, id, name string) error
	DeleteLabel(ctx context.Context, id string) error
}

// NoteRepository defines note storage operations
type NoteRepository interface {
	CreateNote(ctx context.Context, note *models.Note) error
	GetNoteByID(ctx context.Context, id string) (*models.Note, error)
	GetAllNotes(ctx context.Context, labelID string) ([]*models.Note, error)
	UpdateNote(ctx context.Context, id, title, body string) error
	DeleteNote(ctx context.Context, id string) error
	GetLabelsForNote(ctx context.Context, noteID string) ([]*models.Label, error)
	AddLabelToNote(ctx context.Context, noteID, labelID string) error
	RemoveLabelFromNote(ctx context.Context, noteID, labelID string) error
}
