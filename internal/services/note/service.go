package note

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/notely/internal/database"
	"github.com/thenoetrevino/notely/internal/labels"
	"github.com/thenoetrevino/notely/internal/models"
)

// MaxTitleLength bounds note titles, counted in runes
const MaxTitleLength = 200

// Service defines all note-related business operations
type Service interface {
	// Read operations
	GetNote(ctx context.Context, id string) (*models.Note, error)
	ListNotes(ctx context.Context, labelID string) ([]*models.Note, error)

	// Write operations
	CreateNote(ctx context.Context, req CreateNoteRequest) (*models.Note, error)
	UpdateNote(ctx context.Context, req UpdateNoteRequest) error
	DeleteNote(ctx context.Context, id string) error
	AttachLabel(ctx context.Context, noteID, labelID string) error
	DetachLabel(ctx context.Context, noteID, labelID string) error
}

// CreateNoteRequest encapsulates data for creating a note
type CreateNoteRequest struct {
	Title    string
	Body     string
	LabelIDs []string
}

// UpdateNoteRequest encapsulates data for updating a note.
// Nil fields keep their current value.
type UpdateNoteRequest struct {
	ID    string
	Title *string
	Body  *string
}

// service implements Service interface
type service struct {
	repo database.DataStore
	ids  labels.IDGenerator
}

// NewService creates a new note service. A nil ids uses random UUIDs.
func NewService(repo database.DataStore, ids labels.IDGenerator) Service {
	if ids == nil {
		ids = labels.UUIDGenerator
	}
	return &service{
		repo: repo,
		ids:  ids,
	}
}

// GetNote retrieves a note with its labels
func (s *service) GetNote(ctx context.Context, id string) (*models.Note, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidNoteID
	}
	return s.repo.GetNoteByID(ctx, id)
}

// ListNotes retrieves notes, optionally only those carrying labelID
func (s *service) ListNotes(ctx context.Context, labelID string) ([]*models.Note, error) {
	return s.repo.GetAllNotes(ctx, strings.TrimSpace(labelID))
}

// CreateNote creates a note and attaches the requested labels
func (s *service) CreateNote(ctx context.Context, req CreateNoteRequest) (*models.Note, error) {
	title, err := validateTitle(req.Title)
	if err != nil {
		return nil, err
	}

	// Check labels up front so a bad reference reports which label failed
	attached := make([]*models.Label, 0, len(req.LabelIDs))
	for _, labelID := range req.LabelIDs {
		label, err := s.repo.GetLabelByID(ctx, labelID)
		if err != nil {
			return nil, fmt.Errorf("label %s: %w", labelID, err)
		}
		attached = append(attached, label)
	}

	note := &models.Note{ID: s.ids.NewID(), Title: title, Body: req.Body, Labels: attached}
	if err := s.repo.CreateNote(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	slog.Info("note created", "id", note.ID, "labels", len(req.LabelIDs))
	return s.repo.GetNoteByID(ctx, note.ID)
}

// UpdateNote updates title and/or body of a note
func (s *service) UpdateNote(ctx context.Context, req UpdateNoteRequest) error {
	existing, err := s.GetNote(ctx, req.ID)
	if err != nil {
		return err
	}

	title := existing.Title
	if req.Title != nil {
		if title, err = validateTitle(*req.Title); err != nil {
			return err
		}
	}
	body := existing.Body
	if req.Body != nil {
		body = *req.Body
	}

	if err := s.repo.UpdateNote(ctx, existing.ID, title, body); err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	return nil
}

// DeleteNote deletes a note
func (s *service) DeleteNote(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidNoteID
	}
	if err := s.repo.DeleteNote(ctx, id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	slog.Info("note deleted", "id", id)
	return nil
}

// AttachLabel links a label to a note
func (s *service) AttachLabel(ctx context.Context, noteID, labelID string) error {
	if err := s.checkLink(ctx, noteID, labelID); err != nil {
		return err
	}
	return s.repo.AddLabelToNote(ctx, noteID, labelID)
}

// DetachLabel unlinks a label from a note
func (s *service) DetachLabel(ctx context.Context, noteID, labelID string) error {
	if err := s.checkLink(ctx, noteID, labelID); err != nil {
		return err
	}
	return s.repo.RemoveLabelFromNote(ctx, noteID, labelID)
}

// checkLink verifies both ends of a note/label link exist
func (s *service) checkLink(ctx context.Context, noteID, labelID string) error {
	if strings.TrimSpace(noteID) == "" {
		return ErrInvalidNoteID
	}
	if strings.TrimSpace(labelID) == "" {
		return ErrInvalidLabelID
	}
	if _, err := s.repo.GetNoteByID(ctx, noteID); err != nil {
		return err
	}
	if _, err := s.repo.GetLabelByID(ctx, labelID); err != nil {
		return err
	}
	return nil
}

func validateTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}
