package label

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/notely/internal/database"
	"github.com/thenoetrevino/notely/internal/labels"
	"github.com/thenoetrevino/notely/internal/models"
)

// Service defines all label-related business operations
type Service interface {
	// Read operations
	GetAllLabels(ctx context.Context) ([]*models.Label, error)
	GetLabelByID(ctx context.Context, id string) (*models.Label, error)
	ResolveLabel(ctx context.Context, ref string) (*models.Label, error)

	// Write operations
	CreateLabel(ctx context.Context, req CreateLabelRequest) (*models.Label, error)
	RenameLabel(ctx context.Context, req RenameLabelRequest) (*models.Label, error)
	DeleteLabel(ctx context.Context, id string) error
}

// CreateLabelRequest encapsulates data for creating a label
type CreateLabelRequest struct {
	Name string
}

// RenameLabelRequest encapsulates data for renaming a label
type RenameLabelRequest struct {
	ID   string
	Name string
}

// ValidationError carries the failed validation result
type ValidationError struct {
	Result labels.Result
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %q", e.Result.Err(), e.Result.Name)
}

// Unwrap exposes the labels sentinel so errors.Is works
func (e *ValidationError) Unwrap() error {
	return e.Result.Err()
}

// service implements Service interface
type service struct {
	repo database.LabelRepository
	ids  labels.IDGenerator
}

// NewService creates a new label service. A nil ids uses random UUIDs.
func NewService(repo database.LabelRepository, ids labels.IDGenerator) Service {
	if ids == nil {
		ids = labels.UUIDGenerator
	}
	return &service{
		repo: repo,
		ids:  ids,
	}
}

// GetAllLabels retrieves all labels in insertion order
func (s *service) GetAllLabels(ctx context.Context) ([]*models.Label, error) {
	return s.repo.GetAllLabels(ctx)
}

// GetLabelByID retrieves a label by its ID
func (s *service) GetLabelByID(ctx context.Context, id string) (*models.Label, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidLabelID
	}
	return s.repo.GetLabelByID(ctx, id)
}

// ResolveLabel finds a label by exact ID, falling back to a case-insensitive
// name match
func (s *service) ResolveLabel(ctx context.Context, ref string) (*models.Label, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrInvalidLabelID
	}

	label, err := s.repo.GetLabelByID(ctx, ref)
	if err == nil {
		return label, nil
	}
	if !errors.Is(err, models.ErrLabelNotFound) {
		return nil, err
	}

	all, err := s.repo.GetAllLabels(ctx)
	if err != nil {
		return nil, err
	}
	var match *models.Label
	for _, l := range all {
		if strings.EqualFold(l.Name, ref) {
			if match != nil {
				return nil, ErrAmbiguousLabel
			}
			match = l
		}
	}
	if match == nil {
		return nil, models.ErrLabelNotFound
	}
	return match, nil
}

// CreateLabel validates the name and stores a new label with a fresh ID
func (s *service) CreateLabel(ctx context.Context, req CreateLabelRequest) (*models.Label, error) {
	existing, err := s.repo.GetAllLabels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels: %w", err)
	}

	res := labels.ValidateName(req.Name, existing, nil)
	if !res.OK() {
		return nil, &ValidationError{Result: res}
	}

	label := &models.Label{ID: s.ids.NewID(), Name: res.Name}
	if err := s.repo.AddLabel(ctx, label); err != nil {
		return nil, fmt.Errorf("failed to create label: %w", err)
	}

	slog.Info("label created", "id", label.ID, "name", label.Name)
	return label, nil
}

// RenameLabel validates the new name, excluding the label itself from the
// duplicate check, and stores it
func (s *service) RenameLabel(ctx context.Context, req RenameLabelRequest) (*models.Label, error) {
	current, err := s.GetLabelByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetAllLabels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels: %w", err)
	}

	res := labels.ValidateName(req.Name, existing, current)
	if !res.OK() {
		return nil, &ValidationError{Result: res}
	}

	if err := s.repo.UpdateLabel(ctx, current.ID, res.Name); err != nil {
		return nil, fmt.Errorf("failed to rename label: %w", err)
	}

	slog.Info("label renamed", "id", current.ID, "from", current.Name, "to", res.Name)
	return &models.Label{ID: current.ID, Name: res.Name}, nil
}

// DeleteLabel deletes a label and detaches it from every note
func (s *service) DeleteLabel(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidLabelID
	}
	if err := s.repo.DeleteLabel(ctx, id); err != nil {
		return fmt.Errorf("failed to delete label: %w", err)
	}

	slog.Info("label deleted", "id", id)
	return nil
}
