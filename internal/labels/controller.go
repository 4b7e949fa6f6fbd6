package labels

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/notely/internal/models"
)

// Translation keys used by the controller
const (
	KeyLabelDeleted = "screens.labelManage.labelDeleted"
	KeyTitleCreate  = "screens.labelManage.inputModal.title.create"
	KeyTitleEdit    = "screens.labelManage.inputModal.title.edit"
)

// TrashIcon is shown alongside the delete notification
const TrashIcon = "🗑"

// ErrInvalidTransition is returned when a save or delete is confirmed while the
// matching modal is not open
var ErrInvalidTransition = errors.New("no matching modal is open")

// Controller drives the label management screen.
// It is not safe for concurrent use; all calls come from the UI event loop.
type Controller struct {
	store    Store
	ids      IDGenerator
	notifier Notifier
	i18n     Localizer
	state    ModalState
}

// NewController creates a controller with the modal state reset.
// A nil ids defaults to UUIDGenerator.
func NewController(store Store, ids IDGenerator, notifier Notifier, i18n Localizer) *Controller {
	if ids == nil {
		ids = UUIDGenerator
	}
	return &Controller{
		store:    store,
		ids:      ids,
		notifier: notifier,
		i18n:     i18n,
		state:    InitialModalState(),
	}
}

// State returns the current modal state
func (c *Controller) State() ModalState {
	return c.state
}

// Reset returns the coordinator to its initial state, as on unmount
func (c *Controller) Reset() {
	c.state = InitialModalState()
}

// Labels reads the current labels from the store
func (c *Controller) Labels(ctx context.Context) ([]*models.Label, error) {
	return c.store.GetAllLabels(ctx)
}

// ShowCreateLabelModal opens the name input for a new label
func (c *Controller) ShowCreateLabelModal() {
	c.dispatch(ShowCreate{})
}

// ShowEditLabelModal opens the name input for label
func (c *Controller) ShowEditLabelModal(label *models.Label) {
	c.dispatch(ShowEdit{Label: label})
}

// ShowDeleteLabelModal opens the delete confirmation for label
func (c *Controller) ShowDeleteLabelModal(label *models.Label) {
	c.dispatch(ShowDelete{Label: label})
}

// ModalDismiss closes any open modal without side effects
func (c *Controller) ModalDismiss() {
	c.dispatch(Hide{})
}

// ModalTitle returns the localized title of the edit or create modal
func (c *Controller) ModalTitle() string {
	if c.state.IsCreate() {
		return c.translate(KeyTitleCreate)
	}
	return c.translate(KeyTitleEdit)
}

// Validate checks raw against a fresh read of the store and the current target
func (c *Controller) Validate(ctx context.Context, raw string) (Result, error) {
	existing, err := c.store.GetAllLabels(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load labels: %w", err)
	}
	return ValidateName(raw, existing, c.state.Target), nil
}

// SaveLabel validates raw and either renames the target label or creates a new
// one. A failed validation leaves the modal open and touches nothing.
func (c *Controller) SaveLabel(ctx context.Context, raw string) (Result, error) {
	if c.state.Visible != ModalEditOrCreate {
		return Result{}, ErrInvalidTransition
	}

	res, err := c.Validate(ctx, raw)
	if err != nil {
		return Result{}, err
	}
	if !res.OK() {
		return res, nil
	}

	if target := c.state.Target; target != nil && target.ID != "" {
		if err := c.store.UpdateLabel(ctx, target.ID, res.Name); err != nil {
			return res, fmt.Errorf("failed to update label %s: %w", target.ID, err)
		}
		slog.Debug("label renamed", "id", target.ID, "name", res.Name)
	} else {
		label := &models.Label{ID: c.ids.NewID(), Name: res.Name}
		if err := c.store.AddLabel(ctx, label); err != nil {
			return res, fmt.Errorf("failed to add label: %w", err)
		}
		slog.Debug("label created", "id", label.ID, "name", label.Name)
	}

	c.dispatch(SaveConfirmed{})
	return res, nil
}

// DeleteConfirm removes the target label and notifies the user
func (c *Controller) DeleteConfirm(ctx context.Context) error {
	if c.state.Visible != ModalDeleteConfirm || c.state.Target == nil {
		return ErrInvalidTransition
	}

	id := c.state.Target.ID
	if err := c.store.DeleteLabel(ctx, id); err != nil {
		return fmt.Errorf("failed to delete label %s: %w", id, err)
	}
	slog.Debug("label deleted", "id", id)

	c.dispatch(DeleteConfirmed{})
	if c.notifier != nil {
		c.notifier.Notify(Notification{
			Message: c.translate(KeyLabelDeleted),
			Icon:    TrashIcon,
			Style:   StyleError,
		})
	}
	return nil
}

func (c *Controller) dispatch(a Action) {
	c.state = Reduce(c.state, a)
}

func (c *Controller) translate(key string) string {
	if c.i18n == nil {
		return key
	}
	return c.i18n.T(key, nil)
}
