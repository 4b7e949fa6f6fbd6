package labels

import "github.com/thenoetrevino/notely/internal/models"

// Modal identifies which overlay, if any, is visible on the label screen
type Modal int

const (
	ModalNone          Modal = iota // No modal; the label list and add button are shown
	ModalEditOrCreate                // Name input for a new or existing label
	ModalDeleteConfirm               // Delete confirmation for an existing label
)

// String returns a readable name for the modal
func (m Modal) String() string {
	switch m {
	case ModalNone:
		return "none"
	case ModalEditOrCreate:
		return "edit_or_create"
	case ModalDeleteConfirm:
		return "delete_confirm"
	default:
		return "unknown"
	}
}

// ModalState is the coordinator state. Target is nil in ModalNone, and nil in
// ModalEditOrCreate when a new label is being created.
type ModalState struct {
	Visible Modal
	Target  *models.Label
}

// InitialModalState is the state on mount
func InitialModalState() ModalState {
	return ModalState{Visible: ModalNone}
}

// IsCreate reports whether the edit modal targets a new label
func (s ModalState) IsCreate() bool {
	return s.Visible == ModalEditOrCreate && (s.Target == nil || s.Target.ID == "")
}

// CanAdd reports whether the add affordance should be offered.
// It is hidden while any modal is open so modals never stack.
func (s ModalState) CanAdd() bool {
	return s.Visible == ModalNone
}

// Action is a user intent fed to Reduce.
// The set of actions is closed; only this package can add new ones.
type Action interface {
	action()
}

// ShowCreate opens the name input for a new label
type ShowCreate struct{}

// ShowEdit opens the name input for an existing label
type ShowEdit struct{ Label *models.Label }

// ShowDelete opens the delete confirmation for an existing label
type ShowDelete struct{ Label *models.Label }

// SaveConfirmed closes the name input after the store was updated
type SaveConfirmed struct{}

// DeleteConfirmed closes the delete confirmation after the store was updated
type DeleteConfirmed struct{}

// Hide dismisses whatever modal is open
type Hide struct{}

func (ShowCreate) action()      {}
func (ShowEdit) action()        {}
func (ShowDelete) action()      {}
func (SaveConfirmed) action()   {}
func (DeleteConfirmed) action() {}
func (Hide) action()            {}

// Reduce returns the state that follows s after a.
// Only ModalNone may open a modal, and an open modal may only close to
// ModalNone. Anything else leaves s unchanged.
func Reduce(s ModalState, a Action) ModalState {
	switch a := a.(type) {
	case ShowCreate:
		if s.Visible != ModalNone {
			return s
		}
		return ModalState{Visible: ModalEditOrCreate}

	case ShowEdit:
		if s.Visible != ModalNone || a.Label == nil {
			return s
		}
		return ModalState{Visible: ModalEditOrCreate, Target: a.Label}

	case ShowDelete:
		if s.Visible != ModalNone || a.Label == nil {
			return s
		}
		return ModalState{Visible: ModalDeleteConfirm, Target: a.Label}

	case SaveConfirmed:
		if s.Visible != ModalEditOrCreate {
			return s
		}
		return InitialModalState()

	case DeleteConfirmed:
		if s.Visible != ModalDeleteConfirm {
			return s
		}
		return InitialModalState()

	case Hide:
		return InitialModalState()

	default:
		return s
	}
}
