package state

import "github.com/thenoetrevino/notely/internal/models"

// ListViewState holds the labels shown on screen and the selected row.
type ListViewState struct {
	labels      []*models.Label
	selectedRow int
}

// NewListViewState creates an empty ListViewState.
func NewListViewState() *ListViewState {
	return &ListViewState{labels: []*models.Label{}}
}

// Labels returns the labels in display order.
func (s *ListViewState) Labels() []*models.Label {
	return s.labels
}

// SetLabels replaces the labels and keeps the selection in range.
func (s *ListViewState) SetLabels(labels []*models.Label) {
	if labels == nil {
		labels = []*models.Label{}
	}
	s.labels = labels
	s.clamp()
}

// SelectedRow returns the index of the currently selected row.
func (s *ListViewState) SelectedRow() int {
	return s.selectedRow
}

// Selected returns the selected label, or nil when the list is empty.
func (s *ListViewState) Selected() *models.Label {
	if len(s.labels) == 0 {
		return nil
	}
	return s.labels[s.selectedRow]
}

// MoveUp selects the previous row, stopping at the top.
func (s *ListViewState) MoveUp() {
	if s.selectedRow > 0 {
		s.selectedRow--
	}
}

// MoveDown selects the next row, stopping at the bottom.
func (s *ListViewState) MoveDown() {
	if s.selectedRow < len(s.labels)-1 {
		s.selectedRow++
	}
}

func (s *ListViewState) clamp() {
	if s.selectedRow >= len(s.labels) {
		s.selectedRow = len(s.labels) - 1
	}
	if s.selectedRow < 0 {
		s.selectedRow = 0
	}
}
