package models

import (
	"errors"
	"testing"
)

func TestErrors_Unique(t *testing.T) {
	errs := []error{ErrLabelNotFound, ErrNoteNotFound, ErrDuplicateID, ErrDuplicateName}
	for i, a := range errs {
		for j, b := range errs {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v should not match %v", a, b)
			}
		}
	}
}

func TestNote_HasLabel(t *testing.T) {
	note := &Note{
		ID:     "n1",
		Labels: []*Label{{ID: "a", Name: "Work"}, {ID: "b", Name: "Home"}},
	}

	tests := []struct {
		name    string
		labelID string
		want    bool
	}{
		{"attached label", "a", true},
		{"second attached label", "b", true},
		{"unknown label", "c", false},
		{"empty id", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := note.HasLabel(tt.labelID); got != tt.want {
				t.Errorf("HasLabel(%q) = %v, want %v", tt.labelID, got, tt.want)
			}
		})
	}
}
