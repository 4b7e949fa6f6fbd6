package huhforms

import (
	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/notely/internal/labels"
)

// LabelFormText holds the localized strings of the label forms
type LabelFormText struct {
	Title       string
	Placeholder string
	Description string
	Affirmative string
	Negative    string
}

// CreateLabelForm creates a huh form for adding/editing a label name.
// validate runs when the user submits the field.
func CreateLabelForm(
	text LabelFormText,
	name *string,
	validate func(string) error,
) *huh.Form {
	input := huh.NewInput().
		Key("name").
		Title(text.Title).
		Placeholder(text.Placeholder).
		CharLimit(labels.MaxNameLength * 2).
		Value(name)
	if validate != nil {
		input = input.Validate(validate)
	}

	return huh.NewForm(huh.NewGroup(input)).
		WithKeyMap(CreateLabelKeyMap()).
		WithShowHelp(false)
}

// CreateDeleteLabelForm creates the yes/no confirmation for deleting a label
func CreateDeleteLabelForm(text LabelFormText, confirmed *bool) *huh.Form {
	confirm := huh.NewConfirm().
		Key("confirm").
		Title(text.Title).
		Description(text.Description).
		Affirmative(text.Affirmative).
		Negative(text.Negative).
		Value(confirmed)

	return huh.NewForm(huh.NewGroup(confirm)).
		WithKeyMap(CreateLabelKeyMap()).
		WithShowHelp(false)
}
