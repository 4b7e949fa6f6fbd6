package models

import "errors"

// Domain-specific errors shared by the store and the services
var (
	// ErrLabelNotFound indicates that no label exists with the requested ID
	ErrLabelNotFound = errors.New("label not found")

	// ErrNoteNotFound indicates that no note exists with the requested ID
	ErrNoteNotFound = errors.New("note not found")

	// ErrDuplicateID indicates an insert collided with an existing ID
	ErrDuplicateID = errors.New("id already exists")

	// ErrDuplicateName indicates a label name collided case-insensitively
	ErrDuplicateName = errors.New("label name already exists")
)
