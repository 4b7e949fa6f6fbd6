package note

import "errors"

// Note-related errors
var (
	ErrEmptyTitle     = errors.New("title cannot be empty")
	ErrTitleTooLong   = errors.New("title cannot exceed 200 characters")
	ErrInvalidNoteID  = errors.New("invalid note ID")
	ErrInvalidLabelID = errors.New("invalid label ID")
)
