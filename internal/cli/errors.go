package cli

import (
	"errors"

	"github.com/thenoetrevino/notely/internal/labels"
	"github.com/thenoetrevino/notely/internal/models"
	labelservice "github.com/thenoetrevino/notely/internal/services/label"
	noteservice "github.com/thenoetrevino/notely/internal/services/note"
)

// CodedError carries the process exit code for a failed command
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code for err
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CodedError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	code, _ := Classify(err)
	return code
}

// Classify maps an error to an exit code and a machine readable error code
func Classify(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrLabelNotFound):
		return ExitNotFound, "LABEL_NOT_FOUND"
	case errors.Is(err, models.ErrNoteNotFound):
		return ExitNotFound, "NOTE_NOT_FOUND"
	case errors.Is(err, labels.ErrDuplicateExists),
		errors.Is(err, models.ErrDuplicateName):
		return ExitValidation, "DUPLICATE_LABEL"
	case errors.Is(err, labels.ErrRequired),
		errors.Is(err, labels.ErrTooShort),
		errors.Is(err, labels.ErrTooLong),
		errors.Is(err, labelservice.ErrInvalidLabelID),
		errors.Is(err, noteservice.ErrEmptyTitle),
		errors.Is(err, noteservice.ErrTitleTooLong),
		errors.Is(err, noteservice.ErrInvalidNoteID),
		errors.Is(err, noteservice.ErrInvalidLabelID):
		return ExitValidation, "VALIDATION_ERROR"
	case errors.Is(err, labelservice.ErrAmbiguousLabel):
		return ExitUsage, "AMBIGUOUS_LABEL"
	case errors.Is(err, ErrUsage):
		return ExitUsage, "USAGE_ERROR"
	default:
		return ExitError, "ERROR"
	}
}

// ErrUsage marks missing or conflicting flags
var ErrUsage = errors.New("usage error")

type localizedError struct {
	msg string
	err error
}

func (e *localizedError) Error() string { return e.msg }
func (e *localizedError) Unwrap() error { return e.err }

// Localize swaps the message of a label validation error for its translation.
// Other errors are returned unchanged.
func Localize(tr labels.Localizer, err error) error {
	var vErr *labelservice.ValidationError
	if tr == nil || !errors.As(err, &vErr) {
		return err
	}
	return &localizedError{msg: tr.T(vErr.Result.MessageKey(), nil), err: err}
}
