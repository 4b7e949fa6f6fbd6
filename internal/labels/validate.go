package labels

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/notely/internal/models"
)

// Name length bounds, counted in runes after trimming
const (
	MinNameLength = 2
	MaxNameLength = 25
)

// Validation errors returned by Result.Err
var (
	ErrRequired        = errors.New("label name is required")
	ErrTooShort        = errors.New("label name is too short")
	ErrTooLong         = errors.New("label name is too long")
	ErrDuplicateExists = errors.New("a label with this name already exists")
)

// FailureKind classifies why a candidate name was rejected
type FailureKind int

const (
	Valid FailureKind = iota
	Required
	TooShort
	TooLong
	DuplicateExists
)

// String returns a readable name for the kind
func (k FailureKind) String() string {
	switch k {
	case Valid:
		return "valid"
	case Required:
		return "required"
	case TooShort:
		return "too_short"
	case TooLong:
		return "too_long"
	case DuplicateExists:
		return "duplicate_exists"
	default:
		return "unknown"
	}
}

// Result is the outcome of ValidateName.
// Name holds the trimmed candidate, which is the value to persist when Kind is Valid.
type Result struct {
	Name string
	Kind FailureKind
}

// OK reports whether the candidate passed validation
func (r Result) OK() bool {
	return r.Kind == Valid
}

// Err returns the sentinel error for the failure kind, or nil when valid
func (r Result) Err() error {
	switch r.Kind {
	case Required:
		return ErrRequired
	case TooShort:
		return ErrTooShort
	case TooLong:
		return ErrTooLong
	case DuplicateExists:
		return ErrDuplicateExists
	default:
		return nil
	}
}

// MessageKey returns the translation key of the field-level message
func (r Result) MessageKey() string {
	switch r.Kind {
	case Required:
		return "screens.labelManage.inputModal.validation.required"
	case TooShort:
		return "screens.labelManage.inputModal.validation.tooShort"
	case TooLong:
		return "screens.labelManage.inputModal.validation.tooLong"
	case DuplicateExists:
		return "screens.labelManage.inputModal.validation.duplicateExist"
	default:
		return ""
	}
}

// ValidateName checks a candidate label name against the current labels.
// editing is the label being renamed, or nil when creating. Length checks take
// precedence over the duplicate check.
func ValidateName(raw string, existing []*models.Label, editing *models.Label) Result {
	name := strings.TrimSpace(raw)
	n := utf8.RuneCountInString(name)

	switch {
	case n == 0:
		return Result{Name: name, Kind: Required}
	case n < MinNameLength:
		return Result{Name: name, Kind: TooShort}
	case n > MaxNameLength:
		return Result{Name: name, Kind: TooLong}
	}

	if _, taken := takenNames(existing, editing)[strings.ToLower(name)]; taken {
		return Result{Name: name, Kind: DuplicateExists}
	}

	return Result{Name: name, Kind: Valid}
}

// takenNames builds the lower-cased set of names a candidate may not use.
// The edited label's own name is left out so an unchanged rename passes.
func takenNames(existing []*models.Label, editing *models.Label) map[string]struct{} {
	taken := make(map[string]struct{}, len(existing))
	for _, l := range existing {
		if l == nil {
			continue
		}
		if editing != nil && l.Name == editing.Name {
			continue
		}
		taken[strings.ToLower(l.Name)] = struct{}{}
	}
	return taken
}
