package label

import "errors"

// Label-related errors. Name validation failures are reported with the
// sentinels from the labels package (labels.ErrTooShort and friends).
var (
	ErrInvalidLabelID = errors.New("invalid label ID")
	ErrAmbiguousLabel = errors.New("label reference matches more than one label")
)
