package label

import "errors"

var (
	errNameRequired  = errors.New("--name is required")
	errLabelRequired = errors.New("--label is required")
)
