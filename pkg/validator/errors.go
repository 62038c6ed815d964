package validator

import "errors"

var (
	// ErrValidationFailed is matched by every non-empty ValidationErrors through errors.Is.
	ErrValidationFailed = errors.New("validation failed")
)
