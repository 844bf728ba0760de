package domain

import (
	"errors"
	"strings"
)

var ErrNotFound = errors.New("not found")

// ValidationError carries every violation found in a submission; rules
// are all evaluated and collected, never short-circuited.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
