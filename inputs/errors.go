package inputs

import (
	"errors"
	"strings"
)

// ErrMissingRequired indicates REPO or LANGUAGE was not provided.
var ErrMissingRequired = errors.New("missing required inputs")

// MissingError lists the required inputs that were empty.
type MissingError struct {
	Fields []string
}

func (e *MissingError) Error() string {
	return ErrMissingRequired.Error() + ": REPO and LANGUAGE are required (missing " + strings.Join(e.Fields, ", ") + ")"
}

func (e *MissingError) Is(target error) bool {
	return target == ErrMissingRequired
}
