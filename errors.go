package scanplan

import (
	"errors"

	"github.com/randalmurphal/scanplan/inputs"
)

var (
	// ErrMalformedArgument indicates detected or override JSON that could
	// not be decoded.
	ErrMalformedArgument = errors.New("malformed argument")

	// ErrMissingRequired indicates REPO or LANGUAGE was not provided.
	ErrMissingRequired = inputs.ErrMissingRequired
)
