package language

import "errors"

// Descriptor validation errors.
var (
	// ErrMissingLanguage indicates a descriptor without a language key.
	ErrMissingLanguage = errors.New("language is required")

	// ErrInvalidBuildMode indicates a build mode outside none|manual|autobuild.
	ErrInvalidBuildMode = errors.New("invalid build mode")

	// ErrUnknownField indicates a descriptor key that is not recognized.
	ErrUnknownField = errors.New("unknown descriptor field")
)
