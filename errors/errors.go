package errors

import "errors"

// Sentinel errors for the CLI.
var (
	// ErrUsage indicates wrong arguments or flags.
	ErrUsage = errors.New("usage error")

	// ErrMissingInput indicates a required input was not provided.
	ErrMissingInput = errors.New("missing required input")

	// ErrMalformedArgument indicates an argument that could not be parsed.
	ErrMalformedArgument = errors.New("malformed argument")

	// ErrNotAuthenticated indicates missing or rejected credentials.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrPermissionDenied indicates insufficient permissions.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrConnectionFailed indicates the API host is unreachable.
	ErrConnectionFailed = errors.New("connection failed")
)
