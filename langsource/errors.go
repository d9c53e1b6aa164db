package langsource

import "errors"

var (
	// ErrUnknownPlatform indicates a remote or platform name that is neither
	// GitHub, GitLab nor a local checkout.
	ErrUnknownPlatform = errors.New("unknown platform")

	// ErrInvalidRepo indicates a repository reference that is not
	// "owner/name" or a recognizable remote URL.
	ErrInvalidRepo = errors.New("invalid repository reference")

	// ErrNoPath indicates a local source without a root directory.
	ErrNoPath = errors.New("local source requires a path")
)
