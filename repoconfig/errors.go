package repoconfig

import "errors"

// Config loading errors. Load never returns these; they travel in events
// and logs explaining why the built-in configuration was used.
var (
	// ErrNoConfigDir indicates no config directory was configured.
	ErrNoConfigDir = errors.New("no config directory")

	// ErrNotFound indicates neither a repo file nor a default file exists.
	ErrNotFound = errors.New("no repo or default config file")

	// ErrMissingQueryUses indicates a query entry without a suite reference.
	ErrMissingQueryUses = errors.New("query uses is required")

	// ErrUnsupportedFormat indicates a config file with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)
