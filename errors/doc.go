// Package errors provides CLI error patterns with user-friendly messaging.
//
// CLIError wraps an error with a message, details and an actionable
// suggestion. Sentinels classify failures:
//   - ErrUsage, ErrMissingInput, ErrMalformedArgument: bad invocation
//   - ErrNotAuthenticated, ErrPermissionDenied: credential problems
//   - ErrConnectionFailed: the API host is unreachable
//
// Example usage:
//
//	if err := json.Unmarshal(arg, &v); err != nil {
//	    return errors.NewMalformedArgumentError("detected_json", err)
//	}
//
//	if errors.IsUsageError(err) {
//	    cmd.Usage()
//	}
//	os.Exit(errors.ExitCode(err))
package errors
