package errors

import (
	"errors"
	"fmt"
	"strings"
)

// CLIError wraps an error with user-facing context and a suggestion.
type CLIError struct {
	// Err is the underlying error
	Err error

	// Message is a user-friendly description of what went wrong
	Message string

	// Suggestion is an actionable hint for the user
	Suggestion string

	// Details provides additional context (optional)
	Details string
}

func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}

	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewUsageError reports a wrong invocation. usage is appended as the
// suggestion when non-empty.
func NewUsageError(message, usage string) error {
	cliErr := &CLIError{Err: ErrUsage, Message: message}
	if usage != "" {
		cliErr.Suggestion = "Usage: " + usage
	}
	return cliErr
}

// NewMissingInputError reports empty required inputs. err, if non-nil, is
// kept in the chain so callers can match its own sentinel.
func NewMissingInputError(err error, names ...string) error {
	return &CLIError{
		Err:        errors.Join(ErrMissingInput, err),
		Message:    fmt.Sprintf("Missing required inputs: %s", strings.Join(names, ", ")),
		Suggestion: "Set them as environment variables or workflow inputs.",
	}
}

// NewMalformedArgumentError reports an argument that failed to parse.
func NewMalformedArgumentError(name string, err error) error {
	return &CLIError{
		Err:     errors.Join(ErrMalformedArgument, err),
		Message: fmt.Sprintf("Invalid %s argument.", name),
		Details: err.Error(),
	}
}

// WrapAuthError wraps authentication failures against host with guidance.
// Errors that are not authentication-related are returned unchanged.
func WrapAuthError(err error, host string) error {
	if err == nil {
		return nil
	}

	errStr := strings.ToLower(err.Error())

	if strings.Contains(errStr, "unauthorized") || strings.Contains(errStr, "bad credentials") ||
		strings.Contains(errStr, "401") || strings.Contains(errStr, "could not be decoded") {
		return &CLIError{
			Err:        ErrNotAuthenticated,
			Message:    fmt.Sprintf("Authentication with %s failed.", host),
			Details:    err.Error(),
			Suggestion: "Check the token, or the GitHub App ID, installation ID and private key.",
		}
	}

	if strings.Contains(errStr, "permission denied") || strings.Contains(errStr, "forbidden") ||
		strings.Contains(errStr, "403") {
		return &CLIError{
			Err:        ErrPermissionDenied,
			Message:    fmt.Sprintf("Access to %s was denied.", host),
			Details:    err.Error(),
			Suggestion: "The token needs read access to repository metadata.",
		}
	}

	return err
}

// WrapConnectionError wraps network failures against serverURL with
// guidance. Other errors are returned unchanged.
func WrapConnectionError(err error, serverURL string) error {
	if err == nil {
		return nil
	}

	errStr := strings.ToLower(err.Error())

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "network is unreachable") ||
		strings.Contains(errStr, "dial tcp") {
		return &CLIError{
			Err:        ErrConnectionFailed,
			Message:    fmt.Sprintf("Cannot connect to %s", serverURL),
			Suggestion: "Check that:\n  - The URL is correct\n  - Your network connection is working",
		}
	}

	if strings.Contains(errStr, "certificate") || strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") {
		return &CLIError{
			Err:        ErrConnectionFailed,
			Message:    fmt.Sprintf("TLS/certificate error connecting to %s", serverURL),
			Details:    err.Error(),
			Suggestion: "Check that the server certificate is valid.",
		}
	}

	if strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded") {
		return &CLIError{
			Err:        ErrConnectionFailed,
			Message:    fmt.Sprintf("Connection to %s timed out", serverURL),
			Suggestion: "Try again in a moment.",
		}
	}

	return err
}
