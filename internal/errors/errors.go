package errors

import "fmt"

// UserError represents an error with user-friendly messaging and actionable hints
type UserError struct {
	Message string // User-friendly error message
	Hint    string // Actionable hint to resolve the issue
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface
func (e *UserError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s\nHint: %s", e.Message, e.Hint)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain support
func (e *UserError) Unwrap() error {
	return e.Cause
}

// New creates a new UserError with a message and hint
func New(message, hint string) *UserError {
	return &UserError{
		Message: message,
		Hint:    hint,
	}
}

// Wrap wraps an existing error with a user-friendly message and hint
func Wrap(err error, message, hint string) *UserError {
	return &UserError{
		Message: message,
		Hint:    hint,
		Cause:   err,
	}
}

// MissingPath creates an error for a file or directory that does not exist
func MissingPath(path, suggestion string) *UserError {
	return &UserError{
		Message: fmt.Sprintf("Path not found: %s", path),
		Hint:    suggestion,
	}
}

// InvalidConfig creates an error for invalid configuration
func InvalidConfig(field, issue, fix string) *UserError {
	return &UserError{
		Message: fmt.Sprintf("Invalid configuration for %s: %s", field, issue),
		Hint:    fix,
	}
}

// InvalidArgument creates an error for a positional argument that cannot be parsed
func InvalidArgument(arg, issue, fix string) *UserError {
	return &UserError{
		Message: fmt.Sprintf("Invalid argument %q: %s", arg, issue),
		Hint:    fix,
	}
}

// MissingRequired creates an error for a missing required parameter
func MissingRequired(param, suggestion string) *UserError {
	return &UserError{
		Message: fmt.Sprintf("Required parameter missing: %s", param),
		Hint:    suggestion,
	}
}

// InvalidHost creates an error for a URL whose host name cannot be converted
func InvalidHost(url string, cause error) *UserError {
	return &UserError{
		Message: fmt.Sprintf("Cannot convert host name in %s", url),
		Hint:    "Check that every dot-separated label is at most 63 characters and uses valid IDNA characters",
		Cause:   cause,
	}
}
