// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ErrorCategory classifies command errors so that callers (and the exit
// code mapping in the binary's main function) can make programmatic
// decisions without parsing error message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// malformed device paths, wrong argument count, unparseable flag
	// values. The caller should fix the invocation and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a referenced resource does not exist:
	// no device at the requested path, an unknown bus number. Retrying
	// with the same parameters will not help.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryInternal indicates an unexpected error: bugs, I/O
	// failures while reading sysfs, configuration that cannot be
	// loaded. The caller should report the error rather than retry.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by CLI commands. The binary
// maps categories to exit codes (validation errors exit with the usage
// code), and the optional hint gives the user a concrete next step.
//
// ToolError wraps an inner error, preserving the full error chain for
// sentinel checks while adding category metadata. Use the category
// constructors (Validation, NotFound, Internal) rather than constructing
// ToolError directly.
type ToolError struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Hint is an optional remediation suggestion appended to the error
	// text after a blank line.
	Hint string

	// Err is the underlying error with the human-readable message.
	Err error
}

// Error returns the underlying error message, followed by the hint when
// one is set. The category is never part of the string.
func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

// Unwrap returns the underlying error, allowing errors.Is and
// errors.As to walk the full chain through the ToolError wrapper.
func (e *ToolError) Unwrap() error { return e.Err }

// WithHint attaches a remediation suggestion to the error and returns
// the receiver, so constructors chain:
//
//	return cli.NotFound("%w", err).
//	    WithHint("Run 'usbtree list' to see connected devices.")
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced device or bus does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
