// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
)

// UsageError reports a command-line mistake. It exits with status 2.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

// ExitCode returns 2.
func (e *UsageError) ExitCode() int { return 2 }

// Usagef returns a UsageError with a formatted message.
func Usagef(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// ExitError signals a non-zero exit code for a command that has already
// written its own output.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// ExitCode maps an error returned by a command to a process exit
// status, and reports whether the error message still needs printing.
func ExitCode(err error) (code int, print bool) {
	if err == nil {
		return 0, false
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		return usage.ExitCode(), true
	}
	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code, false
	}
	return 1, true
}
