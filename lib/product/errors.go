// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package product

import (
	"errors"
	"fmt"
)

// ErrMalformed is matched by every identifier parse failure via
// errors.Is.
var ErrMalformed = errors.New("malformed product identifier")

// MalformedError describes why a string is not a valid product
// identifier. Field is FieldNone when the failure is not tied to one
// field (for example an unexpected total length).
type MalformedError struct {
	// Raw is the identifier as given to Parse, before basename and
	// extension stripping.
	Raw string

	// Length is the length of the stripped identifier.
	Length int

	// Field is the field that failed to decode.
	Field Field

	// Substring is the offending slice of the identifier.
	Substring string

	// Err is the underlying cause.
	Err error
}

func (e *MalformedError) Error() string {
	if e.Field == FieldNone {
		return fmt.Sprintf("product identifier %q (length %d): %v", e.Raw, e.Length, e.Err)
	}
	return fmt.Sprintf("product identifier %q (length %d): %s %q: %v", e.Raw, e.Length, e.Field, e.Substring, e.Err)
}

// Unwrap returns the underlying cause.
func (e *MalformedError) Unwrap() error { return e.Err }

// Is reports ErrMalformed as a match so callers can test any parse
// failure without a type assertion.
func (e *MalformedError) Is(target error) bool { return target == ErrMalformed }
