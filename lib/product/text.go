// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package product

import "fmt"

// Text carries an ID through encoders that need a concrete
// encoding.TextUnmarshaler, such as JSON and CBOR struct fields. The
// zero Text holds no identifier and marshals as an empty string.
type Text struct {
	ID ID
}

// MarshalText implements encoding.TextMarshaler.
func (t Text) MarshalText() ([]byte, error) {
	if t.ID == nil {
		return []byte{}, nil
	}
	return t.ID.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty input
// produces a zero Text.
func (t *Text) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*t = Text{}
		return nil
	}
	id, err := Parse(string(data))
	if err != nil {
		return fmt.Errorf("unmarshal product identifier: %w", err)
	}
	t.ID = id
	return nil
}

func (t Text) String() string {
	if t.ID == nil {
		return ""
	}
	return t.ID.FullID()
}
