// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package product

import "strings"

// PartialID returns id's full identifier with the characters of the
// excluded fields removed. Two identifiers of one variant that differ
// only in excluded fields have equal partial identifiers. FieldVariants
// expands to the variant's quality-variant fields; fields the variant
// does not have are ignored. Overlapping spans are erased once.
func PartialID(id ID, exclude ...Field) string {
	full := id.FullID()
	erase := make([]bool, len(full))
	mark := func(f Field) {
		if s, ok := SpanOf(id.Variant(), f); ok {
			for i := s.Start; i < s.End; i++ {
				erase[i] = true
			}
		}
	}
	for _, f := range exclude {
		if f == FieldVariants {
			for _, vf := range VariantFields(id.Variant()) {
				mark(vf)
			}
			continue
		}
		mark(f)
	}

	var b strings.Builder
	b.Grow(len(full))
	for i := 0; i < len(full); i++ {
		if !erase[i] {
			b.WriteByte(full[i])
		}
	}
	return b.String()
}

// GroupKey is PartialID prefixed with the variant, so keys from
// different identifier families never collide.
func GroupKey(id ID, exclude ...Field) string {
	return id.Variant().String() + ":" + PartialID(id, exclude...)
}
