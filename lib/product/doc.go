// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

// Package product decodes rover imagery product identifiers into typed,
// immutable values.
//
// A product identifier is the basename of a downlinked data product
// with its extension removed, for example
//
//	NLF_0001_0667022405_000RAS_N0010052AUT_04096_0A0L01J01   (Mars 2020, 54 chars)
//	NLB_444665224RASLF0060000NCAM00281M1                     (MSL, 36 chars)
//
// Every identifier family has a fixed width, and the family is chosen
// from the length alone (mesh aggregate families additionally carry a
// literal '_' at offset 8). Each family has a constant table of field
// spans ([Span]) that one generic extractor uses to decode camera,
// color, product type, geometry, site, drive, sol, spacecraft clock,
// version and the other fields into an [ID].
//
// [Parse] is strict and returns a [*MalformedError] naming the field
// and substring that failed. [TryParse] is the lenient form used in
// bulk curation loops: it returns nil and never fails loudly.
//
// The numeric fields use mission-specific mixed-radix encodings. Each
// decoder has an exact inverse ([SiteToString], [DriveToString],
// [EncodeVersion], [SolToString]) so that decoded values always
// re-encode to the original characters.
//
// [PartialID] erases chosen field spans to build grouping keys: two
// identifiers that differ only in the erased fields produce the same
// key. The comparator and group filter use this to find copies of the
// same observation at different quality levels.
//
// This package depends on no other Landform packages.
package product
