// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides Landform's CBOR encoding configuration.
//
// Curation reports are written as text, JSON or CBOR. The CBOR form
// uses Core Deterministic Encoding (RFC 8949 §4.2) so the same curation
// result always produces identical bytes, which lets reports be
// compared and fingerprinted byte for byte.
//
// Report types carry `json` struct tags only; fxamacker/cbor reads
// them when `cbor` tags are absent, so one tag set names fields in both
// formats.
//
//	data, err := codec.Marshal(report)
//	err = codec.Unmarshal(data, &report)
package codec
