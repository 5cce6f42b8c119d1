// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

// Package report renders curation results.
//
// [FromResult] flattens a [curate.Result] into a [Report] of plain
// strings and counts. [Write] renders it as a human-readable text
// summary, indented JSON or deterministic CBOR (lib/codec), optionally
// zstd or LZ4 compressed. [Read] decodes JSON and CBOR reports back,
// detecting compression from the stream.
package report
