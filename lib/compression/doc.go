// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

// Package compression wraps the stream compressors used for product
// listings and curation reports: zstd (klauspost/compress) and the LZ4
// frame format (pierrec/lz4).
//
// [Detect] picks an algorithm from a file name, [Sniff] from the first
// bytes of a stream. [NewReader] and [NewWriter] wrap a stream in the
// matching decompressor or compressor; [None] passes data through.
package compression
