// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

// Package listing reads the product listings a curation run consumes.
//
// A listing is either plain text, one product URL or identifier per
// line with blank lines and # comments ignored, or a JSONC manifest:
// an array whose elements are URL strings or objects with a "url"
// field. JSONC allows // and /* */ comments and trailing commas.
// Either form may be zstd or LZ4 compressed; compression is detected
// from the stream itself.
package listing
