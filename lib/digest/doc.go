// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest fingerprints curation results with BLAKE3 keyed
// hashing.
//
// Each retained product hashes as its identifier and URL under the
// entry domain key. A result's [Fingerprint] is a binary Merkle tree
// over the sorted entry hashes, finished under the set domain key, so
// it depends only on which (identifier, URL) pairs were retained and
// not on input order. Two runs that curate the same products produce
// the same fingerprint.
package digest
