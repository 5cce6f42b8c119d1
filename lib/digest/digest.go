// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"slices"

	"github.com/zeebo/blake3"
)

// Hash is a 32-byte BLAKE3 digest.
type Hash [32]byte

// domainKey is a 32-byte key for BLAKE3 keyed hashing.
type domainKey [32]byte

// Domain separation keys: the ASCII domain name, zero-padded to 32
// bytes. Changing them changes every fingerprint.
var (
	entryDomainKey = domainKey{
		'l', 'a', 'n', 'd', 'f', 'o', 'r', 'm', '.', 'c', 'u', 'r', 'a', 't', 'e', '.',
		'e', 'n', 't', 'r', 'y', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	setDomainKey = domainKey{
		'l', 'a', 'n', 'd', 'f', 'o', 'r', 'm', '.', 'c', 'u', 'r', 'a', 't', 'e', '.',
		's', 'e', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
)

// Entry hashes one retained product. The identifier and URL are
// length-prefixed so no two distinct pairs share an encoding.
func Entry(fullID, url string) Hash {
	data := make([]byte, 0, 16+len(fullID)+len(url))
	data = fmt.Appendf(data, "%d:%s", len(fullID), fullID)
	data = fmt.Appendf(data, "%d:%s", len(url), url)
	return keyedHash(entryDomainKey, data)
}

// Fingerprint combines entry hashes into a set fingerprint. The order
// of hashes does not matter; duplicates count once.
func Fingerprint(hashes []Hash) Hash {
	sorted := slices.Clone(hashes)
	slices.SortFunc(sorted, func(a, b Hash) int { return bytes.Compare(a[:], b[:]) })
	sorted = slices.Compact(sorted)
	if len(sorted) == 0 {
		return keyedHash(setDomainKey, nil)
	}
	root := merkleRoot(entryDomainKey, sorted)
	return keyedHash(setDomainKey, root[:])
}

// merkleRoot computes a binary Merkle tree over hashes. An odd node at
// the end of a level is promoted without hashing. Panics if hashes is
// empty.
func merkleRoot(key domainKey, hashes []Hash) Hash {
	if len(hashes) == 0 {
		panic("digest.merkleRoot: empty hash list")
	}

	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		panic("digest: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	var combined [64]byte
	hashPair := func(left, right Hash) Hash {
		copy(combined[:32], left[:])
		copy(combined[32:], right[:])
		hasher.Reset()
		hasher.Write(combined[:])
		var result Hash
		copy(result[:], hasher.Sum(nil))
		return result
	}

	level := slices.Clone(hashes)
	for len(level) > 1 {
		next := make([]Hash, (len(level)+1)/2)
		for i := 0; i+1 < len(level); i += 2 {
			next[i/2] = hashPair(level[i], level[i+1])
		}
		if len(level)%2 == 1 {
			next[len(next)-1] = level[len(level)-1]
		}
		level = next
	}
	return level[0]
}

func keyedHash(key domainKey, data []byte) Hash {
	// NewKeyed only fails for a key that is not 32 bytes.
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		panic("digest: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var hash Hash
	copy(hash[:], hasher.Sum(nil))
	return hash
}

// String returns the hex encoding of the hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Short returns the fingerprint reference shown in text reports: "lf-"
// followed by the first 12 hex characters.
func (h Hash) Short() string {
	return "lf-" + hex.EncodeToString(h[:6])
}

// MarshalText implements encoding.TextMarshaler.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hash) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// Parse parses a 64-character hex string into a Hash.
func Parse(s string) (Hash, error) {
	var hash Hash
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return hash, fmt.Errorf("parsing fingerprint: %w", err)
	}
	if len(decoded) != len(hash) {
		return hash, fmt.Errorf("fingerprint is %d bytes, want %d", len(decoded), len(hash))
	}
	copy(hash[:], decoded)
	return hash, nil
}
