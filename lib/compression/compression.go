// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package compression

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Algorithm identifies a stream compression format.
type Algorithm uint8

const (
	// None passes data through unchanged.
	None Algorithm = iota

	// Zstd is zstd at the default level. Listings and JSON reports
	// are text and compress well with it.
	Zstd

	// LZ4 is the LZ4 frame format, for when decode speed matters more
	// than ratio.
	LZ4
)

// String returns the configuration name of an algorithm.
func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", a)
	}
}

// Extension returns the file extension conventionally appended for the
// algorithm, including the dot, or "" for None.
func (a Algorithm) Extension() string {
	switch a {
	case Zstd:
		return ".zst"
	case LZ4:
		return ".lz4"
	default:
		return ""
	}
}

// Parse parses an algorithm name as written in configuration or flags.
func Parse(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "none", "":
		return None, nil
	case "zstd", "zst":
		return Zstd, nil
	case "lz4":
		return LZ4, nil
	default:
		return None, fmt.Errorf("unknown compression %q (expected none, zstd or lz4)", name)
	}
}

// Detect returns the algorithm implied by a file name's final
// extension, and the name with that extension removed.
func Detect(name string) (Algorithm, string) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".zst"):
		return Zstd, name[:len(name)-len(".zst")]
	case strings.HasSuffix(lower, ".zstd"):
		return Zstd, name[:len(name)-len(".zstd")]
	case strings.HasSuffix(lower, ".lz4"):
		return LZ4, name[:len(name)-len(".lz4")]
	default:
		return None, name
	}
}

// Frame magic numbers, as they appear on the wire (little-endian).
var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Sniff peeks at the start of r to identify its compression. The
// returned reader yields the full stream, including the peeked bytes.
func Sniff(r io.Reader) (Algorithm, io.Reader, error) {
	buffered := bufio.NewReader(r)
	head, err := buffered.Peek(4)
	if err != nil && err != io.EOF {
		return None, buffered, fmt.Errorf("sniffing compression: %w", err)
	}
	switch {
	case bytes.Equal(head, zstdMagic):
		return Zstd, buffered, nil
	case bytes.Equal(head, lz4Magic):
		return LZ4, buffered, nil
	default:
		return None, buffered, nil
	}
}

// NewReader returns a reader that decompresses r. Close releases
// decoder resources; it does not close r.
func NewReader(r io.Reader, algorithm Algorithm) (io.ReadCloser, error) {
	switch algorithm {
	case None:
		return io.NopCloser(r), nil
	case Zstd:
		decoder, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		return decoder.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("unsupported compression: %s", algorithm)
	}
}

// NewWriter returns a writer that compresses into w. Close flushes the
// final frame; it does not close w.
func NewWriter(w io.Writer, algorithm Algorithm) (io.WriteCloser, error) {
	switch algorithm {
	case None:
		return nopWriteCloser{w}, nil
	case Zstd:
		encoder, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		return encoder, nil
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported compression: %s", algorithm)
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
