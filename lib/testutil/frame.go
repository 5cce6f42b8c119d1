// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// Frame describes a Perseverance OPGS single-frame identifier. Zero
// fields take the defaults of [NewFrame].
type Frame struct {
	Camera      string
	ProductType string
	Thumbnail   bool
	Sol         int
	SCLK        int
	Site        int
	Drive       int
	Version     int
	Extension   string
}

// NewFrame returns a left navcam RAS frame on sol 100 at site 3.
func NewFrame() Frame {
	return Frame{
		Camera:      "NL",
		ProductType: "RAS",
		Sol:         100,
		SCLK:        675000000,
		Site:        3,
		Version:     1,
		Extension:   "IMG",
	}
}

// ID returns the 54-character identifier.
func (f Frame) ID() string {
	size := "_"
	if f.Thumbnail {
		size = "T"
	}
	return fmt.Sprintf("%sF_%04d_%010d_000%s%sN%03d%04dNCAM00100_0A0L01J%02d",
		f.Camera, f.Sol, f.SCLK, f.ProductType, size, f.Site, f.Drive, f.Version)
}

// URL returns an archive URL for the frame under its sol's RDR
// directory.
func (f Frame) URL() string {
	return fmt.Sprintf("https://pds.example/m2020/sol/%05d/ids/rdr/ncam/%s.%s", f.Sol, f.ID(), f.Extension)
}

// With returns a copy of f with the product type and version replaced.
func (f Frame) With(productType string, version int) Frame {
	f.ProductType = productType
	f.Version = version
	return f
}

// WriteFile writes content to name in a fresh temporary directory and
// returns the path.
func WriteFile(t interface {
	Helper()
	TempDir() string
	Fatalf(format string, args ...any)
}, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}
