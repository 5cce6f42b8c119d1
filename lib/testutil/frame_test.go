// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"strings"
	"testing"

	"github.com/nasa-ammos/landform/lib/product"
)

func TestFrameParses(t *testing.T) {
	frame := NewFrame().With("XYZ", 2)
	frame.Camera = "NR"
	frame.Thumbnail = true

	id, err := product.Parse(frame.URL())
	if err != nil {
		t.Fatalf("Parse(%s): %v", frame.URL(), err)
	}
	if id.FullID() != frame.ID() {
		t.Errorf("FullID = %s, want %s", id.FullID(), frame.ID())
	}
	if id.ProductType() != product.TypeXYZ || id.Version() != 2 || id.Eye() != product.EyeRight {
		t.Errorf("unexpected decode of %s", frame.ID())
	}
	if id.Size() != product.SizeThumbnail {
		t.Error("expected a thumbnail")
	}
	if id.Site() != 3 || id.Sol() != 100 {
		t.Errorf("site %d sol %d, want 3 and 100", id.Site(), id.Sol())
	}
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "urls.txt", "a\nb\n")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, "urls.txt") || string(data) != "a\nb\n" {
		t.Errorf("got %q at %s", data, path)
	}
}
