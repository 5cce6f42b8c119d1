// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package listing

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/nasa-ammos/landform/lib/compression"
)

const (
	urlA = "https://pds.example/m2020/sol/00001/ids/rdr/ncam/NLF_0001_0667022405_000RAS_N0010052AUT_04096_0A0L01J01.IMG"
	urlB = "https://pds.example/m2020/sol/00001/ids/rdr/ncam/NRF_0001_0667022405_000RAS_N0010052AUT_04096_0A0L01J01.IMG"
)

func compress(t *testing.T, data string, algorithm compression.Algorithm) []byte {
	t.Helper()
	var buffer bytes.Buffer
	writer, err := compression.NewWriter(&buffer, algorithm)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if _, err := writer.Write([]byte(data)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return buffer.Bytes()
}

func TestReadText(t *testing.T) {
	text := "# sol 1 navcam\n\n" + urlA + "\n   " + urlB + "  \n# end\n"

	entries, err := Read(strings.NewReader(text), "sol1.txt", FormatAuto)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := URLs(entries); !slices.Equal(got, []string{urlA, urlB}) {
		t.Errorf("URLs = %v", got)
	}
	if entries[0].Source != "sol1.txt:3" || entries[1].Source != "sol1.txt:4" {
		t.Errorf("sources = %q, %q", entries[0].Source, entries[1].Source)
	}
}

func TestReadJSONC(t *testing.T) {
	manifest := `[
  // navcam left
  "` + urlA + `",
  /* right eye, as an object */
  {"url": "` + urlB + `", "size": 123},
]`

	entries, err := Read(strings.NewReader(manifest), "sol1.jsonc", FormatAuto)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := URLs(entries); !slices.Equal(got, []string{urlA, urlB}) {
		t.Errorf("URLs = %v", got)
	}
	if entries[1].Source != "sol1.jsonc[1]" {
		t.Errorf("source = %q", entries[1].Source)
	}
}

func TestReadJSONCErrors(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{name: "not an array", manifest: `{"url": "x"}`},
		{name: "number element", manifest: `[42]`},
		{name: "empty url", manifest: `[{"url": ""}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tt.manifest), "m.json", FormatJSONC); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestReadCompressed(t *testing.T) {
	text := urlA + "\n" + urlB + "\n"
	for _, algorithm := range []compression.Algorithm{compression.Zstd, compression.LZ4} {
		t.Run(algorithm.String(), func(t *testing.T) {
			entries, err := Read(bytes.NewReader(compress(t, text, algorithm)), "listing", FormatAuto)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if got := URLs(entries); !slices.Equal(got, []string{urlA, urlB}) {
				t.Errorf("URLs = %v", got)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	manifest := `["` + urlA + `"]`
	path := filepath.Join(dir, "sol0001.json.zst")
	if err := os.WriteFile(path, compress(t, manifest, compression.Zstd), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	entries, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(entries) != 1 || entries[0].URL != urlA {
		t.Errorf("entries = %+v", entries)
	}

	if _, err := ReadFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
