// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package listing

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/nasa-ammos/landform/lib/compression"
)

// Format is the syntax of a decompressed listing.
type Format uint8

const (
	// FormatAuto picks JSONC when the first non-space byte is '[',
	// text otherwise.
	FormatAuto Format = iota
	FormatText
	FormatJSONC
)

// Entry is one listed product.
type Entry struct {
	// URL is the product URL or bare identifier as listed.
	URL string `json:"url"`

	// Source names the listing and line or element the entry came
	// from, for diagnostics.
	Source string `json:"-"`
}

// ReadFile reads a listing from disk. The format comes from the file
// name with any compression extension removed: .json and .jsonc are
// JSONC, .txt and .lst are text, anything else is detected from
// content.
func ReadFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	_, stripped := compression.Detect(filepath.Base(path))
	format := FormatAuto
	switch strings.ToLower(filepath.Ext(stripped)) {
	case ".json", ".jsonc":
		format = FormatJSONC
	case ".txt", ".lst":
		format = FormatText
	}

	entries, err := Read(file, path, format)
	if err != nil {
		return nil, fmt.Errorf("reading listing %s: %w", path, err)
	}
	return entries, nil
}

// Read reads a listing from r. The name labels entry sources.
func Read(r io.Reader, name string, format Format) ([]Entry, error) {
	algorithm, stream, err := compression.Sniff(r)
	if err != nil {
		return nil, err
	}
	decompressed, err := compression.NewReader(stream, algorithm)
	if err != nil {
		return nil, err
	}
	defer decompressed.Close()

	data, err := io.ReadAll(decompressed)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s listing: %w", algorithm, err)
	}

	if format == FormatAuto {
		format = FormatText
		if trimmed := bytes.TrimLeft(data, " \t\r\n"); len(trimmed) > 0 && trimmed[0] == '[' {
			format = FormatJSONC
		}
	}
	if format == FormatJSONC {
		return parseJSONC(data, name)
	}
	return parseText(data, name)
}

func parseText(data []byte, name string) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		entries = append(entries, Entry{URL: text, Source: fmt.Sprintf("%s:%d", name, line)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseJSONC(data []byte, name string) ([]Entry, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(jsonc.ToJSON(data), &elements); err != nil {
		return nil, fmt.Errorf("parsing JSONC manifest: %w", err)
	}

	entries := make([]Entry, 0, len(elements))
	for i, element := range elements {
		source := fmt.Sprintf("%s[%d]", name, i)
		var url string
		if err := json.Unmarshal(element, &url); err != nil {
			var object Entry
			if err := json.Unmarshal(element, &object); err != nil {
				return nil, fmt.Errorf("%s: want a string or an object with a url field", source)
			}
			url = object.URL
		}
		url = strings.TrimSpace(url)
		if url == "" {
			return nil, fmt.Errorf("%s: empty url", source)
		}
		entries = append(entries, Entry{URL: url, Source: source})
	}
	return entries, nil
}

// URLs returns the URL of every entry, in order.
func URLs(entries []Entry) []string {
	urls := make([]string, len(entries))
	for i, e := range entries {
		urls[i] = e.URL
	}
	return urls
}
