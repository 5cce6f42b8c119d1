// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/nasa-ammos/landform/lib/codec"
	"github.com/nasa-ammos/landform/lib/compression"
	"github.com/nasa-ammos/landform/lib/curate"
	"github.com/nasa-ammos/landform/lib/digest"
	"github.com/nasa-ammos/landform/lib/product"
	"github.com/nasa-ammos/landform/lib/version"
)

// Format is a report encoding.
type Format uint8

const (
	FormatText Format = iota
	FormatJSON
	FormatCBOR
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCBOR:
		return "cbor"
	default:
		return "text"
	}
}

// ParseFormat parses a format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "cbor":
		return FormatCBOR, nil
	default:
		return FormatText, fmt.Errorf("unknown report format %q (expected text, json or cbor)", name)
	}
}

// Report is the serialized form of a curation result.
type Report struct {
	Curator     string         `json:"curator"`
	Mission     string         `json:"mission"`
	GeneratedAt time.Time      `json:"generated_at"`
	DurationMS  int64          `json:"duration_ms"`
	Inputs      int            `json:"inputs"`
	Retained    int            `json:"retained"`
	Fingerprint digest.Hash    `json:"fingerprint"`
	Waypoints   []Waypoint     `json:"waypoints"`
	RejectedBy  map[string]int `json:"rejected_by,omitempty"`
	Rejected    []Rejection    `json:"rejected,omitempty"`
}

// Waypoint is one retained catalog.
type Waypoint struct {
	SiteDrive string    `json:"site_drive"`
	RDRDir    string    `json:"rdr_dir"`
	Sols      []int     `json:"sols"`
	Wedges    []Product `json:"wedges,omitempty"`
	Textures  []Product `json:"textures,omitempty"`
	Auxiliary []Product `json:"auxiliary,omitempty"`
}

// Product is a retained identifier and its URL.
type Product struct {
	ID  product.Text `json:"id"`
	URL string       `json:"url"`
}

// Rejection is an input the pipeline removed.
type Rejection struct {
	Input  string `json:"input"`
	ID     string `json:"id,omitempty"`
	Stage  string `json:"stage"`
	Reason string `json:"reason"`
}

// FromResult builds a report from a curation result.
func FromResult(result *curate.Result) *Report {
	r := &Report{
		Curator:     version.Short(),
		Mission:     result.Mission.String(),
		GeneratedAt: result.StartedAt.UTC(),
		DurationMS:  result.Duration.Milliseconds(),
		Inputs:      result.Inputs,
		Retained:    result.Retained(),
		Fingerprint: result.Fingerprint,
		Waypoints:   make([]Waypoint, 0, len(result.Waypoints)),
	}
	for _, w := range result.Waypoints {
		r.Waypoints = append(r.Waypoints, Waypoint{
			SiteDrive: w.SiteDrive.String(),
			RDRDir:    w.RDRDir,
			Sols:      w.Sols,
			Wedges:    products(w.Wedges),
			Textures:  products(w.Textures),
			Auxiliary: products(w.Auxiliary),
		})
	}
	for stage, n := range result.RejectedBy() {
		if r.RejectedBy == nil {
			r.RejectedBy = make(map[string]int)
		}
		r.RejectedBy[string(stage)] = n
	}
	for _, rejection := range result.Rejected {
		out := Rejection{
			Input:  rejection.Input,
			Stage:  string(rejection.Stage),
			Reason: rejection.Reason,
		}
		if rejection.ID != nil {
			out.ID = rejection.ID.FullID()
		}
		r.Rejected = append(r.Rejected, out)
	}
	return r
}

func products(in []curate.Product) []Product {
	if len(in) == 0 {
		return nil
	}
	out := make([]Product, len(in))
	for i, p := range in {
		out[i] = Product{ID: product.Text{ID: p.ID}, URL: p.URL}
	}
	return out
}

// Write renders r to w in the given format, compressed with algorithm.
func Write(w io.Writer, r *Report, format Format, algorithm compression.Algorithm) error {
	compressed, err := compression.NewWriter(w, algorithm)
	if err != nil {
		return err
	}

	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(compressed)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(r)
	case FormatCBOR:
		err = codec.NewEncoder(compressed).Encode(r)
	default:
		err = writeText(compressed, r)
	}
	if err != nil {
		compressed.Close()
		return fmt.Errorf("writing %s report: %w", format, err)
	}
	if err := compressed.Close(); err != nil {
		return fmt.Errorf("finishing %s stream: %w", algorithm, err)
	}
	return nil
}

// Read decodes a JSON or CBOR report, compressed or not. The format is
// detected from the first byte: '{' is JSON, anything else CBOR.
func Read(r io.Reader) (*Report, error) {
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
		return nil, fmt.Errorf("reading report: %w", err)
	}

	var report Report
	if trimmed := bytes.TrimLeft(data, " \t\r\n"); len(trimmed) > 0 && trimmed[0] == '{' {
		err = json.Unmarshal(data, &report)
	} else {
		err = codec.Unmarshal(data, &report)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding report: %w", err)
	}
	return &report, nil
}

func writeText(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "mission:\t%s\n", r.Mission)
	fmt.Fprintf(tw, "generated:\t%s (%dms, curator %s)\n", r.GeneratedAt.Format(time.RFC3339), r.DurationMS, r.Curator)
	fmt.Fprintf(tw, "inputs:\t%d\n", r.Inputs)
	fmt.Fprintf(tw, "retained:\t%d in %d waypoints\n", r.Retained, len(r.Waypoints))
	for _, stage := range curate.Stages {
		if n := r.RejectedBy[string(stage)]; n > 0 {
			fmt.Fprintf(tw, "rejected (%s):\t%d\n", stage, n)
		}
	}
	fmt.Fprintf(tw, "fingerprint:\t%s\n", r.Fingerprint.Short())
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, waypoint := range r.Waypoints {
		fmt.Fprintf(w, "\nwaypoint %s  sols %v  %s\n", waypoint.SiteDrive, waypoint.Sols, waypoint.RDRDir)
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		section := func(class string, list []Product) {
			for _, p := range list {
				fmt.Fprintf(tw, "  %s\t%s\t%s\n", class, p.ID, p.URL)
			}
		}
		section("wedge", waypoint.Wedges)
		section("texture", waypoint.Textures)
		section("auxiliary", waypoint.Auxiliary)
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if len(r.Rejected) > 0 {
		fmt.Fprintln(w, "\nrejected:")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, rejection := range r.Rejected {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", rejection.Stage, rejection.Input, rejection.Reason)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
