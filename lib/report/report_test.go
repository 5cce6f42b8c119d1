// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/nasa-ammos/landform/lib/compression"
	"github.com/nasa-ammos/landform/lib/curate"
	"github.com/nasa-ammos/landform/lib/digest"
	"github.com/nasa-ammos/landform/lib/product"
	"github.com/nasa-ammos/landform/lib/sitedrive"
)

const (
	wedgeID   = "NLF_0100_0675000000_000XYZ_N0030000NCAM00100_0A0L01J01"
	textureID = "NLF_0100_0675000000_000RAS_N0030000NCAM00100_0A0L01J02"
	droppedID = "NLF_0100_0675000000_000RAS_N0030000NCAM00100_0A0L01J01"
	urlPrefix = "https://pds.example/m2020/sol/00100/ids/rdr/ncam/"
)

func sampleResult() *curate.Result {
	wedge := curate.Product{ID: product.MustParse(wedgeID), URL: urlPrefix + wedgeID + ".IMG"}
	texture := curate.Product{ID: product.MustParse(textureID), URL: urlPrefix + textureID + ".IMG"}
	return &curate.Result{
		Mission:   product.MissionM2020,
		StartedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Duration:  1500 * time.Millisecond,
		Inputs:    4,
		Waypoints: []curate.Waypoint{{
			SiteDrive: sitedrive.SiteDrive{Site: 3, Drive: 0},
			RDRDir:    "https://pds.example/m2020/sol/#####/ids/rdr/",
			Sols:      []int{100},
			Wedges:    []curate.Product{wedge},
			Textures:  []curate.Product{texture},
		}},
		Rejected: []curate.Rejection{
			{Input: "garbage.IMG", Stage: curate.StageParse, Reason: "malformed"},
			{Input: urlPrefix + droppedID + ".IMG", ID: product.MustParse(droppedID), Stage: curate.StageFilter, Reason: "superseded in the version pass"},
		},
		Fingerprint: digest.Fingerprint([]digest.Hash{
			digest.Entry(wedge.ID.FullID(), wedge.URL),
			digest.Entry(texture.ID.FullID(), texture.URL),
		}),
	}
}

func TestFromResult(t *testing.T) {
	r := FromResult(sampleResult())

	if r.Mission != "m2020" || r.Inputs != 4 || r.Retained != 2 || r.DurationMS != 1500 {
		t.Errorf("header = %s/%d/%d/%d", r.Mission, r.Inputs, r.Retained, r.DurationMS)
	}
	if len(r.Waypoints) != 1 || r.Waypoints[0].SiteDrive != "0003_0000" {
		t.Fatalf("waypoints = %+v", r.Waypoints)
	}
	if r.Waypoints[0].Auxiliary != nil {
		t.Error("empty sections should be omitted")
	}
	if r.RejectedBy["parse"] != 1 || r.RejectedBy["filter"] != 1 {
		t.Errorf("RejectedBy = %v", r.RejectedBy)
	}
	if r.Rejected[0].ID != "" || r.Rejected[1].ID != droppedID {
		t.Errorf("rejection ids = %q, %q", r.Rejected[0].ID, r.Rejected[1].ID)
	}
}

func TestWriteReadRoundtrip(t *testing.T) {
	want := FromResult(sampleResult())

	for _, format := range []Format{FormatJSON, FormatCBOR} {
		for _, algorithm := range []compression.Algorithm{compression.None, compression.Zstd, compression.LZ4} {
			t.Run(format.String()+"/"+algorithm.String(), func(t *testing.T) {
				var buffer bytes.Buffer
				if err := Write(&buffer, want, format, algorithm); err != nil {
					t.Fatalf("Write: %v", err)
				}

				got, err := Read(&buffer)
				if err != nil {
					t.Fatalf("Read: %v", err)
				}
				if got.Fingerprint != want.Fingerprint {
					t.Error("fingerprint mismatch")
				}
				if !got.GeneratedAt.Equal(want.GeneratedAt) {
					t.Errorf("generated_at = %v, want %v", got.GeneratedAt, want.GeneratedAt)
				}
				if len(got.Waypoints) != 1 || len(got.Waypoints[0].Wedges) != 1 {
					t.Fatalf("waypoints = %+v", got.Waypoints)
				}
				if id := got.Waypoints[0].Wedges[0].ID.ID; id == nil || id.FullID() != wedgeID {
					t.Errorf("wedge id = %v, want %s", id, wedgeID)
				}
				if len(got.Rejected) != 2 || got.Rejected[1].Reason != want.Rejected[1].Reason {
					t.Errorf("rejected = %+v", got.Rejected)
				}
			})
		}
	}
}

func TestCBORDeterministic(t *testing.T) {
	r := FromResult(sampleResult())
	var first, second bytes.Buffer
	if err := Write(&first, r, FormatCBOR, compression.None); err != nil {
		t.Fatal(err)
	}
	if err := Write(&second, r, FormatCBOR, compression.None); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("CBOR report encoding is not deterministic")
	}
}

func TestWriteText(t *testing.T) {
	var buffer bytes.Buffer
	if err := Write(&buffer, FromResult(sampleResult()), FormatText, compression.None); err != nil {
		t.Fatalf("Write: %v", err)
	}
	text := buffer.String()
	for _, want := range []string{
		"m2020",
		"retained:",
		"2 in 1 waypoints",
		"rejected (parse):",
		"waypoint 0003_0000",
		"wedge",
		wedgeID,
		"superseded in the version pass",
		"lf-",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("text report missing %q:\n%s", want, text)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"text", "json", "cbor"} {
		format, err := ParseFormat(name)
		if err != nil || format.String() != name {
			t.Errorf("ParseFormat(%q) = %v, %v", name, format, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}
