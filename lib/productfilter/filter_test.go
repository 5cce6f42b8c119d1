// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package productfilter_test

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/nasa-ammos/landform/lib/mission"
	"github.com/nasa-ammos/landform/lib/product"
	"github.com/nasa-ammos/landform/lib/productfilter"
)

// frame builds Mars 2020 identifiers of one navcam frame; each field
// left empty takes the default of a left navcam regular raw RAS.
type frame struct {
	camera, color, special, productType string
	size, geometry, specific            string
	producer, version                   string
}

func (f frame) String() string {
	or := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	return fmt.Sprintf("%s%s%s0100_0675000000_000%s%s%s0030000NCAM00100_%s%s%s",
		or(f.camera, "NL"), or(f.color, "F"), or(f.special, "_"),
		or(f.productType, "RAS"), or(f.size, "_"), or(f.geometry, "N"),
		or(f.specific, "0A0L01"), or(f.producer, "J"), or(f.version, "01"))
}

func parseAll(t *testing.T, frames ...frame) []product.ID {
	t.Helper()
	ids := make([]product.ID, len(frames))
	for i, f := range frames {
		id, err := product.Parse(f.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", f.String(), err)
		}
		ids[i] = id
	}
	return ids
}

func fullIDs(ids []product.ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.FullID()
	}
	return out
}

func expectIDs(t *testing.T, got []product.ID, want ...frame) {
	t.Helper()
	wantIDs := make([]string, len(want))
	for i, f := range want {
		wantIDs[i] = f.String()
	}
	slices.Sort(wantIDs)
	if !slices.Equal(fullIDs(got), wantIDs) {
		t.Errorf("got %v\nwant %v", fullIDs(got), wantIDs)
	}
}

func TestKeepLatestVersion(t *testing.T) {
	filter := productfilter.New(mission.M2020(), nil, nil)
	v1, v2, other := frame{version: "01"}, frame{version: "02"}, frame{productType: "IOF", version: "01"}
	got := filter.KeepLatestVersion(parseAll(t, v1, v2, other))
	expectIDs(t, got, v2, other)
}

func TestSuppressRangeMaps(t *testing.T) {
	filter := productfilter.New(mission.M2020(), nil, nil)
	xyz := frame{productType: "XYZ"}
	rng := frame{productType: "RNG", version: "02"}
	thumbRNG := frame{productType: "RNG", size: "T"}
	otherRNG := frame{camera: "FL", productType: "RNG"}

	expectIDs(t, filter.SuppressRangeMaps(parseAll(t, xyz, rng, thumbRNG, otherRNG)), xyz, otherRNG)
	expectIDs(t, filter.SuppressRangeMaps(parseAll(t, rng)), rng)
}

func TestKeepBestSpecial(t *testing.T) {
	filter := productfilter.New(mission.M2020(), nil, nil)
	standard := frame{special: "_"}
	alternate := frame{special: "A", producer: "M"}
	expectIDs(t, filter.KeepBestSpecial(parseAll(t, standard, alternate)), standard)
	expectIDs(t, filter.KeepBestSpecial(parseAll(t, alternate)), alternate)
}

func TestKeepPreferredColor(t *testing.T) {
	full, gray, green, blue := frame{color: "F"}, frame{color: "M"}, frame{color: "G"}, frame{color: "B"}

	filter := productfilter.New(mission.M2020(), nil, nil)
	expectIDs(t, filter.KeepPreferredColor(parseAll(t, full, gray, green)), full)
	expectIDs(t, filter.KeepPreferredColor(parseAll(t, gray, green, blue)), gray)
	expectIDs(t, filter.KeepPreferredColor(parseAll(t, blue, green)), green)
	expectIDs(t, filter.KeepPreferredColor(parseAll(t, blue)), blue)

	policy := mission.M2020().Clone()
	policy.PreferColor = false
	filter = productfilter.New(policy, nil, nil)
	expectIDs(t, filter.KeepPreferredColor(parseAll(t, full, gray, green)), gray)
}

func TestKeepPreferredEye(t *testing.T) {
	leftXYZ := frame{camera: "NL", productType: "XYZ"}
	rightXYZ := frame{camera: "NR", productType: "XYZ"}
	leftRAS := frame{camera: "NL"}
	rightRAS := frame{camera: "NR"}
	lonelyRight := frame{camera: "ZR", productType: "XYZ"}

	filter := productfilter.New(mission.M2020(), nil, nil)
	got := filter.KeepPreferredEye(parseAll(t, leftXYZ, rightXYZ, leftRAS, rightRAS, lonelyRight))
	expectIDs(t, got, leftXYZ, leftRAS, rightRAS, lonelyRight)

	policy := mission.M2020().Clone()
	policy.PreferredEye = product.EyeAny
	filter = productfilter.New(policy, nil, nil)
	expectIDs(t, filter.KeepPreferredEye(parseAll(t, leftXYZ, rightXYZ)), leftXYZ, rightXYZ)
}

func TestKeepPreferredEyeIgnoresMonoCameras(t *testing.T) {
	// Erasing the eye character merges MSL mastcam and MAHLI keys.
	mastcam := product.MustParse("MLF_444665224XYZLF0060000MCAM00281M1")
	mastcamRight := product.MustParse("MRF_444665224XYZLF0060000MCAM00281M1")
	mahli := product.MustParse("MHF_444665224XYZLF0060000MCAM00281M1")

	filter := productfilter.New(mission.MSL(), nil, nil)
	got := filter.KeepPreferredEye([]product.ID{mastcam, mastcamRight, mahli})
	want := []string{mahli.FullID(), mastcam.FullID()}
	if !slices.Equal(fullIDs(got), want) {
		t.Errorf("got %v, want %v", fullIDs(got), want)
	}
}

func TestKeepPreferredLinearity(t *testing.T) {
	rawXYZ, linXYZ := frame{productType: "XYZ", geometry: "N"}, frame{productType: "XYZ", geometry: "L"}
	rawRAS, linRAS := frame{geometry: "N"}, frame{geometry: "L"}
	rawMXY, linMXY := frame{productType: "MXY", geometry: "N"}, frame{productType: "MXY", geometry: "L"}

	tests := []struct {
		name           string
		linearGeometry bool
		linearRaster   bool
		in             []frame
		want           []frame
	}{
		{
			name: "defaults-prefer-raw",
			in:   []frame{rawXYZ, linXYZ, rawRAS, linRAS, rawMXY, linMXY},
			want: []frame{rawXYZ, rawRAS, rawMXY},
		},
		{
			name:           "independent-preferences",
			linearGeometry: true,
			in:             []frame{rawXYZ, linXYZ, rawRAS, linRAS, rawMXY, linMXY},
			want:           []frame{linXYZ, rawRAS, linMXY},
		},
		{
			name:         "masks-follow-raster-without-geometry",
			linearRaster: true,
			in:           []frame{rawRAS, linRAS, rawMXY, linMXY},
			want:         []frame{linRAS, linMXY},
		},
		{
			name: "masks-follow-only-linearity-present",
			in:   []frame{linXYZ, rawMXY, linMXY},
			want: []frame{linXYZ, linMXY},
		},
		{
			name:           "masks-alone-use-geometry-preference",
			linearGeometry: true,
			in:             []frame{rawMXY, linMXY},
			want:           []frame{linMXY},
		},
		{
			name: "masks-without-chosen-linearity-kept",
			in:   []frame{rawXYZ, linMXY},
			want: []frame{rawXYZ, linMXY},
		},
		{
			name: "single-linearity-untouched",
			in:   []frame{linRAS},
			want: []frame{linRAS},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := mission.M2020().Clone()
			policy.PreferLinearGeometry = tt.linearGeometry
			policy.PreferLinearRaster = tt.linearRaster
			filter := productfilter.New(policy, nil, nil)
			expectIDs(t, filter.KeepPreferredLinearity(parseAll(t, tt.in...)), tt.want...)
		})
	}
}

func TestFilterGroupsScenarios(t *testing.T) {
	filter := productfilter.New(mission.M2020(), nil, nil)

	t.Run("version-collapse", func(t *testing.T) {
		v1, v2 := frame{version: "01"}, frame{version: "02"}
		expectIDs(t, filter.FilterGroups(parseAll(t, v1, v2)), v2)
	})
	t.Run("rng-suppressed-by-xyz", func(t *testing.T) {
		xyz, rng := frame{productType: "XYZ"}, frame{productType: "RNG"}
		expectIDs(t, filter.FilterGroups(parseAll(t, rng, xyz)), xyz)
	})
	t.Run("prefilter-drops-disallowed", func(t *testing.T) {
		kept, cornell, odd := frame{}, frame{producer: "C", version: "02"}, frame{special: "Q"}
		result := filter.Run(parseAll(t, kept, cornell, odd))
		expectIDs(t, result.Kept, kept)
		if len(result.Dropped) != 2 {
			t.Fatalf("Dropped = %v, want 2 drops", result.Dropped)
		}
		for _, drop := range result.Dropped {
			if drop.Pass != productfilter.PassPreFilter {
				t.Errorf("drop %v in pass %s, want prefilter", drop.ID, drop.Pass)
			}
		}
	})
	t.Run("duplicates-collapse", func(t *testing.T) {
		f := frame{}
		expectIDs(t, filter.FilterGroups(parseAll(t, f, f, f)), f)
	})
}

func TestFilterGroupsIgnoresInputOrder(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	pick := func(options ...string) string { return options[r.IntN(len(options))] }
	var frames []frame
	for range 80 {
		frames = append(frames, frame{
			camera:      pick("NL", "NR", "ZL"),
			color:       pick("F", "M", "G"),
			special:     pick("_", "A"),
			productType: pick("XYZ", "RNG", "RAS", "MXY"),
			size:        pick("_", "T"),
			geometry:    pick("N", "L"),
			specific:    pick("0A0L01", "1A0L01"),
			producer:    pick("J", "M"),
			version:     pick("01", "02"),
		})
	}
	ids := parseAll(t, frames...)
	filter := productfilter.New(mission.M2020(), nil, nil)
	want := fullIDs(filter.FilterGroups(ids))
	if !slices.IsSorted(want) {
		t.Errorf("output not sorted: %v", want)
	}
	for range 5 {
		r.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
		if got := fullIDs(filter.FilterGroups(ids)); !slices.Equal(got, want) {
			t.Fatalf("shuffled input changed output:\n got %v\nwant %v", got, want)
		}
	}
}

func TestKeepBestVariant(t *testing.T) {
	filter := productfilter.New(mission.M2020(), nil, nil)
	regular := frame{size: "_", producer: "J"}
	thumbnail := frame{size: "T", producer: "J"}
	downsampled := frame{specific: "1A0L01"}
	msss := frame{producer: "M", version: "03"}
	expectIDs(t, filter.KeepBestVariant(parseAll(t, regular, thumbnail, downsampled, msss)), regular)
}
