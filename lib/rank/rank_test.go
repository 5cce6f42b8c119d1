// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package rank_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/nasa-ammos/landform/lib/mission"
	"github.com/nasa-ammos/landform/lib/product"
	"github.com/nasa-ammos/landform/lib/rank"
)

// m2020ID fills the varying fields of a Mars 2020 identifier. Fields
// left empty take the values of a navcam-left regular raw RAS product.
type m2020ID struct {
	camera, color, special, productType string
	size, geometry, sequence, specific   string
	producer, version                    string
}

func (f m2020ID) String() string {
	or := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	return fmt.Sprintf("%s%s%s0100_0675000000_000%s%s%s0030000%s_%s%s%s",
		or(f.camera, "NL"), or(f.color, "F"), or(f.special, "_"),
		or(f.productType, "RAS"), or(f.size, "_"), or(f.geometry, "N"),
		or(f.sequence, "NCAM00100"), or(f.specific, "0A0L01"),
		or(f.producer, "J"), or(f.version, "01"))
}

func (f m2020ID) parse(t testing.TB) product.ID {
	t.Helper()
	id, err := product.Parse(f.String())
	if err != nil {
		t.Fatalf("Parse(%q): %v", f.String(), err)
	}
	return id
}

func TestCompareCriteria(t *testing.T) {
	tests := []struct {
		name   string
		a, b   m2020ID
		code   int
		reason rank.Criterion
	}{
		{name: "different-stereo-groups", a: m2020ID{camera: "NL"}, b: m2020ID{camera: "FL"}, reason: rank.StereoCameraFrame},
		{name: "xyz-beats-rng", a: m2020ID{productType: "XYZ"}, b: m2020ID{productType: "RNG"}, code: -1, reason: rank.XYZOverRNG},
		{name: "rng-loses-to-xyz", a: m2020ID{productType: "RNG", producer: "J"}, b: m2020ID{productType: "XYZ", producer: "M"}, code: 1, reason: rank.XYZOverRNG},
		{name: "different-types", a: m2020ID{productType: "RAS"}, b: m2020ID{productType: "IOF"}, reason: rank.ObsType},
		{name: "producer", a: m2020ID{producer: "J"}, b: m2020ID{producer: "M"}, code: -1, reason: rank.Producer},
		{name: "disallowed-producer-worst", a: m2020ID{producer: "C"}, b: m2020ID{producer: "P"}, code: 1, reason: rank.Producer},
		{name: "special", a: m2020ID{special: "A"}, b: m2020ID{special: "_"}, code: 1, reason: rank.Special},
		{name: "full-color", a: m2020ID{color: "F"}, b: m2020ID{color: "M"}, code: -1, reason: rank.Color},
		{name: "gray-over-green", a: m2020ID{color: "G"}, b: m2020ID{color: "M"}, code: 1, reason: rank.Color},
		{name: "red-over-blue", a: m2020ID{color: "R"}, b: m2020ID{color: "B"}, code: -1, reason: rank.Color},
		{name: "eye-geometry", a: m2020ID{camera: "NR", productType: "XYZ"}, b: m2020ID{camera: "NL", productType: "XYZ"}, code: 1, reason: rank.Eye},
		{name: "eye-ignored-for-raster", a: m2020ID{camera: "NR"}, b: m2020ID{camera: "NL"}, reason: rank.Camera},
		{name: "linearity-raster-prefers-raw", a: m2020ID{geometry: "L"}, b: m2020ID{geometry: "N"}, code: 1, reason: rank.Linearity},
		{name: "thumbnail", a: m2020ID{size: "T"}, b: m2020ID{size: "_"}, code: 1, reason: rank.Size},
		{name: "mission-downsample", a: m2020ID{specific: "0A0L01"}, b: m2020ID{specific: "1A0L01"}, code: -1, reason: rank.Mission},
		{name: "version", a: m2020ID{version: "01"}, b: m2020ID{version: "02"}, code: 1, reason: rank.Version},
		{name: "name", a: m2020ID{sequence: "NCAM00200"}, b: m2020ID{sequence: "NCAM00100"}, code: -1, reason: rank.Name},
		{name: "identical", a: m2020ID{}, b: m2020ID{}},
	}
	comparator := rank.New(mission.M2020())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := comparator.Compare(tt.a.parse(t), tt.b.parse(t))
			want := rank.Result{Code: tt.code, Reason: tt.reason}
			if got != want {
				t.Errorf("Compare(%s, %s) = %+v, want %+v", tt.a, tt.b, got, want)
			}
		})
	}
}

func TestComparePolicyFlags(t *testing.T) {
	policy := mission.M2020().Clone()
	policy.PreferColor = false
	policy.PreferLinearGeometry = true
	policy.PreferredEye = product.EyeRight
	comparator := rank.New(policy)

	gray := m2020ID{color: "M"}.parse(t)
	color := m2020ID{color: "F"}.parse(t)
	if got := comparator.Compare(gray, color); got != (rank.Result{Code: -1, Reason: rank.Color}) {
		t.Errorf("grayscale vs color with PreferColor=false = %+v", got)
	}

	linear := m2020ID{productType: "XYZ", geometry: "L"}.parse(t)
	raw := m2020ID{productType: "XYZ", geometry: "N"}.parse(t)
	if got := comparator.Compare(linear, raw); got != (rank.Result{Code: -1, Reason: rank.Linearity}) {
		t.Errorf("linear vs raw geometry = %+v", got)
	}

	// Masks follow the geometry preference.
	linearMask := m2020ID{productType: "MXY", geometry: "L"}.parse(t)
	rawMask := m2020ID{productType: "MXY", geometry: "N"}.parse(t)
	if got := comparator.Compare(rawMask, linearMask); got != (rank.Result{Code: 1, Reason: rank.Linearity}) {
		t.Errorf("raw vs linear mask = %+v", got)
	}

	right := m2020ID{camera: "NR", productType: "XYZ"}.parse(t)
	left := m2020ID{camera: "NL", productType: "XYZ"}.parse(t)
	if got := comparator.Compare(right, left); got != (rank.Result{Code: -1, Reason: rank.Eye}) {
		t.Errorf("right vs left with PreferredEye=right = %+v", got)
	}

	policy.PreferredEye = product.EyeAny
	if got := comparator.Compare(right, left); got.Reason != rank.Camera || got.Code != 0 {
		t.Errorf("right vs left with no eye preference = %+v, want camera gate", got)
	}
}

func TestCompareExcept(t *testing.T) {
	comparator := rank.New(mission.M2020())
	xyz := m2020ID{productType: "XYZ"}.parse(t)
	rng := m2020ID{productType: "RNG"}.parse(t)

	if got := comparator.Compare(xyz, rng, rank.XYZOverRNG); got != (rank.Result{Reason: rank.ObsType}) {
		t.Errorf("Compare except xyz_rng = %+v, want obs_type gate", got)
	}
	if got := comparator.Compare(xyz, rng, rank.XYZOverRNG, rank.ObsType); got.Reason != rank.Name {
		t.Errorf("Compare except xyz_rng and obs_type = %+v, want name", got)
	}

	v1 := m2020ID{version: "01"}.parse(t)
	v2 := m2020ID{version: "02", sequence: "NCAM00000"}.parse(t)
	if got := comparator.Compare(v1, v2, rank.Version); got != (rank.Result{Code: -1, Reason: rank.Name}) {
		t.Errorf("Compare except version = %+v, want name decision", got)
	}
}

func TestCompareObservationsSize(t *testing.T) {
	comparator := rank.New(mission.M2020())
	id := m2020ID{}.parse(t)
	big := rank.Observation{ID: id, Width: 1024, Height: 1024}
	small := rank.Observation{ID: id, Width: 512, Height: 512}
	unknown := rank.Observation{ID: id}

	if got := comparator.CompareObservations(small, big); got != (rank.Result{Code: 1, Reason: rank.Size}) {
		t.Errorf("small vs big = %+v", got)
	}
	if got := comparator.CompareObservations(big, unknown); got != (rank.Result{Code: -1, Reason: rank.Size}) {
		t.Errorf("known vs unknown size = %+v", got)
	}
	if got := comparator.CompareObservations(big, big); got != (rank.Result{}) {
		t.Errorf("self comparison = %+v", got)
	}
}

func TestExplain(t *testing.T) {
	comparator := rank.New(mission.M2020())
	a := m2020ID{version: "02"}.parse(t)
	b := m2020ID{version: "01", producer: "M"}.parse(t)
	trace := comparator.Explain(rank.Observation{ID: a}, rank.Observation{ID: b})
	if len(trace) != len(rank.Criteria) {
		t.Fatalf("Explain returned %d results, want %d", len(trace), len(rank.Criteria))
	}
	for i, r := range trace {
		if r.Reason != rank.Criteria[i] {
			t.Errorf("trace[%d].Reason = %s, want %s", i, r.Reason, rank.Criteria[i])
		}
	}
	want := map[rank.Criterion]int{rank.Producer: -1, rank.Version: -1}
	for _, r := range trace {
		if r.Code != want[r.Reason] && r.Reason != rank.Name {
			t.Errorf("criterion %s code = %d, want %d", r.Reason, r.Code, want[r.Reason])
		}
	}
}

func TestSortAndBest(t *testing.T) {
	comparator := rank.New(mission.M2020())
	v1 := m2020ID{version: "01"}.parse(t)
	v3 := m2020ID{version: "03"}.parse(t)
	v2 := m2020ID{version: "02"}.parse(t)
	hazcam := m2020ID{camera: "FL"}.parse(t)

	if best := comparator.Best([]product.ID{v1, v3, v2}); best != v3 {
		t.Errorf("Best = %v, want %v", best, v3)
	}
	if comparator.Best(nil) != nil {
		t.Error("Best(nil) != nil")
	}

	ids := []product.ID{v2, hazcam, v1, v3}
	comparator.Sort(ids)
	// Incomparable stereo groups fall back to camera order.
	want := []product.ID{v3, v2, v1, hazcam}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("Sort()[%d] = %v, want %v", i, ids[i], want[i])
		}
	}
}

// randomM2020 generates identifiers over a small field space so that
// triples frequently share a comparable group.
func randomM2020(r *rand.Rand) m2020ID {
	pick := func(options ...string) string { return options[r.IntN(len(options))] }
	return m2020ID{
		camera:      pick("NL", "NR", "FL", "ZL", "ZR"),
		color:       pick("F", "M", "R", "G", "B"),
		special:     pick("_", "A", "Q"),
		productType: pick("XYZ", "RNG", "RAS", "MXY"),
		size:        pick("_", "T"),
		geometry:    pick("N", "L"),
		sequence:    pick("NCAM00100", "NCAM00200"),
		specific:    pick("0", "1", "3") + pick("A0L", "L00", "A05", "A0Z") + pick("01", "02"),
		producer:    pick("J", "M", "A", "C"),
		version:     pick("01", "02", "0A"),
	}
}

func TestCompareIsTransitive(t *testing.T) {
	r := rand.New(rand.NewPCG(2012, 2021))
	comparator := rank.New(mission.M2020())

	const n = 60
	obs := make([]rank.Observation, n)
	for i := range obs {
		obs[i] = rank.Observation{ID: randomM2020(r).parse(t)}
		if r.IntN(2) == 0 {
			obs[i].Width, obs[i].Height = 1<<(8+r.IntN(3)), 1<<(8+r.IntN(3))
		}
	}

	codes := make([][]int, n)
	for i := range obs {
		codes[i] = make([]int, n)
		for j := range obs {
			ab := comparator.CompareObservations(obs[i], obs[j])
			ba := comparator.CompareObservations(obs[j], obs[i])
			if ab.Code != -ba.Code || ab.Reason != ba.Reason {
				t.Fatalf("Compare not antisymmetric: %v vs %v gives %+v and %+v",
					obs[i].ID, obs[j].ID, ab, ba)
			}
			codes[i][j] = ab.Code
		}
	}
	for i := range obs {
		for j := range obs {
			if codes[i][j] == 0 {
				continue
			}
			for k := range obs {
				if codes[j][k] != codes[i][j] {
					continue
				}
				if codes[i][k] != codes[i][j] {
					t.Fatalf("cycle: compare(%v,%v)=%d compare(%v,%v)=%d but compare(%v,%v)=%d",
						obs[i].ID, obs[j].ID, codes[i][j], obs[j].ID, obs[k].ID, codes[j][k],
						obs[i].ID, obs[k].ID, codes[i][k])
				}
			}
		}
	}
}

func TestSortIsTotal(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	comparator := rank.New(mission.M2020())
	ids := make([]product.ID, 200)
	for i := range ids {
		ids[i] = randomM2020(r).parse(t)
	}
	comparator.Sort(ids)
	for i := 1; i < len(ids); i++ {
		if ids[i-1] == ids[i] {
			continue
		}
		// Adjacent pairs that Compare can decide must agree with Sort.
		if got := comparator.Compare(ids[i-1], ids[i]); got.Code > 0 {
			t.Errorf("Sort placed %v before %v but Compare = %+v", ids[i-1], ids[i], got)
		}
	}
}
