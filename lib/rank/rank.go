// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package rank

import (
	"cmp"
	"slices"
	"strings"

	"github.com/nasa-ammos/landform/lib/mission"
	"github.com/nasa-ammos/landform/lib/product"
)

// Criterion names one ranking decision.
type Criterion string

const (
	StereoCameraFrame Criterion = "stereo_camera_frame"
	XYZOverRNG        Criterion = "xyz_rng"
	ObsType           Criterion = "obs_type"
	Producer          Criterion = "producer"
	Special           Criterion = "special"
	Color             Criterion = "color"
	Eye               Criterion = "eye"
	Camera            Criterion = "camera"
	Linearity         Criterion = "linearity"
	Size              Criterion = "size"
	Mission           Criterion = "mission"
	Version           Criterion = "version"
	Name              Criterion = "name"
)

// Criteria lists every criterion in evaluation order.
var Criteria = []Criterion{
	StereoCameraFrame, XYZOverRNG, ObsType, Producer, Special, Color, Eye,
	Camera, Linearity, Size, Mission, Version, Name,
}

// ParseCriterion returns the criterion with the given name.
func ParseCriterion(name string) (Criterion, bool) {
	c := Criterion(strings.ToLower(strings.TrimSpace(name)))
	return c, slices.Contains(Criteria, c)
}

// Result is one ranking decision. Code is negative when a is better,
// positive when b is better, and zero when the products are equal or
// not comparable. Reason names the criterion that decided or the gate
// that stopped the comparison; it is empty when nothing decided.
type Result struct {
	Code   int
	Reason Criterion
}

// Observation is a product with optional image dimensions. Zero width
// or height means unknown.
type Observation struct {
	ID     product.ID
	Width  int
	Height int
}

// Pixels returns the known pixel count, or 0.
func (o Observation) Pixels() int {
	if o.Width <= 0 || o.Height <= 0 {
		return 0
	}
	return o.Width * o.Height
}

// Comparator ranks products under a mission policy.
type Comparator struct {
	policy *mission.Policy
}

// New returns a comparator for the policy.
func New(policy *mission.Policy) *Comparator {
	return &Comparator{policy: policy}
}

// Policy returns the comparator's mission policy.
func (c *Comparator) Policy() *mission.Policy { return c.policy }

// Compare ranks two products, skipping the criteria in except.
func (c *Comparator) Compare(a, b product.ID, except ...Criterion) Result {
	return c.CompareObservations(Observation{ID: a}, Observation{ID: b}, except...)
}

// CompareObservations ranks two observations, skipping the criteria in
// except.
func (c *Comparator) CompareObservations(a, b Observation, except ...Criterion) Result {
	return c.compare(a, b, except, false)
}

// step evaluates one criterion. A gate that finds the products
// incomparable returns stop together with the order of their gate
// keys, which Sort uses.
type step func(c *Comparator, a, b Observation) (code int, stop bool)

var steps = map[Criterion]step{
	StereoCameraFrame: compareStereoFrame,
	XYZOverRNG:        compareXYZOverRNG,
	ObsType:           compareObsType,
	Producer:          compareProducer,
	Special:           compareSpecial,
	Color:             compareColor,
	Eye:               compareEye,
	Camera:            compareCamera,
	Linearity:         compareLinearity,
	Size:              compareSize,
	Mission:           compareMission,
	Version:           compareVersion,
	Name:              compareName,
}

func (c *Comparator) compare(a, b Observation, except []Criterion, total bool) Result {
	for _, criterion := range Criteria {
		if slices.Contains(except, criterion) {
			continue
		}
		code, stop := steps[criterion](c, a, b)
		if stop {
			if total {
				return Result{Code: code, Reason: criterion}
			}
			return Result{Code: 0, Reason: criterion}
		}
		if code != 0 {
			return Result{Code: code, Reason: criterion}
		}
	}
	return Result{}
}

// Explain evaluates every criterion and returns each one's result, in
// evaluation order, including those after the deciding one.
func (c *Comparator) Explain(a, b Observation) []Result {
	trace := make([]Result, 0, len(Criteria))
	for _, criterion := range Criteria {
		code, stop := steps[criterion](c, a, b)
		if stop {
			code = 0
		}
		trace = append(trace, Result{Code: code, Reason: criterion})
	}
	return trace
}

// Sort orders products best first. Products that Compare finds
// comparable keep Compare's order; gates order the rest by stereo
// group, product type and camera. The sort is deterministic.
func (c *Comparator) Sort(ids []product.ID) {
	slices.SortStableFunc(ids, func(a, b product.ID) int {
		return c.compare(Observation{ID: a}, Observation{ID: b}, nil, true).Code
	})
}

// SortObservations is Sort for observations.
func (c *Comparator) SortObservations(obs []Observation) {
	slices.SortStableFunc(obs, func(a, b Observation) int {
		return c.compare(a, b, nil, true).Code
	})
}

// Best returns the best of the products, or nil for an empty slice.
// The input is not modified.
func (c *Comparator) Best(ids []product.ID) product.ID {
	if len(ids) == 0 {
		return nil
	}
	sorted := slices.Clone(ids)
	c.Sort(sorted)
	return sorted[0]
}

func compareStereoFrame(_ *Comparator, a, b Observation) (int, bool) {
	ga, gb := a.ID.Camera().StereoGroup(), b.ID.Camera().StereoGroup()
	if ga != gb {
		return cmp.Compare(ga, gb), true
	}
	return 0, false
}

// xyzRNGKey puts point clouds before range maps before everything
// else. Only the point cloud against range map case decides Compare.
func xyzRNGKey(t product.ProductType) int {
	switch t {
	case product.TypeXYZ:
		return 0
	case product.TypeRNG:
		return 1
	default:
		return 2
	}
}

func compareXYZOverRNG(_ *Comparator, a, b Observation) (int, bool) {
	ka, kb := xyzRNGKey(a.ID.ProductType()), xyzRNGKey(b.ID.ProductType())
	if ka == 2 || kb == 2 {
		return 0, false
	}
	return cmp.Compare(ka, kb), false
}

func compareObsType(_ *Comparator, a, b Observation) (int, bool) {
	ta, tb := a.ID.ProductType(), b.ID.ProductType()
	if ta != tb {
		if c := cmp.Compare(xyzRNGKey(ta), xyzRNGKey(tb)); c != 0 {
			return c, true
		}
		return cmp.Compare(ta, tb), true
	}
	return 0, false
}

func compareProducer(c *Comparator, a, b Observation) (int, bool) {
	return cmp.Compare(c.policy.ProducerRank(b.ID.Producer()), c.policy.ProducerRank(a.ID.Producer())), false
}

func compareSpecial(c *Comparator, a, b Observation) (int, bool) {
	return cmp.Compare(c.policy.SpecialRank(b.ID.Special()), c.policy.SpecialRank(a.ID.Special())), false
}

func (c *Comparator) colorKey(color product.Color) int {
	if color.IsFullColor() == c.policy.PreferColor {
		return 0
	}
	return 1
}

func compareColor(c *Comparator, a, b Observation) (int, bool) {
	ca, cb := a.ID.Color(), b.ID.Color()
	if k := cmp.Compare(c.colorKey(ca), c.colorKey(cb)); k != 0 {
		return k, false
	}
	return cmp.Compare(ca.BandRank(), cb.BandRank()), false
}

func (c *Comparator) eyeKey(id product.ID) int {
	if id.Kind() != product.KindGeometry || c.policy.PreferredEye == product.EyeAny {
		return 0
	}
	if id.Eye() == c.policy.PreferredEye {
		return 0
	}
	return 1
}

func compareEye(c *Comparator, a, b Observation) (int, bool) {
	return cmp.Compare(c.eyeKey(a.ID), c.eyeKey(b.ID)), false
}

func compareCamera(_ *Comparator, a, b Observation) (int, bool) {
	ca, cb := a.ID.Camera(), b.ID.Camera()
	if ca != cb {
		return cmp.Compare(ca, cb), true
	}
	return 0, false
}

// linearityKey is 0 for the preferred linearity. Masks and meshes
// follow the geometry preference.
func (c *Comparator) linearityKey(id product.ID) int {
	prefer := c.policy.PreferLinearGeometry
	if id.Kind() == product.KindRaster {
		prefer = c.policy.PreferLinearRaster
	}
	if (id.Geometry() == product.GeometryLinearized) == prefer {
		return 0
	}
	return 1
}

func compareLinearity(c *Comparator, a, b Observation) (int, bool) {
	return cmp.Compare(c.linearityKey(a.ID), c.linearityKey(b.ID)), false
}

func compareSize(_ *Comparator, a, b Observation) (int, bool) {
	if k := cmp.Compare(a.ID.Size(), b.ID.Size()); k != 0 {
		return k, false
	}
	return cmp.Compare(b.Pixels(), a.Pixels()), false
}

func compareMission(c *Comparator, a, b Observation) (int, bool) {
	if c.policy.CompareMission == nil {
		return 0, false
	}
	return sign(c.policy.CompareMission(a.ID, b.ID)), false
}

func compareVersion(_ *Comparator, a, b Observation) (int, bool) {
	return cmp.Compare(b.ID.Version(), a.ID.Version()), false
}

func compareName(_ *Comparator, a, b Observation) (int, bool) {
	return strings.Compare(b.ID.FullID(), a.ID.FullID()), false
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
