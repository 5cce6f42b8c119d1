// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package mission

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/nasa-ammos/landform/lib/product"
)

// SolDuration is the length of a mean Mars solar day.
const SolDuration = 88775244 * time.Millisecond

// Budget caps the number of products kept by the selector. Global caps
// apply across all waypoints; the rest apply to each waypoint on its
// own. Zero means no product of that kind may be kept.
type Budget struct {
	MaxWedges   int
	MaxTextures int

	MaxWedgesPerWaypoint   int
	MaxTexturesPerWaypoint int

	MaxNavcamWedgesPerWaypoint    int
	MaxMastcamWedgesPerWaypoint   int
	MaxNavcamTexturesPerWaypoint  int
	MaxMastcamTexturesPerWaypoint int
}

func (b Budget) validate() []error {
	var errs []error
	check := func(name string, v int) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("budget %s is negative (%d)", name, v))
		}
	}
	check("max_wedges", b.MaxWedges)
	check("max_textures", b.MaxTextures)
	check("max_wedges_per_waypoint", b.MaxWedgesPerWaypoint)
	check("max_textures_per_waypoint", b.MaxTexturesPerWaypoint)
	check("max_navcam_wedges_per_waypoint", b.MaxNavcamWedgesPerWaypoint)
	check("max_mastcam_wedges_per_waypoint", b.MaxMastcamWedgesPerWaypoint)
	check("max_navcam_textures_per_waypoint", b.MaxNavcamTexturesPerWaypoint)
	check("max_mastcam_textures_per_waypoint", b.MaxMastcamTexturesPerWaypoint)
	return errs
}

// Filter is a hook that may reject a product being added to a catalog.
// It returns a human-readable reason and false to reject.
type Filter func(id product.ID, url string) (reason string, ok bool)

// Policy is the mission capability set consumed by the comparator, the
// group filter and the selector.
type Policy struct {
	Mission product.Mission

	// ExtensionPriority lists file extensions, most preferred first,
	// without the leading dot. Matching is case-insensitive.
	ExtensionPriority []string

	// AllowedProducers and AllowedSpecial are ordered least preferred
	// first. Products from other producers or with other special
	// processing codes are dropped by the default pre-filter and rank
	// below every allowed value.
	AllowedProducers []product.Producer
	AllowedSpecial   []byte

	// PreferColor prefers full-color rasters over single-band ones.
	PreferColor bool

	// PreferLinearGeometry and PreferLinearRaster choose linearized
	// over raw products for geometry and raster types respectively.
	PreferLinearGeometry bool
	PreferLinearRaster   bool

	// PreferredEye is the stereo eye kept for geometry products.
	// EyeAny expresses no preference.
	PreferredEye product.Eye

	// PreferOlder keeps the oldest products first when a waypoint's
	// budget is exceeded, instead of the newest.
	PreferOlder bool

	Budget Budget

	// SolEpoch is the start of sol 0.
	SolEpoch time.Time

	IsNavcam  func(product.Camera) bool
	IsHazcam  func(product.Camera) bool
	IsMastcam func(product.Camera) bool
	IsArmcam  func(product.Camera) bool

	UseForMeshing   func(product.ID) bool
	UseForTexturing func(product.ID) bool
	UseForAlignment func(product.ID) bool

	// AcceptWedge and AcceptTexture are optional.
	AcceptWedge   Filter
	AcceptTexture Filter

	// CompareMission breaks ties between two products of the same
	// camera and product type. Negative means a is better. Optional.
	CompareMission func(a, b product.ID) int

	// PreFilter runs before the group filter's passes. Optional; nil
	// means DefaultPreFilter.
	PreFilter func(p *Policy, ids []product.ID) []product.ID
}

// ForMission returns the default policy of the named mission.
func ForMission(name string) (*Policy, error) {
	m, err := product.ParseMission(name)
	if err != nil {
		return nil, err
	}
	switch m {
	case product.MissionMSL:
		return MSL(), nil
	default:
		return M2020(), nil
	}
}

// Validate checks the policy for structural errors that make curation
// meaningless. It reports every problem found.
func (p *Policy) Validate() error {
	var errs []error
	if p.Mission == product.MissionUnknown {
		errs = append(errs, errors.New("mission is not set"))
	}
	if len(p.AllowedProducers) == 0 {
		errs = append(errs, errors.New("allowed producers list is empty"))
	}
	if len(p.AllowedSpecial) == 0 {
		errs = append(errs, errors.New("allowed special processing list is empty"))
	}
	if len(p.ExtensionPriority) == 0 {
		errs = append(errs, errors.New("extension priority list is empty"))
	}
	switch p.PreferredEye {
	case product.EyeLeft, product.EyeRight, product.EyeAny:
	default:
		errs = append(errs, fmt.Errorf("preferred eye %s is not left, right or any", p.PreferredEye))
	}
	errs = append(errs, p.Budget.validate()...)

	missing := func(name string, isNil bool) {
		if isNil {
			errs = append(errs, fmt.Errorf("%s classifier is not set", name))
		}
	}
	missing("navcam", p.IsNavcam == nil)
	missing("hazcam", p.IsHazcam == nil)
	missing("mastcam", p.IsMastcam == nil)
	missing("armcam", p.IsArmcam == nil)
	missing("meshing", p.UseForMeshing == nil)
	missing("texturing", p.UseForTexturing == nil)
	missing("alignment", p.UseForAlignment == nil)

	if len(errs) > 0 {
		return fmt.Errorf("invalid %s policy: %w", p.Mission, errors.Join(errs...))
	}
	return nil
}

// Clone returns a copy whose slices can be edited without affecting p.
func (p *Policy) Clone() *Policy {
	c := *p
	c.ExtensionPriority = slices.Clone(p.ExtensionPriority)
	c.AllowedProducers = slices.Clone(p.AllowedProducers)
	c.AllowedSpecial = slices.Clone(p.AllowedSpecial)
	return &c
}

// ProducerRank is the position of a producer in AllowedProducers, or
// -1 when it is not allowed. Higher is better.
func (p *Policy) ProducerRank(producer product.Producer) int {
	return slices.Index(p.AllowedProducers, producer)
}

// SpecialRank is the position of a special processing code in
// AllowedSpecial, or -1 when it is not allowed. Higher is better.
func (p *Policy) SpecialRank(special byte) int {
	return slices.Index(p.AllowedSpecial, special)
}

// ExtensionRank is the position of an extension in ExtensionPriority,
// with or without its leading dot. Lower is better; unlisted
// extensions rank after every listed one.
func (p *Policy) ExtensionRank(ext string) int {
	ext = strings.TrimPrefix(ext, ".")
	for i, e := range p.ExtensionPriority {
		if strings.EqualFold(e, ext) {
			return i
		}
	}
	return len(p.ExtensionPriority)
}

// DateToSol converts an absolute time to the sol containing it. Times
// before SolEpoch give negative sols.
func (p *Policy) DateToSol(t time.Time) int {
	return int(math.Floor(float64(t.Sub(p.SolEpoch)) / float64(SolDuration)))
}

// SolStart returns the time sol begins.
func (p *Policy) SolStart(sol int) time.Time {
	return p.SolEpoch.Add(time.Duration(sol) * SolDuration)
}

// IsStereoCamera reports whether the camera is used for stereo
// geometry by this mission: a navcam, hazcam or mastcam.
func (p *Policy) IsStereoCamera(c product.Camera) bool {
	return p.IsNavcam(c) || p.IsHazcam(c) || p.IsMastcam(c)
}

// RunPreFilter applies the policy's pre-filter, or DefaultPreFilter
// when none is set.
func (p *Policy) RunPreFilter(ids []product.ID) []product.ID {
	if p.PreFilter != nil {
		return p.PreFilter(p, ids)
	}
	return DefaultPreFilter(p, ids)
}

// DefaultPreFilter keeps products whose producer and special
// processing code are both allowed.
func DefaultPreFilter(p *Policy, ids []product.ID) []product.ID {
	kept := make([]product.ID, 0, len(ids))
	for _, id := range ids {
		if p.ProducerRank(id.Producer()) < 0 || p.SpecialRank(id.Special()) < 0 {
			continue
		}
		kept = append(kept, id)
	}
	return kept
}

// defaultBudget is shared by both missions' defaults.
func defaultBudget() Budget {
	return Budget{
		MaxWedges:                     300,
		MaxTextures:                   300,
		MaxWedgesPerWaypoint:          100,
		MaxTexturesPerWaypoint:        100,
		MaxNavcamWedgesPerWaypoint:    60,
		MaxMastcamWedgesPerWaypoint:   40,
		MaxNavcamTexturesPerWaypoint:  60,
		MaxMastcamTexturesPerWaypoint: 40,
	}
}

func rejectThumbnail(id product.ID, _ string) (string, bool) {
	if id.Size() == product.SizeThumbnail {
		return "thumbnail", false
	}
	return "", true
}
