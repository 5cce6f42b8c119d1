// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package productfilter

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/nasa-ammos/landform/lib/mission"
	"github.com/nasa-ammos/landform/lib/product"
	"github.com/nasa-ammos/landform/lib/rank"
)

// Pass names, as reported in Drop records and logs.
const (
	PassPreFilter = "prefilter"
	PassVersion   = "version"
	PassRangeMap  = "range_map"
	PassSpecial   = "special"
	PassColor     = "color"
	PassEye       = "eye"
	PassLinearity = "linearity"
	PassVariant   = "variant"
)

// Drop records an identifier removed by a pass.
type Drop struct {
	ID   product.ID
	Pass string
}

// Result is the outcome of a full filter run.
type Result struct {
	// Kept is sorted by full identifier.
	Kept []product.ID

	// Dropped is in pass order, sorted by full identifier within a
	// pass.
	Dropped []Drop
}

// Filter applies a mission's preferences to groups of identifiers.
// A Filter is safe for concurrent use; it holds no mutable state.
type Filter struct {
	policy     *mission.Policy
	comparator *rank.Comparator
	logger     *slog.Logger
}

// New returns a filter. A nil comparator is built from the policy; a
// nil logger discards output.
func New(policy *mission.Policy, comparator *rank.Comparator, logger *slog.Logger) *Filter {
	if comparator == nil {
		comparator = rank.New(policy)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Filter{policy: policy, comparator: comparator, logger: logger}
}

// FilterGroups runs the pre-filter and every pass, returning the kept
// identifiers sorted by full identifier.
func (f *Filter) FilterGroups(ids []product.ID) []product.ID {
	return f.Run(ids).Kept
}

// Run is FilterGroups that also reports what each pass dropped.
func (f *Filter) Run(ids []product.ID) Result {
	var dropped []Drop
	record := func(pass string, before, after []product.ID) {
		for _, id := range difference(before, after) {
			dropped = append(dropped, Drop{ID: id, Pass: pass})
		}
	}

	current := unique(ids)
	pre := sortByID(f.policy.RunPreFilter(current))
	f.logDrops(PassPreFilter, current, pre)
	record(PassPreFilter, current, pre)
	current = pre

	passes := []struct {
		name string
		run  func([]product.ID) []product.ID
	}{
		{PassVersion, f.KeepLatestVersion},
		{PassRangeMap, f.SuppressRangeMaps},
		{PassSpecial, f.KeepBestSpecial},
		{PassColor, f.KeepPreferredColor},
		{PassEye, f.KeepPreferredEye},
		{PassLinearity, f.KeepPreferredLinearity},
	}
	for _, pass := range passes {
		next := pass.run(current)
		record(pass.name, current, next)
		current = next
	}
	return Result{Kept: current, Dropped: dropped}
}

// KeepLatestVersion keeps the highest version of each product.
func (f *Filter) KeepLatestVersion(ids []product.ID) []product.ID {
	return f.reduce(PassVersion, ids, []product.Field{product.FieldVersion}, func(group []product.ID) []product.ID {
		best := 0
		for _, id := range group {
			best = max(best, id.Version())
		}
		return keepIf(group, func(id product.ID) bool { return id.Version() == best })
	})
}

// SuppressRangeMaps drops range maps from any frame that also has a
// point cloud.
func (f *Filter) SuppressRangeMaps(ids []product.ID) []product.ID {
	exclude := []product.Field{product.FieldProductType, product.FieldVariants, product.FieldVersion}
	return f.reduce(PassRangeMap, ids, exclude, func(group []product.ID) []product.ID {
		if !slices.ContainsFunc(group, func(id product.ID) bool { return id.ProductType().IsPointCloud() }) {
			return group
		}
		return keepIf(group, func(id product.ID) bool { return !id.ProductType().IsRangeMap() })
	})
}

// KeepBestSpecial keeps the copies with the best special processing
// code.
func (f *Filter) KeepBestSpecial(ids []product.ID) []product.ID {
	exclude := []product.Field{product.FieldVariants, product.FieldVersion, product.FieldSpecial}
	return f.reduce(PassSpecial, ids, exclude, func(group []product.ID) []product.ID {
		best := -1
		for _, id := range group {
			best = max(best, f.policy.SpecialRank(id.Special()))
		}
		return keepIf(group, func(id product.ID) bool { return f.policy.SpecialRank(id.Special()) == best })
	})
}

// KeepPreferredColor keeps the preferred color class when both full
// color and single-band copies exist, then the best-ranked band among
// what remains.
func (f *Filter) KeepPreferredColor(ids []product.ID) []product.ID {
	exclude := []product.Field{product.FieldColor, product.FieldVariants, product.FieldVersion}
	return f.reduce(PassColor, ids, exclude, func(group []product.ID) []product.ID {
		hasFull := slices.ContainsFunc(group, func(id product.ID) bool { return id.Color().IsFullColor() })
		hasSingle := slices.ContainsFunc(group, func(id product.ID) bool { return !id.Color().IsFullColor() })
		if hasFull && hasSingle {
			group = keepIf(group, func(id product.ID) bool { return id.Color().IsFullColor() == f.policy.PreferColor })
		}
		best := group[0].Color().BandRank()
		for _, id := range group[1:] {
			best = min(best, id.Color().BandRank())
		}
		return keepIf(group, func(id product.ID) bool { return id.Color().BandRank() == best })
	})
}

// KeepPreferredEye keeps the preferred stereo eye of geometry products.
// Raster, mask and mono-camera products pass through.
func (f *Filter) KeepPreferredEye(ids []product.ID) []product.ID {
	preferred := f.policy.PreferredEye
	exclude := []product.Field{product.FieldEye, product.FieldVariants, product.FieldVersion}
	return f.reduce(PassEye, ids, exclude, func(group []product.ID) []product.ID {
		if preferred == product.EyeAny {
			return group
		}
		stereoGeometry := func(id product.ID) bool {
			return id.Kind() == product.KindGeometry && id.Camera().IsStereo() && f.policy.IsStereoCamera(id.Camera())
		}
		// Erasing the eye character can merge unrelated cameras that
		// share a first letter, so the preference applies per stereo
		// group.
		havePreferred := make(map[product.Camera]bool)
		for _, id := range group {
			if stereoGeometry(id) && id.Eye() == preferred {
				havePreferred[id.Camera().StereoGroup()] = true
			}
		}
		return keepIf(group, func(id product.ID) bool {
			if !stereoGeometry(id) || !havePreferred[id.Camera().StereoGroup()] {
				return true
			}
			return id.Eye() == preferred
		})
	})
}

// KeepPreferredLinearity keeps one linearity per kind where both are
// present. Geometry and mesh products use the geometry preference,
// rasters the raster preference. Masks keep the linearity chosen for
// geometry if the group has geometry, else the one chosen for rasters,
// else the geometry preference; masks are left alone when none of
// them has the chosen linearity.
func (f *Filter) KeepPreferredLinearity(ids []product.ID) []product.ID {
	exclude := []product.Field{product.FieldProductType, product.FieldGeometry, product.FieldVariants, product.FieldVersion}
	return f.reduce(PassLinearity, ids, exclude, func(group []product.ID) []product.ID {
		var geometry, raster, masks, meshes []product.ID
		for _, id := range group {
			switch id.Kind() {
			case product.KindRaster:
				raster = append(raster, id)
			case product.KindMask:
				masks = append(masks, id)
			case product.KindMesh:
				meshes = append(meshes, id)
			default:
				geometry = append(geometry, id)
			}
		}

		geometryChoice, haveGeometry := chooseLinearity(geometry, f.policy.PreferLinearGeometry)
		rasterChoice, haveRaster := chooseLinearity(raster, f.policy.PreferLinearRaster)
		meshChoice, _ := chooseLinearity(meshes, f.policy.PreferLinearGeometry)

		maskChoice, haveMask := geometryChoice, haveGeometry
		if !haveMask {
			maskChoice, haveMask = rasterChoice, haveRaster
		}
		if !haveMask {
			maskChoice, haveMask = chooseLinearity(masks, f.policy.PreferLinearGeometry)
		}
		if haveMask && !slices.ContainsFunc(masks, hasLinearity(maskChoice)) {
			haveMask = false
		}

		var kept []product.ID
		kept = append(kept, keepIf(geometry, hasLinearity(geometryChoice))...)
		kept = append(kept, keepIf(raster, hasLinearity(rasterChoice))...)
		kept = append(kept, keepIf(meshes, hasLinearity(meshChoice))...)
		if haveMask {
			kept = append(kept, keepIf(masks, hasLinearity(maskChoice))...)
		} else {
			kept = append(kept, masks...)
		}
		return kept
	})
}

// KeepBestVariant keeps the comparator's best copy among identifiers
// that differ only in their quality-variant fields and version, such
// as a full-size product and its thumbnail. It is not one of the
// FilterGroups passes; callers that need a single copy per observation
// run it afterwards.
func (f *Filter) KeepBestVariant(ids []product.ID) []product.ID {
	exclude := []product.Field{product.FieldVariants, product.FieldVersion}
	return f.reduce(PassVariant, ids, exclude, func(group []product.ID) []product.ID {
		return []product.ID{f.comparator.Best(group)}
	})
}

// chooseLinearity returns the linearity to keep among ids: the
// preferred one when both are present, else the only one present. The
// second result is false for an empty slice.
func chooseLinearity(ids []product.ID, preferLinear bool) (product.Geometry, bool) {
	if len(ids) == 0 {
		return product.GeometryRaw, false
	}
	hasLinear := slices.ContainsFunc(ids, hasLinearity(product.GeometryLinearized))
	hasRaw := slices.ContainsFunc(ids, hasLinearity(product.GeometryRaw))
	switch {
	case hasLinear && hasRaw:
		if preferLinear {
			return product.GeometryLinearized, true
		}
		return product.GeometryRaw, true
	case hasLinear:
		return product.GeometryLinearized, true
	default:
		return product.GeometryRaw, true
	}
}

func hasLinearity(g product.Geometry) func(product.ID) bool {
	return func(id product.ID) bool { return id.Geometry() == g }
}

// reduce groups ids by their partial identifier with exclude erased
// and replaces each group with keep's result. Groups are visited in
// key order with members sorted by full identifier.
func (f *Filter) reduce(pass string, ids []product.ID, exclude []product.Field, keep func(group []product.ID) []product.ID) []product.ID {
	groups := make(map[string][]product.ID)
	for _, id := range sortByID(slices.Clone(ids)) {
		key := product.GroupKey(id, exclude...)
		groups[key] = append(groups[key], id)
	}
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var kept []product.ID
	for _, key := range keys {
		kept = append(kept, keep(groups[key])...)
	}
	kept = sortByID(kept)
	f.logDrops(pass, ids, kept)
	return kept
}

func (f *Filter) logDrops(pass string, before, after []product.ID) {
	for _, id := range difference(before, after) {
		f.logger.Debug("product filtered", "pass", pass, "id", id.FullID())
	}
}

func keepIf(ids []product.ID, keep func(product.ID) bool) []product.ID {
	var kept []product.ID
	for _, id := range ids {
		if keep(id) {
			kept = append(kept, id)
		}
	}
	return kept
}

func sortByID(ids []product.ID) []product.ID {
	slices.SortFunc(ids, func(a, b product.ID) int { return strings.Compare(a.FullID(), b.FullID()) })
	return ids
}

// unique returns ids sorted by full identifier with duplicates removed.
func unique(ids []product.ID) []product.ID {
	sorted := sortByID(slices.Clone(ids))
	return slices.CompactFunc(sorted, func(a, b product.ID) bool { return a.FullID() == b.FullID() })
}

// difference returns the members of before missing from after, in
// before's order.
func difference(before, after []product.ID) []product.ID {
	present := make(map[string]bool, len(after))
	for _, id := range after {
		present[id.FullID()] = true
	}
	var missing []product.ID
	for _, id := range before {
		if !present[id.FullID()] {
			missing = append(missing, id)
		}
	}
	return missing
}
