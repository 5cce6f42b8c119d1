// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package sitedrive

import (
	"cmp"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/nasa-ammos/landform/lib/product"
)

// Drop records a product removed by ApplyMissionLimits.
type Drop struct {
	ID        product.ID
	URL       string
	SiteDrive SiteDrive
	Class     Class
	Reason    string
}

// Result is the outcome of ApplyMissionLimits.
type Result struct {
	// Catalogs holds the retained waypoints, most recent first.
	Catalogs []*Catalog
	Drops    []Drop
}

// NumWedges returns the number of retained wedges.
func (r Result) NumWedges() int {
	n := 0
	for _, c := range r.Catalogs {
		n += c.NumWedges()
	}
	return n
}

// NumTextures returns the number of retained textures.
func (r Result) NumTextures() int {
	n := 0
	for _, c := range r.Catalogs {
		n += c.NumTextures()
	}
	return n
}

// evicted is the per-catalog eviction output for one waypoint.
type evicted struct {
	kept  *Catalog
	drops []Drop
}

// ApplyMissionLimits enforces the policy's budgets. Each waypoint is
// first trimmed to its own caps, then waypoints are admitted most recent
// first until a global cap would overflow, and finally auxiliary
// products whose wedge or texture sibling was dropped are removed. The
// selector's catalogs are not modified.
func (s *Selector) ApplyMissionLimits() Result {
	catalogs := s.Catalogs()

	trimmed := make([]evicted, len(catalogs))
	if s.parallel > 1 && len(catalogs) > 1 {
		var g errgroup.Group
		g.SetLimit(min(s.parallel, runtime.GOMAXPROCS(0)))
		for i, c := range catalogs {
			g.Go(func() error {
				trimmed[i] = s.evictWithin(c)
				return nil
			})
		}
		// evictWithin never fails.
		_ = g.Wait()
	} else {
		for i, c := range catalogs {
			trimmed[i] = s.evictWithin(c)
		}
	}

	var result Result
	for _, t := range trimmed {
		result.Drops = append(result.Drops, t.drops...)
	}

	budget := s.policy.Budget
	wedges, textures := 0, 0
	overflow := false
	for _, t := range trimmed {
		c := t.kept
		if !overflow && (wedges+c.NumWedges() > budget.MaxWedges || textures+c.NumTextures() > budget.MaxTextures) {
			overflow = true
			s.logger.Info("global budget reached, dropping waypoint and all earlier ones",
				"site_drive", c.SiteDrive().String(),
				"wedges", wedges,
				"textures", textures,
			)
		}
		if overflow {
			for _, e := range c.Entries() {
				result.Drops = append(result.Drops, s.drop(c, e, "waypoint exceeds global budget"))
			}
			continue
		}
		wedges += c.NumWedges()
		textures += c.NumTextures()
		result.Catalogs = append(result.Catalogs, c)
	}

	s.removeOrphans(&result)
	return result
}

// evictWithin trims one catalog to its per-waypoint caps. Auxiliary
// products are always kept at this stage.
func (s *Selector) evictWithin(c *Catalog) evicted {
	budget := s.policy.Budget
	var drops []Drop
	keep := make(map[string]bool)
	for _, e := range c.Auxiliary() {
		keep[e.ID.FullID()] = true
	}

	walk := func(entries []Entry, kind string, total, navcamCap, mastcamCap int, mastcamStrict bool) {
		s.sortTemporal(entries)
		n, navcam, mastcam := 0, 0, 0
		for _, e := range entries {
			camera := e.ID.Camera()
			isNavcam := s.policy.IsNavcam(camera)
			isMastcam := s.policy.IsMastcam(camera)
			var reason string
			switch {
			case isNavcam && navcam >= navcamCap:
				reason = fmt.Sprintf("navcam %s budget of %d reached", kind, navcamCap)
			case isMastcam && mastcamStrict && mastcam > mastcamCap:
				reason = fmt.Sprintf("mastcam %s budget of %d exceeded", kind, mastcamCap)
			case isMastcam && !mastcamStrict && mastcam >= mastcamCap:
				reason = fmt.Sprintf("mastcam %s budget of %d reached", kind, mastcamCap)
			case n >= total:
				reason = fmt.Sprintf("waypoint %s budget of %d reached", kind, total)
			}
			if reason != "" {
				drops = append(drops, s.drop(c, e, reason))
				continue
			}
			keep[e.ID.FullID()] = true
			n++
			if isNavcam {
				navcam++
			}
			if isMastcam {
				mastcam++
			}
		}
	}
	// Mastcam wedges are admitted until the count exceeds the cap,
	// which keeps one more than MaxMastcamWedgesPerWaypoint.
	walk(c.Wedges(), "wedge", budget.MaxWedgesPerWaypoint,
		budget.MaxNavcamWedgesPerWaypoint, budget.MaxMastcamWedgesPerWaypoint, true)
	walk(c.Textures(), "texture", budget.MaxTexturesPerWaypoint,
		budget.MaxNavcamTexturesPerWaypoint, budget.MaxMastcamTexturesPerWaypoint, false)

	return evicted{
		kept:  c.subset(func(e Entry) bool { return keep[e.ID.FullID()] }),
		drops: drops,
	}
}

// sortTemporal orders entries newest first, or oldest first when the
// policy prefers older products.
func (s *Selector) sortTemporal(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int {
		c := cmp.Compare(a.Sol, b.Sol)
		if c == 0 {
			c = a.ID.SCLK().Compare(b.ID.SCLK())
		}
		if c == 0 {
			c = strings.Compare(a.ID.FullID(), b.ID.FullID())
		}
		if s.policy.PreferOlder {
			return c
		}
		return -c
	})
}

// removeOrphans drops retained auxiliary geometry whose wedge sibling
// was dropped and auxiliary rasters whose texture sibling was dropped.
// Masks are always kept.
func (s *Selector) removeOrphans(result *Result) {
	lostWedge := make(map[string]bool)
	lostTexture := make(map[string]bool)
	for _, d := range result.Drops {
		switch d.Class {
		case ClassWedge:
			lostWedge[stemOf(d.ID)] = true
		case ClassTexture:
			lostTexture[stemOf(d.ID)] = true
		}
	}
	if len(lostWedge) == 0 && len(lostTexture) == 0 {
		return
	}

	for i, c := range result.Catalogs {
		orphaned := make(map[string]bool)
		for _, e := range c.Auxiliary() {
			stem := stemOf(e.ID)
			var reason string
			switch e.ID.Kind() {
			case product.KindGeometry:
				if lostWedge[stem] {
					reason = "geometry sibling of a dropped wedge"
				}
			case product.KindRaster:
				if lostTexture[stem] {
					reason = "raster sibling of a dropped texture"
				}
			}
			if reason != "" {
				orphaned[e.ID.FullID()] = true
				result.Drops = append(result.Drops, s.drop(c, e, reason))
			}
		}
		if len(orphaned) > 0 {
			result.Catalogs[i] = c.subset(func(e Entry) bool { return !orphaned[e.ID.FullID()] })
		}
	}
}

// stemOf identifies the frame a product belongs to independent of its
// product type and version.
func stemOf(id product.ID) string {
	return product.GroupKey(id, product.FieldProductType, product.FieldVersion)
}

func (s *Selector) drop(c *Catalog, e Entry, reason string) Drop {
	s.logger.Info("dropping product",
		"id", e.ID.FullID(),
		"url", e.URL,
		"site_drive", c.SiteDrive().String(),
		"reason", reason,
	)
	return Drop{ID: e.ID, URL: e.URL, SiteDrive: c.SiteDrive(), Class: e.Class, Reason: reason}
}
