// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package sitedrive

import (
	"fmt"
	"log/slog"
	"path"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/nasa-ammos/landform/lib/mission"
	"github.com/nasa-ammos/landform/lib/product"
)

// Selector accumulates products into per-waypoint catalogs and applies
// the mission's budgets. A Selector is not safe for concurrent use.
type Selector struct {
	policy   *mission.Policy
	logger   *slog.Logger
	catalogs map[SiteDrive]*Catalog
	parallel int
}

// NewSelector returns an empty selector. A nil logger discards output.
func NewSelector(policy *mission.Policy, logger *slog.Logger) *Selector {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Selector{
		policy:   policy,
		logger:   logger,
		catalogs: make(map[SiteDrive]*Catalog),
	}
}

// SetParallel sets how many waypoints ApplyMissionLimits evicts
// concurrently. Values below 2 evict sequentially.
func (s *Selector) SetParallel(n int) { s.parallel = n }

// Catalogs returns the catalogs in descending SiteDrive order.
func (s *Selector) Catalogs() []*Catalog {
	return sortCatalogs(s.catalogs)
}

// Len returns the number of accepted products across all catalogs.
func (s *Selector) Len() int {
	n := 0
	for _, c := range s.catalogs {
		n += c.Len()
	}
	return n
}

// AddURL parses the product identifier named by url and adds it.
func (s *Selector) AddURL(url string) (reason string, ok bool) {
	id, err := product.Parse(url)
	if err != nil {
		return err.Error(), false
	}
	return s.Add(id, url)
}

// Add offers a product to its waypoint's catalog. It returns a reason
// and false when the product is rejected; a rejected product leaves
// every catalog unchanged.
func (s *Selector) Add(id product.ID, url string) (reason string, ok bool) {
	if !id.IsSingleFrame() || !id.IsSingleCamera() {
		return "not a single-frame, single-camera product", false
	}

	sol, ok := s.solOf(id, url)
	if !ok {
		return "cannot determine sol from identifier or URL", false
	}

	rdrDir, ok := RDRDir(url)
	if !ok {
		return "cannot determine RDR directory from URL", false
	}

	sd := Of(id)
	catalog := s.catalogs[sd]
	if catalog == nil {
		catalog = NewCatalog()
	}
	if reason := catalog.Check(sd, rdrDir); reason != "" {
		return reason, false
	}

	class, ok := s.classify(id)
	if !ok {
		return "not used for meshing, texturing or alignment", false
	}
	switch class {
	case ClassWedge:
		if s.policy.AcceptWedge != nil {
			if reason, ok := s.policy.AcceptWedge(id, url); !ok {
				return reason, false
			}
		}
	case ClassTexture:
		if s.policy.AcceptTexture != nil {
			if reason, ok := s.policy.AcceptTexture(id, url); !ok {
				return reason, false
			}
		}
	}

	if existing, found := catalog.Lookup(id.FullID()); found && existing.URL != url {
		if reason, ok := s.resolveDuplicate(id, existing.URL, url); !ok {
			return reason, false
		}
	}

	catalog.put(sd, rdrDir, Entry{ID: id, URL: url, Sol: sol, Class: class})
	s.catalogs[sd] = catalog
	return "", true
}

// resolveDuplicate decides whether url replaces previous for the same
// identifier. URLs that differ only by extension keep the higher
// priority extension; otherwise the newer URL wins.
func (s *Selector) resolveDuplicate(id product.ID, previous, url string) (string, bool) {
	prevStem, prevExt := splitExtension(previous)
	stem, ext := splitExtension(url)
	if prevStem == stem {
		if s.policy.ExtensionRank(ext) > s.policy.ExtensionRank(prevExt) {
			return fmt.Sprintf("duplicate of %s with a preferred extension", previous), false
		}
		return "", true
	}
	s.logger.Info("replacing duplicate product URL",
		"id", id.FullID(),
		"previous", previous,
		"url", url,
	)
	return "", true
}

func (s *Selector) classify(id product.ID) (Class, bool) {
	switch {
	case s.policy.UseForMeshing(id):
		return ClassWedge, true
	case s.policy.UseForTexturing(id):
		return ClassTexture, true
	case id.Kind() == product.KindGeometry || id.Kind() == product.KindMask || s.policy.UseForAlignment(id):
		return ClassAuxiliary, true
	default:
		return ClassAuxiliary, false
	}
}

var (
	solSegment  = regexp.MustCompile(`(?i)/sol/(\d+)/`)
	dateSegment = regexp.MustCompile(`/(\d{4})/(\d{3})/`)
	rdrSegment  = regexp.MustCompile(`(?i)/(rdr|fdr)/`)
)

func (s *Selector) solOf(id product.ID, url string) (int, bool) {
	if id.HasSol() {
		return id.Sol(), true
	}
	return SolFromURL(url, s.policy.DateToSol)
}

// SolFromURL extracts a sol from a /sol/NNNNN/ path segment, or failing
// that converts a /YYYY/DOY/ segment with dateToSol.
func SolFromURL(url string, dateToSol func(time.Time) int) (int, bool) {
	if m := solSegment.FindStringSubmatch(url); m != nil {
		sol, err := strconv.Atoi(m[1])
		return sol, err == nil
	}
	if m := dateSegment.FindStringSubmatch(url); m != nil && dateToSol != nil {
		year, _ := strconv.Atoi(m[1])
		doy, _ := strconv.Atoi(m[2])
		if doy < 1 || doy > 366 {
			return 0, false
		}
		day := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, doy-1)
		return dateToSol(day), true
	}
	return 0, false
}

// RDRDir returns the canonical RDR directory of a product URL: the
// prefix through the first rdr/ or fdr/ path segment, with the digits
// of a sol segment, or a /YYYY/DOY/ segment, replaced by '#'.
func RDRDir(url string) (string, bool) {
	loc := rdrSegment.FindStringIndex(url)
	if loc == nil {
		return "", false
	}
	dir := url[:loc[1]]
	if m := solSegment.FindStringSubmatchIndex(dir); m != nil {
		return dir[:m[2]] + strings.Repeat("#", m[3]-m[2]) + dir[m[3]:], true
	}
	if m := dateSegment.FindStringIndex(dir); m != nil {
		return dir[:m[0]] + "/####/###/" + dir[m[1]:], true
	}
	return dir, true
}

// splitExtension splits a URL into everything before the basename's
// extension and the extension itself, ignoring any query.
func splitExtension(url string) (stem, ext string) {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	ext = path.Ext(url)
	if strings.ContainsAny(ext, `/\`) {
		return url, ""
	}
	return strings.TrimSuffix(url, ext), strings.TrimPrefix(ext, ".")
}

func sortCatalogs(catalogs map[SiteDrive]*Catalog) []*Catalog {
	out := make([]*Catalog, 0, len(catalogs))
	for _, c := range catalogs {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *Catalog) int { return descending(a.siteDrive, b.siteDrive) })
	return out
}
