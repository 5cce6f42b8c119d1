// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package sitedrive

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nasa-ammos/landform/lib/product"
)

// Class is the role a product plays in mesh building.
type Class uint8

const (
	// ClassAuxiliary products support wedges and textures (masks,
	// other geometry, alignment imagery) without a budget of their own.
	ClassAuxiliary Class = iota
	// ClassWedge products are point clouds that become mesh geometry.
	ClassWedge
	// ClassTexture products are images that color the mesh.
	ClassTexture
)

func (c Class) String() string {
	switch c {
	case ClassWedge:
		return "wedge"
	case ClassTexture:
		return "texture"
	default:
		return "auxiliary"
	}
}

// Entry is one accepted product.
type Entry struct {
	ID    product.ID
	URL   string
	Sol   int
	Class Class
}

// Catalog holds the products of one waypoint. Its SiteDrive and RDR
// directory are fixed by the first entry added; entries that disagree
// with either are rejected.
type Catalog struct {
	siteDrive SiteDrive
	rdrDir    string
	fixed     bool
	entries   map[string]Entry
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]Entry)}
}

// SiteDrive returns the catalog's waypoint.
func (c *Catalog) SiteDrive() SiteDrive { return c.siteDrive }

// RDRDir returns the canonical RDR directory shared by the catalog's
// products.
func (c *Catalog) RDRDir() string { return c.rdrDir }

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Lookup returns the entry for a full identifier.
func (c *Catalog) Lookup(fullID string) (Entry, bool) {
	e, ok := c.entries[fullID]
	return e, ok
}

// URL returns the URL recorded for a full identifier.
func (c *Catalog) URL(fullID string) (string, bool) {
	e, ok := c.entries[fullID]
	return e.URL, ok
}

// Entries returns every entry sorted by full identifier.
func (c *Catalog) Entries() []Entry {
	return c.filter(func(Entry) bool { return true })
}

// Wedges returns the wedge entries sorted by full identifier.
func (c *Catalog) Wedges() []Entry {
	return c.filter(func(e Entry) bool { return e.Class == ClassWedge })
}

// Textures returns the texture entries sorted by full identifier.
func (c *Catalog) Textures() []Entry {
	return c.filter(func(e Entry) bool { return e.Class == ClassTexture })
}

// Auxiliary returns the auxiliary entries sorted by full identifier.
func (c *Catalog) Auxiliary() []Entry {
	return c.filter(func(e Entry) bool { return e.Class == ClassAuxiliary })
}

// NumWedges returns the number of wedges.
func (c *Catalog) NumWedges() int { return c.count(ClassWedge) }

// NumTextures returns the number of textures.
func (c *Catalog) NumTextures() int { return c.count(ClassTexture) }

// Sols returns the distinct sols of the catalog's entries, ascending.
func (c *Catalog) Sols() []int {
	var sols []int
	for _, e := range c.entries {
		if !slices.Contains(sols, e.Sol) {
			sols = append(sols, e.Sol)
		}
	}
	slices.Sort(sols)
	return sols
}

func (c *Catalog) count(class Class) int {
	n := 0
	for _, e := range c.entries {
		if e.Class == class {
			n++
		}
	}
	return n
}

func (c *Catalog) filter(keep func(Entry) bool) []Entry {
	var out []Entry
	for _, e := range c.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b Entry) int { return strings.Compare(a.ID.FullID(), b.ID.FullID()) })
	return out
}

// Check reports why an entry for the given waypoint and RDR directory
// could not join the catalog, or "" if it could.
func (c *Catalog) Check(sd SiteDrive, rdrDir string) string {
	if !c.fixed {
		return ""
	}
	if !c.siteDrive.Matches(sd) {
		return fmt.Sprintf("site-drive %s does not match catalog %s", sd, c.siteDrive)
	}
	if rdrDir != c.rdrDir {
		return fmt.Sprintf("RDR directory %s does not match catalog directory %s", rdrDir, c.rdrDir)
	}
	return ""
}

// put stores an entry, fixing the catalog's waypoint and directory on
// first use. The caller has already passed Check.
func (c *Catalog) put(sd SiteDrive, rdrDir string, e Entry) {
	if !c.fixed {
		c.siteDrive, c.rdrDir, c.fixed = sd, rdrDir, true
	}
	c.entries[e.ID.FullID()] = e
}

// subset returns a new catalog with the same waypoint and directory
// holding the entries keep accepts.
func (c *Catalog) subset(keep func(Entry) bool) *Catalog {
	out := &Catalog{
		siteDrive: c.siteDrive,
		rdrDir:    c.rdrDir,
		fixed:     c.fixed,
		entries:   make(map[string]Entry),
	}
	for id, e := range c.entries {
		if keep(e) {
			out.entries[id] = e
		}
	}
	return out
}
