// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package sitedrive

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/nasa-ammos/landform/lib/product"
)

// Wildcard is the value of a SiteDrive axis that matches any value.
const Wildcard = -1

// SiteDrive is a rover waypoint: a site and a drive within it. Higher
// values are more recent.
type SiteDrive struct {
	Site  int
	Drive int
}

// Of returns the waypoint of a product. The decoded site and drive
// sentinels become Wildcard.
func Of(id product.ID) SiteDrive {
	sd := SiteDrive{Site: id.Site(), Drive: id.Drive()}
	if sd.Site == product.SiteWildcard {
		sd.Site = Wildcard
	}
	if sd.Drive == product.DriveWildcard {
		sd.Drive = Wildcard
	}
	return sd
}

// Parse parses the String form, "SSSS_DDDD" with "*" for a wildcard
// axis.
func Parse(s string) (SiteDrive, error) {
	site, drive, ok := strings.Cut(s, "_")
	if !ok {
		return SiteDrive{}, fmt.Errorf("site-drive %q: want SITE_DRIVE", s)
	}
	axis := func(name, v string) (int, error) {
		if v == "*" {
			return Wildcard, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("site-drive %q: invalid %s %q", s, name, v)
		}
		return n, nil
	}
	var sd SiteDrive
	var err error
	if sd.Site, err = axis("site", site); err != nil {
		return SiteDrive{}, err
	}
	if sd.Drive, err = axis("drive", drive); err != nil {
		return SiteDrive{}, err
	}
	return sd, nil
}

func (sd SiteDrive) String() string {
	axis := func(v, width int) string {
		if v == Wildcard {
			return "*"
		}
		return fmt.Sprintf("%0*d", width, v)
	}
	return axis(sd.Site, 4) + "_" + axis(sd.Drive, 4)
}

// IsWildcard reports whether either axis is a wildcard.
func (sd SiteDrive) IsWildcard() bool {
	return sd.Site == Wildcard || sd.Drive == Wildcard
}

// Matches reports whether two waypoints are equal, with a wildcard on
// either side matching any value on that axis.
func (sd SiteDrive) Matches(other SiteDrive) bool {
	return axisCompare(sd.Site, other.Site) == 0 && axisCompare(sd.Drive, other.Drive) == 0
}

// Compare orders by site, then drive. A wildcard on either side
// compares equal on that axis, so Compare is only a total order over
// waypoints without wildcards.
func (sd SiteDrive) Compare(other SiteDrive) int {
	if c := axisCompare(sd.Site, other.Site); c != 0 {
		return c
	}
	return axisCompare(sd.Drive, other.Drive)
}

func axisCompare(a, b int) int {
	if a == Wildcard || b == Wildcard {
		return 0
	}
	return cmp.Compare(a, b)
}

// descending orders waypoints most recent first, with wildcard axes
// after every concrete value. It is a total order used for catalog
// iteration.
func descending(a, b SiteDrive) int {
	if c := cmp.Compare(b.Site, a.Site); c != 0 {
		return c
	}
	return cmp.Compare(b.Drive, a.Drive)
}
