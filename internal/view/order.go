package view

import (
	"cmp"
	"slices"
	"strings"
)

// absentMoleculeName is the sort key used when a component has no molecule
// name, so unnamed components sort after named ones. It relies on real
// molecule names sorting before "z" lexically; a name beyond that would
// break the assumption (kept byte-for-byte for output-order compatibility).
const absentMoleculeName = "z"

func moleculeSortName(name *string) string {
	if name == nil || *name == "" {
		return absentMoleculeName
	}
	return *name
}

func orientationOrZero(orientation *[3]int) [3]int {
	if orientation == nil {
		return [3]int{}
	}
	return *orientation
}

// compareNeighborDetails orders neighbor groups by element (periodic-table
// position), then count, symmetry label and contributing sites. The trailing
// keys only exist to make the order fully deterministic.
func (a *Adapter) compareNeighborDetails(x, y NeighborSiteDetails) int {
	if c := cmp.Compare(a.elementOrder[x.Element], a.elementOrder[y.Element]); c != 0 {
		return c
	}
	if c := cmp.Compare(x.Count, y.Count); c != 0 {
		return c
	}
	if c := strings.Compare(x.SymLabel, y.SymLabel); c != 0 {
		return c
	}
	return slices.Compare(x.Sites, y.Sites)
}

// compareSiteGroups orders site groups by element, count and member sites.
func (a *Adapter) compareSiteGroups(x, y SiteGroup) int {
	if c := cmp.Compare(a.elementOrder[x.Element], a.elementOrder[y.Element]); c != 0 {
		return c
	}
	if c := cmp.Compare(x.Count, y.Count); c != 0 {
		return c
	}
	return slices.Compare(x.Sites, y.Sites)
}

// compareComponentDetails orders component details by molecule name (absent
// names sort with the sentinel), dimensionality, formula, orientation and
// count.
func compareComponentDetails(x, y ComponentDetails) int {
	if c := strings.Compare(moleculeSortName(x.MoleculeName), moleculeSortName(y.MoleculeName)); c != 0 {
		return c
	}
	if c := cmp.Compare(x.Dimensionality, y.Dimensionality); c != 0 {
		return c
	}
	if c := strings.Compare(x.Formula, y.Formula); c != 0 {
		return c
	}
	xo, yo := orientationOrZero(x.Orientation), orientationOrZero(y.Orientation)
	if c := slices.Compare(xo[:], yo[:]); c != 0 {
		return c
	}
	return cmp.Compare(x.Count, y.Count)
}

// compareComponentGroups orders component groups the same way as details,
// minus the orientation key (groups span orientations).
func compareComponentGroups(x, y ComponentGroup) int {
	if c := strings.Compare(moleculeSortName(x.MoleculeName), moleculeSortName(y.MoleculeName)); c != 0 {
		return c
	}
	if c := cmp.Compare(x.Dimensionality, y.Dimensionality); c != 0 {
		return c
	}
	if c := strings.Compare(x.Formula, y.Formula); c != 0 {
		return c
	}
	return cmp.Compare(x.Count, y.Count)
}
