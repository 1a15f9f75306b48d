// Package summary assembles every grouped view of a structure into one
// presentation-ready document. This is the payload handed to a downstream
// description generator; no prose is produced here.
package summary

import (
	"fmt"
	"sort"

	"github.com/xtal-tools/xtalsum/internal/view"
)

// Options controls how the document is assembled.
type Options struct {
	// GroupByElement merges nearest-neighbor groups of the same element
	// even when their symmetry labels differ.
	GroupByElement bool
}

// Document is the full grouped summary of one condensed structure.
type Document struct {
	Mineral          map[string]any   `json:"mineral,omitempty"`
	Formula          string           `json:"formula"`
	SpaceGroupSymbol string           `json:"spg_symbol"`
	CrystalSystem    string           `json:"crystal_system"`
	Dimensionality   int              `json:"dimensionality"`
	ComponentGroups  []ComponentGroup `json:"component_groups"`
	Sites            []Site           `json:"sites"`
}

// ComponentGroup pairs a merged component group with the per-element site
// groups of a representative member (the group's first, lowest-ordered
// component).
type ComponentGroup struct {
	view.ComponentGroup
	SiteGroups []view.SiteGroup `json:"site_groups"`
}

// Site is the neighbor summary of one inequivalent site.
type Site struct {
	Index     int        `json:"index"`
	Element   string     `json:"element"`
	SymLabel  string     `json:"sym_label"`
	Neighbors []Neighbor `json:"neighbors"`
}

// Neighbor is one nearest-neighbor group with its bond distances attached.
type Neighbor struct {
	view.NeighborSiteDetails
	Distances []float64 `json:"distances,omitempty"`
}

// Build walks the adapter and assembles the document. Sites appear in
// ascending index order; groups appear in the view layer's canonical order.
func Build(a *view.Adapter, opts Options) (*Document, error) {
	doc := &Document{
		Mineral:          a.Mineral(),
		Formula:          a.Formula(),
		SpaceGroupSymbol: a.SpaceGroupSymbol(),
		CrystalSystem:    a.CrystalSystem(),
		Dimensionality:   a.Dimensionality(),
	}

	for _, group := range a.ComponentGroups() {
		representative := group.Components[0].Index
		siteGroups, err := a.ComponentSiteGroups(representative)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", representative, err)
		}
		doc.ComponentGroups = append(doc.ComponentGroups, ComponentGroup{
			ComponentGroup: group,
			SiteGroups:     siteGroups,
		})
	}

	siteIndices := make([]int, 0, len(a.Sites()))
	for index := range a.Sites() {
		siteIndices = append(siteIndices, index)
	}
	sort.Ints(siteIndices)

	for _, index := range siteIndices {
		element, err := a.Element(index)
		if err != nil {
			return nil, err
		}
		label, err := a.SiteSymLabel(index)
		if err != nil {
			return nil, err
		}

		neighbors, err := a.NearestNeighborDetails(index, opts.GroupByElement)
		if err != nil {
			return nil, fmt.Errorf("site %d neighbors: %w", index, err)
		}

		site := Site{Index: index, Element: element, SymLabel: label}
		for _, group := range neighbors {
			neighbor := Neighbor{NeighborSiteDetails: group}
			// Distances are optional in the condensed data; attach them
			// when the condenser recorded any for this site.
			if _, ok := a.Distances()[index]; ok {
				distances, err := a.DistanceDetails(index, group.Sites...)
				if err != nil {
					return nil, fmt.Errorf("site %d distances: %w", index, err)
				}
				neighbor.Distances = distances
			}
			site.Neighbors = append(site.Neighbors, neighbor)
		}
		doc.Sites = append(doc.Sites, site)
	}

	return doc, nil
}
