// Package view turns the index-keyed condensed-structure data into the
// grouped, deterministically ordered records a description generator
// consumes: which sites are equivalent, which components repeat, and in
// what order to present them.
package view

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/xtal-tools/xtalsum/internal/condensed"
)

// ElementProperties supplies the per-element ordering scalars. Both values
// must be stable across calls and totally ordered over the element symbols
// the structure uses.
type ElementProperties interface {
	// SeriesIndex is the element's position in the IUPAC element sequence.
	SeriesIndex(symbol string) (int, error)
	// Electronegativity is an electronegativity-like scalar.
	Electronegativity(symbol string) (float64, error)
}

// Ordering selects which element scalar drives the sort order everywhere
// the view orders site-like records.
type Ordering int

const (
	// IUPACOrdering sorts elements by the IUPAC series, which effectively
	// follows the groups and rows of the periodic table.
	IUPACOrdering Ordering = iota
	// ElectronegativityOrdering sorts elements by electronegativity.
	ElectronegativityOrdering
)

// Adapter wraps one immutable condensed structure and answers grouping
// queries over it. It holds no mutable state after construction, so a
// single Adapter is safe for concurrent readers.
type Adapter struct {
	structure *condensed.Structure
	ordering  Ordering

	// elements maps every site index to its element symbol.
	elements map[int]string
	// symLabels maps every site index to its formatted symmetry label.
	symLabels map[int]string
	// elementOrder maps every element present in the structure to the
	// ordering scalar selected by ordering. Resolved once here so unknown
	// elements fail at construction rather than inside a sort.
	elementOrder map[string]float64
}

// New builds an adapter over a validated condensed structure. It resolves
// the ordering scalar for every element up front; an element the properties
// provider does not know fails construction.
func New(structure *condensed.Structure, props ElementProperties, ordering Ordering) (*Adapter, error) {
	a := &Adapter{
		structure:    structure,
		ordering:     ordering,
		elements:     make(map[int]string, len(structure.Sites)),
		symLabels:    make(map[int]string, len(structure.Sites)),
		elementOrder: make(map[string]float64),
	}

	for index, site := range structure.Sites {
		a.elements[index] = site.Element

		if _, done := a.elementOrder[site.Element]; !done {
			value, err := a.orderingValue(props, site.Element)
			if err != nil {
				return nil, fmt.Errorf("site %d: %w", index, err)
			}
			a.elementOrder[site.Element] = value
		}
	}

	for index := range structure.Sites {
		label, err := a.SymLabel(index)
		if err != nil {
			return nil, err
		}
		a.symLabels[index] = label
	}

	return a, nil
}

func (a *Adapter) orderingValue(props ElementProperties, element string) (float64, error) {
	if a.ordering == IUPACOrdering {
		index, err := props.SeriesIndex(element)
		return float64(index), err
	}
	return props.Electronegativity(element)
}

// Element returns the element symbol of a site.
func (a *Adapter) Element(siteIndex int) (string, error) {
	element, ok := a.elements[siteIndex]
	if !ok {
		return "", fmt.Errorf("%w %d", condensed.ErrUnknownSite, siteIndex)
	}
	return element, nil
}

// SiteSymLabel returns the precomputed symmetry label of a site.
func (a *Adapter) SiteSymLabel(siteIndex int) (string, error) {
	label, ok := a.symLabels[siteIndex]
	if !ok {
		return "", fmt.Errorf("%w %d", condensed.ErrUnknownSite, siteIndex)
	}
	return label, nil
}

// SymLabel renders the symmetry labels of one or more sites as a string,
// e.g. labels 1 and 2 become "(1,2)". Labels are collected as a set across
// all given sites and sorted, so the result does not depend on argument
// order or on duplicate labels.
func (a *Adapter) SymLabel(siteIndices ...int) (string, error) {
	seen := make(map[int]bool)
	var labels []int
	for _, siteIndex := range siteIndices {
		site, ok := a.structure.Sites[siteIndex]
		if !ok {
			return "", fmt.Errorf("%w %d", condensed.ErrUnknownSite, siteIndex)
		}
		for _, label := range site.SymLabels {
			if !seen[label] {
				seen[label] = true
				labels = append(labels, label)
			}
		}
	}
	sort.Ints(labels)

	parts := make([]string, len(labels))
	for i, label := range labels {
		parts[i] = strconv.Itoa(label)
	}
	return "(" + strings.Join(parts, ",") + ")", nil
}

// DistanceDetails returns every recorded distance from fromSite to each of
// toSites, concatenated in the given order. Repeated entries in toSites
// repeat their distances; nothing is deduplicated.
func (a *Adapter) DistanceDetails(fromSite int, toSites ...int) ([]float64, error) {
	fromDistances, ok := a.structure.Distances[fromSite]
	if !ok {
		return nil, fmt.Errorf("no distances recorded from site %d", fromSite)
	}

	var distances []float64
	for _, toSite := range toSites {
		recorded, ok := fromDistances[toSite]
		if !ok {
			return nil, fmt.Errorf("no distances recorded from site %d to site %d", fromSite, toSite)
		}
		distances = append(distances, recorded...)
	}
	return distances, nil
}

// Mineral is the opaque mineral-match blob from the condenser.
func (a *Adapter) Mineral() map[string]any { return a.structure.Mineral }

// Formula is the overall structure formula.
func (a *Adapter) Formula() string { return a.structure.Formula }

// SpaceGroupSymbol is the structure's space group symbol.
func (a *Adapter) SpaceGroupSymbol() string { return a.structure.SpaceGroupSymbol }

// CrystalSystem is the structure's crystal system.
func (a *Adapter) CrystalSystem() string { return a.structure.CrystalSystem }

// Dimensionality is the overall structure dimensionality.
func (a *Adapter) Dimensionality() int { return a.structure.Dimensionality }

// Sites is the site table, keyed by inequivalent site index.
func (a *Adapter) Sites() map[int]condensed.Site { return a.structure.Sites }

// Distances is the recorded distance table.
func (a *Adapter) Distances() map[int]map[int][]float64 { return a.structure.Distances }

// Angles is the recorded angle table.
func (a *Adapter) Angles() map[int]map[int]map[string][]float64 { return a.structure.Angles }

// Components is the component table, keyed by inequivalent component index.
func (a *Adapter) Components() map[int]condensed.Component { return a.structure.Components }

// ComponentMakeup lists one component index per physical instance.
func (a *Adapter) ComponentMakeup() []int { return a.structure.ComponentMakeup }
