package view

import (
	"fmt"
	"slices"
	"sort"

	"github.com/xtal-tools/xtalsum/internal/condensed"
)

// neighborIdentity decides which nearest-neighbor bonds merge into one
// group: always the element, plus the neighbor's full symmetry-label set
// unless grouping by element alone.
type neighborIdentity struct {
	element string
	labels  string
}

// NearestNeighborDetails summarizes the nearest neighbors of a site as
// ordered groups. Bond multiplicity comes from repetition in the raw
// neighbor list; merged groups recompute their symmetry label over the full
// contributing-site list so it stays deduplicated and sorted. With
// groupByElement set, neighbors of the same element merge regardless of
// symmetry label.
func (a *Adapter) NearestNeighborDetails(siteIndex int, groupByElement bool) ([]NeighborSiteDetails, error) {
	site, ok := a.structure.Sites[siteIndex]
	if !ok {
		return nil, fmt.Errorf("%w %d", condensed.ErrUnknownSite, siteIndex)
	}

	// Multiplicity per distinct neighbor, from the raw (repeated) list.
	multiplicity := make(map[int]int)
	for _, neighbor := range site.NN {
		multiplicity[neighbor]++
	}
	distinct := make([]int, 0, len(multiplicity))
	for neighbor := range multiplicity {
		distinct = append(distinct, neighbor)
	}
	sort.Ints(distinct)

	identities, buckets := groupBy(distinct, func(neighbor int) neighborIdentity {
		identity := neighborIdentity{element: a.elements[neighbor]}
		if !groupByElement {
			identity.labels = a.symLabels[neighbor]
		}
		return identity
	})

	details := make([]NeighborSiteDetails, 0, len(identities))
	for _, identity := range identities {
		members := buckets[identity]

		count := 0
		for _, neighbor := range members {
			count += multiplicity[neighbor]
		}

		label, err := a.SymLabel(members...)
		if err != nil {
			return nil, err
		}

		details = append(details, NeighborSiteDetails{
			Element:  identity.element,
			Count:    count,
			Sites:    members,
			SymLabel: label,
		})
	}

	slices.SortStableFunc(details, a.compareNeighborDetails)
	return details, nil
}
