package view

import (
	"fmt"
	"slices"
	"sort"

	"github.com/xtal-tools/xtalsum/internal/condensed"
)

// componentIdentity decides which component instances merge into one group.
// Geometrically distinct instances (different orientation or index) with the
// same identity still merge; they stay distinguishable inside the group's
// member list. The named flag keeps an absent molecule name from colliding
// with an empty one.
type componentIdentity struct {
	dimensionality int
	formula        string
	moleculeName   string
	named          bool
}

// ComponentDetails returns one record per inequivalent component index in
// the makeup, with count equal to the number of instances of that index.
// The makeup is validated at load time, so no lookup can fail here.
func (a *Adapter) ComponentDetails() []ComponentDetails {
	occurrences := make(map[int]int)
	for _, index := range a.structure.ComponentMakeup {
		occurrences[index]++
	}
	distinct := make([]int, 0, len(occurrences))
	for index := range occurrences {
		distinct = append(distinct, index)
	}
	sort.Ints(distinct)

	details := make([]ComponentDetails, 0, len(distinct))
	for _, index := range distinct {
		component := a.structure.Components[index]
		details = append(details, ComponentDetails{
			Formula:        component.Formula,
			Count:          occurrences[index],
			Dimensionality: component.Dimensionality,
			MoleculeName:   component.MoleculeName,
			Orientation:    component.Orientation,
			Index:          index,
		})
	}

	slices.SortStableFunc(details, compareComponentDetails)
	return details
}

// ComponentGroups merges component details that share dimensionality,
// formula and molecule name. Group counts sum the member counts, so the
// total across groups always equals the makeup length.
func (a *Adapter) ComponentGroups() []ComponentGroup {
	identities, buckets := groupBy(a.ComponentDetails(), func(d ComponentDetails) componentIdentity {
		identity := componentIdentity{
			dimensionality: d.Dimensionality,
			formula:        d.Formula,
		}
		if d.MoleculeName != nil {
			identity.moleculeName = *d.MoleculeName
			identity.named = true
		}
		return identity
	})

	groups := make([]ComponentGroup, 0, len(identities))
	for _, identity := range identities {
		members := buckets[identity]

		count := 0
		for _, member := range members {
			count += member.Count
		}
		slices.SortStableFunc(members, compareComponentDetails)

		group := ComponentGroup{
			Formula:        identity.formula,
			Dimensionality: identity.dimensionality,
			Count:          count,
			Components:     members,
		}
		if identity.named {
			name := identity.moleculeName
			group.MoleculeName = &name
		}
		groups = append(groups, group)
	}

	slices.SortStableFunc(groups, compareComponentGroups)
	return groups
}

// ComponentSiteGroups merges the sites of one component by element. A site
// index repeated in the component's site list contributes each occurrence
// to its group count, while the member list stays deduplicated.
func (a *Adapter) ComponentSiteGroups(componentIndex int) ([]SiteGroup, error) {
	component, ok := a.structure.Components[componentIndex]
	if !ok {
		return nil, fmt.Errorf("%w %d", condensed.ErrUnknownComponent, componentIndex)
	}

	occurrences := make(map[int]int)
	for _, siteIndex := range component.Sites {
		occurrences[siteIndex]++
	}
	distinct := make([]int, 0, len(occurrences))
	for siteIndex := range occurrences {
		distinct = append(distinct, siteIndex)
	}
	sort.Ints(distinct)

	elements, buckets := groupBy(distinct, func(siteIndex int) string {
		return a.elements[siteIndex]
	})

	groups := make([]SiteGroup, 0, len(elements))
	for _, element := range elements {
		members := buckets[element]

		count := 0
		for _, siteIndex := range members {
			count += occurrences[siteIndex]
		}

		groups = append(groups, SiteGroup{
			Element: element,
			Count:   count,
			Sites:   members,
		})
	}

	slices.SortStableFunc(groups, a.compareSiteGroups)
	return groups, nil
}
