package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtal-tools/xtalsum/internal/condensed"
	"github.com/xtal-tools/xtalsum/internal/ptable"
	"github.com/xtal-tools/xtalsum/internal/view"
)

func TestNearestNeighborDetails_SplitsBySymLabel(t *testing.T) {
	a := newAdapter(t, sampleStructure())

	details, err := a.NearestNeighborDetails(0, false)
	require.NoError(t, err)
	require.Len(t, details, 2)

	// Both groups are oxygen; the lower count sorts first.
	assert.Equal(t, view.NeighborSiteDetails{
		Element: "O", Count: 1, Sites: []int{2}, SymLabel: "(2)",
	}, details[0])
	assert.Equal(t, view.NeighborSiteDetails{
		Element: "O", Count: 2, Sites: []int{1}, SymLabel: "(1)",
	}, details[1])
}

func TestNearestNeighborDetails_GroupByElement(t *testing.T) {
	a := newAdapter(t, sampleStructure())

	details, err := a.NearestNeighborDetails(0, true)
	require.NoError(t, err)
	require.Len(t, details, 1)

	assert.Equal(t, view.NeighborSiteDetails{
		Element: "O", Count: 3, Sites: []int{1, 2}, SymLabel: "(1,2)",
	}, details[0])
}

func TestNearestNeighborDetails_CountConservation(t *testing.T) {
	s := sampleStructure()
	a := newAdapter(t, s)

	for index, site := range s.Sites {
		for _, grouped := range []bool{false, true} {
			details, err := a.NearestNeighborDetails(index, grouped)
			require.NoError(t, err)

			total := 0
			for _, d := range details {
				total += d.Count
			}
			assert.Equal(t, len(site.NN), total,
				"site %d (group_by_element=%v): group counts must sum to the raw bond count", index, grouped)
		}
	}
}

func TestNearestNeighborDetails_GroupingNeverSplitsFurther(t *testing.T) {
	a := newAdapter(t, sampleStructure())

	split, err := a.NearestNeighborDetails(0, false)
	require.NoError(t, err)
	merged, err := a.NearestNeighborDetails(0, true)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(merged), len(split))
}

func TestNearestNeighborDetails_UnknownSite(t *testing.T) {
	a := newAdapter(t, sampleStructure())

	_, err := a.NearestNeighborDetails(42, false)
	assert.ErrorIs(t, err, condensed.ErrUnknownSite)
}

// mixedNeighborStructure bonds an O site to one Fe and one Zn site. The two
// orderings disagree on these: the IUPAC series cites Fe (group 8) before
// Zn (group 12), while Zn is the less electronegative of the two.
func mixedNeighborStructure() *condensed.Structure {
	return &condensed.Structure{
		Formula:          "FeZnO4",
		SpaceGroupSymbol: "P1",
		CrystalSystem:    "triclinic",
		Dimensionality:   3,
		Sites: map[int]condensed.Site{
			0: {Element: "O", NN: []int{1, 2}, SymLabels: []int{1}},
			1: {Element: "Fe", NN: []int{0}, SymLabels: []int{2}},
			2: {Element: "Zn", NN: []int{0}, SymLabels: []int{3}},
		},
		Components: map[int]condensed.Component{
			0: {Formula: "FeZnO4", Dimensionality: 3, Sites: []int{0, 1, 2}},
		},
		ComponentMakeup: []int{0},
	}
}

func TestNearestNeighborDetails_IUPACOrdering(t *testing.T) {
	s := mixedNeighborStructure()
	require.NoError(t, s.Validate())
	a, err := view.New(s, ptable.New(), view.IUPACOrdering)
	require.NoError(t, err)

	details, err := a.NearestNeighborDetails(0, false)
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, "Fe", details[0].Element)
	assert.Equal(t, "Zn", details[1].Element)
}

func TestNearestNeighborDetails_ElectronegativityOrdering(t *testing.T) {
	s := mixedNeighborStructure()
	require.NoError(t, s.Validate())
	a, err := view.New(s, ptable.New(), view.ElectronegativityOrdering)
	require.NoError(t, err)

	details, err := a.NearestNeighborDetails(0, false)
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, "Zn", details[0].Element)
	assert.Equal(t, "Fe", details[1].Element)
}
