package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtal-tools/xtalsum/internal/condensed"
	"github.com/xtal-tools/xtalsum/internal/ptable"
	"github.com/xtal-tools/xtalsum/internal/view"
)

// sampleStructure is a minimal rutile-like document: one Sn site bonded to
// two inequivalent O sites, two symmetry-equivalent SnO2 components plus a
// third inequivalent one.
func sampleStructure() *condensed.Structure {
	s := &condensed.Structure{
		Mineral:          map[string]any{"type": "Rutile"},
		Formula:          "SnO2",
		SpaceGroupSymbol: "P4_2/mnm",
		CrystalSystem:    "tetragonal",
		Dimensionality:   3,
		Sites: map[int]condensed.Site{
			0: {Element: "Sn", NN: []int{1, 1, 2}, SymLabels: []int{1}},
			1: {Element: "O", NN: []int{0, 0}, SymLabels: []int{1}},
			2: {Element: "O", NN: []int{0}, SymLabels: []int{2}},
		},
		Distances: map[int]map[int][]float64{
			0: {1: {2.1}, 2: {3.0}},
			1: {0: {2.1}},
			2: {0: {3.0}},
		},
		Components: map[int]condensed.Component{
			0: {Formula: "SnO2", Dimensionality: 3, Sites: []int{0, 1, 2}},
			1: {Formula: "SnO2", Dimensionality: 3, Sites: []int{0, 1, 2}},
		},
		ComponentMakeup: []int{0, 0, 1},
	}
	return s
}

func newAdapter(t *testing.T, s *condensed.Structure) *view.Adapter {
	t.Helper()
	require.NoError(t, s.Validate())
	a, err := view.New(s, ptable.New(), view.IUPACOrdering)
	require.NoError(t, err)
	return a
}

func TestAccessors(t *testing.T) {
	s := sampleStructure()
	a := newAdapter(t, s)

	assert.Equal(t, "SnO2", a.Formula())
	assert.Equal(t, "P4_2/mnm", a.SpaceGroupSymbol())
	assert.Equal(t, "tetragonal", a.CrystalSystem())
	assert.Equal(t, 3, a.Dimensionality())
	assert.Equal(t, map[string]any{"type": "Rutile"}, a.Mineral())
	assert.Len(t, a.Sites(), 3)
	assert.Len(t, a.Components(), 2)
	assert.Equal(t, []int{0, 0, 1}, a.ComponentMakeup())
	assert.Equal(t, []float64{2.1}, a.Distances()[0][1])
}

func TestElementCache(t *testing.T) {
	a := newAdapter(t, sampleStructure())

	element, err := a.Element(0)
	require.NoError(t, err)
	assert.Equal(t, "Sn", element)

	_, err = a.Element(99)
	assert.ErrorIs(t, err, condensed.ErrUnknownSite)
}

func TestSymLabel_SingleSite(t *testing.T) {
	a := newAdapter(t, sampleStructure())

	label, err := a.SymLabel(1)
	require.NoError(t, err)
	assert.Equal(t, "(1)", label)
}

func TestSymLabel_MergesAndSorts(t *testing.T) {
	a := newAdapter(t, sampleStructure())

	label, err := a.SymLabel(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "(1,2)", label)
}

func TestSymLabel_OrderIndependent(t *testing.T) {
	a := newAdapter(t, sampleStructure())

	forward, err := a.SymLabel(1, 2)
	require.NoError(t, err)
	backward, err := a.SymLabel(2, 1)
	require.NoError(t, err)
	assert.Equal(t, forward, backward)
}

func TestSymLabel_DeduplicatesSharedLabels(t *testing.T) {
	a := newAdapter(t, sampleStructure())

	// Sites 0 and 1 both carry label 1; the merged label must not repeat it.
	label, err := a.SymLabel(0, 1)
	require.NoError(t, err)
	assert.Equal(t, "(1)", label)
}

func TestSymLabel_UnknownSite(t *testing.T) {
	a := newAdapter(t, sampleStructure())

	_, err := a.SymLabel(42)
	assert.ErrorIs(t, err, condensed.ErrUnknownSite)
}

func TestSiteSymLabelCache(t *testing.T) {
	a := newAdapter(t, sampleStructure())

	label, err := a.SiteSymLabel(2)
	require.NoError(t, err)
	assert.Equal(t, "(2)", label)

	_, err = a.SiteSymLabel(42)
	assert.ErrorIs(t, err, condensed.ErrUnknownSite)
}

func TestDistanceDetails_PreservesOrderAndRepetition(t *testing.T) {
	a := newAdapter(t, sampleStructure())

	distances, err := a.DistanceDetails(0, 1, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.1, 2.1, 3.0}, distances)
}

func TestDistanceDetails_SingleTarget(t *testing.T) {
	a := newAdapter(t, sampleStructure())

	distances, err := a.DistanceDetails(1, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.1}, distances)
}

func TestDistanceDetails_UnknownFromSite(t *testing.T) {
	a := newAdapter(t, sampleStructure())

	_, err := a.DistanceDetails(42, 0)
	assert.Error(t, err)
}

func TestDistanceDetails_UnrecordedTarget(t *testing.T) {
	a := newAdapter(t, sampleStructure())

	// Sites 1 and 2 are not bonded; no distance is recorded between them.
	_, err := a.DistanceDetails(1, 2)
	assert.Error(t, err)
}

func TestNew_UnknownElementFailsConstruction(t *testing.T) {
	s := sampleStructure()
	site := s.Sites[2]
	site.Element = "Xx"
	s.Sites[2] = site

	_, err := view.New(s, ptable.New(), view.IUPACOrdering)
	require.Error(t, err)
	assert.ErrorIs(t, err, ptable.ErrUnknownElement)
}

func TestNew_MissingElectronegativityFailsConstruction(t *testing.T) {
	s := sampleStructure()
	site := s.Sites[2]
	site.Element = "He" // no accepted Pauling value
	s.Sites[2] = site

	_, err := view.New(s, ptable.New(), view.ElectronegativityOrdering)
	require.Error(t, err)
	assert.ErrorIs(t, err, ptable.ErrNoElectronegativity)

	// The same structure is fine under IUPAC ordering.
	_, err = view.New(s, ptable.New(), view.IUPACOrdering)
	assert.NoError(t, err)
}
