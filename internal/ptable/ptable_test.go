package ptable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtal-tools/xtalsum/internal/ptable"
)

func seriesIndex(t *testing.T, symbol string) int {
	t.Helper()
	index, err := ptable.New().SeriesIndex(symbol)
	require.NoError(t, err, symbol)
	return index
}

func TestSeriesIndex_FormulaOrder(t *testing.T) {
	// The electropositive constituent is cited first: lower index first.
	assert.Less(t, seriesIndex(t, "Na"), seriesIndex(t, "Cl"))
	assert.Less(t, seriesIndex(t, "Sn"), seriesIndex(t, "O"))
	assert.Less(t, seriesIndex(t, "Ca"), seriesIndex(t, "C"))
	assert.Less(t, seriesIndex(t, "Fe"), seriesIndex(t, "Zn"), "groups traverse 8 before 12")
	assert.Less(t, seriesIndex(t, "Cs"), seriesIndex(t, "Li"), "heaviest first within a group")
}

func TestSeriesIndex_HydrogenBetweenGroups15And16(t *testing.T) {
	assert.Less(t, seriesIndex(t, "N"), seriesIndex(t, "H"))
	assert.Less(t, seriesIndex(t, "H"), seriesIndex(t, "O"))
}

func TestSeriesIndex_NobleGasesFirst(t *testing.T) {
	assert.Less(t, seriesIndex(t, "Xe"), seriesIndex(t, "Fr"))
}

func TestSeriesIndex_UnknownElement(t *testing.T) {
	_, err := ptable.New().SeriesIndex("Xx")
	assert.ErrorIs(t, err, ptable.ErrUnknownElement)
}

func TestElectronegativity_KnownValues(t *testing.T) {
	table := ptable.New()

	x, err := table.Electronegativity("O")
	require.NoError(t, err)
	assert.InDelta(t, 3.44, x, 1e-9)

	x, err = table.Electronegativity("Sn")
	require.NoError(t, err)
	assert.InDelta(t, 1.96, x, 1e-9)
}

func TestElectronegativity_UnknownElement(t *testing.T) {
	_, err := ptable.New().Electronegativity("Xx")
	assert.ErrorIs(t, err, ptable.ErrUnknownElement)
}

func TestElectronegativity_NoTabulatedValue(t *testing.T) {
	// Helium has a series position but no accepted Pauling value.
	_, err := ptable.New().Electronegativity("He")
	assert.ErrorIs(t, err, ptable.ErrNoElectronegativity)

	_, err = ptable.New().SeriesIndex("He")
	assert.NoError(t, err)
}
