// Package ptable is the built-in element-properties provider. It exposes,
// per element symbol, the IUPAC series ordinal and the Pauling
// electronegativity — the two scalars the view layer sorts by. Embedding
// systems with their own periodic-table service can implement
// view.ElementProperties instead.
package ptable

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownElement marks a symbol absent from the periodic table.
	ErrUnknownElement = errors.New("unknown element")
	// ErrNoElectronegativity marks an element without an accepted Pauling value.
	ErrNoElectronegativity = errors.New("no tabulated electronegativity")
)

// Table provides element property lookups backed by embedded data.
type Table struct{}

// New creates the default periodic table.
func New() *Table {
	return &Table{}
}

// SeriesIndex returns the position of the element in the IUPAC element
// sequence (Table VI of Nomenclature of Inorganic Chemistry, IUPAC
// Recommendations 2005). Elements earlier in the sequence are cited first
// in formulas; the ordering follows the groups and rows of the periodic
// table except for the lanthanides, actinides and hydrogen.
func (t *Table) SeriesIndex(symbol string) (int, error) {
	index, ok := seriesIndex[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownElement, symbol)
	}
	return index, nil
}

// Electronegativity returns the Pauling electronegativity. Elements without
// an accepted value (most noble gases and the short-lived heavy elements)
// return ErrNoElectronegativity; no substitute ordinal is invented.
func (t *Table) Electronegativity(symbol string) (float64, error) {
	if _, ok := seriesIndex[symbol]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownElement, symbol)
	}
	x, ok := electronegativity[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNoElectronegativity, symbol)
	}
	return x, nil
}

// iupacSeries is the IUPAC 2005 Table VI element sequence. Groups run 18,
// 1, 2, 3 (actinides, then lanthanides, then Y, Sc), 4-12, 13-15, hydrogen,
// 16, 17; within a group the heaviest element comes first.
var iupacSeries = []string{
	// group 18
	"Og", "Rn", "Xe", "Kr", "Ar", "Ne", "He",
	// group 1 (hydrogen placed between groups 15 and 16)
	"Fr", "Cs", "Rb", "K", "Na", "Li",
	// group 2
	"Ra", "Ba", "Sr", "Ca", "Mg", "Be",
	// actinides
	"Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr",
	// lanthanides
	"La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	// group 3
	"Y", "Sc",
	// groups 4-12
	"Rf", "Hf", "Zr", "Ti",
	"Db", "Ta", "Nb", "V",
	"Sg", "W", "Mo", "Cr",
	"Bh", "Re", "Tc", "Mn",
	"Hs", "Os", "Ru", "Fe",
	"Mt", "Ir", "Rh", "Co",
	"Ds", "Pt", "Pd", "Ni",
	"Rg", "Au", "Ag", "Cu",
	"Cn", "Hg", "Cd", "Zn",
	// groups 13-15
	"Nh", "Tl", "In", "Ga", "Al", "B",
	"Fl", "Pb", "Sn", "Ge", "Si", "C",
	"Mc", "Bi", "Sb", "As", "P", "N",
	"H",
	// groups 16-17
	"Lv", "Po", "Te", "Se", "S", "O",
	"Ts", "At", "I", "Br", "Cl", "F",
}

var seriesIndex = func() map[string]int {
	m := make(map[string]int, len(iupacSeries))
	for i, symbol := range iupacSeries {
		m[symbol] = i
	}
	return m
}()

// electronegativity holds Pauling electronegativities. Elements without an
// accepted value are deliberately absent.
var electronegativity = map[string]float64{
	"H": 2.20,
	"Li": 0.98, "Be": 1.57, "B": 2.04, "C": 2.55, "N": 3.04, "O": 3.44, "F": 3.98,
	"Na": 0.93, "Mg": 1.31, "Al": 1.61, "Si": 1.90, "P": 2.19, "S": 2.58, "Cl": 3.16,
	"K": 0.82, "Ca": 1.00,
	"Sc": 1.36, "Ti": 1.54, "V": 1.63, "Cr": 1.66, "Mn": 1.55,
	"Fe": 1.83, "Co": 1.88, "Ni": 1.91, "Cu": 1.90, "Zn": 1.65,
	"Ga": 1.81, "Ge": 2.01, "As": 2.18, "Se": 2.55, "Br": 2.96, "Kr": 3.00,
	"Rb": 0.82, "Sr": 0.95,
	"Y": 1.22, "Zr": 1.33, "Nb": 1.60, "Mo": 2.16, "Tc": 1.90,
	"Ru": 2.20, "Rh": 2.28, "Pd": 2.20, "Ag": 1.93, "Cd": 1.69,
	"In": 1.78, "Sn": 1.96, "Sb": 2.05, "Te": 2.10, "I": 2.66, "Xe": 2.60,
	"Cs": 0.79, "Ba": 0.89,
	"La": 1.10, "Ce": 1.12, "Pr": 1.13, "Nd": 1.14, "Pm": 1.13, "Sm": 1.17,
	"Eu": 1.20, "Gd": 1.20, "Tb": 1.10, "Dy": 1.22, "Ho": 1.23, "Er": 1.24,
	"Tm": 1.25, "Yb": 1.10, "Lu": 1.27,
	"Hf": 1.30, "Ta": 1.50, "W": 2.36, "Re": 1.90,
	"Os": 2.20, "Ir": 2.20, "Pt": 2.28, "Au": 2.54, "Hg": 2.00,
	"Tl": 1.62, "Pb": 2.33, "Bi": 2.02, "Po": 2.00, "At": 2.20,
	"Fr": 0.70, "Ra": 0.90,
	"Ac": 1.10, "Th": 1.30, "Pa": 1.50, "U": 1.38, "Np": 1.36, "Pu": 1.28,
	"Am": 1.13, "Cm": 1.28, "Bk": 1.30, "Cf": 1.30, "Es": 1.30, "Fm": 1.30,
	"Md": 1.30, "No": 1.30,
}
