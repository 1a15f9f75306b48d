package condensed

// Site is one symmetry-inequivalent site of the structure.
type Site struct {
	// Element is the element symbol, e.g. "Sn".
	Element string `json:"element" yaml:"element" validate:"required"`
	// NN lists the nearest-neighbor site indices. An index appears once
	// per bond, so repetition encodes bond multiplicity.
	NN []int `json:"nn" yaml:"nn"`
	// SymLabels are the symmetry-equivalence labels attached to the site.
	SymLabels []int `json:"sym_labels" yaml:"sym_labels"`
}

// Component is one structural component (framework, layer, molecule, ...).
type Component struct {
	Formula        string `json:"formula" yaml:"formula" validate:"required"`
	Dimensionality int    `json:"dimensionality" yaml:"dimensionality"`
	// MoleculeName is nil when the component is not a recognized molecule.
	MoleculeName *string `json:"molecule_name" yaml:"molecule_name"`
	// Orientation is nil for components without a defined orientation.
	Orientation *[3]int `json:"orientation" yaml:"orientation"`
	// Sites lists the member site indices, possibly with repetition.
	Sites []int `json:"sites" yaml:"sites" validate:"required"`
}

// Structure is the condensed-structure document produced by an external
// structure condenser. It is treated as immutable once loaded; nothing in
// this module mutates it after Validate.
type Structure struct {
	// Mineral is an opaque blob describing the matched mineral prototype.
	// This layer passes it through without looking inside.
	Mineral          map[string]any                       `json:"mineral" yaml:"mineral"`
	Formula          string                               `json:"formula" yaml:"formula" validate:"required"`
	SpaceGroupSymbol string                               `json:"spg_symbol" yaml:"spg_symbol" validate:"required"`
	CrystalSystem    string                               `json:"crystal_system" yaml:"crystal_system" validate:"required"`
	Dimensionality   int                                  `json:"dimensionality" yaml:"dimensionality"`
	Sites            map[int]Site                         `json:"sites" yaml:"sites" validate:"required"`
	Distances        map[int]map[int][]float64            `json:"distances" yaml:"distances"`
	Angles           map[int]map[int]map[string][]float64 `json:"angles" yaml:"angles"`
	Components       map[int]Component                    `json:"components" yaml:"components" validate:"required"`
	// ComponentMakeup has one entry per physical component instance;
	// repeated indices are symmetry-equivalent repeats.
	ComponentMakeup []int `json:"component_makeup" yaml:"component_makeup" validate:"required"`
}
