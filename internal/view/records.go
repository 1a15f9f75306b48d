package view

// NeighborSiteDetails is one group of nearest-neighbor bonds that share an
// identity. Count sums the bond multiplicities of every merged bond; Sites
// lists the contributing neighbor site indices.
type NeighborSiteDetails struct {
	Element  string `json:"element" yaml:"element"`
	Count    int    `json:"count" yaml:"count"`
	Sites    []int  `json:"sites" yaml:"sites"`
	SymLabel string `json:"sym_label" yaml:"sym_label"`
}

// ComponentDetails describes one inequivalent component and how many times
// it appears in the component makeup.
type ComponentDetails struct {
	Formula        string  `json:"formula" yaml:"formula"`
	Count          int     `json:"count" yaml:"count"`
	Dimensionality int     `json:"dimensionality" yaml:"dimensionality"`
	MoleculeName   *string `json:"molecule_name" yaml:"molecule_name"`
	Orientation    *[3]int `json:"orientation" yaml:"orientation"`
	Index          int     `json:"index" yaml:"index"`
}

// ComponentGroup merges components that share dimensionality, formula and
// molecule name. Count sums the member counts; Components holds the ordered
// member details, still distinguishable by index and orientation.
type ComponentGroup struct {
	Formula        string             `json:"formula" yaml:"formula"`
	Dimensionality int                `json:"dimensionality" yaml:"dimensionality"`
	Count          int                `json:"count" yaml:"count"`
	Components     []ComponentDetails `json:"components" yaml:"components"`
	MoleculeName   *string            `json:"molecule_name" yaml:"molecule_name"`
}

// SiteGroup merges the sites of one component by element. Count is the
// total occurrence count within the component's original site list; Sites
// lists the distinct member indices.
type SiteGroup struct {
	Element string `json:"element" yaml:"element"`
	Count   int    `json:"count" yaml:"count"`
	Sites   []int  `json:"sites" yaml:"sites"`
}

// groupBy folds items into buckets by key, returning keys in first-seen
// order so callers stay deterministic before the final sort is applied.
func groupBy[K comparable, T any](items []T, key func(T) K) ([]K, map[K][]T) {
	var order []K
	buckets := make(map[K][]T)
	for _, item := range items {
		k := key(item)
		if _, ok := buckets[k]; !ok {
			order = append(order, k)
		}
		buckets[k] = append(buckets[k], item)
	}
	return order, buckets
}
