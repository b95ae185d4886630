package catalogs

// Brand represents a perfume house. Brands are created at dataset load and
// never mutated afterwards.
type Brand struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Country     string `json:"country" yaml:"country"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// BrandOption is a deduplicated {id, name} pair offered to filter pickers.
type BrandOption struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}
