package catalogs

// PriceRange bounds a price filter, inclusive on both ends.
type PriceRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Filter holds multi-field filter criteria for perfume search. An empty
// slice for any field means "no constraint on that field", not "match
// nothing". A nil PriceRange means no price constraint.
type Filter struct {
	BrandIDs     []string     `json:"brand_ids,omitempty" yaml:"brand_ids,omitempty"`
	NoteFamilies []NoteFamily `json:"note_families,omitempty" yaml:"note_families,omitempty"`
	Genders      []Gender     `json:"genders,omitempty" yaml:"genders,omitempty"`
	PriceRange   *PriceRange  `json:"price_range,omitempty" yaml:"price_range,omitempty"`
}

// Empty reports whether the filter constrains nothing.
func (f Filter) Empty() bool {
	return len(f.BrandIDs) == 0 &&
		len(f.NoteFamilies) == 0 &&
		len(f.Genders) == 0 &&
		f.PriceRange == nil
}

// SearchResult is one page of a search along with the pre-pagination total.
type SearchResult struct {
	Perfumes []Perfume `json:"perfumes" yaml:"perfumes"`
	Total    int       `json:"total" yaml:"total"` // matches before pagination
	Page     int       `json:"page" yaml:"page"`   // 1-based
	PageSize int       `json:"page_size" yaml:"page_size"`
}

// TotalPages returns the number of pages the full result spans.
func (r SearchResult) TotalPages() int {
	if r.PageSize <= 0 {
		return 0
	}
	return (r.Total + r.PageSize - 1) / r.PageSize
}
