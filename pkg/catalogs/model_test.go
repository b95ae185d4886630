package catalogs

import "testing"

func TestPerfumeValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Perfume)
		wantErr bool
	}{
		{"Valid", func(_ *Perfume) {}, false},
		{"MissingID", func(p *Perfume) { p.ID = "" }, true},
		{"MissingName", func(p *Perfume) { p.Name = "" }, true},
		{"UnknownGender", func(p *Perfume) { p.Gender = "other" }, true},
		{"UnknownConcentration", func(p *Perfume) { p.Concentration = "extrait" }, true},
		{"NoNotes", func(p *Perfume) { p.Notes = nil }, true},
		{"UnknownNoteType", func(p *Perfume) { p.Notes[0].Type = "heart" }, true},
		{"UnknownNoteFamily", func(p *Perfume) { p.Notes[0].Family = "musky" }, true},
		{"RatingTooHigh", func(p *Perfume) { p.Rating = floatPtr(5.1) }, true},
		{"RatingAtBound", func(p *Perfume) { p.Rating = floatPtr(5.0) }, false},
		{"NoRating", func(p *Perfume) { p.Rating = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perfume := testPerfume("validate-check")
			tt.mutate(&perfume)
			err := perfume.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

func TestEnums(t *testing.T) {
	if got := len(NoteFamilies()); got != 12 {
		t.Errorf("Expected 12 note families, got %d", got)
	}
	if got := len(Genders()); got != 3 {
		t.Errorf("Expected 3 genders, got %d", got)
	}
	if NoteFamily("floral").Valid() != true {
		t.Error("Expected 'floral' to be a valid note family")
	}
	if NoteFamily("musky").Valid() {
		t.Error("Expected 'musky' to be invalid")
	}
}

func TestFilterEmpty(t *testing.T) {
	if !(Filter{}).Empty() {
		t.Error("Expected zero filter to be empty")
	}
	if (Filter{BrandIDs: []string{"x"}}).Empty() {
		t.Error("Expected brand selection to make filter non-empty")
	}
	if (Filter{PriceRange: &PriceRange{Min: 1, Max: 2}}).Empty() {
		t.Error("Expected price range to make filter non-empty")
	}
}

func TestSearchResultTotalPages(t *testing.T) {
	tests := []struct {
		total    int
		pageSize int
		want     int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{7, 5, 2},
	}

	for _, tt := range tests {
		result := SearchResult{Total: tt.total, PageSize: tt.pageSize}
		if got := result.TotalPages(); got != tt.want {
			t.Errorf("TotalPages(total=%d, pageSize=%d) = %d, want %d",
				tt.total, tt.pageSize, got, tt.want)
		}
	}
}
