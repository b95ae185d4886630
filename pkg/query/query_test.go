package query

import (
	"testing"

	"github.com/scentmap/scentmap/pkg/catalogs"
)

func ptr[T any](v T) *T { return &v }

// fixture returns a small dataset covering every filter dimension.
func fixture() []catalogs.Perfume {
	return []catalogs.Perfume{
		{
			ID:     "rose-garden",
			Name:   "Rose Garden",
			Brand:  catalogs.Brand{ID: "floralco", Name: "FloralCo"},
			Gender: catalogs.GenderFemale,
			Notes: []catalogs.Note{
				{Name: "Rose", Type: catalogs.NoteTypeMiddle, Family: catalogs.NoteFamilyFloral},
			},
			Description: "A classic rose soliflore",
			Price:       ptr(120.0),
			Rating:      ptr(4.5),
			ReviewCount: ptr(200),
		},
		{
			ID:     "cedar-trail",
			Name:   "Cedar Trail",
			Brand:  catalogs.Brand{ID: "woodworks", Name: "WoodWorks"},
			Gender: catalogs.GenderMale,
			Notes: []catalogs.Note{
				{Name: "Cedar", Type: catalogs.NoteTypeBase, Family: catalogs.NoteFamilyWoody},
			},
			Description: "Dry cedar over moss",
			Price:       ptr(95.0),
			Rating:      ptr(4.1),
			ReviewCount: ptr(80),
		},
		{
			ID:     "citrus-cloud",
			Name:   "Citrus Cloud",
			Brand:  catalogs.Brand{ID: "floralco", Name: "FloralCo"},
			Gender: catalogs.GenderUnisex,
			Notes: []catalogs.Note{
				{Name: "Bergamot", Type: catalogs.NoteTypeTop, Family: catalogs.NoteFamilyCitrus},
				{Name: "Rose", Type: catalogs.NoteTypeMiddle, Family: catalogs.NoteFamilyFloral},
			},
			Description: "Sparkling bergamot opening",
			Rating:      ptr(4.5),
			ReviewCount: ptr(150),
		},
		{
			ID:     "amber-night",
			Name:   "Amber Night",
			Brand:  catalogs.Brand{ID: "woodworks", Name: "WoodWorks"},
			Gender: catalogs.GenderFemale,
			Notes: []catalogs.Note{
				{Name: "Amber", Type: catalogs.NoteTypeBase, Family: catalogs.NoteFamilyAmber},
			},
			Description: "Warm resinous amber",
			Price:       ptr(210.0),
		},
	}
}

func ids(perfumes []catalogs.Perfume) []string {
	out := make([]string, len(perfumes))
	for i, p := range perfumes {
		out[i] = p.ID
	}
	return out
}

func assertIDs(t *testing.T, got []catalogs.Perfume, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("Expected IDs %v, got %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("Expected IDs %v, got %v", want, gotIDs)
		}
	}
}

func TestByBrandIDs(t *testing.T) {
	perfumes := fixture()

	t.Run("EmptySelection", func(t *testing.T) {
		assertIDs(t, ByBrandIDs(perfumes, nil), "rose-garden", "cedar-trail", "citrus-cloud", "amber-night")
	})

	t.Run("SingleBrand", func(t *testing.T) {
		assertIDs(t, ByBrandIDs(perfumes, []string{"floralco"}), "rose-garden", "citrus-cloud")
	})

	t.Run("MultipleBrandsUnion", func(t *testing.T) {
		got := ByBrandIDs(perfumes, []string{"floralco", "woodworks"})
		assertIDs(t, got, "rose-garden", "cedar-trail", "citrus-cloud", "amber-night")
	})

	t.Run("UnknownBrand", func(t *testing.T) {
		if got := ByBrandIDs(perfumes, []string{"nope"}); len(got) != 0 {
			t.Errorf("Expected no matches, got %v", ids(got))
		}
	})
}

func TestByNoteFamilies(t *testing.T) {
	perfumes := fixture()

	t.Run("EmptySelection", func(t *testing.T) {
		if got := ByNoteFamilies(perfumes, nil); len(got) != len(perfumes) {
			t.Errorf("Expected all %d perfumes, got %d", len(perfumes), len(got))
		}
	})

	t.Run("AnyNoteMatches", func(t *testing.T) {
		// citrus-cloud matches through its second note.
		got := ByNoteFamilies(perfumes, []catalogs.NoteFamily{catalogs.NoteFamilyFloral})
		assertIDs(t, got, "rose-garden", "citrus-cloud")
	})

	t.Run("UnionAcrossFamilies", func(t *testing.T) {
		got := ByNoteFamilies(perfumes, []catalogs.NoteFamily{
			catalogs.NoteFamilyWoody,
			catalogs.NoteFamilyAmber,
		})
		assertIDs(t, got, "cedar-trail", "amber-night")
	})
}

func TestByGender(t *testing.T) {
	perfumes := fixture()

	t.Run("SingleGenderIncludesUnisex", func(t *testing.T) {
		got := ByGender(perfumes, catalogs.GenderMale)
		assertIDs(t, got, "cedar-trail", "citrus-cloud")
	})

	t.Run("UnisexOnly", func(t *testing.T) {
		got := ByGender(perfumes, catalogs.GenderUnisex)
		assertIDs(t, got, "citrus-cloud")
	})
}

func TestByGenders(t *testing.T) {
	perfumes := fixture()

	t.Run("EmptySelection", func(t *testing.T) {
		if got := ByGenders(perfumes, nil); len(got) != len(perfumes) {
			t.Errorf("Expected all %d perfumes, got %d", len(perfumes), len(got))
		}
	})

	t.Run("MultiSelectionIsStrict", func(t *testing.T) {
		// Unlike the single-gender filter, explicit multi-selection does
		// not pull in unisex perfumes.
		got := ByGenders(perfumes, []catalogs.Gender{catalogs.GenderMale, catalogs.GenderFemale})
		assertIDs(t, got, "rose-garden", "cedar-trail", "amber-night")
	})

	t.Run("ExplicitUnisex", func(t *testing.T) {
		got := ByGenders(perfumes, []catalogs.Gender{catalogs.GenderUnisex})
		assertIDs(t, got, "citrus-cloud")
	})
}

func TestByPriceRange(t *testing.T) {
	perfumes := fixture()

	t.Run("NilRangeKeepsAll", func(t *testing.T) {
		if got := ByPriceRange(perfumes, nil); len(got) != len(perfumes) {
			t.Errorf("Expected all %d perfumes, got %d", len(perfumes), len(got))
		}
	})

	t.Run("InclusiveBounds", func(t *testing.T) {
		got := ByPriceRange(perfumes, &catalogs.PriceRange{Min: 95, Max: 120})
		assertIDs(t, got, "rose-garden", "cedar-trail")
	})

	t.Run("UnpricedExcluded", func(t *testing.T) {
		// citrus-cloud has no price and must not match any range.
		got := ByPriceRange(perfumes, &catalogs.PriceRange{Min: 0, Max: 10000})
		assertIDs(t, got, "rose-garden", "cedar-trail", "amber-night")
	})
}

func TestSearch(t *testing.T) {
	perfumes := fixture()

	tests := []struct {
		name    string
		keyword string
		want    []string
	}{
		{"EmptyKeyword", "", []string{"rose-garden", "cedar-trail", "citrus-cloud", "amber-night"}},
		{"WhitespaceKeyword", "   ", []string{"rose-garden", "cedar-trail", "citrus-cloud", "amber-night"}},
		{"MatchesName", "cedar", []string{"cedar-trail"}},
		{"MatchesBrandName", "floralco", []string{"rose-garden", "citrus-cloud"}},
		{"MatchesDescription", "bergamot", []string{"citrus-cloud"}},
		{"CaseInsensitive", "ROSE", []string{"rose-garden"}},
		{"NoMatch", "vetiver", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertIDs(t, Search(perfumes, tt.keyword), tt.want...)
		})
	}
}

func TestPaginate(t *testing.T) {
	perfumes := make([]catalogs.Perfume, 7)
	for i := range perfumes {
		perfumes[i] = catalogs.Perfume{ID: string(rune('a' + i))}
	}

	t.Run("FirstPage", func(t *testing.T) {
		got := Paginate(perfumes, 1, 5)
		if len(got) != 5 || got[0].ID != "a" {
			t.Errorf("Expected 5 perfumes starting at 'a', got %v", ids(got))
		}
	})

	t.Run("PartialLastPage", func(t *testing.T) {
		got := Paginate(perfumes, 2, 5)
		if len(got) != 2 || got[0].ID != "f" {
			t.Errorf("Expected 2 perfumes starting at 'f', got %v", ids(got))
		}
	})

	t.Run("PageBeyondEnd", func(t *testing.T) {
		if got := Paginate(perfumes, 3, 5); len(got) != 0 {
			t.Errorf("Expected empty page, got %v", ids(got))
		}
	})

	t.Run("PageBelowOne", func(t *testing.T) {
		if got := Paginate(perfumes, 0, 5); len(got) != 0 {
			t.Errorf("Expected empty page, got %v", ids(got))
		}
	})

	t.Run("InvalidPageSize", func(t *testing.T) {
		if got := Paginate(perfumes, 1, 0); len(got) != 0 {
			t.Errorf("Expected empty page, got %v", ids(got))
		}
	})

	t.Run("PagesReconstructInput", func(t *testing.T) {
		var joined []catalogs.Perfume
		for page := 1; ; page++ {
			chunk := Paginate(perfumes, page, 3)
			if len(chunk) == 0 {
				break
			}
			joined = append(joined, chunk...)
		}
		if len(joined) != len(perfumes) {
			t.Fatalf("Expected %d perfumes across pages, got %d", len(perfumes), len(joined))
		}
		for i := range perfumes {
			if joined[i].ID != perfumes[i].ID {
				t.Fatalf("Page concatenation out of order at %d: got %v", i, ids(joined))
			}
		}
	})
}

func TestApplyOrder(t *testing.T) {
	perfumes := fixture()

	// Keyword then filters; the keyword narrows before brand selection.
	got := Apply(perfumes, "floralco", catalogs.Filter{
		NoteFamilies: []catalogs.NoteFamily{catalogs.NoteFamilyCitrus},
	})
	assertIDs(t, got, "citrus-cloud")

	got = Apply(perfumes, "", catalogs.Filter{
		Genders:    []catalogs.Gender{catalogs.GenderFemale},
		PriceRange: &catalogs.PriceRange{Min: 100, Max: 300},
	})
	assertIDs(t, got, "rose-garden", "amber-night")
}

func TestSortByReviewCount(t *testing.T) {
	perfumes := fixture()

	got := SortByReviewCount(perfumes)
	assertIDs(t, got, "rose-garden", "citrus-cloud", "cedar-trail")

	// Input order is untouched.
	if perfumes[0].ID != "rose-garden" || perfumes[3].ID != "amber-night" {
		t.Error("SortByReviewCount must not mutate its input")
	}
}

func TestSortByRating(t *testing.T) {
	perfumes := fixture()

	// rose-garden and citrus-cloud tie at 4.5; dataset order breaks the tie.
	got := SortByRating(perfumes)
	assertIDs(t, got, "rose-garden", "citrus-cloud", "cedar-trail")
}
