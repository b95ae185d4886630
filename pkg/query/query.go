// Package query provides pure, composable filtering, search, sorting, and
// pagination over perfume slices. Functions never mutate their input and
// treat empty criteria as "no constraint": passing an empty set for any
// dimension is equivalent to omitting that dimension.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/scentmap/scentmap/pkg/catalogs"
)

// ByBrandIDs keeps the perfumes whose brand ID is in ids. An empty ids
// returns the input unchanged.
func ByBrandIDs(perfumes []catalogs.Perfume, ids []string) []catalogs.Perfume {
	if len(ids) == 0 {
		return perfumes
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	var matches []catalogs.Perfume
	for _, p := range perfumes {
		if _, ok := wanted[p.Brand.ID]; ok {
			matches = append(matches, p)
		}
	}
	return matches
}

// ByNoteFamilies keeps the perfumes having at least one note whose family
// is in families (OR semantics across families, not AND). An empty families
// returns the input unchanged.
func ByNoteFamilies(perfumes []catalogs.Perfume, families []catalogs.NoteFamily) []catalogs.Perfume {
	if len(families) == 0 {
		return perfumes
	}

	wanted := make(map[catalogs.NoteFamily]struct{}, len(families))
	for _, f := range families {
		wanted[f] = struct{}{}
	}

	var matches []catalogs.Perfume
	for _, p := range perfumes {
		for _, note := range p.Notes {
			if _, ok := wanted[note.Family]; ok {
				matches = append(matches, p)
				break
			}
		}
	}
	return matches
}

// ByGender is the single-gender convenience filter: it keeps perfumes
// matching the gender plus unisex perfumes, since a unisex scent belongs in
// any single-gender browse. The multi-gender list filter used by search is
// ByGenders, which applies strict membership with no implicit unisex.
func ByGender(perfumes []catalogs.Perfume, gender catalogs.Gender) []catalogs.Perfume {
	var matches []catalogs.Perfume
	for _, p := range perfumes {
		if p.Gender == gender || p.Gender == catalogs.GenderUnisex {
			matches = append(matches, p)
		}
	}
	return matches
}

// ByGenders keeps the perfumes whose gender is in genders, with no implicit
// unisex inclusion: a caller wanting unisex results selects unisex
// explicitly. An empty genders returns the input unchanged.
func ByGenders(perfumes []catalogs.Perfume, genders []catalogs.Gender) []catalogs.Perfume {
	if len(genders) == 0 {
		return perfumes
	}

	wanted := make(map[catalogs.Gender]struct{}, len(genders))
	for _, g := range genders {
		wanted[g] = struct{}{}
	}

	var matches []catalogs.Perfume
	for _, p := range perfumes {
		if _, ok := wanted[p.Gender]; ok {
			matches = append(matches, p)
		}
	}
	return matches
}

// ByPriceRange keeps the perfumes with a defined price within [pr.Min,
// pr.Max]. Perfumes without a price are excluded. A nil range returns the
// input unchanged.
func ByPriceRange(perfumes []catalogs.Perfume, pr *catalogs.PriceRange) []catalogs.Perfume {
	if pr == nil {
		return perfumes
	}

	var matches []catalogs.Perfume
	for _, p := range perfumes {
		if p.Price == nil {
			continue
		}
		if *p.Price >= pr.Min && *p.Price <= pr.Max {
			matches = append(matches, p)
		}
	}
	return matches
}

// Search keeps the perfumes whose name, brand name, or description contains
// the keyword case-insensitively. The keyword is trimmed first; an empty
// keyword returns the input unchanged.
func Search(perfumes []catalogs.Perfume, keyword string) []catalogs.Perfume {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return perfumes
	}

	// cases.Caser values are stateful, so one per call, not per package.
	fold := cases.Fold()
	folded := fold.String(keyword)

	var matches []catalogs.Perfume
	for _, p := range perfumes {
		if strings.Contains(fold.String(p.Name), folded) ||
			strings.Contains(fold.String(p.Brand.Name), folded) ||
			strings.Contains(fold.String(p.Description), folded) {
			matches = append(matches, p)
		}
	}
	return matches
}

// Paginate slices out the given 1-based page. Out-of-range pages yield an
// empty slice, never an error; callers report the pre-pagination total
// separately.
func Paginate(perfumes []catalogs.Perfume, page, pageSize int) []catalogs.Perfume {
	if page < 1 || pageSize < 1 {
		return nil
	}

	start := (page - 1) * pageSize
	if start >= len(perfumes) {
		return nil
	}
	end := start + pageSize
	if end > len(perfumes) {
		end = len(perfumes)
	}
	return perfumes[start:end]
}

// Apply runs the full pipeline in its fixed order: keyword search first,
// then brand, note family, and gender filters, then price range. The
// filters are intersection-like, so the order doesn't change the result,
// only the work done. Pagination is left to the caller so the
// pre-pagination total stays observable.
func Apply(perfumes []catalogs.Perfume, keyword string, filter catalogs.Filter) []catalogs.Perfume {
	results := Search(perfumes, keyword)
	results = ByBrandIDs(results, filter.BrandIDs)
	results = ByNoteFamilies(results, filter.NoteFamilies)
	results = ByGenders(results, filter.Genders)
	results = ByPriceRange(results, filter.PriceRange)
	return results
}

// SortByReviewCount filters to perfumes with a defined review count and
// sorts them descending. The sort is stable: ties keep their dataset order.
// Returns a new slice.
func SortByReviewCount(perfumes []catalogs.Perfume) []catalogs.Perfume {
	var rated []catalogs.Perfume
	for _, p := range perfumes {
		if p.ReviewCount != nil {
			rated = append(rated, p)
		}
	}
	sort.SliceStable(rated, func(i, j int) bool {
		return *rated[i].ReviewCount > *rated[j].ReviewCount
	})
	return rated
}

// SortByRating filters to perfumes with a defined rating and sorts them
// descending. The sort is stable: ties keep their dataset order. Returns a
// new slice.
func SortByRating(perfumes []catalogs.Perfume) []catalogs.Perfume {
	var rated []catalogs.Perfume
	for _, p := range perfumes {
		if p.Rating != nil {
			rated = append(rated, p)
		}
	}
	sort.SliceStable(rated, func(i, j int) bool {
		return *rated[i].Rating > *rated[j].Rating
	})
	return rated
}
