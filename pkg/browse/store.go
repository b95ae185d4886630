// Package browse holds the UI-facing query state: keyword, filter
// selections, and pagination. It mediates all calls to the access service
// and exposes the loaded page of results plus loading/error markers for a
// presentation layer to render.
//
// Overlapping async actions are neither deduplicated nor cancelled: the
// last call to resolve wins, which can let a stale result overwrite a newer
// one. That race is inherited from the single-user interaction model and
// accepted.
package browse

import (
	"context"
	"sync"

	"github.com/scentmap/scentmap/pkg/catalogs"
	"github.com/scentmap/scentmap/pkg/logging"
	"github.com/scentmap/scentmap/pkg/service"
)

// Store owns the current browse state for one logical user. All methods
// are safe for concurrent use; async actions block until the service call
// completes.
type Store struct {
	mu  sync.RWMutex
	svc *service.Service

	keyword       string
	brandIDs      []string
	noteFamilies  []catalogs.NoteFamily
	genders       []catalogs.Gender
	currentPage   int
	pageSize      int
	totalResults  int
	perfumes      []catalogs.Perfume
	loading       bool
	errMsg        string
	availBrands   []catalogs.BrandOption
	availFamilies []catalogs.NoteFamily
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithPageSize sets the page size used for searches.
func WithPageSize(n int) StoreOption {
	return func(s *Store) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// New creates a browse store over the given service.
func New(svc *service.Service, opts ...StoreOption) *Store {
	s := &Store{
		svc:         svc,
		currentPage: 1,
		pageSize:    service.DefaultPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// --- State reads ---

// Keyword returns the current search keyword.
func (s *Store) Keyword() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keyword
}

// SelectedBrandIDs returns the selected brand IDs in selection order.
func (s *Store) SelectedBrandIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, len(s.brandIDs))
	copy(ids, s.brandIDs)
	return ids
}

// SelectedNoteFamilies returns the selected note families in selection order.
func (s *Store) SelectedNoteFamilies() []catalogs.NoteFamily {
	s.mu.RLock()
	defer s.mu.RUnlock()
	families := make([]catalogs.NoteFamily, len(s.noteFamilies))
	copy(families, s.noteFamilies)
	return families
}

// SelectedGenders returns the selected genders in selection order.
func (s *Store) SelectedGenders() []catalogs.Gender {
	s.mu.RLock()
	defer s.mu.RUnlock()
	genders := make([]catalogs.Gender, len(s.genders))
	copy(genders, s.genders)
	return genders
}

// Perfumes returns the currently loaded page of results.
func (s *Store) Perfumes() []catalogs.Perfume {
	s.mu.RLock()
	defer s.mu.RUnlock()
	perfumes := make([]catalogs.Perfume, len(s.perfumes))
	copy(perfumes, s.perfumes)
	return perfumes
}

// CurrentPage returns the 1-based current page.
func (s *Store) CurrentPage() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentPage
}

// PageSize returns the page size.
func (s *Store) PageSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pageSize
}

// TotalResults returns the pre-pagination match count of the last search.
func (s *Store) TotalResults() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalResults
}

// Loading reports whether an async action is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the user-visible message of the last failed action, or "".
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

// AvailableBrands returns the loaded brand options.
func (s *Store) AvailableBrands() []catalogs.BrandOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	options := make([]catalogs.BrandOption, len(s.availBrands))
	copy(options, s.availBrands)
	return options
}

// AvailableNoteFamilies returns the loaded note family options.
func (s *Store) AvailableNoteFamilies() []catalogs.NoteFamily {
	s.mu.RLock()
	defer s.mu.RUnlock()
	families := make([]catalogs.NoteFamily, len(s.availFamilies))
	copy(families, s.availFamilies)
	return families
}

// --- Derived state, recomputed on read ---

// Filter assembles the current selections into filter criteria.
func (s *Store) Filter() catalogs.Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalogs.Filter{
		BrandIDs:     append([]string(nil), s.brandIDs...),
		NoteFamilies: append([]catalogs.NoteFamily(nil), s.noteFamilies...),
		Genders:      append([]catalogs.Gender(nil), s.genders...),
	}
}

// HasFilters reports whether any filter dimension is selected.
func (s *Store) HasFilters() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.brandIDs) > 0 || len(s.noteFamilies) > 0 || len(s.genders) > 0
}

// TotalPages returns ceil(TotalResults / PageSize).
func (s *Store) TotalPages() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalPagesLocked()
}

func (s *Store) totalPagesLocked() int {
	if s.pageSize <= 0 {
		return 0
	}
	return (s.totalResults + s.pageSize - 1) / s.pageSize
}

// --- State transitions ---

// SetKeyword replaces the search keyword and resets to the first page.
func (s *Store) SetKeyword(keyword string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyword = keyword
	s.currentPage = 1
}

// ToggleBrand adds the brand to the selection if absent, removes it if
// present, and resets to the first page.
func (s *Store) ToggleBrand(brandID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brandIDs = toggle(s.brandIDs, brandID)
	s.currentPage = 1
}

// ToggleNoteFamily toggles the note family selection and resets to the
// first page.
func (s *Store) ToggleNoteFamily(family catalogs.NoteFamily) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.noteFamilies = toggle(s.noteFamilies, family)
	s.currentPage = 1
}

// ToggleGender toggles the gender selection and resets to the first page.
func (s *Store) ToggleGender(gender catalogs.Gender) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.genders = toggle(s.genders, gender)
	s.currentPage = 1
}

// ClearFilters empties every filter dimension and resets to the first page.
func (s *Store) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brandIDs = nil
	s.noteFamilies = nil
	s.genders = nil
	s.currentPage = 1
}

// SetPage moves to page n only when 1 <= n <= TotalPages.
func (s *Store) SetPage(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n >= 1 && n <= s.totalPagesLocked() {
		s.currentPage = n
	}
}

// NextPage advances one page; a no-op on the last page.
func (s *Store) NextPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentPage < s.totalPagesLocked() {
		s.currentPage++
	}
}

// PreviousPage goes back one page; a no-op on the first page.
func (s *Store) PreviousPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentPage > 1 {
		s.currentPage--
	}
}

// --- Async actions ---
// Each action follows the same state machine: mark loading and clear the
// error, await the service, replace state on success or record a message on
// failure, and always clear loading.

// LoadAll loads the full perfume list, bypassing filters and pagination.
func (s *Store) LoadAll(ctx context.Context) {
	s.begin()

	perfumes, err := s.svc.FetchAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.errMsg = err.Error()
		logging.Ctx(ctx).Error().Err(err).Msg("Failed to load perfumes")
		return
	}
	s.perfumes = perfumes
	s.totalResults = len(perfumes)
}

// Search runs the current keyword, filters, and page through the service
// and replaces the loaded results.
func (s *Store) Search(ctx context.Context) {
	s.begin()

	s.mu.RLock()
	keyword := s.keyword
	filter := catalogs.Filter{
		BrandIDs:     append([]string(nil), s.brandIDs...),
		NoteFamilies: append([]catalogs.NoteFamily(nil), s.noteFamilies...),
		Genders:      append([]catalogs.Gender(nil), s.genders...),
	}
	page := s.currentPage
	pageSize := s.pageSize
	s.mu.RUnlock()

	result, err := s.svc.Search(ctx, keyword, filter, page, pageSize)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.errMsg = err.Error()
		logging.Ctx(ctx).Error().Err(err).Msg("Failed to search perfumes")
		return
	}
	s.perfumes = result.Perfumes
	s.totalResults = result.Total
}

// LoadAvailableOptions loads the brand and note family options for filter
// pickers. Failures only log: the browse state stays usable without them.
func (s *Store) LoadAvailableOptions(ctx context.Context) {
	brands, err := s.svc.AvailableBrands(ctx)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("Failed to load available options")
		return
	}
	families, err := s.svc.AvailableNoteFamilies(ctx)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("Failed to load available options")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.availBrands = brands
	s.availFamilies = families
}

// begin marks an async action as started.
func (s *Store) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.errMsg = ""
}

// toggle removes v from the slice if present, appends it otherwise.
func toggle[T comparable](items []T, v T) []T {
	for i, item := range items {
		if item == v {
			return append(items[:i], items[i+1:]...)
		}
	}
	return append(items, v)
}
