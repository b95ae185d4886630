// Package service is the async-shaped access boundary over a catalog: the
// shape of a remote perfume API without the network. It composes the query
// engine over the dataset and adds aggregate queries. Every method takes a
// context, may be called concurrently, and shares no mutable state across
// calls; an optional artificial latency simulates a remote round trip.
package service

import (
	"context"
	"time"

	"github.com/scentmap/scentmap/pkg/catalogs"
	"github.com/scentmap/scentmap/pkg/errors"
	"github.com/scentmap/scentmap/pkg/logging"
	"github.com/scentmap/scentmap/pkg/query"
)

// Defaults for search pagination and aggregate limits.
const (
	DefaultPageSize = 20
	DefaultLimit    = 10
)

// Service exposes catalog reads and aggregates behind an async-shaped API.
type Service struct {
	catalog  catalogs.Reader
	latency  time.Duration
	pageSize int
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLatency sets an artificial delay applied at the start of every call,
// simulating a network round trip. Zero disables the delay.
func WithLatency(d time.Duration) ServiceOption {
	return func(s *Service) {
		s.latency = d
	}
}

// WithPageSize sets the default page size used when a caller passes a
// non-positive pageSize.
func WithPageSize(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// New creates a Service over the given catalog.
func New(catalog catalogs.Reader, opts ...ServiceOption) *Service {
	s := &Service{
		catalog:  catalog,
		pageSize: DefaultPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// delay blocks for the configured latency, honoring context cancellation.
// This is the only suspension point of the service.
func (s *Service) delay(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// FetchAll returns every perfume in dataset order.
func (s *Service) FetchAll(ctx context.Context) ([]catalogs.Perfume, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	return s.catalog.List(), nil
}

// FetchByID returns a single perfume. Misses yield a NotFoundError, never a
// panic or a zero value masquerading as data.
func (s *Service) FetchByID(ctx context.Context, id string) (catalogs.Perfume, error) {
	if err := s.delay(ctx); err != nil {
		return catalogs.Perfume{}, err
	}
	return s.catalog.Perfume(id)
}

// Search applies the query pipeline and paginates the result. A page below
// 1 becomes 1; a non-positive pageSize falls back to the service default.
// Total always reflects the pre-pagination match count.
func (s *Service) Search(ctx context.Context, keyword string, filter catalogs.Filter, page, pageSize int) (catalogs.SearchResult, error) {
	if err := s.delay(ctx); err != nil {
		return catalogs.SearchResult{}, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = s.pageSize
	}

	matches := query.Apply(s.catalog.List(), keyword, filter)

	logging.Ctx(ctx).Debug().
		Str("keyword", keyword).
		Int("matches", len(matches)).
		Int("page", page).
		Msg("Searched perfumes")

	return catalogs.SearchResult{
		Perfumes: query.Paginate(matches, page, pageSize),
		Total:    len(matches),
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// AvailableNoteFamilies returns every note family. The enumeration is
// static, not derived from what the dataset happens to contain.
func (s *Service) AvailableNoteFamilies(ctx context.Context) ([]catalogs.NoteFamily, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	return catalogs.NoteFamilies(), nil
}

// AvailableBrands returns deduplicated {id, name} pairs for the brands that
// actually appear on perfumes, in first-occurrence dataset order.
func (s *Service) AvailableBrands(ctx context.Context) ([]catalogs.BrandOption, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var options []catalogs.BrandOption
	for _, p := range s.catalog.List() {
		if _, ok := seen[p.Brand.ID]; ok {
			continue
		}
		seen[p.Brand.ID] = struct{}{}
		options = append(options, catalogs.BrandOption{ID: p.Brand.ID, Name: p.Brand.Name})
	}
	return options, nil
}

// PriceRange returns the min and max over perfumes with a defined price.
// When no perfume carries a price there is no meaningful range, so the
// call fails with ErrNoPricedPerfumes rather than returning a sentinel.
func (s *Service) PriceRange(ctx context.Context) (catalogs.PriceRange, error) {
	if err := s.delay(ctx); err != nil {
		return catalogs.PriceRange{}, err
	}

	var pr catalogs.PriceRange
	found := false
	for _, p := range s.catalog.List() {
		if p.Price == nil {
			continue
		}
		if !found {
			pr.Min, pr.Max = *p.Price, *p.Price
			found = true
			continue
		}
		if *p.Price < pr.Min {
			pr.Min = *p.Price
		}
		if *p.Price > pr.Max {
			pr.Max = *p.Price
		}
	}
	if !found {
		return catalogs.PriceRange{}, errors.ErrNoPricedPerfumes
	}
	return pr, nil
}

// Popular returns the perfumes with a defined review count, most reviewed
// first, truncated to limit. Ties keep dataset order. A non-positive limit
// falls back to the default.
func (s *Service) Popular(ctx context.Context, limit int) ([]catalogs.Perfume, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	ranked := query.SortByReviewCount(s.catalog.List())
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// TopRated returns the perfumes with a defined rating, highest first,
// truncated to limit. Ties keep dataset order. A non-positive limit falls
// back to the default.
func (s *Service) TopRated(ctx context.Context, limit int) ([]catalogs.Perfume, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	ranked := query.SortByRating(s.catalog.List())
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
