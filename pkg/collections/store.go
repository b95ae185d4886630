// Package collections manages the two persisted per-user collections:
// favorite perfume IDs and reviews. The store owns its data and writes every
// mutation through an injected Backend; derived views (grouping, averages,
// counts) are recomputed from the source collections on each read so they
// can never drift out of sync.
//
// Neither collection enforces referential integrity against the catalog: a
// favorite or review whose perfume disappears from the dataset simply
// becomes orphaned.
package collections

import (
	"sync"

	"github.com/agentstation/utc"
	"github.com/google/uuid"

	"github.com/scentmap/scentmap/pkg/catalogs"
	"github.com/scentmap/scentmap/pkg/errors"
	"github.com/scentmap/scentmap/pkg/logging"
)

// Storage keys for the two collections.
const (
	FavoritesKey = "perfume-favorites"
	ReviewsKey   = "perfume-reviews"
)

// Store holds the favorites and reviews of a single logical user. It is
// safe for concurrent use, though the design assumes one writer.
type Store struct {
	mu          sync.RWMutex
	backend     Backend
	favoriteIDs []string
	reviews     []catalogs.Review
}

// New creates a Store over the given backend, rehydrating both collections.
// Load failures surface immediately so a corrupt store is noticed at
// startup rather than silently emptied.
func New(backend Backend) (*Store, error) {
	s := &Store{backend: backend}

	if err := backend.Load(FavoritesKey, &s.favoriteIDs); err != nil {
		return nil, err
	}
	if err := backend.Load(ReviewsKey, &s.reviews); err != nil {
		return nil, err
	}

	logging.Debug().
		Int("favorites", len(s.favoriteIDs)).
		Int("reviews", len(s.reviews)).
		Msg("Rehydrated user collections")
	return s, nil
}

// --- Favorites ---

// IsFavorite reports whether the perfume is in the favorite set.
func (s *Store) IsFavorite(perfumeID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOfFavorite(perfumeID) >= 0
}

// AddFavorite adds the perfume to the favorite set. Adding an existing
// favorite is a no-op.
func (s *Store) AddFavorite(perfumeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOfFavorite(perfumeID) >= 0 {
		return nil
	}
	s.favoriteIDs = append(s.favoriteIDs, perfumeID)
	return s.saveFavorites()
}

// RemoveFavorite removes the perfume from the favorite set. Removing an
// absent entry is a silent no-op.
func (s *Store) RemoveFavorite(perfumeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfFavorite(perfumeID)
	if i < 0 {
		return nil
	}
	s.favoriteIDs = append(s.favoriteIDs[:i], s.favoriteIDs[i+1:]...)
	return s.saveFavorites()
}

// ToggleFavorite adds the perfume if absent and removes it if present, so
// applying it twice restores the original membership.
func (s *Store) ToggleFavorite(perfumeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOfFavorite(perfumeID); i >= 0 {
		s.favoriteIDs = append(s.favoriteIDs[:i], s.favoriteIDs[i+1:]...)
	} else {
		s.favoriteIDs = append(s.favoriteIDs, perfumeID)
	}
	return s.saveFavorites()
}

// ClearFavorites empties the favorite set.
func (s *Store) ClearFavorites() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.favoriteIDs = s.favoriteIDs[:0]
	return s.saveFavorites()
}

// FavoriteIDs returns the favorite perfume IDs in insertion order.
func (s *Store) FavoriteIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, len(s.favoriteIDs))
	copy(ids, s.favoriteIDs)
	return ids
}

// FavoritesCount returns the number of favorites.
func (s *Store) FavoritesCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.favoriteIDs)
}

// indexOfFavorite returns the position of the perfume in the favorite set,
// or -1. Callers must hold the lock.
func (s *Store) indexOfFavorite(perfumeID string) int {
	for i, id := range s.favoriteIDs {
		if id == perfumeID {
			return i
		}
	}
	return -1
}

// saveFavorites persists the favorite set. Callers must hold the lock.
func (s *Store) saveFavorites() error {
	return s.backend.Save(FavoritesKey, s.favoriteIDs)
}

// --- Reviews ---

// AddReview creates and persists a review for the perfume. The ID is a
// random UUID, collision-resistant across rapid successive calls; CreatedAt
// is the current UTC time. Rating must be within 1..5.
func (s *Store) AddReview(perfumeID, userName string, rating int, comment string) (catalogs.Review, error) {
	if err := validateRating(rating); err != nil {
		return catalogs.Review{}, err
	}

	review := catalogs.Review{
		ID:        uuid.NewString(),
		PerfumeID: perfumeID,
		UserName:  userName,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: utc.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append(s.reviews, review)
	if err := s.saveReviews(); err != nil {
		return catalogs.Review{}, err
	}
	return review, nil
}

// DeleteReview removes a review by ID. Deleting an absent review is a
// silent no-op.
func (s *Store) DeleteReview(reviewID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.reviews {
		if r.ID == reviewID {
			s.reviews = append(s.reviews[:i], s.reviews[i+1:]...)
			return s.saveReviews()
		}
	}
	return nil
}

// UpdateReview replaces the rating and comment of an existing review.
// Updating an absent review is a silent no-op; an invalid rating is
// rejected before any lookup.
func (s *Store) UpdateReview(reviewID string, rating int, comment string) error {
	if err := validateRating(rating); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reviews {
		if s.reviews[i].ID == reviewID {
			s.reviews[i].Rating = rating
			s.reviews[i].Comment = comment
			return s.saveReviews()
		}
	}
	return nil
}

// ReviewsFor returns the reviews for a perfume in insertion order.
func (s *Store) ReviewsFor(perfumeID string) []catalogs.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []catalogs.Review
	for _, r := range s.reviews {
		if r.PerfumeID == perfumeID {
			matches = append(matches, r)
		}
	}
	return matches
}

// ReviewsByPerfume groups all reviews by perfume ID, preserving insertion
// order within each group. The grouping is recomputed from the review
// collection on every call; it is a view, not a cache that can desync.
func (s *Store) ReviewsByPerfume() map[string][]catalogs.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grouped := make(map[string][]catalogs.Review)
	for _, r := range s.reviews {
		grouped[r.PerfumeID] = append(grouped[r.PerfumeID], r)
	}
	return grouped
}

// AverageRating returns the arithmetic mean of the perfume's review
// ratings, or 0 when it has none.
func (s *Store) AverageRating(perfumeID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum, count := 0, 0
	for _, r := range s.reviews {
		if r.PerfumeID == perfumeID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

// ReviewCount returns the number of reviews for a perfume.
func (s *Store) ReviewCount(perfumeID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, r := range s.reviews {
		if r.PerfumeID == perfumeID {
			count++
		}
	}
	return count
}

// Reviews returns a copy of all reviews in insertion order.
func (s *Store) Reviews() []catalogs.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := make([]catalogs.Review, len(s.reviews))
	copy(reviews, s.reviews)
	return reviews
}

// ClearAllReviews removes every review.
func (s *Store) ClearAllReviews() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reviews = s.reviews[:0]
	return s.saveReviews()
}

// saveReviews persists the review collection. Callers must hold the lock.
func (s *Store) saveReviews() error {
	return s.backend.Save(ReviewsKey, s.reviews)
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errors.NewValidationError("rating", rating, "must be within [1, 5]")
	}
	return nil
}
