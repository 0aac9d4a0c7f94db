package memory

import (
	"context"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	apperrors "github.com/oakline/storefront/pkg/errors"

	"github.com/oakline/storefront/internal/domain"
	"github.com/oakline/storefront/internal/repository"
)

// ReviewRepository is the in-memory implementation of
// repository.ReviewRepository. Every mutation recomputes the rateable
// product's aggregate rating under the same lock.
type ReviewRepository struct {
	s *Store
}

// NewReviewRepository creates a review repository backed by the store.
func NewReviewRepository(s *Store) *ReviewRepository {
	return &ReviewRepository{s: s}
}

// ListAll returns every review, newest first.
func (r *ReviewRepository) ListAll(ctx context.Context) ([]domain.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.sortedLocked(false), nil
}

// ListApproved returns approved reviews, newest first.
func (r *ReviewRepository) ListApproved(ctx context.Context) ([]domain.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.sortedLocked(true), nil
}

// GetByID retrieves a review by identifier.
func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rev, ok := r.s.reviews[id]
	if !ok {
		return nil, apperrors.NotFound("review", strconv.FormatInt(id, 10))
	}
	cp := *rev
	return &cp, nil
}

// Create inserts a new review and recomputes the product rating.
func (r *ReviewRepository) Create(ctx context.Context, input repository.CreateReviewInput) (*domain.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rev := &domain.Review{
		ID:        r.s.nextReviewID(),
		Name:      input.Name,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Approved:  input.Approved,
		CreatedAt: now(),
	}
	r.s.reviews[rev.ID] = rev
	r.recomputeRatingLocked()

	cp := *rev
	return &cp, nil
}

// SetApproval toggles the approval flag and recomputes the product rating.
func (r *ReviewRepository) SetApproval(ctx context.Context, id int64, approved bool) (*domain.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rev, ok := r.s.reviews[id]
	if !ok {
		return nil, apperrors.NotFound("review", strconv.FormatInt(id, 10))
	}
	rev.Approved = approved
	r.recomputeRatingLocked()

	cp := *rev
	return &cp, nil
}

// Delete removes a review. The rating is recomputed only when a review was
// actually removed.
func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.reviews[id]; !ok {
		return apperrors.NotFound("review", strconv.FormatInt(id, 10))
	}
	delete(r.s.reviews, id)
	r.recomputeRatingLocked()
	return nil
}

// sortedLocked returns reviews newest first, falling back to descending ID
// for identical timestamps. Callers must hold at least the read lock.
func (r *ReviewRepository) sortedLocked(approvedOnly bool) []domain.Review {
	reviews := make([]domain.Review, 0, len(r.s.reviews))
	for _, rev := range r.s.reviews {
		if approvedOnly && !rev.Approved {
			continue
		}
		reviews = append(reviews, *rev)
	}
	sort.Slice(reviews, func(i, j int) bool {
		if !reviews[i].CreatedAt.Equal(reviews[j].CreatedAt) {
			return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
		}
		return reviews[i].ID > reviews[j].ID
	})
	return reviews
}

// recomputeRatingLocked recalculates the aggregate rating of the first
// product in insertion order from all approved reviews. When no approved
// reviews exist the product keeps its current rating and count. Callers
// must hold the write lock.
//
// The storefront carries a single rateable product, so reviews hold no
// product reference; a multi-product catalog would need one.
func (r *ReviewRepository) recomputeRatingLocked() {
	ids := sortedIDs(r.s.products)
	if len(ids) == 0 {
		return
	}
	p := r.s.products[ids[0]]

	var sum int64
	var count int64
	for _, rev := range r.s.reviews {
		if rev.Approved {
			sum += int64(rev.Rating)
			count++
		}
	}
	if count == 0 {
		return
	}

	mean := decimal.NewFromInt(sum).Div(decimal.NewFromInt(count)).Round(1)
	p.Rating = mean.StringFixed(1)
	p.ReviewCount = int(count)
	p.UpdatedAt = now()
}
