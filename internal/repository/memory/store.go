// Package memory provides the in-memory implementation of the repository
// interfaces. All collections live in one Store guarded by a single RWMutex,
// so a review mutation and the product rating write-back it triggers are
// atomic with respect to concurrent requests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/oakline/storefront/internal/domain"
)

// Store holds every in-memory collection along with its monotonic
// identifier counter. Identifiers are never reused, even after deletion.
type Store struct {
	mu sync.RWMutex

	products  map[int64]*domain.Product
	users     map[int64]*domain.User
	reviews   map[int64]*domain.Review
	cartItems map[int64]*domain.CartItem

	productSeq int64
	userSeq    int64
	reviewSeq  int64
	cartSeq    int64
}

// NewStore creates an empty store. Callers that want the default catalog and
// admin account should follow up with Seed.
func NewStore() *Store {
	return &Store{
		products:  make(map[int64]*domain.Product),
		users:     make(map[int64]*domain.User),
		reviews:   make(map[int64]*domain.Review),
		cartItems: make(map[int64]*domain.CartItem),
	}
}

// Ping reports whether the store is usable. It exists so the store can be
// registered as a health checker like any external dependency.
func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ctx.Err()
}

// nextProductID and friends must be called with the write lock held.
func (s *Store) nextProductID() int64 {
	s.productSeq++
	return s.productSeq
}

func (s *Store) nextUserID() int64 {
	s.userSeq++
	return s.userSeq
}

func (s *Store) nextReviewID() int64 {
	s.reviewSeq++
	return s.reviewSeq
}

func (s *Store) nextCartID() int64 {
	s.cartSeq++
	return s.cartSeq
}

// sortedIDs returns the keys of a collection in ascending order. Products
// are never deleted and identifiers are monotonic, so ascending ID equals
// insertion order.
func sortedIDs[T any](m map[int64]*T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func now() time.Time {
	return time.Now().UTC()
}
