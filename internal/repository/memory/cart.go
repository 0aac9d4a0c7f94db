package memory

import (
	"context"
	"strconv"

	apperrors "github.com/oakline/storefront/pkg/errors"

	"github.com/oakline/storefront/internal/domain"
	"github.com/oakline/storefront/internal/repository"
)

// CartRepository is the in-memory implementation of repository.CartRepository.
type CartRepository struct {
	s *Store
}

// NewCartRepository creates a cart repository backed by the store.
func NewCartRepository(s *Store) *CartRepository {
	return &CartRepository{s: s}
}

// List returns cart items in the given ownership scope, in insertion order.
// A nil userID matches only ownerless (guest) items.
func (r *CartRepository) List(ctx context.Context, userID *int64) ([]domain.CartItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := make([]domain.CartItem, 0)
	for _, id := range sortedIDs(r.s.cartItems) {
		if item := r.s.cartItems[id]; inScope(item, userID) {
			items = append(items, *item)
		}
	}
	return items, nil
}

// Add merges the requested quantity into an existing item with the same
// owner, product, and size, or creates a fresh item. A non-positive quantity
// defaults to 1.
func (r *CartRepository) Add(ctx context.Context, input repository.AddCartItemInput) (*domain.CartItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	qty := input.Quantity
	if qty < 1 {
		qty = 1
	}

	for _, id := range sortedIDs(r.s.cartItems) {
		if item := r.s.cartItems[id]; item.SameSelection(input.UserID, input.ProductID, input.Size) {
			item.Quantity += qty
			cp := *item
			return &cp, nil
		}
	}

	item := &domain.CartItem{
		ID:        r.s.nextCartID(),
		ProductID: input.ProductID,
		Size:      input.Size,
		Quantity:  qty,
	}
	if input.UserID != nil {
		uid := *input.UserID
		item.UserID = &uid
	}
	r.s.cartItems[item.ID] = item

	cp := *item
	return &cp, nil
}

// UpdateQuantity sets the quantity of an item.
func (r *CartRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) (*domain.CartItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	item, ok := r.s.cartItems[id]
	if !ok {
		return nil, apperrors.NotFound("cart item", strconv.FormatInt(id, 10))
	}
	item.Quantity = quantity

	cp := *item
	return &cp, nil
}

// Remove deletes a single item.
func (r *CartRepository) Remove(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.cartItems[id]; !ok {
		return apperrors.NotFound("cart item", strconv.FormatInt(id, 10))
	}
	delete(r.s.cartItems, id)
	return nil
}

// Clear bulk-deletes items in the given ownership scope. An empty scope is
// not an error.
func (r *CartRepository) Clear(ctx context.Context, userID *int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, item := range r.s.cartItems {
		if inScope(item, userID) {
			delete(r.s.cartItems, id)
		}
	}
	return nil
}

// inScope reports whether an item belongs to the given ownership scope.
func inScope(item *domain.CartItem, userID *int64) bool {
	if userID == nil {
		return item.UserID == nil
	}
	return item.UserID != nil && *item.UserID == *userID
}
