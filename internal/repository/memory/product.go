package memory

import (
	"context"
	"strconv"

	apperrors "github.com/oakline/storefront/pkg/errors"

	"github.com/oakline/storefront/internal/domain"
	"github.com/oakline/storefront/internal/repository"
)

// ProductRepository is the in-memory implementation of
// repository.ProductRepository.
type ProductRepository struct {
	s *Store
}

// NewProductRepository creates a product repository backed by the store.
func NewProductRepository(s *Store) *ProductRepository {
	return &ProductRepository{s: s}
}

// List returns all products in insertion order.
func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	products := make([]domain.Product, 0, len(r.s.products))
	for _, id := range sortedIDs(r.s.products) {
		products = append(products, *r.s.products[id])
	}
	return products, nil
}

// ListFeatured returns featured products in insertion order.
func (r *ProductRepository) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	products := make([]domain.Product, 0)
	for _, id := range sortedIDs(r.s.products) {
		if p := r.s.products[id]; p.Featured {
			products = append(products, *p)
		}
	}
	return products, nil
}

// GetByID retrieves a product by its identifier.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.products[id]
	if !ok {
		return nil, apperrors.NotFound("product", strconv.FormatInt(id, 10))
	}
	cp := *p
	return &cp, nil
}

// Create inserts a new product with the next monotonic identifier.
// ReviewCount starts at 0, Badge starts absent, Featured defaults to true,
// and Rating defaults to "0.0" when unset.
func (r *ProductRepository) Create(ctx context.Context, input repository.CreateProductInput) (*domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ts := now()
	p := &domain.Product{
		ID:          r.s.nextProductID(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Rating:      input.Rating,
		ReviewCount: 0,
		Sizes:       append([]string(nil), input.Sizes...),
		Featured:    true,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	if p.Rating == "" {
		p.Rating = "0.0"
	}
	if input.Badge != nil {
		badge := *input.Badge
		p.Badge = &badge
	}
	if input.Featured != nil {
		p.Featured = *input.Featured
	}

	r.s.products[p.ID] = p
	cp := *p
	return &cp, nil
}

// Update merges the provided fields over the existing record. Nil fields
// keep their prior values. Badge follows tri-state semantics: absent keeps,
// explicit null clears, a value replaces.
func (r *ProductRepository) Update(ctx context.Context, id int64, input repository.UpdateProductInput) (*domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.products[id]
	if !ok {
		return nil, apperrors.NotFound("product", strconv.FormatInt(id, 10))
	}

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.Image != nil {
		p.Image = *input.Image
	}
	if input.Rating != nil {
		p.Rating = *input.Rating
	}
	if input.ReviewCount != nil {
		p.ReviewCount = *input.ReviewCount
	}
	if input.Sizes != nil {
		p.Sizes = append([]string(nil), input.Sizes...)
	}
	if input.Featured != nil {
		p.Featured = *input.Featured
	}
	if input.Badge.Set {
		if input.Badge.Valid {
			badge := input.Badge.Value
			p.Badge = &badge
		} else {
			p.Badge = nil
		}
	}
	p.UpdatedAt = now()

	cp := *p
	return &cp, nil
}
