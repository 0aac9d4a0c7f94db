package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	apperrors "github.com/oakline/storefront/pkg/errors"

	"github.com/oakline/storefront/internal/domain"
	"github.com/oakline/storefront/internal/repository"
)

// UpdateProductInput holds the admin-settable product fields for a partial
// update. Nil means "not provided"; Badge distinguishes null from absent.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *string
	Image       *string
	Rating      *string
	ReviewCount *int
	Sizes       []string
	Badge       domain.Nullable[string]
	Featured    *bool
}

// CatalogService implements the business logic for product operations.
type CatalogService struct {
	repo   repository.ProductRepository
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.ProductRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// ListProducts returns all products in insertion order.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// ListFeaturedProducts returns only products flagged as featured.
func (s *CatalogService) ListFeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.ListFeatured(ctx)
	if err != nil {
		return nil, fmt.Errorf("list featured products: %w", err)
	}
	return products, nil
}

// GetProduct retrieves a product by identifier.
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

// UpdateProduct applies a partial update to a product. Provided price and
// rating strings are validated and normalized to two and one fraction
// digits respectively.
func (s *CatalogService) UpdateProduct(ctx context.Context, id int64, input UpdateProductInput) (*domain.Product, error) {
	if input.Name != nil && *input.Name == "" {
		return nil, apperrors.InvalidInput("name must not be empty")
	}
	if input.Price != nil {
		normalized, err := normalizeDecimal(*input.Price, 2)
		if err != nil {
			return nil, apperrors.InvalidInput("price must be a decimal number")
		}
		input.Price = &normalized
	}
	if input.Rating != nil {
		normalized, err := normalizeDecimal(*input.Rating, 1)
		if err != nil {
			return nil, apperrors.InvalidInput("rating must be a decimal number")
		}
		input.Rating = &normalized
	}
	if input.ReviewCount != nil && *input.ReviewCount < 0 {
		return nil, apperrors.InvalidInput("review count must not be negative")
	}

	product, err := s.repo.Update(ctx, id, repository.UpdateProductInput{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Rating:      input.Rating,
		ReviewCount: input.ReviewCount,
		Sizes:       input.Sizes,
		Badge:       input.Badge,
		Featured:    input.Featured,
	})
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.logger.InfoContext(ctx, "product updated",
		slog.Int64("product_id", product.ID),
	)

	return product, nil
}

// normalizeDecimal parses a decimal string and reformats it with a fixed
// number of fraction digits, rounding when needed.
func normalizeDecimal(value string, places int32) (string, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return "", err
	}
	if d.IsNegative() {
		return "", fmt.Errorf("negative value")
	}
	return d.Round(places).StringFixed(places), nil
}
