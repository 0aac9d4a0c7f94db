package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	apperrors "github.com/oakline/storefront/pkg/errors"

	"github.com/oakline/storefront/internal/domain"
	"github.com/oakline/storefront/internal/repository"
)

// AddItemInput holds the parameters for adding an item to a cart. A nil
// UserID targets the guest cart.
type AddItemInput struct {
	UserID    *int64
	ProductID int64
	Size      string
	Quantity  int
}

// CartService implements the business logic for cart operations.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, logger *slog.Logger) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo, logger: logger}
}

// ListCart returns the cart items in the given ownership scope joined with
// their products. Product references are loose, so a line's Product is nil
// when the referenced product no longer resolves.
func (s *CartService) ListCart(ctx context.Context, userID *int64) ([]domain.CartLine, error) {
	items, err := s.cartRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}

	lines := make([]domain.CartLine, 0, len(items))
	for _, item := range items {
		line := domain.CartLine{CartItem: item}
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("join cart product: %w", err)
			}
		} else {
			line.Product = product
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// AddItem adds an item to a cart, merging into an existing line when the
// same owner, product, and size triple is already present. A zero quantity
// defaults to 1.
func (s *CartService) AddItem(ctx context.Context, input AddItemInput) (*domain.CartItem, error) {
	if input.ProductID <= 0 {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if input.Size == "" {
		return nil, apperrors.InvalidInput("size is required")
	}
	if input.Quantity < 0 {
		return nil, apperrors.InvalidInput("quantity must not be negative")
	}

	item, err := s.cartRepo.Add(ctx, repository.AddCartItemInput{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Size:      input.Size,
		Quantity:  input.Quantity,
	})
	if err != nil {
		return nil, fmt.Errorf("add cart item: %w", err)
	}

	s.logger.InfoContext(ctx, "item added to cart",
		slog.Int64("cart_item_id", item.ID),
		slog.Int64("product_id", item.ProductID),
		slog.String("size", item.Size),
		slog.Int("quantity", item.Quantity),
	)

	return item, nil
}

// UpdateQuantity sets the quantity of a cart item.
func (s *CartService) UpdateQuantity(ctx context.Context, id int64, quantity int) (*domain.CartItem, error) {
	if quantity < 1 {
		return nil, apperrors.InvalidInput("quantity must be a positive integer")
	}

	item, err := s.cartRepo.UpdateQuantity(ctx, id, quantity)
	if err != nil {
		return nil, fmt.Errorf("update cart item quantity: %w", err)
	}

	s.logger.InfoContext(ctx, "cart item quantity updated",
		slog.Int64("cart_item_id", id),
		slog.Int("quantity", quantity),
	)

	return item, nil
}

// RemoveItem deletes a single cart item.
func (s *CartService) RemoveItem(ctx context.Context, id int64) error {
	if err := s.cartRepo.Remove(ctx, id); err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}

	s.logger.InfoContext(ctx, "cart item removed",
		slog.Int64("cart_item_id", id),
	)

	return nil
}

// ClearCart removes all items in the given ownership scope. Clearing an
// empty scope succeeds.
func (s *CartService) ClearCart(ctx context.Context, userID *int64) error {
	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	s.logger.InfoContext(ctx, "cart cleared",
		slog.Any("user_id", userID),
	)

	return nil
}
