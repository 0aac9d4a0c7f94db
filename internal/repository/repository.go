package repository

import (
	"context"

	"github.com/oakline/storefront/internal/domain"
)

// CreateProductInput holds the client-settable product fields. ReviewCount
// starts at 0, Badge starts absent, and Featured defaults to true when nil.
type CreateProductInput struct {
	Name        string
	Description string
	Price       string
	Image       string
	Rating      string
	Sizes       []string
	Badge       *string
	Featured    *bool
}

// UpdateProductInput describes a partial product update. Nil pointers mean
// "not provided, keep the current value". Badge is tri-state: an explicit
// null clears it, which a plain pointer could not express.
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

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	// List returns all products in insertion order.
	List(ctx context.Context) ([]domain.Product, error)

	// ListFeatured returns products with the featured flag set, in insertion order.
	ListFeatured(ctx context.Context) ([]domain.Product, error)

	// GetByID retrieves a product by its identifier.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// Create inserts a new product, assigning the next identifier.
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)

	// Update merges the provided fields over the existing record.
	Update(ctx context.Context, id int64, input UpdateProductInput) (*domain.Product, error)
}

// CreateUserInput holds the client-settable user fields. The admin flag is
// never accepted from input; elevation happens only through seeding.
type CreateUserInput struct {
	Username string
	Password string
}

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// GetByID retrieves a user by identifier.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByUsername retrieves the first user with the given username.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// Create inserts a new non-admin user.
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)

	// VerifyAdmin reports whether the credentials belong to an admin account.
	VerifyAdmin(ctx context.Context, username, password string) (bool, error)
}

// CreateReviewInput holds the client-settable review fields.
type CreateReviewInput struct {
	Name     string
	Rating   int
	Comment  string
	Approved bool
}

// ReviewRepository defines the interface for review persistence operations.
// Every mutation recomputes the rateable product's aggregate rating.
type ReviewRepository interface {
	// ListAll returns every review, newest first.
	ListAll(ctx context.Context) ([]domain.Review, error)

	// ListApproved returns approved reviews, newest first.
	ListApproved(ctx context.Context) ([]domain.Review, error)

	// GetByID retrieves a review by identifier.
	GetByID(ctx context.Context, id int64) (*domain.Review, error)

	// Create inserts a new review and recomputes the product rating.
	Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error)

	// SetApproval toggles the approval flag and recomputes the product rating.
	SetApproval(ctx context.Context, id int64, approved bool) (*domain.Review, error)

	// Delete removes a review; the rating is recomputed only when a review
	// was actually removed.
	Delete(ctx context.Context, id int64) error
}

// AddCartItemInput holds the fields for adding an item to a cart. A nil
// UserID scopes the item to the guest cart.
type AddCartItemInput struct {
	UserID    *int64
	ProductID int64
	Size      string
	Quantity  int
}

// CartRepository defines the interface for cart persistence operations.
// Ownership scoping is strict: a nil userID addresses only ownerless items,
// never all items.
type CartRepository interface {
	// List returns cart items in the given ownership scope.
	List(ctx context.Context, userID *int64) ([]domain.CartItem, error)

	// Add merges the quantity into an existing item with the same owner,
	// product, and size, or creates a fresh item.
	Add(ctx context.Context, input AddCartItemInput) (*domain.CartItem, error)

	// UpdateQuantity sets the quantity of an item.
	UpdateQuantity(ctx context.Context, id int64, quantity int) (*domain.CartItem, error)

	// Remove deletes a single item.
	Remove(ctx context.Context, id int64) error

	// Clear bulk-deletes items in the given ownership scope. Clearing an
	// already-empty scope is not an error.
	Clear(ctx context.Context, userID *int64) error
}
