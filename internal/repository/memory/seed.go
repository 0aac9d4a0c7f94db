package memory

import (
	"context"
	"fmt"

	"github.com/oakline/storefront/internal/repository"
)

// SeedConfig holds the credentials for the seeded admin account.
type SeedConfig struct {
	AdminUsername string
	AdminPassword string
}

// Seed populates a fresh store with the launch catalog and the admin
// account. Seeding is the only path that sets the admin flag.
func (s *Store) Seed(ctx context.Context, cfg SeedConfig) error {
	products := NewProductRepository(s)

	badge := "Limited Edition"
	featured := true
	if _, err := products.Create(ctx, repository.CreateProductInput{
		Name:        "Oakline Heavyweight Tee",
		Description: "Garment-dyed heavyweight cotton tee with a relaxed fit.",
		Price:       "34.00",
		Image:       "/images/heavyweight-tee.jpg",
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Badge:       &badge,
		Featured:    &featured,
	}); err != nil {
		return fmt.Errorf("seed product: %w", err)
	}

	users := NewUserRepository(s)
	admin, err := users.Create(ctx, repository.CreateUserInput{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
	})
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	s.mu.Lock()
	s.users[admin.ID].IsAdmin = true
	s.mu.Unlock()

	return nil
}
