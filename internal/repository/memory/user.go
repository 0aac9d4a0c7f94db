package memory

import (
	"context"
	"strconv"

	apperrors "github.com/oakline/storefront/pkg/errors"

	"github.com/oakline/storefront/internal/domain"
	"github.com/oakline/storefront/internal/repository"
)

// UserRepository is the in-memory implementation of repository.UserRepository.
type UserRepository struct {
	s *Store
}

// NewUserRepository creates a user repository backed by the store.
func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{s: s}
}

// GetByID retrieves a user by identifier.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, apperrors.NotFound("user", strconv.FormatInt(id, 10))
	}
	cp := *u
	return &cp, nil
}

// GetByUsername returns the first user with the given username, scanning in
// insertion order. Usernames are unique by invariant, not enforced here.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, id := range sortedIDs(r.s.users) {
		if u := r.s.users[id]; u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.NotFound("user", username)
}

// Create inserts a new user. The admin flag is always false here; admin
// accounts come only from seeding.
func (r *UserRepository) Create(ctx context.Context, input repository.CreateUserInput) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u := &domain.User{
		ID:        r.s.nextUserID(),
		Username:  input.Username,
		Password:  input.Password,
		IsAdmin:   false,
		CreatedAt: now(),
	}
	r.s.users[u.ID] = u

	cp := *u
	return &cp, nil
}

// VerifyAdmin reports whether the credentials belong to an admin account.
// The comparison is an exact plaintext match, preserved from the legacy
// system; see the user model for the caveat.
func (r *UserRepository) VerifyAdmin(ctx context.Context, username, password string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, id := range sortedIDs(r.s.users) {
		if u := r.s.users[id]; u.Username == username {
			return u.Password == password && u.IsAdmin, nil
		}
	}
	return false, nil
}
