package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	apperrors "github.com/oakline/storefront/pkg/errors"

	"github.com/oakline/storefront/internal/domain"
	"github.com/oakline/storefront/internal/repository"
)

// CreateUserInput holds the parameters for creating a user account.
type CreateUserInput struct {
	Username string
	Password string
}

// UserService implements the business logic for user and admin-auth
// operations.
type UserService struct {
	repo   repository.UserRepository
	logger *slog.Logger
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository, logger *slog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// CreateUser creates a new non-admin account. The admin flag cannot be set
// through this path.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if strings.TrimSpace(input.Username) == "" {
		return nil, apperrors.InvalidInput("username is required")
	}
	if input.Password == "" {
		return nil, apperrors.InvalidInput("password is required")
	}

	user, err := s.repo.Create(ctx, repository.CreateUserInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user created",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// GetUser retrieves a user by identifier.
func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// VerifyAdmin reports whether the credentials belong to an admin account.
// It backs the Basic-Auth middleware on the admin routes.
func (s *UserService) VerifyAdmin(ctx context.Context, username, password string) (bool, error) {
	ok, err := s.repo.VerifyAdmin(ctx, username, password)
	if err != nil {
		return false, fmt.Errorf("verify admin: %w", err)
	}
	return ok, nil
}
