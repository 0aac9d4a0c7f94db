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

// CreateReviewInput holds the parameters for submitting a review.
type CreateReviewInput struct {
	Name    string
	Rating  int
	Comment string
}

// ReviewService implements the business logic for review operations.
// autoApprove controls whether submitted reviews go live immediately or
// wait for admin moderation.
type ReviewService struct {
	repo        repository.ReviewRepository
	logger      *slog.Logger
	autoApprove bool
}

// NewReviewService creates a new review service.
func NewReviewService(repo repository.ReviewRepository, logger *slog.Logger, autoApprove bool) *ReviewService {
	return &ReviewService{repo: repo, logger: logger, autoApprove: autoApprove}
}

// ListApprovedReviews returns the publicly visible reviews, newest first.
func (s *ReviewService) ListApprovedReviews(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.repo.ListApproved(ctx)
	if err != nil {
		return nil, fmt.Errorf("list approved reviews: %w", err)
	}
	return reviews, nil
}

// ListAllReviews returns every review for moderation, newest first.
func (s *ReviewService) ListAllReviews(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all reviews: %w", err)
	}
	return reviews, nil
}

// CreateReview submits a new review.
func (s *ReviewService) CreateReview(ctx context.Context, input CreateReviewInput) (*domain.Review, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.InvalidInput("name is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperrors.InvalidInput("rating must be between 1 and 5")
	}

	review, err := s.repo.Create(ctx, repository.CreateReviewInput{
		Name:     input.Name,
		Rating:   input.Rating,
		Comment:  input.Comment,
		Approved: s.autoApprove,
	})
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.logger.InfoContext(ctx, "review created",
		slog.Int64("review_id", review.ID),
		slog.Int("rating", review.Rating),
		slog.Bool("approved", review.Approved),
	)

	return review, nil
}

// SetApproval sets a review's approval flag.
func (s *ReviewService) SetApproval(ctx context.Context, id int64, approved bool) (*domain.Review, error) {
	review, err := s.repo.SetApproval(ctx, id, approved)
	if err != nil {
		return nil, fmt.Errorf("set review approval: %w", err)
	}

	s.logger.InfoContext(ctx, "review approval updated",
		slog.Int64("review_id", id),
		slog.Bool("approved", approved),
	)

	return review, nil
}

// DeleteReview removes a review.
func (s *ReviewService) DeleteReview(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	s.logger.InfoContext(ctx, "review deleted",
		slog.Int64("review_id", id),
	)

	return nil
}
