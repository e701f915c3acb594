package service

import (
	"context"
	"errors"

	"manuparts/internal/domain"
	"manuparts/internal/models"
)

var ErrMissingReviewFields = errors.New("name and rating are required")

type ReviewService struct {
	repo domain.ReviewRepository
}

func NewReviewService(repo domain.ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

func (s *ReviewService) CreateReview(ctx context.Context, review *models.Review) error {
	if review.Name == "" || review.Rating == 0 {
		return ErrMissingReviewFields
	}
	return s.repo.CreateReview(ctx, review)
}

func (s *ReviewService) ListReviews(ctx context.Context) ([]models.Review, error) {
	return s.repo.ListReviews(ctx)
}
