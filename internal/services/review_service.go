package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/franciscosanchezn/linkup-api/internal/models"
)

type ReviewService interface {
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)
	// ListReviews returns all reviews, or those of one event when eventID is non-nil
	ListReviews(ctx context.Context, eventID *uint) ([]models.Review, error)
}

type reviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) ReviewService {
	return &reviewService{db: db}
}

func (s *reviewService) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	review.ID = 0
	if err := s.db.WithContext(ctx).Create(&review).Error; err != nil {
		return models.Review{}, err
	}
	return review, nil
}

func (s *reviewService) ListReviews(ctx context.Context, eventID *uint) ([]models.Review, error) {
	query := s.db.WithContext(ctx).Order("id")
	if eventID != nil {
		query = query.Where("event_id = ?", *eventID)
	}
	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
