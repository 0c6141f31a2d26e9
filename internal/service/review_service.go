package service

import (
	"database/sql"
	"fmt"

	"nailstudio/internal/db"
	"nailstudio/internal/repository"
)

type ReviewService struct {
	Repo *repository.ReviewRepository
}

func NewReviewService(repo *repository.ReviewRepository) *ReviewService {
	return &ReviewService{Repo: repo}
}

func (s *ReviewService) ListReviews(approvedOnly bool) ([]db.Review, error) {
	return s.Repo.ListReviews(approvedOnly)
}

func (s *ReviewService) GetReviewByID(id int) (*db.Review, error) {
	return s.Repo.GetReviewByID(id)
}

// SubmitReview stores a client review. Reviews start unapproved and only show
// up publicly once an admin approves them.
func (s *ReviewService) SubmitReview(clientName, reviewText, avatarURL string, rating int) (*db.Review, error) {
	if clientName == "" || reviewText == "" {
		return nil, fmt.Errorf("%w: client_name and review_text are required", ErrInvalidRequest)
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidRequest)
	}

	review := &db.Review{
		ClientName: clientName,
		ReviewText: reviewText,
		Rating:     rating,
		AvatarURL:  sql.NullString{String: avatarURL, Valid: avatarURL != ""},
		IsApproved: false,
	}
	if err := s.Repo.CreateReview(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) UpdateReview(id int, clientName, reviewText, avatarURL *string, rating *int, isApproved *bool) error {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidRequest)
	}
	return s.Repo.UpdateReview(id, clientName, reviewText, avatarURL, rating, isApproved)
}

func (s *ReviewService) DeleteReview(id int) error {
	return s.Repo.DeleteReview(id)
}
