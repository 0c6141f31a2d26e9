package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"nailstudio/internal/db"
)

type ReviewRepository struct {
	DB *sql.DB
}

func NewReviewRepository(database *sql.DB) *ReviewRepository {
	return &ReviewRepository{DB: database}
}

func (r *ReviewRepository) ListReviews(approvedOnly bool) ([]db.Review, error) {
	query := `SELECT id, client_name, review_text, rating, avatar_url, is_approved, created_at FROM reviews`
	if approvedOnly {
		query += ` WHERE is_approved = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying reviews: %w", err)
	}
	defer rows.Close()

	var reviews []db.Review
	for rows.Next() {
		var rev db.Review
		if err := rows.Scan(&rev.ID, &rev.ClientName, &rev.ReviewText, &rev.Rating, &rev.AvatarURL, &rev.IsApproved, &rev.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) GetReviewByID(id int) (*db.Review, error) {
	var rev db.Review
	err := r.DB.QueryRow(
		`SELECT id, client_name, review_text, rating, avatar_url, is_approved, created_at FROM reviews WHERE id = $1`,
		id,
	).Scan(&rev.ID, &rev.ClientName, &rev.ReviewText, &rev.Rating, &rev.AvatarURL, &rev.IsApproved, &rev.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("review %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error querying review: %w", err)
	}
	return &rev, nil
}

func (r *ReviewRepository) CreateReview(rev *db.Review) error {
	query := `
		INSERT INTO reviews (client_name, review_text, rating, avatar_url, is_approved)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	return r.DB.QueryRow(query, rev.ClientName, rev.ReviewText, rev.Rating, rev.AvatarURL, rev.IsApproved).
		Scan(&rev.ID, &rev.CreatedAt)
}

func (r *ReviewRepository) UpdateReview(id int, clientName, reviewText, avatarURL *string, rating *int, isApproved *bool) error {
	setClauses := []string{}
	args := []interface{}{}
	idx := 1

	add := func(column string, value interface{}) {
		setClauses = append(setClauses, column+" = $"+strconv.Itoa(idx))
		args = append(args, value)
		idx++
	}

	if clientName != nil {
		add("client_name", *clientName)
	}
	if reviewText != nil {
		add("review_text", *reviewText)
	}
	if rating != nil {
		add("rating", *rating)
	}
	if avatarURL != nil {
		add("avatar_url", sql.NullString{String: *avatarURL, Valid: *avatarURL != ""})
	}
	if isApproved != nil {
		add("is_approved", *isApproved)
	}

	if len(setClauses) == 0 {
		return fmt.Errorf("no fields to update")
	}

	query := "UPDATE reviews SET "
	for i, clause := range setClauses {
		if i > 0 {
			query += ", "
		}
		query += clause
	}
	query += " WHERE id = $" + strconv.Itoa(idx)
	args = append(args, id)

	result, err := r.DB.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("error updating review: %w", err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("review %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *ReviewRepository) DeleteReview(id int) error {
	result, err := r.DB.Exec(`DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting review: %w", err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("review %d: %w", id, ErrNotFound)
	}
	return nil
}
