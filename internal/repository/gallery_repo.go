package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"nailstudio/internal/db"

	"github.com/lib/pq"
)

type GalleryRepository struct {
	DB *sql.DB
}

func NewGalleryRepository(database *sql.DB) *GalleryRepository {
	return &GalleryRepository{DB: database}
}

// ListGalleryItems returns gallery works, newest first. publishedOnly hides
// unpublished works for the public site; limit of 0 means no limit.
func (r *GalleryRepository) ListGalleryItems(category string, publishedOnly bool, limit int) ([]db.GalleryItem, error) {
	query := `SELECT id, title, description, image_url, category, is_published, created_at FROM gallery WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if category != "" {
		query += " AND category = $" + strconv.Itoa(idx)
		args = append(args, category)
		idx++
	}
	if publishedOnly {
		query += " AND is_published = TRUE"
	}
	query += " ORDER BY created_at DESC"
	if limit > 0 {
		query += " LIMIT $" + strconv.Itoa(idx)
		args = append(args, limit)
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying gallery: %w", err)
	}
	defer rows.Close()

	var items []db.GalleryItem
	for rows.Next() {
		var g db.GalleryItem
		if err := rows.Scan(&g.ID, &g.Title, &g.Description, &g.ImageURL, &g.Category, &g.IsPublished, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning gallery item: %w", err)
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

func (r *GalleryRepository) GetGalleryItemByID(id int) (*db.GalleryItem, error) {
	var g db.GalleryItem
	err := r.DB.QueryRow(
		`SELECT id, title, description, image_url, category, is_published, created_at FROM gallery WHERE id = $1`,
		id,
	).Scan(&g.ID, &g.Title, &g.Description, &g.ImageURL, &g.Category, &g.IsPublished, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("gallery item %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error querying gallery item: %w", err)
	}
	return &g, nil
}

func (r *GalleryRepository) CreateGalleryItem(g *db.GalleryItem) error {
	query := `
		INSERT INTO gallery (title, description, image_url, category, is_published)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	return r.DB.QueryRow(query, g.Title, g.Description, g.ImageURL, g.Category, g.IsPublished).
		Scan(&g.ID, &g.CreatedAt)
}

func (r *GalleryRepository) UpdateGalleryItem(id int, title, description, imageURL, category *string, isPublished *bool) error {
	setClauses := []string{}
	args := []interface{}{}
	idx := 1

	add := func(column string, value interface{}) {
		setClauses = append(setClauses, column+" = $"+strconv.Itoa(idx))
		args = append(args, value)
		idx++
	}

	if title != nil {
		add("title", *title)
	}
	if description != nil {
		add("description", sql.NullString{String: *description, Valid: *description != ""})
	}
	if imageURL != nil {
		add("image_url", *imageURL)
	}
	if category != nil {
		add("category", sql.NullString{String: *category, Valid: *category != ""})
	}
	if isPublished != nil {
		add("is_published", *isPublished)
	}

	if len(setClauses) == 0 {
		return fmt.Errorf("no fields to update")
	}

	query := "UPDATE gallery SET "
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
		return fmt.Errorf("error updating gallery item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("gallery item %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *GalleryRepository) DeleteGalleryItems(ids []int) error {
	_, err := r.DB.Exec(`DELETE FROM gallery WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("error deleting gallery items: %w", err)
	}
	return nil
}
