package service

import (
	"database/sql"
	"fmt"

	"nailstudio/internal/db"
	"nailstudio/internal/repository"
)

type GalleryService struct {
	Repo *repository.GalleryRepository
}

func NewGalleryService(repo *repository.GalleryRepository) *GalleryService {
	return &GalleryService{Repo: repo}
}

func (s *GalleryService) ListGalleryItems(category string, publishedOnly bool, limit int) ([]db.GalleryItem, error) {
	return s.Repo.ListGalleryItems(category, publishedOnly, limit)
}

func (s *GalleryService) GetGalleryItemByID(id int) (*db.GalleryItem, error) {
	return s.Repo.GetGalleryItemByID(id)
}

func (s *GalleryService) CreateGalleryItem(title, description, imageURL, category string, isPublished bool) (*db.GalleryItem, error) {
	if title == "" || imageURL == "" {
		return nil, fmt.Errorf("%w: title and image_url are required", ErrInvalidRequest)
	}
	item := &db.GalleryItem{
		Title:       title,
		Description: sql.NullString{String: description, Valid: description != ""},
		ImageURL:    imageURL,
		Category:    sql.NullString{String: category, Valid: category != ""},
		IsPublished: isPublished,
	}
	if err := s.Repo.CreateGalleryItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *GalleryService) UpdateGalleryItem(id int, title, description, imageURL, category *string, isPublished *bool) error {
	return s.Repo.UpdateGalleryItem(id, title, description, imageURL, category, isPublished)
}

func (s *GalleryService) DeleteGalleryItems(ids []int) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: no gallery ids given", ErrInvalidRequest)
	}
	return s.Repo.DeleteGalleryItems(ids)
}
