package api

import (
	"time"

	"nailstudio/internal/db"
)

type ServiceResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Duration    int       `json:"duration"`
	ImageURL    string    `json:"image_url,omitempty"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type GalleryItemResponse struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category,omitempty"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReviewResponse struct {
	ID         int       `json:"id"`
	ClientName string    `json:"client_name"`
	ReviewText string    `json:"review_text"`
	Rating     int       `json:"rating"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}

type MasterInfoResponse struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Bio            string    `json:"bio,omitempty"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	Experience     string    `json:"experience,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type SiteSettingResponse struct {
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toServiceResponse(s db.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description.String,
		Price:       s.Price,
		Duration:    s.Duration,
		ImageURL:    s.ImageURL.String,
		Category:    s.Category.String,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toServiceResponses(services []db.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, toServiceResponse(s))
	}
	return out
}

func toGalleryItemResponse(g db.GalleryItem) GalleryItemResponse {
	return GalleryItemResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description.String,
		ImageURL:    g.ImageURL,
		Category:    g.Category.String,
		IsPublished: g.IsPublished,
		CreatedAt:   g.CreatedAt,
	}
}

func toGalleryItemResponses(items []db.GalleryItem) []GalleryItemResponse {
	out := make([]GalleryItemResponse, 0, len(items))
	for _, g := range items {
		out = append(out, toGalleryItemResponse(g))
	}
	return out
}

func toReviewResponse(r db.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		ClientName: r.ClientName,
		ReviewText: r.ReviewText,
		Rating:     r.Rating,
		AvatarURL:  r.AvatarURL.String,
		IsApproved: r.IsApproved,
		CreatedAt:  r.CreatedAt,
	}
}

func toReviewResponses(reviews []db.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewResponse(r))
	}
	return out
}

func toMasterInfoResponse(m db.MasterInfo) MasterInfoResponse {
	return MasterInfoResponse{
		ID:             m.ID,
		Name:           m.Name,
		Bio:            m.Bio.String,
		AvatarURL:      m.AvatarURL.String,
		Experience:     m.Experience.String,
		Specialization: m.Specialization.String,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toSiteSettingResponses(settings []db.SiteSetting) []SiteSettingResponse {
	out := make([]SiteSettingResponse, 0, len(settings))
	for _, s := range settings {
		out = append(out, SiteSettingResponse{Name: s.Name, Value: s.Value, UpdatedAt: s.UpdatedAt})
	}
	return out
}
