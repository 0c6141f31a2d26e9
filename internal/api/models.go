package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"nailstudio/internal/repository"
	"nailstudio/internal/service"
)

// Services
type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
	ImageURL    *string  `json:"image_url"`
	Category    *string  `json:"category"`
}

// Gallery
type CreateGalleryItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
	IsPublished *bool  `json:"is_published"`
}

type UpdateGalleryItemRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Category    *string `json:"category"`
	IsPublished *bool   `json:"is_published"`
}

// Reviews
type CreateReviewRequest struct {
	ClientName string `json:"client_name"`
	ReviewText string `json:"review_text"`
	Rating     int    `json:"rating"`
	AvatarURL  string `json:"avatar_url"`
}

type UpdateReviewRequest struct {
	ClientName *string `json:"client_name"`
	ReviewText *string `json:"review_text"`
	Rating     *int    `json:"rating"`
	AvatarURL  *string `json:"avatar_url"`
	IsApproved *bool   `json:"is_approved"`
}

// Settings
type SaveSettingsRequest struct {
	Settings map[string]string `json:"settings"`
}

type SaveMasterInfoRequest struct {
	Name           string `json:"name"`
	Bio            string `json:"bio"`
	AvatarURL      string `json:"avatar_url"`
	Experience     string `json:"experience"`
	Specialization string `json:"specialization"`
}

// Bulk deletes
type BulkDeleteRequest struct {
	IDs []int `json:"ids"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// writeServiceError maps the service-layer error taxonomy onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrServiceInUse):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrSlotTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, repository.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Printf("Internal error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
