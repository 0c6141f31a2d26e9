package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"nailstudio/internal/service"

	"github.com/gorilla/mux"
)

type GalleryHandler struct {
	Service *service.GalleryService
}

func NewGalleryHandler(svc *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{Service: svc}
}

// ListGalleryItems serves both the public gallery (?public=true hides
// unpublished work) and the admin listing.
func (h *GalleryHandler) ListGalleryItems(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	publishedOnly := r.URL.Query().Get("public") == "true"

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	items, err := h.Service.ListGalleryItems(category, publishedOnly, limit)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"gallery": toGalleryItemResponses(items)})
}

func (h *GalleryHandler) CreateGalleryItem(w http.ResponseWriter, r *http.Request) {
	var req CreateGalleryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	item, err := h.Service.CreateGalleryItem(req.Title, req.Description, req.ImageURL, req.Category, isPublished)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"gallery_item": toGalleryItemResponse(*item),
		"message":      "Gallery item created",
	})
}

func (h *GalleryHandler) UpdateGalleryItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	var req UpdateGalleryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := h.Service.UpdateGalleryItem(id, req.Title, req.Description, req.ImageURL, req.Category, req.IsPublished); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Gallery item updated"})
}

func (h *GalleryHandler) DeleteGalleryItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteGalleryItems([]int{id}); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Gallery item deleted"})
}

func (h *GalleryHandler) BulkDeleteGalleryItems(w http.ResponseWriter, r *http.Request) {
	var req BulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteGalleryItems(req.IDs); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Gallery items deleted"})
}
