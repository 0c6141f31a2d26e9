package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"nailstudio/internal/entities"
	"nailstudio/internal/service"
)

// AvailabilityChecker is what this handler needs from the availability
// engine.
type AvailabilityChecker interface {
	CheckAvailability(date string, serviceID int) (*entities.AvailabilityResponse, error)
}

type AvailabilityHandler struct {
	Service AvailabilityChecker
}

func NewAvailabilityHandler(svc AvailabilityChecker) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetAvailableSlots handles GET /api/available-slots?date=YYYY-MM-DD&service_id=N.
// The date is required; the service id is optional and an unknown one is
// treated as if no service was selected.
func (h *AvailabilityHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		http.Error(w, "Missing required parameter: date", http.StatusBadRequest)
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	serviceID := 0
	if raw := r.URL.Query().Get("service_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid service_id", http.StatusBadRequest)
			return
		}
		serviceID = id
	}

	availability, err := h.Service.CheckAvailability(date, serviceID)
	if err != nil {
		if errors.Is(err, service.ErrDataUnavailable) {
			http.Error(w, "Error checking availability", http.StatusInternalServerError)
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, availability)
}
