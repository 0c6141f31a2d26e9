package api

import (
	"encoding/json"
	"net/http"

	"nailstudio/internal/service"
)

type SettingsHandler struct {
	Service *service.SettingsService
}

func NewSettingsHandler(svc *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{Service: svc}
}

func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Service.ListSettings()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"settings": toSiteSettingResponses(settings)})
}

func (h *SettingsHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var req SaveSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Service.SaveSettings(req.Settings); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Settings saved"})
}

func (h *SettingsHandler) GetMasterInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.Service.GetMasterInfo()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"master": toMasterInfoResponse(*info)})
}

func (h *SettingsHandler) SaveMasterInfo(w http.ResponseWriter, r *http.Request) {
	var req SaveMasterInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	info, err := h.Service.SaveMasterInfo(req.Name, req.Bio, req.AvatarURL, req.Experience, req.Specialization)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"master":  toMasterInfoResponse(*info),
		"message": "Master info saved",
	})
}
