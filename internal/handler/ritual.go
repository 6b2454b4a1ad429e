package handler

import (
	"net/http"

	"github.com/evolverse/api/internal/model"
	"github.com/evolverse/api/internal/repository"
)

// RitualHandler handles the ceremonial ritual endpoints.
type RitualHandler struct {
	ritualRepo *repository.CeremonialRitualRepository
}

// NewRitualHandler creates a new ritual handler.
func NewRitualHandler(ritualRepo *repository.CeremonialRitualRepository) *RitualHandler {
	return &RitualHandler{ritualRepo: ritualRepo}
}

// List handles GET /api/ceremonial-rituals.
func (h *RitualHandler) List(w http.ResponseWriter, r *http.Request) {
	rituals, err := h.ritualRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch ceremonial rituals")
		return
	}
	WriteJSON(w, http.StatusOK, rituals)
}

// Get handles GET /api/ceremonial-rituals/{id}.
func (h *RitualHandler) Get(w http.ResponseWriter, r *http.Request) {
	ritual, err := h.ritualRepo.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch ritual")
		return
	}
	if ritual == nil {
		WriteError(w, http.StatusNotFound, "Ritual not found")
		return
	}
	WriteJSON(w, http.StatusOK, ritual)
}

// UpdateStatus handles PATCH /api/ceremonial-rituals/{id}/status. The
// status must be one of the closed activation set.
func (h *RitualHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateStatusRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Status == "" {
		WriteError(w, http.StatusBadRequest, "Status is required")
		return
	}
	if !model.IsValidRitualStatus(req.Status) {
		WriteError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	ritual, err := h.ritualRepo.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to update ritual status")
		return
	}
	if ritual == nil {
		WriteError(w, http.StatusNotFound, "Ritual not found")
		return
	}
	WriteJSON(w, http.StatusOK, ritual)
}
