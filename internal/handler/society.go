package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/evolverse/api/internal/model"
	"github.com/evolverse/api/internal/repository"
	"github.com/evolverse/api/internal/service"
)

// seedResponse is the envelope returned by the bulk-load endpoints.
type seedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
	Skipped int    `json:"skipped"`
}

func seedMessage(count int, noun string) string {
	return fmt.Sprintf("Seeded %d %s", count, noun)
}

// SocietyHandler handles the hidden society registry endpoints.
type SocietyHandler struct {
	societyRepo *repository.HiddenSocietyRepository
	seedService *service.SeedService
}

// NewSocietyHandler creates a new society handler.
func NewSocietyHandler(societyRepo *repository.HiddenSocietyRepository, seedService *service.SeedService) *SocietyHandler {
	return &SocietyHandler{
		societyRepo: societyRepo,
		seedService: seedService,
	}
}

// List handles GET /api/hidden-societies.
func (h *SocietyHandler) List(w http.ResponseWriter, r *http.Request) {
	societies, err := h.societyRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch hidden societies")
		return
	}
	WriteJSON(w, http.StatusOK, societies)
}

// Get handles GET /api/hidden-societies/{id}.
func (h *SocietyHandler) Get(w http.ResponseWriter, r *http.Request) {
	society, err := h.societyRepo.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch society")
		return
	}
	if society == nil {
		WriteError(w, http.StatusNotFound, "Society not found")
		return
	}
	WriteJSON(w, http.StatusOK, society)
}

// Create handles POST /api/hidden-societies.
func (h *SocietyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.HiddenSociety
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		WriteError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if req.Status != "" && !model.IsValidSocietyStatus(req.Status) {
		WriteError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	req.ID = ""
	if err := h.societyRepo.Create(r.Context(), &req); err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to create society")
		return
	}
	WriteJSON(w, http.StatusCreated, &req)
}

// UpdateStatus handles PATCH /api/hidden-societies/{id}/status.
func (h *SocietyHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateStatusRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Status == "" {
		WriteError(w, http.StatusBadRequest, "Status is required")
		return
	}
	if !model.IsValidSocietyStatus(req.Status) {
		WriteError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	society, err := h.societyRepo.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to update society status")
		return
	}
	if society == nil {
		WriteError(w, http.StatusNotFound, "Society not found")
		return
	}
	WriteJSON(w, http.StatusOK, society)
}

// Seed handles POST /api/hidden-societies/seed. Parsed rows persist
// through the repository, so subsequent listings include them.
func (h *SocietyHandler) Seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.seedService.SeedHiddenSocieties(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to seed hidden societies")
		return
	}
	WriteJSON(w, http.StatusOK, seedResponse{
		Message: seedMessage(result.Created, "hidden societies"),
		Count:   result.Created,
		Skipped: result.Skipped,
	})
}
