package handler

import (
	"net/http"

	"github.com/evolverse/api/internal/repository"
)

// StudioHandler handles the production slate endpoints.
type StudioHandler struct {
	studioRepo *repository.StudioProjectRepository
}

// NewStudioHandler creates a new studio handler.
func NewStudioHandler(studioRepo *repository.StudioProjectRepository) *StudioHandler {
	return &StudioHandler{studioRepo: studioRepo}
}

// List handles GET /api/studio-projects.
func (h *StudioHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.studioRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch studio projects")
		return
	}
	WriteJSON(w, http.StatusOK, projects)
}

// Get handles GET /api/studio-projects/{id}.
func (h *StudioHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.studioRepo.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch studio project")
		return
	}
	if project == nil {
		WriteError(w, http.StatusNotFound, "Studio project not found")
		return
	}
	WriteJSON(w, http.StatusOK, project)
}

// GetByType handles GET /api/studio-projects/type/{projectType}.
func (h *StudioHandler) GetByType(w http.ResponseWriter, r *http.Request) {
	projects, err := h.studioRepo.GetByType(r.Context(), r.PathValue("projectType"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch studio projects by type")
		return
	}
	WriteJSON(w, http.StatusOK, projects)
}

// GetByStatus handles GET /api/studio-projects/status/{status}.
func (h *StudioHandler) GetByStatus(w http.ResponseWriter, r *http.Request) {
	projects, err := h.studioRepo.GetByStatus(r.Context(), r.PathValue("status"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch studio projects by status")
		return
	}
	WriteJSON(w, http.StatusOK, projects)
}
