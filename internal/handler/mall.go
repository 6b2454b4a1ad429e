package handler

import (
	"net/http"

	"github.com/evolverse/api/internal/model"
	"github.com/evolverse/api/internal/repository"
)

// MallHandler handles the treasury mall node endpoints.
type MallHandler struct {
	mallRepo *repository.MallNodeRepository
}

// NewMallHandler creates a new mall handler.
func NewMallHandler(mallRepo *repository.MallNodeRepository) *MallHandler {
	return &MallHandler{mallRepo: mallRepo}
}

// List handles GET /api/mall-nodes.
func (h *MallHandler) List(w http.ResponseWriter, r *http.Request) {
	malls, err := h.mallRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch mall nodes")
		return
	}
	WriteJSON(w, http.StatusOK, malls)
}

// Get handles GET /api/mall-nodes/{id}.
func (h *MallHandler) Get(w http.ResponseWriter, r *http.Request) {
	mall, err := h.mallRepo.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch mall node")
		return
	}
	if mall == nil {
		WriteError(w, http.StatusNotFound, "Mall node not found")
		return
	}
	WriteJSON(w, http.StatusOK, mall)
}

// Create handles POST /api/mall-nodes. Optional fields stay nil and
// serialize as explicit nulls.
func (h *MallHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateMallNodeRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if field := req.Validate(); field != "" {
		WriteError(w, http.StatusBadRequest, field+" is required")
		return
	}

	mall := req.MallNode()
	if err := h.mallRepo.Create(r.Context(), mall); err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to create mall node")
		return
	}
	WriteJSON(w, http.StatusCreated, mall)
}
