package handler

import (
	"net/http"
	"strconv"

	"github.com/evolverse/api/internal/repository"
)

// MythologyHandler handles the deity and codex layer endpoints.
type MythologyHandler struct {
	deityRepo *repository.MythologyDeityRepository
	codexRepo *repository.CodexLayerRepository
}

// NewMythologyHandler creates a new mythology handler.
func NewMythologyHandler(deityRepo *repository.MythologyDeityRepository, codexRepo *repository.CodexLayerRepository) *MythologyHandler {
	return &MythologyHandler{
		deityRepo: deityRepo,
		codexRepo: codexRepo,
	}
}

// ListDeities handles GET /api/mythology-deities.
func (h *MythologyHandler) ListDeities(w http.ResponseWriter, r *http.Request) {
	deities, err := h.deityRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch mythology deities")
		return
	}
	WriteJSON(w, http.StatusOK, deities)
}

// GetDeity handles GET /api/mythology-deities/{id}.
func (h *MythologyHandler) GetDeity(w http.ResponseWriter, r *http.Request) {
	deity, err := h.deityRepo.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch deity")
		return
	}
	if deity == nil {
		WriteError(w, http.StatusNotFound, "Deity not found")
		return
	}
	WriteJSON(w, http.StatusOK, deity)
}

// GetDeityByName handles GET /api/mythology-deities/name/{name}.
func (h *MythologyHandler) GetDeityByName(w http.ResponseWriter, r *http.Request) {
	deity, err := h.deityRepo.GetByName(r.Context(), r.PathValue("name"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch deity by name")
		return
	}
	if deity == nil {
		WriteError(w, http.StatusNotFound, "Deity not found")
		return
	}
	WriteJSON(w, http.StatusOK, deity)
}

// ListCodexLayers handles GET /api/codex-layers, ordered by layer number.
func (h *MythologyHandler) ListCodexLayers(w http.ResponseWriter, r *http.Request) {
	layers, err := h.codexRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch codex layers")
		return
	}
	WriteJSON(w, http.StatusOK, layers)
}

// GetCodexLayer handles GET /api/codex-layers/{id}.
func (h *MythologyHandler) GetCodexLayer(w http.ResponseWriter, r *http.Request) {
	layer, err := h.codexRepo.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch codex layer")
		return
	}
	if layer == nil {
		WriteError(w, http.StatusNotFound, "Codex layer not found")
		return
	}
	WriteJSON(w, http.StatusOK, layer)
}

// GetCodexLayerByNumber handles GET /api/codex-layers/number/{layerNumber}.
// A non-integer layer number is rejected rather than treated as absent.
func (h *MythologyHandler) GetCodexLayerByNumber(w http.ResponseWriter, r *http.Request) {
	layerNumber, err := strconv.Atoi(r.PathValue("layerNumber"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid layer number")
		return
	}

	layer, err := h.codexRepo.GetByNumber(r.Context(), layerNumber)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch codex layer by number")
		return
	}
	if layer == nil {
		WriteError(w, http.StatusNotFound, "Codex layer not found")
		return
	}
	WriteJSON(w, http.StatusOK, layer)
}
