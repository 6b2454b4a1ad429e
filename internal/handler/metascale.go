package handler

import (
	"net/http"

	"github.com/evolverse/api/internal/repository"
)

// MetascaleHandler handles the school, nation, and galaxy tier endpoints.
type MetascaleHandler struct {
	schoolRepo *repository.MetaSchoolRepository
	nationRepo *repository.MetaNationRepository
	galaxyRepo *repository.MetaGalaxyRepository
}

// NewMetascaleHandler creates a new metascale handler.
func NewMetascaleHandler(
	schoolRepo *repository.MetaSchoolRepository,
	nationRepo *repository.MetaNationRepository,
	galaxyRepo *repository.MetaGalaxyRepository,
) *MetascaleHandler {
	return &MetascaleHandler{
		schoolRepo: schoolRepo,
		nationRepo: nationRepo,
		galaxyRepo: galaxyRepo,
	}
}

// ListSchools handles GET /api/meta-schools.
func (h *MetascaleHandler) ListSchools(w http.ResponseWriter, r *http.Request) {
	schools, err := h.schoolRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch meta schools")
		return
	}
	WriteJSON(w, http.StatusOK, schools)
}

// GetSchool handles GET /api/meta-schools/{id}.
func (h *MetascaleHandler) GetSchool(w http.ResponseWriter, r *http.Request) {
	school, err := h.schoolRepo.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch meta school")
		return
	}
	if school == nil {
		WriteError(w, http.StatusNotFound, "Meta school not found")
		return
	}
	WriteJSON(w, http.StatusOK, school)
}

// GetSchoolsByStatus handles GET /api/meta-schools/status/{status}.
func (h *MetascaleHandler) GetSchoolsByStatus(w http.ResponseWriter, r *http.Request) {
	schools, err := h.schoolRepo.GetByStatus(r.Context(), r.PathValue("status"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch meta schools by status")
		return
	}
	WriteJSON(w, http.StatusOK, schools)
}

// ListNations handles GET /api/meta-nations.
func (h *MetascaleHandler) ListNations(w http.ResponseWriter, r *http.Request) {
	nations, err := h.nationRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch meta nations")
		return
	}
	WriteJSON(w, http.StatusOK, nations)
}

// GetNation handles GET /api/meta-nations/{id}.
func (h *MetascaleHandler) GetNation(w http.ResponseWriter, r *http.Request) {
	nation, err := h.nationRepo.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch meta nation")
		return
	}
	if nation == nil {
		WriteError(w, http.StatusNotFound, "Meta nation not found")
		return
	}
	WriteJSON(w, http.StatusOK, nation)
}

// GetNationsByDiplomaticStatus handles GET /api/meta-nations/status/{status}.
func (h *MetascaleHandler) GetNationsByDiplomaticStatus(w http.ResponseWriter, r *http.Request) {
	nations, err := h.nationRepo.GetByDiplomaticStatus(r.Context(), r.PathValue("status"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch meta nations by diplomatic status")
		return
	}
	WriteJSON(w, http.StatusOK, nations)
}

// ListGalaxies handles GET /api/meta-galaxies.
func (h *MetascaleHandler) ListGalaxies(w http.ResponseWriter, r *http.Request) {
	galaxies, err := h.galaxyRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch meta galaxies")
		return
	}
	WriteJSON(w, http.StatusOK, galaxies)
}

// GetGalaxy handles GET /api/meta-galaxies/{id}.
func (h *MetascaleHandler) GetGalaxy(w http.ResponseWriter, r *http.Request) {
	galaxy, err := h.galaxyRepo.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch meta galaxy")
		return
	}
	if galaxy == nil {
		WriteError(w, http.StatusNotFound, "Meta galaxy not found")
		return
	}
	WriteJSON(w, http.StatusOK, galaxy)
}

// GetGalaxiesByConsciousnessLevel handles GET /api/meta-galaxies/consciousness/{level}.
func (h *MetascaleHandler) GetGalaxiesByConsciousnessLevel(w http.ResponseWriter, r *http.Request) {
	galaxies, err := h.galaxyRepo.GetByConsciousnessLevel(r.Context(), r.PathValue("level"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch meta galaxies by consciousness level")
		return
	}
	WriteJSON(w, http.StatusOK, galaxies)
}
