package handler

import (
	"net/http"

	"github.com/evolverse/api/internal/repository"
)

// CityHandler handles the safe-haven city network endpoints.
type CityHandler struct {
	cityRepo *repository.EnvironmentalCityRepository
}

// NewCityHandler creates a new city handler.
func NewCityHandler(cityRepo *repository.EnvironmentalCityRepository) *CityHandler {
	return &CityHandler{cityRepo: cityRepo}
}

// List handles GET /api/environmental-cities.
func (h *CityHandler) List(w http.ResponseWriter, r *http.Request) {
	cities, err := h.cityRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch environmental cities")
		return
	}
	WriteJSON(w, http.StatusOK, cities)
}

// Get handles GET /api/environmental-cities/{id}.
func (h *CityHandler) Get(w http.ResponseWriter, r *http.Request) {
	city, err := h.cityRepo.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch environmental city")
		return
	}
	if city == nil {
		WriteError(w, http.StatusNotFound, "Environmental city not found")
		return
	}
	WriteJSON(w, http.StatusOK, city)
}

// GetByRegion handles GET /api/environmental-cities/region/{region}.
func (h *CityHandler) GetByRegion(w http.ResponseWriter, r *http.Request) {
	cities, err := h.cityRepo.GetByRegion(r.Context(), r.PathValue("region"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch cities by region")
		return
	}
	WriteJSON(w, http.StatusOK, cities)
}

// GetByBiome handles GET /api/environmental-cities/biome/{biome}.
func (h *CityHandler) GetByBiome(w http.ResponseWriter, r *http.Request) {
	cities, err := h.cityRepo.GetByBiome(r.Context(), r.PathValue("biome"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch cities by biome")
		return
	}
	WriteJSON(w, http.StatusOK, cities)
}
