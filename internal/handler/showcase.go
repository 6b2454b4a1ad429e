package handler

import (
	"net/http"

	"github.com/evolverse/api/internal/repository"
)

// ShowcaseHandler handles the product showcase endpoints.
type ShowcaseHandler struct {
	showcaseRepo *repository.ShowcaseProductRepository
}

// NewShowcaseHandler creates a new showcase handler.
func NewShowcaseHandler(showcaseRepo *repository.ShowcaseProductRepository) *ShowcaseHandler {
	return &ShowcaseHandler{showcaseRepo: showcaseRepo}
}

// List handles GET /api/showcase-products.
func (h *ShowcaseHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.showcaseRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch showcase products")
		return
	}
	WriteJSON(w, http.StatusOK, products)
}

// Get handles GET /api/showcase-products/{id}.
func (h *ShowcaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.showcaseRepo.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch showcase product")
		return
	}
	if product == nil {
		WriteError(w, http.StatusNotFound, "Showcase product not found")
		return
	}
	WriteJSON(w, http.StatusOK, product)
}

// GetByCategory handles GET /api/showcase-products/category/{category}.
func (h *ShowcaseHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	products, err := h.showcaseRepo.GetByCategory(r.Context(), r.PathValue("category"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch showcase products by category")
		return
	}
	WriteJSON(w, http.StatusOK, products)
}
