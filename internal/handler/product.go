package handler

import (
	"net/http"

	"github.com/evolverse/api/internal/repository"
)

// ProductHandler handles the market intelligence endpoints.
type ProductHandler struct {
	productRepo *repository.MarketProductRepository
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productRepo *repository.MarketProductRepository) *ProductHandler {
	return &ProductHandler{productRepo: productRepo}
}

// List handles GET /api/market-products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch market products")
		return
	}
	WriteJSON(w, http.StatusOK, products)
}

// Get handles GET /api/market-products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.productRepo.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch market product")
		return
	}
	if product == nil {
		WriteError(w, http.StatusNotFound, "Market product not found")
		return
	}
	WriteJSON(w, http.StatusOK, product)
}

// GetBySector handles GET /api/market-products/sector/{sector}. A sector
// with no matches returns an empty array, not 404.
func (h *ProductHandler) GetBySector(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetBySector(r.Context(), r.PathValue("sector"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch products by sector")
		return
	}
	WriteJSON(w, http.StatusOK, products)
}
