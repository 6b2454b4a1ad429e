package handler

import (
	"net/http"
	"strings"

	"github.com/evolverse/api/internal/model"
	"github.com/evolverse/api/internal/repository"
	"github.com/evolverse/api/internal/service"
)

// DomainHandler handles the overscale matrix endpoints.
type DomainHandler struct {
	domainRepo  *repository.OverscaleDomainRepository
	seedService *service.SeedService
}

// NewDomainHandler creates a new domain handler.
func NewDomainHandler(domainRepo *repository.OverscaleDomainRepository, seedService *service.SeedService) *DomainHandler {
	return &DomainHandler{
		domainRepo:  domainRepo,
		seedService: seedService,
	}
}

// List handles GET /api/overscale-domains.
func (h *DomainHandler) List(w http.ResponseWriter, r *http.Request) {
	domains, err := h.domainRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch overscale domains")
		return
	}
	WriteJSON(w, http.StatusOK, domains)
}

// Get handles GET /api/overscale-domains/{id}.
func (h *DomainHandler) Get(w http.ResponseWriter, r *http.Request) {
	domain, err := h.domainRepo.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch domain")
		return
	}
	if domain == nil {
		WriteError(w, http.StatusNotFound, "Domain not found")
		return
	}
	WriteJSON(w, http.StatusOK, domain)
}

// Create handles POST /api/overscale-domains.
func (h *DomainHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.OverscaleDomain
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Domain) == "" {
		WriteError(w, http.StatusBadRequest, "Domain is required")
		return
	}

	req.ID = ""
	if err := h.domainRepo.Create(r.Context(), &req); err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to create domain")
		return
	}
	WriteJSON(w, http.StatusCreated, &req)
}

// Seed handles POST /api/overscale-domains/seed.
func (h *DomainHandler) Seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.seedService.SeedOverscaleDomains(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to seed overscale domains")
		return
	}
	WriteJSON(w, http.StatusOK, seedResponse{
		Message: seedMessage(result.Created, "overscale domains"),
		Count:   result.Created,
		Skipped: result.Skipped,
	})
}
