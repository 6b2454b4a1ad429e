package handler

import (
	"net/http"
	"strconv"

	"github.com/evolverse/api/internal/repository"
)

// AuditHandler handles the image audit endpoints.
type AuditHandler struct {
	auditRepo *repository.ImageAuditRepository
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(auditRepo *repository.ImageAuditRepository) *AuditHandler {
	return &AuditHandler{auditRepo: auditRepo}
}

// List handles GET /api/image-audits.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	audits, err := h.auditRepo.GetAll(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch image audits")
		return
	}
	WriteJSON(w, http.StatusOK, audits)
}

// Get handles GET /api/image-audits/{id}.
func (h *AuditHandler) Get(w http.ResponseWriter, r *http.Request) {
	audit, err := h.auditRepo.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch image audit")
		return
	}
	if audit == nil {
		WriteError(w, http.StatusNotFound, "Image audit not found")
		return
	}
	WriteJSON(w, http.StatusOK, audit)
}

// GetByFileName handles GET /api/image-audits/file/{fileName}.
func (h *AuditHandler) GetByFileName(w http.ResponseWriter, r *http.Request) {
	audit, err := h.auditRepo.GetByFileName(r.Context(), r.PathValue("fileName"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch image audit by filename")
		return
	}
	if audit == nil {
		WriteError(w, http.StatusNotFound, "Image audit not found")
		return
	}
	WriteJSON(w, http.StatusOK, audit)
}

// GetByMinDensity handles GET /api/image-audits/density/{minScore}.
func (h *AuditHandler) GetByMinDensity(w http.ResponseWriter, r *http.Request) {
	minScore, err := strconv.ParseFloat(r.PathValue("minScore"), 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid density score")
		return
	}

	audits, err := h.auditRepo.GetByMinDensity(r.Context(), minScore)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch image audits by density score")
		return
	}
	WriteJSON(w, http.StatusOK, audits)
}
