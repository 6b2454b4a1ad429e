package handler

import (
	"net/http"

	"github.com/evolverse/api/internal/repository"
)

// VaultHandler handles the treasury vault, ENFT registry, and MetaVault
// summary endpoints.
type VaultHandler struct {
	vaultRepo *repository.TreasuryVaultRepository
}

// NewVaultHandler creates a new vault handler.
func NewVaultHandler(vaultRepo *repository.TreasuryVaultRepository) *VaultHandler {
	return &VaultHandler{vaultRepo: vaultRepo}
}

// ListVaults handles GET /api/treasury-vaults.
func (h *VaultHandler) ListVaults(w http.ResponseWriter, r *http.Request) {
	vaults, err := h.vaultRepo.GetVaults(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch treasury vaults")
		return
	}
	WriteJSON(w, http.StatusOK, vaults)
}

// GetVault handles GET /api/treasury-vaults/{id}.
func (h *VaultHandler) GetVault(w http.ResponseWriter, r *http.Request) {
	vault, err := h.vaultRepo.GetVault(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch treasury vault")
		return
	}
	if vault == nil {
		WriteError(w, http.StatusNotFound, "Treasury vault not found")
		return
	}
	WriteJSON(w, http.StatusOK, vault)
}

// ListRegistry handles GET /api/enft-registry.
func (h *VaultHandler) ListRegistry(w http.ResponseWriter, r *http.Request) {
	registry, err := h.vaultRepo.GetRegistry(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch ENFT registry")
		return
	}
	WriteJSON(w, http.StatusOK, registry)
}

// GetRegistryEntry handles GET /api/enft-registry/{id}.
func (h *VaultHandler) GetRegistryEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := h.vaultRepo.GetRegistryEntry(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch ENFT entry")
		return
	}
	if entry == nil {
		WriteError(w, http.StatusNotFound, "ENFT entry not found")
		return
	}
	WriteJSON(w, http.StatusOK, entry)
}

// GetRegistryByVault handles GET /api/enft-registry/vault/{vaultId}.
func (h *VaultHandler) GetRegistryByVault(w http.ResponseWriter, r *http.Request) {
	entries, err := h.vaultRepo.GetRegistryByVault(r.Context(), r.PathValue("vaultId"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch ENFT entries for vault")
		return
	}
	WriteJSON(w, http.StatusOK, entries)
}

// GetSummary handles GET /api/metavault-summary.
func (h *VaultHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.vaultRepo.GetSummary(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch MetaVault summary")
		return
	}
	if summary == nil {
		WriteError(w, http.StatusNotFound, "MetaVault summary not found")
		return
	}
	WriteJSON(w, http.StatusOK, summary)
}
