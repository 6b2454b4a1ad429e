package handler

import (
	"errors"
	"net/http"

	"github.com/evolverse/api/internal/service"
)

// ENFTHandler handles ENFT metadata pinning.
type ENFTHandler struct {
	ipfsService *service.IPFSService
}

// NewENFTHandler creates a new ENFT handler.
func NewENFTHandler(ipfsService *service.IPFSService) *ENFTHandler {
	return &ENFTHandler{ipfsService: ipfsService}
}

type enftMetadataRequest struct {
	Name           string                  `json:"name"`
	Description    string                  `json:"description"`
	ImageIpfsURL   string                  `json:"imageIpfsUrl"`
	VaultID        string                  `json:"vaultId"`
	ProvenanceHash string                  `json:"provenanceHash"`
	CodexLayer     string                  `json:"codexLayer"`
	Biome          string                  `json:"biome"`
	Denomination   string                  `json:"denomination"`
	CeremonyType   string                  `json:"ceremonyType"`
	Extra          []service.ENFTAttribute `json:"extra"`
}

type enftMetadataResponse struct {
	URI string `json:"uri"`
}

// Upload handles POST /api/enft-metadata. It builds the metadata document
// and pins it through the IPFS collaborator.
func (h *ENFTHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req enftMetadataRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		WriteError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if req.VaultID == "" {
		WriteError(w, http.StatusBadRequest, "Vault ID is required")
		return
	}

	metadata := h.ipfsService.BuildMetadata(service.ENFTMetadataParams{
		Name:           req.Name,
		Description:    req.Description,
		ImageIpfsURL:   req.ImageIpfsURL,
		VaultID:        req.VaultID,
		ProvenanceHash: req.ProvenanceHash,
		CodexLayer:     req.CodexLayer,
		Biome:          req.Biome,
		Denomination:   req.Denomination,
		CeremonyType:   req.CeremonyType,
		Extra:          req.Extra,
	})

	uri, err := h.ipfsService.UploadMetadata(r.Context(), metadata)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIPFSNotConfigured):
			WriteError(w, http.StatusServiceUnavailable, "IPFS service not configured")
		case errors.Is(err, service.ErrIPFSUpload):
			WriteError(w, http.StatusBadGateway, "Failed to upload ENFT metadata")
		default:
			WriteError(w, http.StatusInternalServerError, "Failed to upload ENFT metadata")
		}
		return
	}
	WriteJSON(w, http.StatusOK, enftMetadataResponse{URI: uri})
}
