package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// ENFTAttribute is one trait on a minted ENFT.
type ENFTAttribute struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}

// ENFTMetadata is the document pinned to IPFS for one ENFT.
type ENFTMetadata struct {
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Image              string          `json:"image"`
	ExternalURL        string          `json:"external_url,omitempty"`
	Attributes         []ENFTAttribute `json:"attributes"`
	VaultID            string          `json:"vaultId"`
	ProvenanceHash     string          `json:"provenanceHash"`
	CodexLayer         string          `json:"codexLayer"`
	CeremonialProtocol string          `json:"ceremonialProtocol,omitempty"`
}

// ENFTMetadataParams are the inputs for building a metadata document.
// Biome, Denomination, and CeremonyType become traits when set.
type ENFTMetadataParams struct {
	Name           string
	Description    string
	ImageIpfsURL   string
	VaultID        string
	ProvenanceHash string
	CodexLayer     string
	Biome          string
	Denomination   string
	CeremonyType   string
	Extra          []ENFTAttribute
}

// IPFSService pins ENFT metadata and images through the NFT.Storage HTTP
// API. A service built without an API key stays constructable; uploads
// fail with ErrIPFSNotConfigured.
type IPFSService struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// IPFSServiceConfig holds configuration for the IPFS service.
type IPFSServiceConfig struct {
	APIKey   string
	Endpoint string
	Timeout  time.Duration
}

// NewIPFSService creates a new IPFS service.
func NewIPFSService(cfg IPFSServiceConfig) *IPFSService {
	return &IPFSService{
		apiKey:   cfg.APIKey,
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

// Configured reports whether an API key is present.
func (s *IPFSService) Configured() bool {
	return s.apiKey != ""
}

type nftStorageResponse struct {
	OK    bool `json:"ok"`
	Value struct {
		CID string `json:"cid"`
	} `json:"value"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *IPFSService) upload(ctx context.Context, body []byte, contentType string) (string, error) {
	if !s.Configured() {
		return "", ErrIPFSNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"/upload", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIPFSUpload, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIPFSUpload, err)
	}
	defer resp.Body.Close()

	var parsed nftStorageResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", ErrIPFSUpload, err)
	}
	if resp.StatusCode != http.StatusOK || !parsed.OK {
		msg := parsed.Error.Message
		if msg == "" {
			msg = resp.Status
		}
		return "", fmt.Errorf("%w: %s", ErrIPFSUpload, msg)
	}
	return "ipfs://" + parsed.Value.CID, nil
}

// UploadMetadata pins a metadata document and returns its ipfs:// URL.
func (s *IPFSService) UploadMetadata(ctx context.Context, metadata *ENFTMetadata) (string, error) {
	body, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: encoding metadata: %v", ErrIPFSUpload, err)
	}
	url, err := s.upload(ctx, body, "application/json")
	if err != nil {
		return "", err
	}
	slog.Info("metadata uploaded to IPFS", "url", url, "name", metadata.Name)
	return url, nil
}

// UploadImage pins raw image bytes and returns their ipfs:// URL.
func (s *IPFSService) UploadImage(ctx context.Context, image []byte, contentType string) (string, error) {
	url, err := s.upload(ctx, image, contentType)
	if err != nil {
		return "", err
	}
	slog.Info("image uploaded to IPFS", "url", url)
	return url, nil
}

// BuildMetadata assembles the full metadata document with the standard
// vault provenance traits.
func (s *IPFSService) BuildMetadata(params ENFTMetadataParams) *ENFTMetadata {
	attributes := []ENFTAttribute{
		{TraitType: "Vault ID", Value: params.VaultID},
		{TraitType: "Codex Layer", Value: params.CodexLayer},
		{TraitType: "Provenance Hash", Value: params.ProvenanceHash},
	}
	if params.Biome != "" {
		attributes = append(attributes, ENFTAttribute{TraitType: "Biome", Value: params.Biome})
	}
	if params.Denomination != "" {
		attributes = append(attributes, ENFTAttribute{TraitType: "Denomination", Value: params.Denomination})
	}
	if params.CeremonyType != "" {
		attributes = append(attributes, ENFTAttribute{TraitType: "Ceremony Type", Value: params.CeremonyType})
	}
	attributes = append(attributes, params.Extra...)

	return &ENFTMetadata{
		Name:               params.Name,
		Description:        params.Description,
		Image:              params.ImageIpfsURL,
		ExternalURL:        "https://bleuliontreasury.com/enft/" + params.VaultID,
		Attributes:         attributes,
		VaultID:            params.VaultID,
		ProvenanceHash:     params.ProvenanceHash,
		CodexLayer:         params.CodexLayer,
		CeremonialProtocol: params.CeremonyType,
	}
}
