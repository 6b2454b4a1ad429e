package model

import "strings"

// MallNode is a treasury mall installation. Valuation figures are decimal
// strings to avoid float drift on trillion-scale amounts; the four
// sub-valuations and the myth/guardian descriptors are optional.
type MallNode struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	CityName         string   `json:"cityName"`
	Valuation        string   `json:"valuation"`
	RetailSales      *string  `json:"retailSales"`
	DefenseContracts *string  `json:"defenseContracts"`
	CulturalRights   *string  `json:"culturalRights"`
	TreasuryFlow     *string  `json:"treasuryFlow"`
	WellnessLabs     *string  `json:"wellnessLabs"`
	Roles            []string `json:"roles"`
	MythCountered    *string  `json:"mythCountered"`
	GuardianSector   *string  `json:"guardianSector"`
}

// CreateMallNodeRequest is the payload for registering a mall node.
type CreateMallNodeRequest struct {
	Name             string   `json:"name"`
	CityName         string   `json:"cityName"`
	Valuation        string   `json:"valuation"`
	RetailSales      *string  `json:"retailSales,omitempty"`
	DefenseContracts *string  `json:"defenseContracts,omitempty"`
	CulturalRights   *string  `json:"culturalRights,omitempty"`
	TreasuryFlow     *string  `json:"treasuryFlow,omitempty"`
	WellnessLabs     *string  `json:"wellnessLabs,omitempty"`
	Roles            []string `json:"roles"`
	MythCountered    *string  `json:"mythCountered,omitempty"`
	GuardianSector   *string  `json:"guardianSector,omitempty"`
}

// Validate returns the name of the first missing required field, or "".
func (r *CreateMallNodeRequest) Validate() string {
	switch {
	case strings.TrimSpace(r.Name) == "":
		return "name"
	case strings.TrimSpace(r.CityName) == "":
		return "cityName"
	case strings.TrimSpace(r.Valuation) == "":
		return "valuation"
	case len(r.Roles) == 0:
		return "roles"
	}
	return ""
}

// MallNode builds the stored record from the request.
func (r *CreateMallNodeRequest) MallNode() *MallNode {
	return &MallNode{
		Name:             r.Name,
		CityName:         r.CityName,
		Valuation:        r.Valuation,
		RetailSales:      r.RetailSales,
		DefenseContracts: r.DefenseContracts,
		CulturalRights:   r.CulturalRights,
		TreasuryFlow:     r.TreasuryFlow,
		WellnessLabs:     r.WellnessLabs,
		Roles:            r.Roles,
		MythCountered:    r.MythCountered,
		GuardianSector:   r.GuardianSector,
	}
}
