package model

// WarActor is a war codex character. Codename is a natural key: lookups
// match it case-insensitively.
type WarActor struct {
	ID                   string   `json:"id"`
	Codename             string   `json:"codename"`
	Title                string   `json:"title"`
	Heritage             string   `json:"heritage"`
	Origin               string   `json:"origin"`
	Domains              []string `json:"domains"`
	SignatureAbility     string   `json:"signatureAbility"`
	SignatureDescription string   `json:"signatureDescription"`
	Limiter              string   `json:"limiter"`
	Antagonists          string   `json:"antagonists"`
	Vendetta             *string  `json:"vendetta"`
}
