package model

// CeremonialRitual is a codex-sourced ceremony with an ordered activation
// sequence. ActivationStatus is the only mutable field after creation.
type CeremonialRitual struct {
	ID               string   `json:"id"`
	RitualName       string   `json:"ritualName"`
	CodexSource      string   `json:"codexSource"`
	Purpose          string   `json:"purpose"`
	Sequence         []string `json:"sequence"`
	RequiredActors   []string `json:"requiredActors"`
	ActivationStatus string   `json:"activationStatus"`
	CeremonyType     string   `json:"ceremonyType"`
}

// Ritual activation status values accepted at the HTTP boundary.
const (
	RitualStatusPending   = "pending"
	RitualStatusActive    = "active"
	RitualStatusCompleted = "completed"
)

// IsValidRitualStatus reports whether s is a recognized activation status.
func IsValidRitualStatus(s string) bool {
	switch s {
	case RitualStatusPending, RitualStatusActive, RitualStatusCompleted:
		return true
	default:
		return false
	}
}
