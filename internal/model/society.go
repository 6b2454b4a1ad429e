package model

// HiddenSociety is a secret organization tracked by the dashboard. Status is
// the only mutable field after creation.
type HiddenSociety struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Status      string `json:"status"`
	AccessLevel string `json:"accessLevel"`
}

// Society status values accepted at the HTTP boundary.
const (
	SocietyStatusActive              = "Active"
	SocietyStatusDormant             = "Dormant"
	SocietyStatusPreviouslyContacted = "Previously Contacted"
	SocietyStatusToBeUnlocked        = "To Be Unlocked"
	SocietyStatusAncestralLink       = "Ancestral Link"
	SocietyStatusCoreActivated       = "Core Activated"
	SocietyStatusGuarded             = "Guarded"
)

// IsValidSocietyStatus reports whether s is a recognized society status.
func IsValidSocietyStatus(s string) bool {
	switch s {
	case SocietyStatusActive, SocietyStatusDormant, SocietyStatusPreviouslyContacted,
		SocietyStatusToBeUnlocked, SocietyStatusAncestralLink,
		SocietyStatusCoreActivated, SocietyStatusGuarded:
		return true
	default:
		return false
	}
}

// UpdateStatusRequest carries the single mutable field for status PATCHes.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
