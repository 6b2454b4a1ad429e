package model

// OverscaleDomain is one row of the overscale matrix: a global domain, its
// incumbent, and the treasury's planned counter-position. The table starts
// empty and is bulk-loaded from the matrix CSV asset.
type OverscaleDomain struct {
	ID                string `json:"id"`
	Domain            string `json:"domain"`
	OwnerOrFounder    string `json:"ownerOrFounder"`
	IncumbentStrength string `json:"incumbentStrength"`
	Ev0lAttackSurface string `json:"ev0lAttackSurface"`
	HardballMove      string `json:"hardballMove"`
	CoinFlow          string `json:"coinFlow"`
	Vault             string `json:"vault"`
	Guard             string `json:"guard"`
	MetricLift        string `json:"metricLift"`
}
