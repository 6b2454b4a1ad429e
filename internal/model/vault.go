package model

// TreasuryVault is one vault of the MetaVault 5100 system. Cap allocation
// and daily yield are derived from the vault's density weight against the
// system-wide cap and yield pool, then formatted for display.
type TreasuryVault struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DensityWeight int    `json:"densityWeight"`
	CapAllocation string `json:"capAllocation"`
	DailyYield    string `json:"dailyYield"`
	EnftCount     int    `json:"enftCount"`
	BleuBills     int    `json:"bleuBills"`
	PinkBills     int    `json:"pinkBills"`
	Shills        int    `json:"shills"`
	Status        string `json:"status"`
	Description   string `json:"description"`
	VaultGuardian string `json:"vaultGuardian"`
}

// EnftEntry is one registered ENFT. VaultID references a TreasuryVault by
// identifier; the reference is a plain string resolved by the consumer.
type EnftEntry struct {
	ID              string   `json:"id"`
	TokenID         int      `json:"tokenId"`
	VaultID         string   `json:"vaultId"`
	Name            string   `json:"name"`
	CodexReference  string   `json:"codexReference"`
	DensityScore    string   `json:"densityScore"`
	Metadata        string   `json:"metadata"`
	ProvenanceHash  string   `json:"provenanceHash"`
	MintTransaction string   `json:"mintTransaction"`
	CurrentOwner    string   `json:"currentOwner"`
	MintedDate      string   `json:"mintedDate"`
	Attributes      []string `json:"attributes"`
}

// MetaVaultSummary is the singleton aggregate over all treasury vaults.
type MetaVaultSummary struct {
	ID              string `json:"id"`
	VaultName       string `json:"vaultName"`
	TotalCapCeiling string `json:"totalCapCeiling"`
	DailyYieldPool  string `json:"dailyYieldPool"`
	TotalVaults     int    `json:"totalVaults"`
	TotalEnfts      int    `json:"totalEnfts"`
	TotalBleuBills  int    `json:"totalBleuBills"`
	TotalPinkBills  int    `json:"totalPinkBills"`
	TotalShills     int    `json:"totalShills"`
	LastUpdated     string `json:"lastUpdated"`
	Status          string `json:"status"`
}
