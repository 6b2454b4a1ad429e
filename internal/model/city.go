package model

// EnvironmentalCity is a safe-haven city with climate tracking. Temperature
// and coordinates are decimal strings, matching the dashboard's display
// precision.
type EnvironmentalCity struct {
	ID                string  `json:"id"`
	CityName          string  `json:"cityName"`
	Region            string  `json:"region"`
	Climate           string  `json:"climate"`
	CurrentWeather    string  `json:"currentWeather"`
	Temperature       string  `json:"temperature"`
	PopulationDensity int     `json:"populationDensity"`
	Latitude          string  `json:"latitude"`
	Longitude         string  `json:"longitude"`
	Biome             string  `json:"biome"`
	VaultGuardian     string  `json:"vaultGuardian"`
	SafeHavenStatus   string  `json:"safeHavenStatus"`
	MallNode          *string `json:"mallNode"`
}
