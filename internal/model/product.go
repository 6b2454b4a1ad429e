package model

// MarketProduct is an entry in the market intelligence table. Benchmark and
// projection figures are in billions.
type MarketProduct struct {
	ID                  string `json:"id"`
	ProductName         string `json:"productName"`
	Slogan              string `json:"slogan"`
	Sector              string `json:"sector"`
	UseCaseFit          string `json:"useCaseFit"`
	MarketBenchmark2025 int    `json:"marketBenchmark2025"`
	OverscaleProjection int    `json:"overscaleProjection"`
	RoiPercentage       int    `json:"roiPercentage"`
}
