package model

// ShowcaseProduct is a physical or hardware product listing.
type ShowcaseProduct struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Tagline      string   `json:"tagline"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	ImagePath    string   `json:"imagePath"`
	Price        *string  `json:"price"`
	Availability string   `json:"availability"`
	Badge        *string  `json:"badge"`
}

// StudioProject is a film, series, or media production in the studio slate.
type StudioProject struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Tagline     string   `json:"tagline"`
	ProjectType string   `json:"projectType"`
	Status      string   `json:"status"`
	ReleaseYear *int     `json:"releaseYear"`
	Description string   `json:"description"`
	Director    *string  `json:"director"`
	Producer    *string  `json:"producer"`
	KeyFeatures []string `json:"keyFeatures"`
	Genres      []string `json:"genres"`
	ImagePath   string   `json:"imagePath"`
	TrailerURL  *string  `json:"trailerUrl"`
}
