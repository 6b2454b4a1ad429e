package model

// MetaSchool is an educational sequencing system in the observatory.
type MetaSchool struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Core                  string   `json:"core"`
	Layers                []string `json:"layers"`
	Disciplines           []string `json:"disciplines"`
	Philosophy            string   `json:"philosophy"`
	Status                string   `json:"status"`
	FoundingPrinciple     string   `json:"foundingPrinciple"`
	GraduationRequirement string   `json:"graduationRequirement"`
	EnrollmentCapacity    int      `json:"enrollmentCapacity"`
	CurrentEnrollment     int      `json:"currentEnrollment"`
}

// MetaNation is a sovereign nation-state structure.
type MetaNation struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Governance       string   `json:"governance"`
	Population       int      `json:"population"`
	Capital          string   `json:"capital"`
	Territories      []string `json:"territories"`
	PrimaryLanguages []string `json:"primaryLanguages"`
	EconomicModel    string   `json:"economicModel"`
	CulturalIdentity string   `json:"culturalIdentity"`
	DiplomaticStatus string   `json:"diplomaticStatus"`
	TechTier         int      `json:"techTier"`
	CurrencySystem   string   `json:"currencySystem"`
	MilitaryStrength string   `json:"militaryStrength"`
}

// MetaGalaxy is a cosmic-scale organizational structure.
type MetaGalaxy struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Coordinates         string   `json:"coordinates"`
	BreedingProtocol    string   `json:"breedingProtocol"`
	Chambers            []string `json:"chambers"`
	MemberCivilizations []string `json:"memberCivilizations"`
	TechnologyTier      int      `json:"technologyTier"`
	ResourceFlows       []string `json:"resourceFlows"`
	DiplomaticStatus    string   `json:"diplomaticStatus"`
	ConsciousnessLevel  string   `json:"consciousnessLevel"`
	BreedingEngine      string   `json:"breedingEngine"`
	GalacticRole        string   `json:"galacticRole"`
}
