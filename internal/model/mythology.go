package model

// MythologyDeity maps a classical deity onto the treasury's modern protocol
// encodings. Name is a natural key matched case-insensitively.
type MythologyDeity struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	GreekName         string   `json:"greekName"`
	RomanName         string   `json:"romanName"`
	Domain            string   `json:"domain"`
	EvolEncoding      []string `json:"evolEncoding"`
	ReactiveProtocols []string `json:"reactiveProtocols"`
	ClassicalSymbols  []string `json:"classicalSymbols"`
	ModernActivations []string `json:"modernActivations"`
	GateNumber        *int     `json:"gateNumber"`
	CeremonyType      string   `json:"ceremonyType"`
	PrimaryColor      string   `json:"primaryColor"`
	IconSymbol        string   `json:"iconSymbol"`
}

// CodexLayer is one layer of the ten-layer codex, with its law rendered in
// six languages. Layers are served ordered by LayerNumber.
type CodexLayer struct {
	ID          string   `json:"id"`
	Codex       string   `json:"codex"`
	LayerNumber int      `json:"layerNumber"`
	Glyph       string   `json:"glyph"`
	LawEnglish  string   `json:"lawEnglish"`
	LawSwahili  string   `json:"lawSwahili"`
	LawYoruba   string   `json:"lawYoruba"`
	LawHebrew   string   `json:"lawHebrew"`
	LawArabic   string   `json:"lawArabic"`
	LawNahuatl  string   `json:"lawNahuatl"`
	Hmmm        []string `json:"hmmm"`
	Hieroglyphs []string `json:"hieroglyphs"`
	Streams     []string `json:"streams"`
	Status      string   `json:"status"`
}
