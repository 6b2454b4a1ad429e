package model

// ImageAudit holds density metrics and provenance anchors for one minted
// image. Numeric metrics are decimal strings; DensityScore is the sort key
// for listings (descending).
type ImageAudit struct {
	ID                string `json:"id"`
	FileName          string `json:"fileName"`
	SizeKb            string `json:"sizeKb"`
	Resolution        string `json:"resolution"`
	Megapixels        string `json:"megapixels"`
	BytesPerMegapixel string `json:"bytesPerMegapixel"`
	EntropyBits       string `json:"entropyBits"`
	EdgeDensity       string `json:"edgeDensity"`
	Colorfulness      string `json:"colorfulness"`
	CompressionRatio  string `json:"compressionRatio"`
	DensityScore      string `json:"densityScore"`
	IpfsCid           string `json:"ipfsCid"`
	KeccakHash        string `json:"keccakHash"`
	EnftTokenID       string `json:"enftTokenId"`
}
