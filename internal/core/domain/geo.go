package domain

// GeoPoint is a WGS 84 coordinate.
type GeoPoint struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// BoundingBox is the smallest axis-aligned rectangle containing a point set.
type BoundingBox struct {
	Southwest GeoPoint `json:"southwest"`
	Northeast GeoPoint `json:"northeast"`
}
