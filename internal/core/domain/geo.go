package domain

// GeoPoint represents a geographic coordinate (WGS 84).
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// View is the initial camera of a rendered map.
type View struct {
	Center GeoPoint `json:"center"`
	Zoom   int      `json:"zoom"`
}

// Segment is a straight line between two consecutive stays.
type Segment struct {
	From       GeoPoint `json:"from"`
	To         GeoPoint `json:"to"`
	Midpoint   GeoPoint `json:"midpoint"`
	DistanceKm float64  `json:"distance_km"`
}

// Route is the ordered chain of segments connecting all stays.
type Route struct {
	Segments []Segment `json:"segments"`
	TotalKm  float64   `json:"total_km"`
}
