package domain

// Stay is a single dwell record from a location history.
type Stay struct {
	Ordinal  int            `json:"ordinal"` // 1-based position in the source array
	Location GeoPoint       `json:"location"`
	Fields   map[string]any `json:"fields,omitempty"`
}
