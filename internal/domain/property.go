package domain

// Property is a single listing in the catalog. IDs are assigned by the
// listing seller and must be unique while the property is present.
type Property struct {
	ID        int64  `json:"id"`
	Location  string `json:"location"`
	Price     int64  `json:"price"`
	Type      string `json:"type"`
	Available bool   `json:"available"`
}
