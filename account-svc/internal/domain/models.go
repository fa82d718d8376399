package domain

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type LocationResult struct {
	IsValid bool   `json:"isValid"`
	Reason  string `json:"reason,omitempty"`
}

// Bounds is a latitude/longitude rectangle. Corners may be given in any order.
type Bounds struct {
	Lat1, Lng1 float64
	Lat2, Lng2 float64
}
