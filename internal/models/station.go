package models

// PoliceStation is a responding-authority entry, either from the static
// reference table or from a Places lookup.
type PoliceStation struct {
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Phone    string  `json:"phone"`
	Type     string  `json:"type"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Distance float64 `json:"distance_km,omitempty"`
}

// CityInfo is a city helpline entry from the static city table.
type CityInfo struct {
	City          string `json:"city"`
	PoliceControl string `json:"police_control"`
	Helpline      string `json:"helpline"`
}
