package models

// Coordinates is a latitude/longitude pair. Stations loaded from the route
// schedule rather than the geographic survey carry the zero value.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Station is a physical stop location, deduplicated across lines. A station
// served by more than one line has IsInterchange set and a composite
// LineCode such as "GREEN/BLUE".
type Station struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	LineCode      string      `json:"line_code"`
	IsInterchange bool        `json:"is_interchange"`
	Coordinates   Coordinates `json:"coordinates"`
	LineName      string      `json:"line_name"`
}
