package models

// Marker is one colored map point for the current selection.
type Marker struct {
	Latitude     float64 `json:"lat"`
	Longitude    float64 `json:"lng"`
	Value        float64 `json:"value"` // concentration in ppm
	Color        string  `json:"color"` // hex fill color
	Municipality string  `json:"municipality"`
	SampleType   string  `json:"sampleType"`
}

// Legend describes the gradient control shown alongside the markers. It is
// omitted when the filtered values have no spread.
type Legend struct {
	Min     float64  `json:"min"`
	Max     float64  `json:"max"`
	Stops   []string `json:"stops"`
	Caption string   `json:"caption"`
}

// MapCenter is the initial viewport center, the arithmetic mean of the
// filtered coordinates.
type MapCenter struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// MapView is the complete render input for one selection.
type MapView struct {
	Element string    `json:"element"`
	Markers []Marker  `json:"markers"`
	Count   int       `json:"count"`
	Legend  *Legend   `json:"legend,omitempty"`
	Center  MapCenter `json:"center"`
	Zoom    int       `json:"zoom"`
}
