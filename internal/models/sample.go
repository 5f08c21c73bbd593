package models

// Sample represents one cleaned row of the geochemical source table.
// Latitude, longitude and sample type are always present and valid after
// cleaning. Element concentrations keep the raw CSV cell text until a
// selection coerces them, so a cell that is invalid for one element never
// costs the row for another.
type Sample struct {
	ID           int64   `json:"id" db:"id"`
	Latitude     float64 `json:"latitude" db:"latitude"`
	Longitude    float64 `json:"longitude" db:"longitude"`
	SampleType   string  `json:"sampleType" db:"sample_type"`
	Municipality string  `json:"municipality" db:"municipality"`

	// Elements maps element symbol to the raw concentration cell.
	// Absent cells are omitted.
	Elements map[string]string `json:"-"`
}

// FilteredSample is a sample that passed the element filter, carrying the
// numeric form of the selected element's concentration in ppm.
type FilteredSample struct {
	Sample
	Value float64 `json:"value"`
}

// SampleTypeCount pairs a distinct sample type with its row count in the
// clean table.
type SampleTypeCount struct {
	SampleType string `json:"sampleType"`
	Count      int64  `json:"count"`
}
