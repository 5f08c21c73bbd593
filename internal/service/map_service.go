package service

import (
	"errors"
	"fmt"

	"github.com/geomapa/geochem-viewer-go/internal/colorscale"
	"github.com/geomapa/geochem-viewer-go/internal/loader"
	"github.com/geomapa/geochem-viewer-go/internal/models"
	"github.com/geomapa/geochem-viewer-go/internal/repository"
	"github.com/geomapa/geochem-viewer-go/internal/spatial"
	"github.com/geomapa/geochem-viewer-go/internal/stats"
)

var (
	// ErrNoSampleTypes reports a selection with an empty sample-type set.
	// The caller must surface a "select at least one type" warning instead
	// of running the pipeline.
	ErrNoSampleTypes = errors.New("no sample types selected")
	// ErrUnknownElement reports an element symbol outside the catalog.
	ErrUnknownElement = errors.New("unknown element")
)

const defaultZoom = 6

// MapService runs the filter → color scale → map view pipeline. Every
// selection change recomputes from the cached clean table; nothing is kept
// between calls.
type MapService struct {
	repo *repository.SampleRepository
}

// NewMapService creates a new map service
func NewMapService(repo *repository.SampleRepository) *MapService {
	return &MapService{repo: repo}
}

// FilteredSamples applies the selection filters in order: keep rows whose
// sample type is selected, coerce the chosen element to a number, drop rows
// that fail coercion, then drop negative values. Clean-table row order is
// preserved. An empty result is a normal outcome, not an error.
func (s *MapService) FilteredSamples(symbol string, sampleTypes []string) ([]models.FilteredSample, error) {
	if len(sampleTypes) == 0 {
		return nil, ErrNoSampleTypes
	}
	element, ok := models.ElementBySymbol(symbol)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownElement, symbol)
	}

	rows, err := s.repo.GetBySampleTypes(sampleTypes)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.FilteredSample, 0, len(rows))
	for _, row := range rows {
		cell, ok := row.Elements[element.Symbol]
		if !ok {
			continue
		}
		value, ok := loader.CoerceFloat(cell)
		if !ok || value < 0 {
			continue
		}
		filtered = append(filtered, models.FilteredSample{Sample: row, Value: value})
	}
	return filtered, nil
}

// BuildView runs the full pipeline for one selection and assembles the
// render input: one colored marker per filtered row, the legend when the
// values have spread, and the viewport center. An empty filtered set yields
// a view with zero markers and no legend.
func (s *MapService) BuildView(symbol string, sampleTypes []string) (*models.MapView, error) {
	filtered, err := s.FilteredSamples(symbol, sampleTypes)
	if err != nil {
		return nil, err
	}

	view := &models.MapView{
		Element: symbol,
		Markers: []models.Marker{},
		Zoom:    defaultZoom,
	}
	if len(filtered) == 0 {
		return view, nil
	}

	values := make([]float64, len(filtered))
	lats := make([]float64, len(filtered))
	lngs := make([]float64, len(filtered))
	for i, f := range filtered {
		values[i] = f.Value
		lats[i] = f.Latitude
		lngs[i] = f.Longitude
	}

	scale, err := colorscale.Build(values)
	if err != nil {
		return nil, fmt.Errorf("build color scale: %w", err)
	}

	for _, f := range filtered {
		view.Markers = append(view.Markers, models.Marker{
			Latitude:     f.Latitude,
			Longitude:    f.Longitude,
			Value:        f.Value,
			Color:        scale.Color(f.Value),
			Municipality: f.Municipality,
			SampleType:   f.SampleType,
		})
	}
	view.Count = len(view.Markers)
	view.Legend = scale.Legend(symbol)

	centerLat, centerLng := spatial.Center(lats, lngs)
	view.Center = models.MapCenter{Latitude: centerLat, Longitude: centerLng}
	view.Zoom = zoomForSpan(lats, lngs)

	return view, nil
}

// Summary computes descriptive statistics over the filtered values of one
// selection. The zero-count summary marks an empty result.
func (s *MapService) Summary(symbol string, sampleTypes []string) (stats.Summary, error) {
	filtered, err := s.FilteredSamples(symbol, sampleTypes)
	if err != nil {
		return stats.Summary{}, err
	}
	values := make([]float64, len(filtered))
	for i, f := range filtered {
		values[i] = f.Value
	}
	return stats.Summarize(values), nil
}

// zoomForSpan picks an initial zoom level from the great-circle diagonal of
// the filtered set's bounding box.
func zoomForSpan(lats, lngs []float64) int {
	minLat, minLng, maxLat, maxLng := spatial.BoundingBox(lats, lngs)
	diagonal := spatial.HaversineDistance(minLat, minLng, maxLat, maxLng)

	switch {
	case diagonal > 2_000_000:
		return 4
	case diagonal > 500_000:
		return 6
	case diagonal > 100_000:
		return 8
	case diagonal > 20_000:
		return 10
	default:
		return 12
	}
}
