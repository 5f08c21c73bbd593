package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCenter(t *testing.T) {
	t.Run("arithmetic mean of coordinates", func(t *testing.T) {
		lat, lng := Center([]float64{10, 20}, []float64{30, 50})
		assert.Equal(t, 15.0, lat)
		assert.Equal(t, 40.0, lng)
	})

	t.Run("empty input", func(t *testing.T) {
		lat, lng := Center(nil, nil)
		assert.Zero(t, lat)
		assert.Zero(t, lng)
	})
}

func TestBoundingBox(t *testing.T) {
	minLat, minLng, maxLat, maxLng := BoundingBox(
		[]float64{4.5, 6.2, 5.0},
		[]float64{-74.1, -75.5, -73.9},
	)
	assert.InDelta(t, 4.5, minLat, 1e-9)
	assert.InDelta(t, -75.5, minLng, 1e-9)
	assert.InDelta(t, 6.2, maxLat, 1e-9)
	assert.InDelta(t, -73.9, maxLng, 1e-9)
}

func TestHaversineDistance(t *testing.T) {
	// One degree of longitude along the equator.
	d := HaversineDistance(0, 0, 0, 1)
	assert.InDelta(t, 111195, d, 50)

	assert.Zero(t, HaversineDistance(4.5, -74.1, 4.5, -74.1))
}
