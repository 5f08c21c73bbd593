// Package spatial provides the small amount of geographic math the map view
// needs: viewport center, bounding box and great-circle spans.
package spatial

import (
	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is the mean Earth radius used for distance conversion.
const EarthRadiusMeters = 6371000.0

// Center returns the arithmetic mean of the given coordinates, the initial
// map center for a filtered sample set. Both slices must have equal length.
func Center(lats, lngs []float64) (lat, lng float64) {
	if len(lats) == 0 {
		return 0, 0
	}
	var sumLat, sumLng float64
	for i := range lats {
		sumLat += lats[i]
		sumLng += lngs[i]
	}
	n := float64(len(lats))
	return sumLat / n, sumLng / n
}

// BoundingBox returns the latitude/longitude rectangle enclosing the given
// coordinates.
func BoundingBox(lats, lngs []float64) (minLat, minLng, maxLat, maxLng float64) {
	rect := s2.EmptyRect()
	for i := range lats {
		rect = rect.AddPoint(s2.LatLngFromDegrees(lats[i], lngs[i]))
	}
	if rect.IsEmpty() {
		return 0, 0, 0, 0
	}
	return rect.Lo().Lat.Degrees(), rect.Lo().Lng.Degrees(),
		rect.Hi().Lat.Degrees(), rect.Hi().Lng.Degrees()
}

// HaversineDistance calculates the great-circle distance between two points
// in meters.
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}
