// Package colorscale maps element concentrations to marker colors using a
// sequential yellow-orange-red gradient fitted to the filtered value range.
package colorscale

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/geomapa/geochem-viewer-go/internal/models"
)

// Stops is the 9-stop YlOrRd sequential palette, light to dark.
var Stops = []string{
	"#ffffcc", "#ffeda0", "#fed976",
	"#feb24c", "#fd8d3c", "#fc4e2a",
	"#e31a1c", "#bd0026", "#800026",
}

// FallbackColor is returned for every value when the filtered values have no
// spread, so a degenerate range still renders visibly.
const FallbackColor = "#3388ff"

var (
	// ErrNoValues reports an empty value sequence; callers must skip scale
	// construction when the filtered set is empty.
	ErrNoValues = errors.New("colorscale: no values")
	// ErrInvalidRange guards the impossible max < min case.
	ErrInvalidRange = errors.New("colorscale: max is less than min")
)

type rgb struct{ r, g, b uint8 }

var stopRGB = mustParseStops(Stops)

// Scale is a pure value-to-color mapping over a fixed [min, max] interval.
// It is rebuilt for every selection and never mutated.
type Scale struct {
	min, max float64
	constant bool
}

// Build computes the scale for the given non-empty value sequence. Equal min
// and max (including a single value) yields the constant fallback scale.
func Build(values []float64) (*Scale, error) {
	if len(values) == 0 {
		return nil, ErrNoValues
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max < min {
		return nil, ErrInvalidRange
	}

	return &Scale{min: min, max: max, constant: max == min}, nil
}

// Color maps a concentration to a hex color. Values are clamped to
// [min, max] before interpolation.
func (s *Scale) Color(v float64) string {
	if s.constant {
		return FallbackColor
	}
	if v < s.min {
		v = s.min
	}
	if v > s.max {
		v = s.max
	}

	// Position along the gradient in units of stop segments.
	pos := (v - s.min) / (s.max - s.min) * float64(len(stopRGB)-1)
	seg := int(pos)
	if seg >= len(stopRGB)-1 {
		return Stops[len(Stops)-1]
	}
	t := pos - float64(seg)
	lo, hi := stopRGB[seg], stopRGB[seg+1]
	return fmt.Sprintf("#%02x%02x%02x", lerp(lo.r, hi.r, t), lerp(lo.g, hi.g, t), lerp(lo.b, hi.b, t))
}

// Legend returns the legend descriptor for the gradient, or nil for the
// constant fallback scale.
func (s *Scale) Legend(symbol string) *models.Legend {
	if s.constant {
		return nil
	}
	return &models.Legend{
		Min:     s.min,
		Max:     s.max,
		Stops:   Stops,
		Caption: fmt.Sprintf("Concentration of %s (ppm)", symbol),
	}
}

// Min returns the lower bound of the scale interval.
func (s *Scale) Min() float64 { return s.min }

// Max returns the upper bound of the scale interval.
func (s *Scale) Max() float64 { return s.max }

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

func mustParseStops(stops []string) []rgb {
	parsed := make([]rgb, len(stops))
	for i, s := range stops {
		if len(s) != 7 || s[0] != '#' {
			panic(fmt.Sprintf("colorscale: bad stop %q", s))
		}
		n, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			panic(fmt.Sprintf("colorscale: bad stop %q: %v", s, err))
		}
		parsed[i] = rgb{r: uint8(n >> 16), g: uint8(n >> 8), b: uint8(n)}
	}
	return parsed
}
