package colorscale

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Run("empty values fail", func(t *testing.T) {
		_, err := Build(nil)
		require.ErrorIs(t, err, ErrNoValues)
	})

	t.Run("range endpoints map to the first and last stops", func(t *testing.T) {
		scale, err := Build([]float64{0, 25, 50, 100})
		require.NoError(t, err)

		assert.Equal(t, Stops[0], scale.Color(0))
		assert.Equal(t, Stops[len(Stops)-1], scale.Color(100))
	})

	t.Run("values are clamped to the scale interval", func(t *testing.T) {
		scale, err := Build([]float64{10, 90})
		require.NoError(t, err)

		assert.Equal(t, Stops[0], scale.Color(-100))
		assert.Equal(t, Stops[len(Stops)-1], scale.Color(1e9))
	})

	t.Run("interpolates linearly between stops", func(t *testing.T) {
		// Over [0, 8] each unit spans one stop segment; 0.5 lands halfway
		// between #ffffcc and #ffeda0.
		scale, err := Build([]float64{0, 8})
		require.NoError(t, err)

		assert.Equal(t, "#fff6b6", scale.Color(0.5))
	})

	t.Run("gradient is ordered along the palette", func(t *testing.T) {
		scale, err := Build([]float64{0, 100})
		require.NoError(t, err)

		// The YlOrRd green channel falls monotonically from light yellow to
		// dark red, so increasing concentrations must never raise it.
		prev := greenChannel(t, scale.Color(0))
		for v := 5.0; v <= 100; v += 5 {
			g := greenChannel(t, scale.Color(v))
			assert.LessOrEqual(t, g, prev, "green channel rose at %v", v)
			prev = g
		}
		assert.NotEqual(t, scale.Color(10), scale.Color(60))
	})

	t.Run("degenerate range returns the fallback color", func(t *testing.T) {
		scale, err := Build([]float64{7.5, 7.5, 7.5})
		require.NoError(t, err)

		for _, v := range []float64{0, 7.5, 100} {
			assert.Equal(t, FallbackColor, scale.Color(v))
		}
		assert.Nil(t, scale.Legend("Li"))
	})

	t.Run("single value returns the fallback color", func(t *testing.T) {
		scale, err := Build([]float64{3})
		require.NoError(t, err)

		assert.Equal(t, FallbackColor, scale.Color(3))
		assert.Nil(t, scale.Legend("Li"))
	})
}

func TestLegend(t *testing.T) {
	scale, err := Build([]float64{1.5, 20, 42})
	require.NoError(t, err)

	legend := scale.Legend("Cu")
	require.NotNil(t, legend)
	assert.Equal(t, 1.5, legend.Min)
	assert.Equal(t, 42.0, legend.Max)
	assert.Equal(t, Stops, legend.Stops)
	assert.Equal(t, "Concentration of Cu (ppm)", legend.Caption)
}

func greenChannel(t *testing.T, hex string) uint8 {
	t.Helper()
	require.Len(t, hex, 7)
	g, err := strconv.ParseUint(hex[3:5], 16, 8)
	require.NoError(t, err)
	return uint8(g)
}
