package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 2.5, Mean([]float64{1, 2, 3, 4}))
	assert.Zero(t, Mean(nil))
}

func TestStdDev(t *testing.T) {
	assert.InDelta(t, 2.0, StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 0.2)
	assert.Zero(t, StdDev([]float64{5}))
}

func TestPercentile(t *testing.T) {
	values := []float64{4, 1, 3, 2}

	assert.Equal(t, 2.5, Percentile(values, 50))
	assert.Equal(t, 1.0, Percentile(values, 0))
	assert.Equal(t, 4.0, Percentile(values, 100))
	assert.Equal(t, 1.75, Percentile(values, 25))
	// Input must stay unsorted.
	assert.Equal(t, []float64{4, 1, 3, 2}, values)
}

func TestSummarize(t *testing.T) {
	t.Run("known values", func(t *testing.T) {
		s := Summarize([]float64{1, 2, 3, 4, 5})

		assert.Equal(t, 5, s.Count)
		assert.Equal(t, 1.0, s.Min)
		assert.Equal(t, 5.0, s.Max)
		assert.Equal(t, 3.0, s.Mean)
		assert.Equal(t, 3.0, s.Median)
		assert.Equal(t, 2.0, s.P25)
		assert.Equal(t, 4.0, s.P75)
	})

	t.Run("empty values", func(t *testing.T) {
		assert.Zero(t, Summarize(nil).Count)
	})
}
