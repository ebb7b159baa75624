package mathops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatistics(t *testing.T) {
	t.Parallel()

	s, err := Statistics([]float64{4, 7, 2, 9, 3, 5, 8, 6, 1})
	require.NoError(t, err)

	assert.Equal(t, 9, s.Count)
	assert.InDelta(t, 5, s.Mean, 1e-12)
	assert.Equal(t, 5.0, s.Median)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
	assert.Equal(t, 8.0, s.Range)
	assert.Nil(t, s.Mode, "all values unique, no mode")
	assert.InDelta(t, 7.5, s.Variance, 1e-12)
	assert.InDelta(t, 2.7386127875258306, s.StdDev, 1e-12)
}

func TestStatisticsEvenMedian(t *testing.T) {
	t.Parallel()

	s, err := Statistics([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2.5, s.Median)
}

func TestStatisticsMode(t *testing.T) {
	t.Parallel()

	s, err := Statistics([]float64{1, 2, 2, 3})
	require.NoError(t, err)
	require.NotNil(t, s.Mode)
	assert.Equal(t, 2.0, *s.Mode)

	// Tied frequencies mean no unique mode.
	s, err = Statistics([]float64{1, 1, 2, 2})
	require.NoError(t, err)
	assert.Nil(t, s.Mode)
}

func TestStatisticsSingleValue(t *testing.T) {
	t.Parallel()

	s, err := Statistics([]float64{42})
	require.NoError(t, err)
	assert.Equal(t, 42.0, s.Mean)
	assert.Equal(t, 42.0, s.Median)
	assert.Equal(t, 0.0, s.Variance)
	assert.Equal(t, 0.0, s.StdDev)
	require.NotNil(t, s.Mode)
	assert.Equal(t, 42.0, *s.Mode)
}

func TestStatisticsEmpty(t *testing.T) {
	t.Parallel()

	_, err := Statistics(nil)
	var de *DomainError
	require.ErrorAs(t, err, &de)
}

func TestStatisticsDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := []float64{3, 1, 2}
	_, err := Statistics(in)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, in)
}
