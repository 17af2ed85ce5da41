package evolution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitSlope_LinearSeries(t *testing.T) {
	slope, ok := FitSlope([]float64{0.5, 0.55, 0.6, 0.65, 0.7})

	require.True(t, ok)
	assert.InDelta(t, 0.05, slope, 1e-9)
}

func TestFitSlope_InsufficientData(t *testing.T) {
	_, ok := FitSlope([]float64{0.5})
	assert.False(t, ok, "a single point defines no slope")

	_, ok = FitSlope(nil)
	assert.False(t, ok)
}

func TestEstimateTrend_Classification(t *testing.T) {
	testCases := []struct {
		name   string
		series []float64
		want   Trend
	}{
		{"increasing", []float64{0.5, 0.55, 0.6, 0.65, 0.7}, TrendIncreasing},
		{"decreasing", []float64{0.7, 0.65, 0.6, 0.55, 0.5}, TrendDecreasing},
		{"flat", []float64{0.6, 0.6, 0.6}, TrendStable},
		{"noise within threshold", []float64{0.6, 0.605, 0.6}, TrendStable},
		{"single interval", []float64{0.9}, TrendStable},
		{"empty", nil, TrendStable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EstimateTrend(tc.series))
		})
	}
}

func TestClassifyTrend_Threshold(t *testing.T) {
	assert.Equal(t, TrendStable, ClassifyTrend(0.01), "threshold itself is stable")
	assert.Equal(t, TrendStable, ClassifyTrend(-0.01))
	assert.Equal(t, TrendIncreasing, ClassifyTrend(0.011))
	assert.Equal(t, TrendDecreasing, ClassifyTrend(-0.011))
	assert.Equal(t, TrendStable, ClassifyTrend(0))
}
