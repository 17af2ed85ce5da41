package evolution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeEras() []Interval {
	return []Interval{
		interval("1990-1994", 1990, 1994,
			TheoryUsage{Name: "RBV", UsageCount: 15, PaperCount: 12},
			TheoryUsage{Name: "TCE", UsageCount: 12, PaperCount: 10},
			TheoryUsage{Name: "Agency", UsageCount: 8, PaperCount: 8},
			TheoryUsage{Name: "Institutional", UsageCount: 6, PaperCount: 5},
			TheoryUsage{Name: "DynamicCapabilities", UsageCount: 5, PaperCount: 5},
		),
		interval("1995-1999", 1995, 1999,
			TheoryUsage{Name: "RBV", UsageCount: 20, PaperCount: 16},
			TheoryUsage{Name: "TCE", UsageCount: 10, PaperCount: 9},
			TheoryUsage{Name: "Institutional", UsageCount: 9, PaperCount: 7},
		),
		interval("2000-2004", 2000, 2004,
			TheoryUsage{Name: "RBV", UsageCount: 18, PaperCount: 15},
			TheoryUsage{Name: "DynamicCapabilities", UsageCount: 14, PaperCount: 11},
			TheoryUsage{Name: "Upper Echelons", UsageCount: 6, PaperCount: 6},
		),
	}
}

func TestComputeEvolution_EndToEnd(t *testing.T) {
	result, err := ComputeEvolution(threeEras())
	require.NoError(t, err)
	require.Len(t, result.Intervals, 3)

	first := result.Intervals[0]
	assert.Equal(t, "1990-1994", first.Interval)
	assert.Equal(t, 5, first.TheoryCount)
	assert.InDelta(t, 0.9488, first.Diversity, 0.001)
	assert.Equal(t, 0.0, first.Concentration, "rank-formula Gini clamps to 0 here")
	assert.Equal(t, 1.0, first.FragmentationIndex)
	assert.Nil(t, first.Divergence, "first interval has no predecessor")
	assert.InDelta(t, 5.0/46.0, first.EmergenceRate, 1e-9)

	second := result.Intervals[1]
	require.NotNil(t, second.Divergence)
	assert.Greater(t, *second.Divergence, 0.0)
	assert.LessOrEqual(t, *second.Divergence, 1.0)
	assert.Zero(t, second.EmergenceRate, "no theory in the second era is new")

	third := result.Intervals[2]
	require.NotNil(t, third.Divergence)
	assert.InDelta(t, 1.0/38.0, third.EmergenceRate, 1e-9, "Upper Echelons is the only new name")

	// Wire payload carries the raw counts per theory.
	require.Contains(t, first.Theories, "RBV")
	assert.Equal(t, UsageDetail{UsageCount: 15, PaperCount: 12}, first.Theories["RBV"])
}

func TestComputeEvolution_SummaryAverages(t *testing.T) {
	result, err := ComputeEvolution(threeEras())
	require.NoError(t, err)

	var sumDiv, sumConc, sumFrag float64
	for _, m := range result.Intervals {
		sumDiv += m.Diversity
		sumConc += m.Concentration
		sumFrag += m.FragmentationIndex
	}

	assert.InDelta(t, sumDiv/3, result.Summary.AvgDiversity, 1e-12)
	assert.InDelta(t, sumConc/3, result.Summary.AvgConcentration, 1e-12)
	assert.InDelta(t, sumFrag/3, result.Summary.AvgFragmentation, 1e-12)
	assert.Contains(t, []Trend{TrendIncreasing, TrendDecreasing, TrendStable}, result.Summary.Trend)
}

func TestComputeEvolution_Empty(t *testing.T) {
	result, err := ComputeEvolution(nil)
	require.NoError(t, err)

	assert.Empty(t, result.Intervals)
	assert.Equal(t, TrendStable, result.Summary.Trend)
	assert.Zero(t, result.Summary.AvgDiversity)
}

func TestComputeEvolution_SingleInterval(t *testing.T) {
	result, err := ComputeEvolution(threeEras()[:1])
	require.NoError(t, err)

	require.Len(t, result.Intervals, 1)
	assert.Nil(t, result.Intervals[0].Divergence)
	assert.Equal(t, TrendStable, result.Summary.Trend, "one interval is insufficient for a trend")
}

func TestComputeEvolution_ParallelMatchesSequential(t *testing.T) {
	intervals := threeEras()

	sequential, err := New().ComputeEvolution(intervals)
	require.NoError(t, err)
	parallel, err := New(WithParallelism(4)).ComputeEvolution(intervals)
	require.NoError(t, err)

	assert.Equal(t, sequential, parallel,
		"distribution precompute must not change results, only scheduling")
}

func TestComputeEvolution_RejectsNegativeCounts(t *testing.T) {
	bad := threeEras()
	bad[1].Theories[0].UsageCount = -1

	result, err := ComputeEvolution(bad)
	assert.Nil(t, result, "no partial computation on invalid input")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, ErrCodeNegativeCount, ve.Code)
	assert.Equal(t, "1995-1999", ve.Interval)
	assert.Equal(t, "RBV", ve.Theory)
}

func TestComputeEvolution_RejectsDuplicateTheory(t *testing.T) {
	bad := []Interval{interval("1990-1994", 1990, 1994,
		TheoryUsage{Name: "RBV", UsageCount: 5},
		TheoryUsage{Name: "RBV", UsageCount: 3},
	)}

	_, err := ComputeEvolution(bad)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, ErrCodeDuplicateTheory, ve.Code)
}

func TestComputeEvolution_RejectsOutOfOrderIntervals(t *testing.T) {
	eras := threeEras()
	out := []Interval{eras[1], eras[0], eras[2]}

	_, err := ComputeEvolution(out)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, ErrCodeIntervalOrder, ve.Code)
}

func TestComputeEvolution_RejectsInvertedBounds(t *testing.T) {
	bad := []Interval{interval("broken", 1999, 1990)}

	_, err := ComputeEvolution(bad)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, ErrCodeIntervalBounds, ve.Code)
}

func TestComputeEvolution_TrackerNotSharedBetweenRuns(t *testing.T) {
	engine := New()
	eras := threeEras()

	first, err := engine.ComputeEvolution(eras)
	require.NoError(t, err)
	second, err := engine.ComputeEvolution(eras)
	require.NoError(t, err)

	// A leaked seen-set would zero the second run's first-interval rate.
	assert.Equal(t, first.Intervals[0].EmergenceRate, second.Intervals[0].EmergenceRate)
	assert.Equal(t, first, second)
}
