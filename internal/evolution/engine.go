package evolution

import (
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Engine computes evolution metrics over an ordered interval sequence.
//
// The engine itself holds only configuration; all per-invocation state (the
// emergence tracker, the previous interval's proportions) lives inside one
// ComputeEvolution call. A single Engine is therefore safe for concurrent
// use by multiple goroutines.
type Engine struct {
	workers int // distribution precompute goroutines; 1 = fully sequential
}

// Option configures an Engine.
type Option func(*Engine)

// WithParallelism enables concurrent precompute of per-interval distribution
// statistics using up to n goroutines. n < 1 selects runtime.NumCPU().
//
// Only the distribution stage parallelizes - it reads nothing across
// intervals. Divergence and emergence stay strictly sequential, consuming the
// precomputed distributions back in chronological order.
func WithParallelism(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = runtime.NumCPU()
		}
		e.workers = n
	}
}

// New creates an Engine. By default the whole pass runs sequentially.
func New(opts ...Option) *Engine {
	e := &Engine{workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ComputeEvolution runs the full analysis over intervals in chronological
// order and returns per-interval metrics plus the multi-interval summary.
//
// Pure and side-effect-free: the input is read-only, nothing is persisted,
// and no state survives the call. Invalid input (negative counts, duplicate
// theory names within an interval, non-monotonic ordering) fails immediately
// with a ValidationError and no partial results.
//
// An empty interval sequence is valid and yields an empty result with a
// stable trend.
func (e *Engine) ComputeEvolution(intervals []Interval) (*Result, error) {
	if err := validateIntervals(intervals); err != nil {
		return nil, err
	}

	distributions := e.computeDistributions(intervals)

	metrics := make([]IntervalMetrics, 0, len(intervals))
	diversitySeries := make([]float64, 0, len(intervals))
	tracker := NewEmergenceTracker()
	var prev *Distribution

	for i, iv := range intervals {
		dist := distributions[i]

		var divergence *float64
		if prev != nil {
			js := JensenShannon(prev.Proportions, dist.Proportions)
			divergence = &js
		}

		emergenceRate := tracker.Observe(iv)

		theories := make(map[string]UsageDetail, len(iv.Theories))
		for _, th := range iv.Theories {
			theories[th.Name] = UsageDetail{
				UsageCount:      th.UsageCount,
				PaperCount:      th.PaperCount,
				PhenomenonCount: th.PhenomenonCount,
			}
		}

		metrics = append(metrics, IntervalMetrics{
			Interval:           iv.Label,
			TheoryCount:        dist.TheoryCount,
			Diversity:          dist.Diversity,
			Concentration:      dist.Concentration,
			FragmentationIndex: dist.Fragmentation,
			Divergence:         divergence,
			EmergenceRate:      emergenceRate,
			Theories:           theories,
		})
		diversitySeries = append(diversitySeries, dist.Diversity)
		prev = &distributions[i]

		slog.Debug("interval processed",
			"interval", iv.Label,
			"theory_count", dist.TheoryCount,
			"diversity", dist.Diversity,
			"emergence_rate", emergenceRate,
		)
	}

	return &Result{
		Intervals: metrics,
		Summary:   summarize(metrics, diversitySeries),
	}, nil
}

// ComputeEvolution runs the analysis with default (sequential) settings.
func ComputeEvolution(intervals []Interval) (*Result, error) {
	return New().ComputeEvolution(intervals)
}

// computeDistributions derives each interval's distribution statistics.
// Intervals are independent at this stage, so with workers > 1 they are
// computed concurrently; results land in input order either way.
func (e *Engine) computeDistributions(intervals []Interval) []Distribution {
	distributions := make([]Distribution, len(intervals))

	if e.workers <= 1 || len(intervals) < 2 {
		for i, iv := range intervals {
			distributions[i] = ComputeDistribution(iv.Theories)
		}
		return distributions
	}

	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, iv := range intervals {
		i, iv := i, iv
		g.Go(func() error {
			distributions[i] = ComputeDistribution(iv.Theories)
			return nil
		})
	}
	// Workers write disjoint slots and never fail.
	_ = g.Wait()

	return distributions
}

// summarize averages the per-interval metrics and classifies the trend of
// the diversity series. Empty input yields zero averages and a stable trend.
func summarize(metrics []IntervalMetrics, diversity []float64) Summary {
	summary := Summary{Trend: EstimateTrend(diversity)}
	if len(metrics) == 0 {
		return summary
	}

	for _, m := range metrics {
		summary.AvgDiversity += m.Diversity
		summary.AvgConcentration += m.Concentration
		summary.AvgFragmentation += m.FragmentationIndex
	}
	n := float64(len(metrics))
	summary.AvgDiversity /= n
	summary.AvgConcentration /= n
	summary.AvgFragmentation /= n
	return summary
}

// validateIntervals rejects malformed input before any computation runs.
//
// Checks, in order per interval: bounds (end year >= start year), strictly
// increasing chronological ordering, non-negative counts, and unique theory
// names within the interval. The first defect found is returned.
func validateIntervals(intervals []Interval) error {
	prevStart := 0
	for i, iv := range intervals {
		if iv.EndYear < iv.StartYear {
			return newIntervalBoundsError(iv.Label)
		}
		if i > 0 && iv.StartYear <= prevStart {
			return newIntervalOrderError(iv.Label)
		}
		prevStart = iv.StartYear

		names := make(map[string]struct{}, len(iv.Theories))
		for _, th := range iv.Theories {
			if th.UsageCount < 0 || th.PaperCount < 0 || th.PhenomenonCount < 0 {
				return newNegativeCountError(iv.Label, th.Name)
			}
			if _, dup := names[th.Name]; dup {
				return newDuplicateTheoryError(iv.Label, th.Name)
			}
			names[th.Name] = struct{}{}
		}
	}
	return nil
}
