package evolution

import (
	"math"
	"sort"
)

// Distribution holds the single-interval statistics derived from one
// interval's usage counts, plus the normalized proportions the divergence
// calculation consumes.
//
// INVARIANTS:
//   - Diversity and Concentration are each in [0, 1]
//   - Fragmentation == 1 - Concentration exactly
//   - Proportions of a non-empty interval sum to 1 (within float tolerance)
type Distribution struct {
	TheoryCount   int
	TotalUsage    int
	Proportions   map[string]float64
	Diversity     float64
	Concentration float64
	Fragmentation float64
}

// ComputeDistribution derives diversity, concentration, and fragmentation
// for one interval's theory usage counts.
//
// The result is independent of the order in which theories are listed:
// entropy is symmetric in its terms and the Gini computation sorts counts
// internally.
//
// Degenerate distributions are conventions, not errors: zero theories or a
// single theory yield diversity 0 and concentration 0 (one theory cannot be
// diverse, nor unequally distributed).
func ComputeDistribution(theories []TheoryUsage) Distribution {
	counts := make([]int, 0, len(theories))
	total := 0
	for _, th := range theories {
		counts = append(counts, th.UsageCount)
		total += th.UsageCount
	}

	proportions := make(map[string]float64, len(theories))
	if total > 0 {
		for _, th := range theories {
			proportions[th.Name] = float64(th.UsageCount) / float64(total)
		}
	}

	concentration := giniCoefficient(counts)
	return Distribution{
		TheoryCount:   len(theories),
		TotalUsage:    total,
		Proportions:   proportions,
		Diversity:     normalizedEntropy(counts, total),
		Concentration: concentration,
		Fragmentation: 1 - concentration,
	}
}

// normalizedEntropy computes Shannon entropy over the counts (natural log)
// normalized by ln(n) so the result lands in [0, 1].
//
// n <= 1 is defined as 0: a single theory cannot be diverse, and dividing by
// ln(1) = 0 is not an option. Zero-count terms contribute nothing.
func normalizedEntropy(counts []int, total int) float64 {
	n := len(counts)
	if n <= 1 || total <= 0 {
		return 0
	}

	var entropy float64
	for _, c := range counts {
		if c <= 0 {
			continue
		}
		p := float64(c) / float64(total)
		entropy -= p * math.Log(p)
	}

	return clamp01(entropy / math.Log(float64(n)))
}

// giniCoefficient computes the concentration of the counts using the
// rank-weighted formula on descending-sorted counts:
//
//	G = (2 * sum(i * x_i)) / (n * sum(x_i)) - (n+1)/n
//
// for 1-based rank i. The raw formula can come out slightly negative for
// near-uniform distributions (discrete-rank bias of this exact variant), so
// the result is clamped to [0, 1]. The clamp is mandatory, not defensive.
//
// n <= 1 or zero total usage is defined as 0.
func giniCoefficient(counts []int) float64 {
	n := len(counts)
	if n <= 1 {
		return 0
	}

	sorted := make([]int, n)
	copy(sorted, counts)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	total := 0
	weighted := 0
	for i, x := range sorted {
		total += x
		weighted += (i + 1) * x
	}
	if total == 0 {
		return 0
	}

	g := (2*float64(weighted))/(float64(n)*float64(total)) - float64(n+1)/float64(n)
	return clamp01(g)
}

// clamp01 restricts v to the closed unit interval.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
