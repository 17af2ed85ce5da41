package evolution

import (
	"math"
	"sort"
)

// JensenShannon computes the Jensen-Shannon divergence between two proportion
// vectors, keyed by theory name. The support is the union of both maps; a
// theory absent from one side has proportion 0 there.
//
// KL terms use the natural logarithm and the result is divided by ln 2, so
// the divergence lands in [0, 1]. The mixture M = (P+Q)/2 is at least half of
// either side wherever that side is positive, so no log of zero can occur.
//
// Properties: symmetric, zero iff P == Q, bounded in [0, 1].
func JensenShannon(prev, curr map[string]float64) float64 {
	names := make([]string, 0, len(prev)+len(curr))
	seen := make(map[string]struct{}, len(prev)+len(curr))
	for name := range prev {
		names = append(names, name)
		seen[name] = struct{}{}
	}
	for name := range curr {
		if _, ok := seen[name]; !ok {
			names = append(names, name)
		}
	}
	// Deterministic accumulation order. Float addition is not associative,
	// so the union must be walked in a fixed order for reproducible output.
	sort.Strings(names)

	var js float64
	for _, name := range names {
		p := prev[name]
		q := curr[name]
		m := 0.5 * (p + q)
		if p > 0 {
			js += 0.5 * p * math.Log(p/m)
		}
		if q > 0 {
			js += 0.5 * q * math.Log(q/m)
		}
	}

	return clamp01(js / math.Ln2)
}
