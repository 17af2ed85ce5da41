package evolution

// EmergenceTracker accumulates the set of theory names observed across one
// sequential pass and computes each interval's emergence rate.
//
// The tracker is caller-owned and scoped to a single pass: ComputeEvolution
// creates a fresh one per invocation and discards it afterwards. It is NOT
// safe for concurrent use and must never be shared between invocations -
// a shared seen-set would leak "already seen" theories across unrelated
// requests.
type EmergenceTracker struct {
	seen map[string]struct{}
}

// NewEmergenceTracker creates a tracker with an empty seen-set. Against an
// empty seen-set every theory in the first observed interval counts as new.
func NewEmergenceTracker() *EmergenceTracker {
	return &EmergenceTracker{seen: make(map[string]struct{})}
}

// Observe computes the interval's emergence rate, then folds the interval's
// theory names into the seen-set.
//
// The rate is the number of never-before-seen theory names divided by the
// interval's total usage count - "new theories per usage", not per theory.
// Zero total usage is defined as rate 0.
//
// A name only emerges once it records usage: rows with a zero usage count
// neither count as new nor enter the seen-set, so the theory still emerges
// in the first interval that actually uses it. Because every new name then
// carries at least one usage, the rate stays within [0, 1].
//
// Order matters: intervals must be observed in chronological order, each
// exactly once.
func (t *EmergenceTracker) Observe(iv Interval) float64 {
	newNames := 0
	totalUsage := 0
	for _, th := range iv.Theories {
		totalUsage += th.UsageCount
		if th.UsageCount == 0 {
			continue
		}
		if _, ok := t.seen[th.Name]; !ok {
			newNames++
		}
	}

	// Fold names in only after counting, so a theory appearing for the
	// first time in this interval still counts as new above.
	for _, th := range iv.Theories {
		if th.UsageCount > 0 {
			t.seen[th.Name] = struct{}{}
		}
	}

	if totalUsage == 0 {
		return 0
	}
	return float64(newNames) / float64(totalUsage)
}

// SeenCount returns the number of distinct theory names observed so far.
// Used for diagnostics and tests.
func (t *EmergenceTracker) SeenCount() int {
	return len(t.seen)
}
