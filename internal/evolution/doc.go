// Package evolution implements the theoretical evolution & divergence engine.
//
// The engine takes an ordered sequence of time intervals, each holding the
// aggregated usage counts of named theories, and computes per-interval
// distributional statistics plus a multi-interval summary:
//
//   - Diversity: normalized Shannon entropy of the usage distribution
//   - Concentration: Gini coefficient of the usage distribution
//   - Fragmentation: 1 - concentration
//   - Divergence: Jensen-Shannon divergence against the previous interval
//   - Emergence rate: share of usage attributable to never-before-seen theories
//   - Trend: least-squares classification of the diversity series
//
// ARCHITECTURE:
//
// Single Chronological Pass:
// ComputeEvolution validates its input, then walks the intervals exactly once
// in chronological order. Divergence compares each interval against its
// immediate predecessor's proportions, and the emergence tracker accumulates
// the set of theory names seen so far; both carry state only within one pass,
// so intervals cannot be reordered or processed twice.
//
// The per-interval distribution statistics depend on no cross-interval state.
// They may be precomputed concurrently (WithParallelism) before the sequential
// divergence/emergence pass consumes them back in chronological order.
//
// The computation is pure and request-scoped: no I/O, no retries, no state
// survives a call. Concurrent invocations must each use their own call to
// ComputeEvolution; nothing is shared between them.
//
// CRITICAL PATTERNS:
//
// Logarithm Base Consistency:
// Entropy and KL divergence both use the natural logarithm; the JS divergence
// is divided by ln 2 to land in [0, 1]. NEVER mix bases between the diversity
// and divergence computations.
//
// Deterministic Statistics:
// All statistics sort internally and are independent of the order in which a
// caller lists an interval's theories. Same input, same output, always.
package evolution
