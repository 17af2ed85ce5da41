// Package aggregate turns raw usage observations into the ordered interval
// sequence the evolution engine consumes.
//
// An observation is one mention of a named category (a theory, method, or
// phenomenon) in one paper in one year. The aggregator partitions the
// requested year range into fixed-width windows (5 years by default) and
// collapses observations into per-window usage counts: mentions, distinct
// papers, and distinct linked phenomena per category name.
//
// The same aggregation serves every category kind - the downstream
// statistics never care whether a name is a theory or a method. Selecting
// the kind is the only kind-specific step.
package aggregate
