package aggregate

import (
	"fmt"
	"sort"

	"golang.org/x/text/unicode/norm"

	"github.com/sree181/SMJ-sub004/internal/evolution"
)

// DefaultWidth is the default interval width in years.
const DefaultWidth = 5

// Kind selects which category of observation to aggregate.
type Kind string

const (
	KindTheory     Kind = "theory"
	KindMethod     Kind = "method"
	KindPhenomenon Kind = "phenomenon"
)

// ValidKinds defines the allowed category kinds.
var ValidKinds = map[Kind]bool{
	KindTheory:     true,
	KindMethod:     true,
	KindPhenomenon: true,
}

// Valid reports whether k names a known category kind.
func (k Kind) Valid() bool {
	return ValidKinds[k]
}

// Observation is one mention of a named category in one paper.
// Phenomenon optionally names the phenomenon the mention was applied to;
// distinct non-empty values feed the category's phenomenon count.
type Observation struct {
	PaperID    string `json:"paper_id" yaml:"paper_id"`
	Year       int    `json:"year" yaml:"year"`
	Kind       Kind   `json:"kind" yaml:"kind"`
	Name       string `json:"name" yaml:"name"`
	Phenomenon string `json:"phenomenon,omitempty" yaml:"phenomenon,omitempty"`
}

// Aggregator buckets observations into fixed-width intervals.
type Aggregator struct {
	width int
}

// New creates an Aggregator with the given interval width in years.
// Width must be at least 1.
func New(width int) (*Aggregator, error) {
	if width < 1 {
		return nil, fmt.Errorf("interval width must be at least 1, got %d", width)
	}
	return &Aggregator{width: width}, nil
}

// bucket accumulates one category's usage within one window.
type bucket struct {
	usage     int
	papers    map[string]struct{}
	phenomena map[string]struct{}
}

// Aggregate partitions [startYear, endYear] into fixed-width windows and
// collapses the matching observations into one Interval per window, in
// chronological order.
//
// Only observations of the requested kind with a year inside the range
// participate. Category names are NFC-normalized before bucketing so that
// Unicode-variant spellings of the same name collapse into one category.
// Windows with no observations still appear, with zero theories - the
// engine treats them as degenerate distributions, not gaps.
//
// The final window is truncated at endYear when the range is not an exact
// multiple of the width.
func (a *Aggregator) Aggregate(observations []Observation, kind Kind, startYear, endYear int) ([]evolution.Interval, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown category kind %q", kind)
	}
	if endYear < startYear {
		return nil, fmt.Errorf("end year %d precedes start year %d", endYear, startYear)
	}

	windows := (endYear-startYear)/a.width + 1
	buckets := make([]map[string]*bucket, windows)
	for i := range buckets {
		buckets[i] = make(map[string]*bucket)
	}

	for _, obs := range observations {
		if obs.Kind != kind || obs.Year < startYear || obs.Year > endYear {
			continue
		}
		name := norm.NFC.String(obs.Name)
		if name == "" {
			continue
		}

		w := (obs.Year - startYear) / a.width
		b, ok := buckets[w][name]
		if !ok {
			b = &bucket{
				papers:    make(map[string]struct{}),
				phenomena: make(map[string]struct{}),
			}
			buckets[w][name] = b
		}
		b.usage++
		if obs.PaperID != "" {
			b.papers[obs.PaperID] = struct{}{}
		}
		if obs.Phenomenon != "" {
			b.phenomena[norm.NFC.String(obs.Phenomenon)] = struct{}{}
		}
	}

	intervals := make([]evolution.Interval, 0, windows)
	for w := 0; w < windows; w++ {
		ws := startYear + w*a.width
		we := ws + a.width - 1
		if we > endYear {
			we = endYear
		}

		theories := make([]evolution.TheoryUsage, 0, len(buckets[w]))
		for name, b := range buckets[w] {
			theories = append(theories, evolution.TheoryUsage{
				Name:            name,
				UsageCount:      b.usage,
				PaperCount:      len(b.papers),
				PhenomenonCount: len(b.phenomena),
			})
		}
		// Name order for deterministic output; the engine is order-blind
		// but golden files and humans are not.
		sort.Slice(theories, func(i, j int) bool { return theories[i].Name < theories[j].Name })

		intervals = append(intervals, evolution.Interval{
			Label:     fmt.Sprintf("%d-%d", ws, we),
			StartYear: ws,
			EndYear:   we,
			Theories:  theories,
		})
	}

	return intervals, nil
}
