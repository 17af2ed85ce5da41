package evolution

// TheoryUsage records how often one named theory appears within one interval.
//
// UsageCount and PaperCount may differ when a theory is counted more than once
// per paper upstream; all proportions in this package are computed over
// UsageCount.
type TheoryUsage struct {
	Name            string `json:"name"`
	UsageCount      int    `json:"usage_count"`
	PaperCount      int    `json:"paper_count"`
	PhenomenonCount int    `json:"phenomenon_count"`
}

// Interval is one fixed-width time bucket of aggregated theory usage.
// Immutable once constructed by the aggregator; the engine reads it only.
type Interval struct {
	Label     string        `json:"label"`
	StartYear int           `json:"start_year"`
	EndYear   int           `json:"end_year"`
	Theories  []TheoryUsage `json:"theories"`
}

// TotalUsage returns the sum of usage counts across the interval's theories.
func (iv Interval) TotalUsage() int {
	total := 0
	for _, th := range iv.Theories {
		total += th.UsageCount
	}
	return total
}

// UsageDetail is the per-theory payload of the wire shape.
type UsageDetail struct {
	UsageCount      int `json:"usage_count"`
	PaperCount      int `json:"paper_count"`
	PhenomenonCount int `json:"phenomenon_count"`
}

// IntervalMetrics is the engine's per-interval output.
//
// Field names and nesting are part of the wire contract - the rendering layer
// reads them by name. Divergence is nil (JSON null) for the first interval in
// a sequence, which has no predecessor to compare against.
type IntervalMetrics struct {
	Interval           string                 `json:"interval"`
	TheoryCount        int                    `json:"theory_count"`
	Diversity          float64                `json:"diversity"`
	Concentration      float64                `json:"concentration"`
	FragmentationIndex float64                `json:"fragmentation_index"`
	Divergence         *float64               `json:"divergence"`
	EmergenceRate      float64                `json:"emergence_rate"`
	Theories           map[string]UsageDetail `json:"theories"`
}

// Trend classifies the direction of the diversity series.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// Summary aggregates the per-interval metrics across the whole sequence.
type Summary struct {
	AvgDiversity     float64 `json:"avg_diversity"`
	AvgConcentration float64 `json:"avg_concentration"`
	AvgFragmentation float64 `json:"avg_fragmentation"`
	Trend            Trend   `json:"trend"`
}

// Result is the complete output of one engine invocation: chronological
// per-interval metrics plus one summary.
type Result struct {
	Intervals []IntervalMetrics `json:"intervals"`
	Summary   Summary           `json:"summary"`
}
