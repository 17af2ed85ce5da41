package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sree181/SMJ-sub004/internal/aggregate"
	"github.com/sree181/SMJ-sub004/internal/evolution"
	"github.com/sree181/SMJ-sub004/internal/store"
)

// EvolveOptions holds flags for the evolve command.
type EvolveOptions struct {
	*RootOptions
	Database  string
	Input     string
	Kind      string
	StartYear int
	EndYear   int
	Width     int
	Parallel  bool
}

// NewEvolveCommand creates the evolve command.
func NewEvolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "evolve",
		Short: "Compute evolution metrics over a year range",
		Long: `Aggregate observations into fixed-width intervals and compute diversity,
concentration, fragmentation, divergence, emergence, and trend.

Observations come from a SQLite store (--db) or directly from a YAML file
(--input). With --format json the result is emitted in the exact wire shape
the rendering layer consumes.

Examples:
  theoevo evolve --db ./corpus.db --start 1990 --end 2019 --format json
  theoevo evolve --input ./observations.yaml --kind method --start 1990 --end 2009`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvolve(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database")
	cmd.Flags().StringVar(&opts.Input, "input", "", "path to observation YAML file (bypasses the store)")
	cmd.Flags().StringVar(&opts.Kind, "kind", string(aggregate.KindTheory), "category kind (theory|method|phenomenon)")
	cmd.Flags().IntVar(&opts.StartYear, "start", 0, "first year of the range (required)")
	cmd.Flags().IntVar(&opts.EndYear, "end", 0, "last year of the range (required)")
	cmd.Flags().IntVar(&opts.Width, "width", aggregate.DefaultWidth, "interval width in years")
	cmd.Flags().BoolVar(&opts.Parallel, "parallel", false, "precompute distribution metrics concurrently")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	cmd.MarkFlagsMutuallyExclusive("db", "input")
	cmd.MarkFlagsOneRequired("db", "input")

	return cmd
}

func runEvolve(opts *EvolveOptions, cmd *cobra.Command) error {
	runID := uuid.Must(uuid.NewV7()).String()
	kind := aggregate.Kind(opts.Kind)
	if !kind.Valid() {
		return NewExitError(ExitCommandError, fmt.Sprintf("unknown category kind %q", opts.Kind))
	}

	slog.Info("evolve starting",
		"run_id", runID,
		"kind", kind,
		"start", opts.StartYear,
		"end", opts.EndYear,
		"width", opts.Width,
	)

	observations, err := fetchObservations(opts, cmd, kind)
	if err != nil {
		return err
	}
	slog.Debug("observations fetched", "run_id", runID, "count", len(observations))

	agg, err := aggregate.New(opts.Width)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid interval width", err)
	}
	intervals, err := agg.Aggregate(observations, kind, opts.StartYear, opts.EndYear)
	if err != nil {
		return WrapExitError(ExitCommandError, "aggregation failed", err)
	}

	var engineOpts []evolution.Option
	if opts.Parallel {
		engineOpts = append(engineOpts, evolution.WithParallelism(0))
	}
	result, err := evolution.New(engineOpts...).ComputeEvolution(intervals)
	if err != nil {
		return WrapExitError(ExitFailure, "evolution analysis failed", err)
	}

	slog.Info("evolve complete",
		"run_id", runID,
		"intervals", len(result.Intervals),
		"trend", result.Summary.Trend,
	)

	return writeResult(cmd, opts, result)
}

// fetchObservations reads from the store or directly from a YAML file.
func fetchObservations(opts *EvolveOptions, cmd *cobra.Command, kind aggregate.Kind) ([]aggregate.Observation, error) {
	if opts.Input != "" {
		observations, err := LoadObservations(opts.Input)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to load observations", err)
		}
		return observations, nil
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	observations, err := st.ReadRange(cmd.Context(), kind, opts.StartYear, opts.EndYear)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to read observations", err)
	}
	return observations, nil
}

// writeResult emits the analysis result.
//
// JSON output is the raw wire shape - no CLIResponse envelope. The field
// names and nesting are a compatibility contract with the rendering layer.
func writeResult(cmd *cobra.Command, opts *EvolveOptions, result *evolution.Result) error {
	out := cmd.OutOrStdout()

	if opts.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintln(out, renderText(result))
	return nil
}

// renderText produces the human-readable summary.
func renderText(result *evolution.Result) string {
	var b strings.Builder
	for _, m := range result.Intervals {
		divergence := "     -"
		if m.Divergence != nil {
			divergence = fmt.Sprintf("%.4f", *m.Divergence)
		}
		fmt.Fprintf(&b, "%-12s theories=%-3d diversity=%.4f concentration=%.4f fragmentation=%.4f divergence=%s emergence=%.4f\n",
			m.Interval, m.TheoryCount, m.Diversity, m.Concentration, m.FragmentationIndex, divergence, m.EmergenceRate)
	}
	fmt.Fprintf(&b, "summary: avg_diversity=%.4f avg_concentration=%.4f avg_fragmentation=%.4f trend=%s",
		result.Summary.AvgDiversity, result.Summary.AvgConcentration, result.Summary.AvgFragmentation, result.Summary.Trend)
	return b.String()
}
