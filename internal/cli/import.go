package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sree181/SMJ-sub004/internal/store"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	Database string
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <observations.yaml>",
		Short: "Load observations into the store",
		Long: `Validate an observation YAML file against the schema and load it
into the SQLite store. Imports are idempotent: re-importing the same file
inserts nothing.

Example:
  theoevo import --db ./corpus.db ./observations.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runImport(opts *ImportOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	observations, err := LoadObservations(path)
	if err != nil {
		_ = formatter.Error(ErrCodeSchemaError, "failed to load observations", err.Error())
		return WrapExitError(ExitCommandError, "failed to load observations", err)
	}
	slog.Info("observations loaded", "path", path, "count", len(observations))

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	inserted, err := st.WriteObservations(cmd.Context(), observations)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to write observations", err)
	}

	total, err := st.CountObservations(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to count observations", err)
	}

	slog.Info("import complete",
		"path", path,
		"inserted", inserted,
		"skipped", len(observations)-inserted,
		"total", total,
	)

	return formatter.Success(fmt.Sprintf("imported %d observations (%d new, %d total in store)",
		len(observations), inserted, total), "")
}
