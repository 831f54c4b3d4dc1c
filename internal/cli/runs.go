package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/pulsenet/internal/store"
)

// RunsOptions holds flags for the runs command.
type RunsOptions struct {
	*RootOptions
	Database string
}

// RunSummary is one run line in the runs output.
type RunSummary struct {
	ID           string `json:"id"`
	CreatedAt    string `json:"created_at"`
	Mode         string `json:"mode"`
	Presses      uint64 `json:"presses"`
	Answer       uint64 `json:"answer"`
	WiringDigest string `json:"wiring_digest"`
}

// NewRunsCommand creates the runs command (list the run log, newest
// first).
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuns(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "run-log database path (required)")
	cmd.MarkFlagRequired("db")

	return cmd
}

func runRuns(ctx context.Context, opts *RunsOptions, w io.Writer) error {
	s, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot open run log", err)
	}
	defer s.Close()

	runs, err := s.ReadRuns(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot read run log", err)
	}

	summaries := make([]RunSummary, 0, len(runs))
	for _, run := range runs {
		summaries = append(summaries, RunSummary{
			ID:           run.ID,
			CreatedAt:    run.CreatedAt.UTC().Format(time.RFC3339),
			Mode:         run.Mode,
			Presses:      run.Presses,
			Answer:       run.Answer,
			WiringDigest: run.WiringDigest,
		})
	}

	return writeResult(w, opts.Format, summaries, func(w io.Writer) error {
		for _, s := range summaries {
			if _, err := fmt.Fprintf(w, "%s  %s  mode=%s presses=%d answer=%d\n",
				s.ID, s.CreatedAt, s.Mode, s.Presses, s.Answer); err != nil {
				return err
			}
		}
		if len(summaries) == 0 {
			if _, err := fmt.Fprintln(w, "no runs recorded"); err != nil {
				return err
			}
		}
		return nil
	})
}
