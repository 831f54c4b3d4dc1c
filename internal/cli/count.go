package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/pulsenet/internal/circuit"
	"github.com/roach88/pulsenet/internal/engine"
	"github.com/roach88/pulsenet/internal/store"
)

// DefaultPresses is the canonical Part-A press count.
const DefaultPresses = 1000

// CountOptions holds flags for the count command.
type CountOptions struct {
	*RootOptions
	Input    string
	Presses  uint64
	Database string
}

// CountResult is the count command's output payload.
type CountResult struct {
	Presses uint64 `json:"presses"`
	Low     uint64 `json:"low"`
	High    uint64 `json:"high"`
	Product uint64 `json:"product"`
}

// NewCountCommand creates the count command (bounded simulation: run N
// presses, report low*high).
func NewCountCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CountOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Run N button presses and report the pulse-count product",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "wiring file (required)")
	cmd.Flags().Uint64Var(&opts.Presses, "presses", DefaultPresses, "number of button presses")
	cmd.Flags().StringVar(&opts.Database, "db", "", "optional run-log database path")
	cmd.MarkFlagRequired("input")

	return cmd
}

func runCount(ctx context.Context, opts *CountOptions, w io.Writer) error {
	net, text, err := loadNetwork(opts.Input)
	if err != nil {
		return err
	}

	var simOpts []engine.Option
	if log := opts.Logger(); log != nil {
		simOpts = append(simOpts, engine.WithLogger(log))
	}
	sim := engine.New(net, simOpts...)
	tally := sim.Run(opts.Presses)

	result := CountResult{
		Presses: opts.Presses,
		Low:     tally.Low,
		High:    tally.High,
		Product: tally.Product(),
	}

	if opts.Database != "" {
		run := store.Run{
			CreatedAt:    time.Now(),
			WiringDigest: circuit.WiringDigest(text),
			Mode:         store.ModeCount,
			Presses:      opts.Presses,
			LowTotal:     tally.Low,
			HighTotal:    tally.High,
			Answer:       tally.Product(),
		}
		if err := persistRun(ctx, opts.Database, run, nil); err != nil {
			return err
		}
	}

	return writeResult(w, opts.Format, result, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "presses=%d low=%d high=%d product=%d\n",
			result.Presses, result.Low, result.High, result.Product)
		return err
	})
}

// runTokens generates run IDs; tests swap in a fixed generator.
var runTokens store.TokenGenerator = store.UUIDv7Generator{}

// persistRun writes a run record under a freshly generated run ID.
func persistRun(ctx context.Context, dbPath string, run store.Run, subs []store.SubcircuitRecord) error {
	s, err := store.Open(dbPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot open run log", err)
	}
	defer s.Close()

	run.ID = runTokens.Generate()
	for i := range subs {
		subs[i].RunID = run.ID
	}
	if err := s.WriteRun(ctx, run, subs); err != nil {
		return WrapExitError(ExitCommandError, "cannot record run", err)
	}
	return nil
}
