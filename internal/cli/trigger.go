package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/pulsenet/internal/analysis"
	"github.com/roach88/pulsenet/internal/circuit"
	"github.com/roach88/pulsenet/internal/store"
)

// DefaultSink is the conventional terminal module name.
const DefaultSink = "rx"

// TriggerOptions holds flags for the trigger command.
type TriggerOptions struct {
	*RootOptions
	Input    string
	Sink     string
	Database string
}

// TriggerSubcircuit is one sub-circuit line of the trigger output.
type TriggerSubcircuit struct {
	Root       string `json:"root"`
	End        string `json:"end"`
	CycleStart uint64 `json:"cycle_start"`
	CycleEnd   uint64 `json:"cycle_end"`
	Period     uint64 `json:"period"`
}

// TriggerResult is the trigger command's output payload.
type TriggerResult struct {
	Sink        string              `json:"sink"`
	Press       uint64              `json:"press"`
	Subcircuits []TriggerSubcircuit `json:"subcircuits"`
}

// NewTriggerCommand creates the trigger command (decomposition + cycle
// detection: first press at which the sink receives a low pulse).
func NewTriggerCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TriggerOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trigger",
		Short: "Find the first press at which the sink receives a low pulse",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrigger(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "wiring file (required)")
	cmd.Flags().StringVar(&opts.Sink, "sink", DefaultSink, "terminal module name")
	cmd.Flags().StringVar(&opts.Database, "db", "", "optional run-log database path")
	cmd.MarkFlagRequired("input")

	return cmd
}

func runTrigger(ctx context.Context, opts *TriggerOptions, w io.Writer) error {
	net, text, err := loadNetwork(opts.Input)
	if err != nil {
		return err
	}

	res, err := analysis.Analyze(net, opts.Sink)
	if err != nil {
		return WrapExitError(ExitFailure,
			fmt.Sprintf("trigger analysis of sink %q failed", opts.Sink), err)
	}

	result := TriggerResult{Sink: res.Sink, Press: res.Press}
	var subs []store.SubcircuitRecord
	for _, sr := range res.Subcircuits {
		result.Subcircuits = append(result.Subcircuits, TriggerSubcircuit{
			Root:       sr.Root,
			End:        sr.End,
			CycleStart: sr.Cycle.Start,
			CycleEnd:   sr.Cycle.End,
			Period:     sr.Period,
		})
		subs = append(subs, store.SubcircuitRecord{
			Root:       sr.Root,
			End:        sr.End,
			CycleStart: sr.Cycle.Start,
			CycleEnd:   sr.Cycle.End,
			Period:     sr.Period,
		})
	}

	if opts.Database != "" {
		run := store.Run{
			CreatedAt:    time.Now(),
			WiringDigest: circuit.WiringDigest(text),
			Mode:         store.ModeTrigger,
			Answer:       res.Press,
		}
		if err := persistRun(ctx, opts.Database, run, subs); err != nil {
			return err
		}
	}

	return writeResult(w, opts.Format, result, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, "sink=%s press=%d\n", result.Sink, result.Press); err != nil {
			return err
		}
		if opts.Verbose {
			for _, sc := range result.Subcircuits {
				if _, err := fmt.Fprintf(w, "  %s -> %s period=%d cycle=[%d,%d)\n",
					sc.Root, sc.End, sc.Period, sc.CycleStart, sc.CycleEnd); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
