package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/pulsenet/internal/circuit"
	"github.com/roach88/pulsenet/internal/engine"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Input   string
	Presses uint64
}

// TraceEvent is a single pulse in the trace timeline.
type TraceEvent struct {
	Seq         uint64 `json:"seq"`
	Press       uint64 `json:"press"`
	Source      string `json:"source"`
	Level       string `json:"level"`
	Destination string `json:"destination"`
}

// TraceResult holds the complete trace output.
type TraceResult struct {
	Presses  uint64       `json:"presses"`
	Timeline []TraceEvent `json:"timeline"`
	Low      uint64       `json:"low"`
	High     uint64       `json:"high"`
}

// NewTraceCommand creates the trace command (per-pulse timeline over the
// first N presses).
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print the pulse timeline for the first N presses",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "wiring file (required)")
	cmd.Flags().Uint64Var(&opts.Presses, "presses", 1, "number of presses to trace")
	cmd.MarkFlagRequired("input")

	return cmd
}

func runTrace(opts *TraceOptions, w io.Writer) error {
	net, _, err := loadNetwork(opts.Input)
	if err != nil {
		return err
	}

	result := TraceResult{Presses: opts.Presses, Timeline: []TraceEvent{}}
	sim := engine.New(net, engine.WithObserver(func(seq, press uint64, p circuit.Pulse) {
		result.Timeline = append(result.Timeline, TraceEvent{
			Seq:         seq,
			Press:       press,
			Source:      p.Source,
			Level:       p.Level.String(),
			Destination: p.Destination,
		})
	}))
	tally := sim.Run(opts.Presses)
	result.Low, result.High = tally.Low, tally.High

	return writeResult(w, opts.Format, result, func(w io.Writer) error {
		for _, e := range result.Timeline {
			if _, err := fmt.Fprintf(w, "%6d  press=%d  %s -%s-> %s\n",
				e.Seq, e.Press, e.Source, e.Level, e.Destination); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "low=%d high=%d\n", result.Low, result.High)
		return err
	})
}
