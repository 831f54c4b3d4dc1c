package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/pulsenet/internal/circuit"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
	Input string
}

// ValidateResult is the validate command's output payload.
type ValidateResult struct {
	Modules      int    `json:"modules"`
	FlipFlops    int    `json:"flip_flops"`
	Conjunctions int    `json:"conjunctions"`
	Edges        int    `json:"edges"`
	Sinks        int    `json:"sinks"`
	WiringDigest string `json:"wiring_digest"`
}

// NewValidateCommand creates the validate command (parse the wiring and
// report its shape, or the offending line).
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Parse a wiring file and report its shape",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "wiring file (required)")
	cmd.MarkFlagRequired("input")

	return cmd
}

func runValidate(opts *ValidateOptions, w io.Writer) error {
	net, text, err := loadNetwork(opts.Input)
	if err != nil {
		return err
	}

	result := ValidateResult{WiringDigest: circuit.WiringDigest(text)}
	sinks := map[string]bool{}
	for _, name := range net.Names() {
		m, _ := net.Module(name)
		result.Modules++
		switch m.Kind {
		case circuit.KindFlipFlop:
			result.FlipFlops++
		case circuit.KindConjunction:
			result.Conjunctions++
		}
		result.Edges += len(m.Outputs)
		for _, out := range m.Outputs {
			if _, ok := net.Module(out); !ok {
				sinks[out] = true
			}
		}
	}
	result.Sinks = len(sinks)

	return writeResult(w, opts.Format, result, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "modules=%d flip-flops=%d conjunctions=%d edges=%d sinks=%d\n",
			result.Modules, result.FlipFlops, result.Conjunctions, result.Edges, result.Sinks)
		return err
	})
}
