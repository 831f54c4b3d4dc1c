package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/pulsenet/internal/circuit"
)

// DotOptions holds flags for the dot command.
type DotOptions struct {
	*RootOptions
	Input string
}

// NewDotCommand creates the dot command (graphviz export of the wiring).
func NewDotCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DotOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Export the wiring graph in graphviz dot format",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDot(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "wiring file (required)")
	cmd.MarkFlagRequired("input")

	return cmd
}

func runDot(opts *DotOptions, w io.Writer) error {
	net, _, err := loadNetwork(opts.Input)
	if err != nil {
		return err
	}
	return writeDot(w, net)
}

// writeDot renders the wiring, labeling flip-flops "%name" and
// conjunctions "&name"; external sinks appear plain with a distinct
// shape. Output order follows wiring declaration order, so the export
// is reproducible.
func writeDot(w io.Writer, net *circuit.Network) error {
	if _, err := fmt.Fprintln(w, "digraph pulsenet {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\trankdir=LR;"); err != nil {
		return err
	}

	sinkSeen := map[string]bool{}
	for _, name := range net.Names() {
		m, _ := net.Module(name)
		if _, err := fmt.Fprintf(w, "\t%q [shape=%s];\n", dotLabel(net, name), dotShape(m.Kind)); err != nil {
			return err
		}
		for _, out := range m.Outputs {
			if _, ok := net.Module(out); !ok && !sinkSeen[out] {
				sinkSeen[out] = true
				if _, err := fmt.Fprintf(w, "\t%q [shape=doublecircle];\n", out); err != nil {
					return err
				}
			}
		}
	}

	for _, name := range net.Names() {
		m, _ := net.Module(name)
		for _, out := range m.Outputs {
			if _, err := fmt.Fprintf(w, "\t%q -> %q;\n", dotLabel(net, name), dotLabel(net, out)); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

func dotLabel(net *circuit.Network, name string) string {
	m, ok := net.Module(name)
	if !ok {
		return name
	}
	switch m.Kind {
	case circuit.KindFlipFlop:
		return "%" + name
	case circuit.KindConjunction:
		return "&" + name
	}
	return name
}

func dotShape(k circuit.Kind) string {
	switch k {
	case circuit.KindBroadcaster:
		return "box"
	case circuit.KindFlipFlop:
		return "diamond"
	case circuit.KindConjunction:
		return "ellipse"
	}
	return "plaintext"
}
