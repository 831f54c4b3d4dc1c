package harness

import (
	"fmt"

	"github.com/roach88/pulsenet/internal/analysis"
	"github.com/roach88/pulsenet/internal/circuit"
	"github.com/roach88/pulsenet/internal/engine"
)

// TraceEvent is one recorded pulse.
type TraceEvent struct {
	Seq         uint64 `json:"seq"`
	Press       uint64 `json:"press"`
	Source      string `json:"source"`
	Level       string `json:"level"`
	Destination string `json:"destination"`
}

// Outcome is the observed result of running a scenario.
type Outcome struct {
	Tally        engine.Tally
	TriggerPress uint64
	HasTrigger   bool
	Trace        []TraceEvent
}

// Run executes a scenario: parses the wiring, simulates the configured
// presses while recording the leading presses' pulses, and performs the
// trigger analysis when requested. The trigger analysis runs on a fresh
// copy so the recorded trace reflects an untouched network.
func Run(sc *Scenario) (*Outcome, error) {
	net, err := circuit.Parse(sc.Wiring)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	out := &Outcome{Trace: []TraceEvent{}}
	if sc.Presses > 0 {
		sim := engine.New(net, engine.WithObserver(func(seq, press uint64, p circuit.Pulse) {
			if press > sc.TracePresses {
				return
			}
			out.Trace = append(out.Trace, TraceEvent{
				Seq:         seq,
				Press:       press,
				Source:      p.Source,
				Level:       p.Level.String(),
				Destination: p.Destination,
			})
		}))
		out.Tally = sim.Run(sc.Presses)
	}

	if sc.Trigger != nil {
		fresh, err := circuit.Parse(sc.Wiring)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		press, err := analysis.FirstTriggerPress(fresh, sc.Trigger.Sink)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		out.TriggerPress = press
		out.HasTrigger = true
	}

	return out, nil
}

// Verify checks the outcome against the scenario's expectations.
func Verify(sc *Scenario, out *Outcome) error {
	if sc.Expect != nil {
		if out.Tally.Low != sc.Expect.Low {
			return fmt.Errorf("scenario %s: low = %d, want %d", sc.Name, out.Tally.Low, sc.Expect.Low)
		}
		if out.Tally.High != sc.Expect.High {
			return fmt.Errorf("scenario %s: high = %d, want %d", sc.Name, out.Tally.High, sc.Expect.High)
		}
		if out.Tally.Product() != sc.Expect.Product {
			return fmt.Errorf("scenario %s: product = %d, want %d", sc.Name, out.Tally.Product(), sc.Expect.Product)
		}
	}
	if sc.Trigger != nil && out.TriggerPress != sc.Trigger.Press {
		return fmt.Errorf("scenario %s: trigger press = %d, want %d", sc.Name, out.TriggerPress, sc.Trigger.Press)
	}
	return nil
}
