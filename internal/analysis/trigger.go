package analysis

import "github.com/roach88/pulsenet/internal/circuit"

// SubcircuitResult records one sub-circuit's discovered cycle.
type SubcircuitResult struct {
	Root   string
	End    string
	Cycle  Cycle
	Period uint64
}

// Result describes a completed trigger analysis.
type Result struct {
	Sink        string
	Press       uint64
	Subcircuits []SubcircuitResult
}

// Analyze computes the first press at which the sink receives a low
// pulse, by decomposing the network, finding each sub-circuit's period
// and combining the periods with an LCM reduction.
//
// The input network is not mutated; the decomposer works on copies.
func Analyze(net *circuit.Network, sink string) (*Result, error) {
	subs, err := Decompose(net, sink)
	if err != nil {
		return nil, err
	}

	res := &Result{Sink: sink}
	for _, sc := range subs {
		cyc, err := FindCycle(sc)
		if err != nil {
			return nil, err
		}
		res.Subcircuits = append(res.Subcircuits, SubcircuitResult{
			Root:   sc.Root,
			End:    sc.End,
			Cycle:  cyc,
			Period: cyc.Period,
		})
	}

	press, err := combine(res.Subcircuits)
	if err != nil {
		return nil, err
	}
	res.Press = press
	return res, nil
}

// FirstTriggerPress is the thin query form of Analyze.
func FirstTriggerPress(net *circuit.Network, sink string) (uint64, error) {
	res, err := Analyze(net, sink)
	if err != nil {
		return 0, err
	}
	return res.Press, nil
}

// combine folds the sub-circuit periods with lcm. The fold is only valid
// when every cycle starts at press 0; a transient prefix would shift the
// sub-circuit's firing press away from a multiple of its period, so it is
// rejected rather than silently mis-answered.
func combine(subs []SubcircuitResult) (uint64, error) {
	press := uint64(1)
	for _, sr := range subs {
		if sr.Cycle.Start != 0 {
			return 0, &Error{
				Code:    ErrCodeAssumptionViolated,
				Message: "sub-circuit cycle starts at press " + itoa(sr.Cycle.Start) + ", not 0",
				Module:  sr.Root,
			}
		}
		press = lcm(press, sr.Period)
	}
	return press, nil
}
