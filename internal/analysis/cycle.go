package analysis

import (
	"github.com/roach88/pulsenet/internal/circuit"
	"github.com/roach88/pulsenet/internal/engine"
)

// maxCyclePresses bounds the cycle search. The state space is finite, so
// a recurrence must occur; hitting the bound means the snapshot encoding
// is broken, and the search fails with ErrCodeCycleNotFound instead of
// spinning forever. Var, not const, so tests can lower it.
var maxCyclePresses uint64 = 1 << 22

// Cycle describes a sub-circuit's recurrence: the press at which the
// repeated state was first seen and the press at which it recurred.
type Cycle struct {
	Start  uint64
	End    uint64
	Period uint64
}

// FindCycle drives the sub-circuit one press at a time, digesting its
// full internal state after each press, until a previously seen digest
// recurs.
//
// Presses are seeded straight into the root with a low pulse attributed
// to the broadcaster, mirroring the edge the sub-circuit was cut from.
// The sub-circuit's state is mutated; callers pass the Decompose copies.
func FindCycle(sc Subcircuit) (Cycle, error) {
	seen := map[string]uint64{sc.Net.Snapshot(): 0}

	sim := engine.New(sc.Net, engine.WithSeed(circuit.Pulse{
		Source:      circuit.Broadcaster,
		Destination: sc.Root,
		Level:       circuit.Low,
	}))

	for press := uint64(1); press <= maxCyclePresses; press++ {
		sim.Press()
		key := sc.Net.Snapshot()
		if start, ok := seen[key]; ok {
			return Cycle{Start: start, End: press, Period: press - start}, nil
		}
		seen[key] = press
	}

	return Cycle{}, &Error{
		Code:    ErrCodeCycleNotFound,
		Message: "no state recurrence observed; snapshot digest is likely broken",
		Module:  sc.Root,
	}
}
