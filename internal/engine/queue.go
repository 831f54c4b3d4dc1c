package engine

import "github.com/roach88/pulsenet/internal/circuit"

// pulseQueue is an unbounded FIFO queue of pending pulses.
//
// The queue is unbounded so that cascading module firings can enqueue
// arbitrarily many pulses within a press without blocking. It preserves
// insertion order exactly; see the package comment for why that matters.
//
// Single-writer: only the press loop touches the queue, so there is no
// locking. The queue always drains before a press completes.
type pulseQueue struct {
	pulses []circuit.Pulse
}

func newPulseQueue() *pulseQueue {
	return &pulseQueue{pulses: make([]circuit.Pulse, 0, 64)} // pre-allocate for typical fan-out
}

// enqueue appends a pulse at the back of the queue.
func (q *pulseQueue) enqueue(p circuit.Pulse) {
	q.pulses = append(q.pulses, p)
}

// dequeue removes and returns the oldest pending pulse.
// Returns false when the queue is empty.
func (q *pulseQueue) dequeue() (circuit.Pulse, bool) {
	if len(q.pulses) == 0 {
		return circuit.Pulse{}, false
	}

	p := q.pulses[0]

	// Zero the slot so the backing array does not retain the pulse's
	// strings until reallocation.
	q.pulses[0] = circuit.Pulse{}

	if len(q.pulses) == 1 {
		// Last element: reset to the front of the backing array so the
		// next press reuses it instead of walking the array forever.
		q.pulses = q.pulses[:0]
	} else {
		q.pulses = q.pulses[1:]
	}

	return p, true
}

// len returns the number of pending pulses.
func (q *pulseQueue) len() int {
	return len(q.pulses)
}
