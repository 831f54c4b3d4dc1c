package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pulsenet/internal/circuit"
)

func TestPulseQueue_FIFO(t *testing.T) {
	q := newPulseQueue()
	pulses := []circuit.Pulse{
		{Source: "a", Destination: "b", Level: circuit.Low},
		{Source: "a", Destination: "c", Level: circuit.High},
		{Source: "b", Destination: "c", Level: circuit.Low},
	}
	for _, p := range pulses {
		q.enqueue(p)
	}
	require.Equal(t, 3, q.len())

	for _, want := range pulses {
		got, ok := q.dequeue()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := q.dequeue()
	assert.False(t, ok)
}

func TestPulseQueue_interleavedEnqueueDequeue(t *testing.T) {
	q := newPulseQueue()
	q.enqueue(circuit.Pulse{Source: "a", Destination: "b"})
	q.enqueue(circuit.Pulse{Source: "a", Destination: "c"})

	p, ok := q.dequeue()
	require.True(t, ok)
	assert.Equal(t, "b", p.Destination)

	// Enqueues after a partial drain still land behind older pulses.
	q.enqueue(circuit.Pulse{Source: "b", Destination: "d"})
	p, _ = q.dequeue()
	assert.Equal(t, "c", p.Destination)
	p, _ = q.dequeue()
	assert.Equal(t, "d", p.Destination)
	assert.Equal(t, 0, q.len())
}

func TestPulseQueue_reusableAfterDrain(t *testing.T) {
	q := newPulseQueue()
	for press := 0; press < 3; press++ {
		q.enqueue(circuit.Pulse{Source: "button", Destination: "broadcaster"})
		p, ok := q.dequeue()
		require.True(t, ok)
		assert.Equal(t, "broadcaster", p.Destination)
		assert.Equal(t, 0, q.len())
	}
}
