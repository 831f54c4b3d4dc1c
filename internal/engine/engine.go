package engine

import (
	"log/slog"

	"github.com/roach88/pulsenet/internal/circuit"
)

// Tally accumulates pulse counts by polarity.
type Tally struct {
	Low  uint64
	High uint64
}

// Total returns the number of pulses counted.
func (t Tally) Total() uint64 { return t.Low + t.High }

// Product returns low*high, the Part-A answer.
func (t Tally) Product() uint64 { return t.Low * t.High }

func (t *Tally) count(l circuit.Level) {
	if l == circuit.High {
		t.High++
	} else {
		t.Low++
	}
}

// Observer receives every pulse at the moment it is enqueued, stamped
// with its sequence number and the press that produced it. Observers must
// not mutate the network.
type Observer func(seq, press uint64, p circuit.Pulse)

// Simulator drives a Network through button presses.
//
// All mutation happens on the goroutine calling Press/Run; the simulator
// is deliberately not safe for concurrent use. Each press is total: it
// runs until the pulse queue drains.
type Simulator struct {
	net     *circuit.Network
	queue   *pulseQueue
	clock   *Clock
	seed    circuit.Pulse
	obs     Observer
	log     *slog.Logger
	presses uint64
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithObserver installs an observer for every enqueued pulse.
func WithObserver(obs Observer) Option {
	return func(s *Simulator) { s.obs = obs }
}

// WithLogger enables debug-level per-pulse logging.
func WithLogger(log *slog.Logger) Option {
	return func(s *Simulator) { s.log = log }
}

// WithSeed overrides the pulse injected at the start of each press.
// The cycle finder uses this to drive an isolated sub-circuit through its
// root, since the broadcaster stays behind in the full network.
func WithSeed(p circuit.Pulse) Option {
	return func(s *Simulator) { s.seed = p }
}

// New creates a Simulator over net. The default seed is the canonical
// button press: a low pulse from "button" to "broadcaster".
func New(net *circuit.Network, opts ...Option) *Simulator {
	s := &Simulator{
		net:   net,
		queue: newPulseQueue(),
		clock: NewClock(),
		seed: circuit.Pulse{
			Source:      circuit.Button,
			Destination: circuit.Broadcaster,
			Level:       circuit.Low,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Press runs one button press to completion and returns the press's
// pulse tally. The seed pulse is counted like any other.
func (s *Simulator) Press() Tally {
	s.presses++
	var tally Tally

	s.send(s.seed, &tally)
	for {
		p, ok := s.queue.dequeue()
		if !ok {
			break
		}
		m, ok := s.net.Module(p.Destination)
		if !ok {
			// External sink: tallied on enqueue, nothing to process.
			continue
		}
		level, emit := m.Process(p.Source, p.Level)
		if !emit {
			continue
		}
		for _, out := range m.Outputs {
			s.send(circuit.Pulse{Source: m.Name, Destination: out, Level: level}, &tally)
		}
	}

	return tally
}

// Run performs the given number of presses and returns the cumulative
// tally across all of them.
func (s *Simulator) Run(presses uint64) Tally {
	var total Tally
	for i := uint64(0); i < presses; i++ {
		t := s.Press()
		total.Low += t.Low
		total.High += t.High
	}
	return total
}

// Presses returns the number of presses performed so far.
func (s *Simulator) Presses() uint64 { return s.presses }

// Sequence returns the number of pulses enqueued so far.
func (s *Simulator) Sequence() uint64 { return s.clock.Current() }

func (s *Simulator) send(p circuit.Pulse, tally *Tally) {
	seq := s.clock.Next()
	tally.count(p.Level)
	if s.obs != nil {
		s.obs(seq, s.presses, p)
	}
	if s.log != nil {
		s.log.Debug("pulse",
			"seq", seq,
			"press", s.presses,
			"source", p.Source,
			"level", p.Level.String(),
			"destination", p.Destination,
		)
	}
	s.queue.enqueue(p)
}
