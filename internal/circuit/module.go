package circuit

// Kind distinguishes module behaviors.
type Kind uint8

// Module kinds.
const (
	KindBroadcaster Kind = iota + 1
	KindFlipFlop
	KindConjunction
)

// String returns the kind name used in diagnostics and dot output.
func (k Kind) String() string {
	switch k {
	case KindBroadcaster:
		return "broadcaster"
	case KindFlipFlop:
		return "flip-flop"
	case KindConjunction:
		return "conjunction"
	}
	return "unknown"
}

// Module is a named node in the network. Its wiring (Inputs, Outputs) is
// fixed at parse time; only the behavioral state (the flip-flop bit, the
// conjunction memory) mutates afterwards.
//
// INVARIANT: for a conjunction, memory is a vector parallel to Inputs.
// Inputs are listed in wiring declaration order, which keeps memory
// indexing and snapshots deterministic across runs.
type Module struct {
	Name string
	Kind Kind

	// Inputs lists the modules that send pulses to this one, in wiring
	// declaration order.
	Inputs []string

	// Outputs lists the destinations of every emitted pulse, in
	// declaration order.
	Outputs []string

	on     bool   // flip-flop bit
	memory []bool // conjunction memory, parallel to Inputs
}

// Process applies one incoming pulse and returns the level broadcast to
// every output, along with whether a pulse is emitted at all.
//
// Side effects are confined to the receiving module's own state. All
// inter-module communication goes through the engine's queue; Process
// never touches another module.
func (m *Module) Process(source string, level Level) (Level, bool) {
	switch m.Kind {
	case KindBroadcaster:
		// Unconditionally relays low.
		return Low, true

	case KindFlipFlop:
		if level == High {
			// High pulses are absorbed.
			return Low, false
		}
		m.on = !m.on
		return Level(m.on), true

	case KindConjunction:
		if i := m.inputIndex(source); i >= 0 {
			m.memory[i] = bool(level)
		}
		for _, remembered := range m.memory {
			if !remembered {
				return High, true
			}
		}
		// Every remembered input is high: NAND goes low.
		return Low, true
	}
	return Low, false
}

// On reports the flip-flop bit. Always false for other kinds.
func (m *Module) On() bool { return m.on }

// Memory returns a copy of the conjunction memory, parallel to Inputs.
// Nil for other kinds.
func (m *Module) Memory() []bool {
	if m.memory == nil {
		return nil
	}
	mem := make([]bool, len(m.memory))
	copy(mem, m.memory)
	return mem
}

// Clone returns a deep copy of the module, wiring and state included.
func (m *Module) Clone() *Module {
	c := &Module{
		Name:    m.Name,
		Kind:    m.Kind,
		Inputs:  append([]string(nil), m.Inputs...),
		Outputs: append([]string(nil), m.Outputs...),
		on:      m.on,
	}
	if m.memory != nil {
		c.memory = make([]bool, len(m.memory))
		copy(c.memory, m.memory)
	}
	return c
}

// reset restores the module to its post-parse state.
func (m *Module) reset() {
	m.on = false
	for i := range m.memory {
		m.memory[i] = false
	}
}

func (m *Module) inputIndex(source string) int {
	for i, in := range m.Inputs {
		if in == source {
			return i
		}
	}
	return -1
}
