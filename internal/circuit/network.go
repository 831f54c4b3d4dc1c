package circuit

import "strings"

// Network maps module names to modules. The wiring is immutable after
// Parse; only module-internal state mutates as the engine drives presses.
//
// Names appearing in output lists without a module declaration are
// external sinks: pulses delivered to them are tallied by the engine and
// otherwise discarded.
type Network struct {
	modules map[string]*Module
	order   []string // declaration order, for deterministic iteration
}

// Parse builds a Network from a wiring description, one module per line:
//
//	broadcaster -> a, b, c
//	%a -> b
//	&inv -> a
//
// "%" declares a flip-flop, "&" a conjunction; the unprefixed name must
// be exactly "broadcaster". Returns a *WiringError on the first line that
// cannot be parsed.
func Parse(text string) (*Network, error) {
	n := &Network{modules: make(map[string]*Module)}

	for lineno, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		name, rhs, ok := strings.Cut(line, "->")
		if !ok {
			return nil, &WiringError{
				Code:    ErrCodeMissingArrow,
				Message: `missing "->" separator`,
				Line:    lineno + 1,
				Text:    line,
			}
		}
		name = strings.TrimSpace(name)

		var kind Kind
		switch {
		case strings.HasPrefix(name, "%"):
			kind, name = KindFlipFlop, name[1:]
		case strings.HasPrefix(name, "&"):
			kind, name = KindConjunction, name[1:]
		case name == Broadcaster:
			kind = KindBroadcaster
		default:
			return nil, &WiringError{
				Code:    ErrCodeUnknownKind,
				Message: "module name must be %-prefixed, &-prefixed or the broadcaster",
				Line:    lineno + 1,
				Text:    line,
			}
		}
		if name == "" {
			return nil, &WiringError{
				Code:    ErrCodeUnknownKind,
				Message: "empty module name",
				Line:    lineno + 1,
				Text:    line,
			}
		}
		if _, dup := n.modules[name]; dup {
			return nil, &WiringError{
				Code:    ErrCodeDuplicateModule,
				Message: "module " + name + " declared twice",
				Line:    lineno + 1,
				Text:    line,
			}
		}

		var outputs []string
		for _, out := range strings.Split(rhs, ",") {
			out = strings.TrimSpace(out)
			if out == "" {
				return nil, &WiringError{
					Code:    ErrCodeEmptyOutput,
					Message: "empty destination in output list",
					Line:    lineno + 1,
					Text:    line,
				}
			}
			outputs = append(outputs, out)
		}

		n.modules[name] = &Module{Name: name, Kind: kind, Outputs: outputs}
		n.order = append(n.order, name)
	}

	if _, ok := n.modules[Broadcaster]; !ok {
		return nil, &WiringError{
			Code:    ErrCodeNoBroadcaster,
			Message: "wiring declares no broadcaster",
		}
	}

	n.wireInputs()
	return n, nil
}

// wireInputs derives every module's input list from the output lists,
// in declaration order of the producers, and sizes conjunction memory.
func (n *Network) wireInputs() {
	producers := make(map[string][]string)
	for _, name := range n.order {
		for _, out := range n.modules[name].Outputs {
			if !contains(producers[out], name) {
				producers[out] = append(producers[out], name)
			}
		}
	}
	for _, name := range n.order {
		m := n.modules[name]
		m.Inputs = producers[name]
		if m.Kind == KindConjunction {
			m.memory = make([]bool, len(m.Inputs))
		}
	}
}

// NewNetwork assembles a Network from pre-built modules, preserving the
// given order. Used by the decomposer to form induced sub-circuits; the
// modules are used as-is, wiring and state included.
func NewNetwork(modules []*Module) *Network {
	n := &Network{modules: make(map[string]*Module, len(modules))}
	for _, m := range modules {
		n.modules[m.Name] = m
		n.order = append(n.order, m.Name)
	}
	return n
}

// Module returns the named module, or false for external sinks.
func (n *Network) Module(name string) (*Module, bool) {
	m, ok := n.modules[name]
	return m, ok
}

// Names returns module names in declaration order.
func (n *Network) Names() []string {
	return append([]string(nil), n.order...)
}

// Len returns the number of declared modules.
func (n *Network) Len() int { return len(n.modules) }

// Clone returns a deep copy: independent modules, independent state.
func (n *Network) Clone() *Network {
	c := &Network{
		modules: make(map[string]*Module, len(n.modules)),
		order:   append([]string(nil), n.order...),
	}
	for name, m := range n.modules {
		c.modules[name] = m.Clone()
	}
	return c
}

// Reset restores every module to its post-parse state.
func (n *Network) Reset() {
	for _, m := range n.modules {
		m.reset()
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
