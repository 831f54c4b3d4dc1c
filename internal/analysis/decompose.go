package analysis

import "github.com/roach88/pulsenet/internal/circuit"

// Subcircuit is an isolated piece of the wiring graph: the modules
// forward-reachable from one broadcaster output (the root), up to and
// including the single module (the end) that feeds the shared conjunction
// in front of the sink.
//
// Net holds deep copies, so driving a sub-circuit never disturbs the
// network it was cut from.
type Subcircuit struct {
	Root string
	End  string
	Net  *circuit.Network
}

// Decompose splits the network into independent sub-circuits feeding the
// named sink.
//
// Preconditions, checked in order:
//   - exactly one module lists the sink among its outputs (the
//     penultimate), and it is a conjunction;
//   - every input of the penultimate reaches exactly one broadcaster
//     output by walking input edges backward.
//
// Any violation returns an Error with ErrCodeDecompositionUnsupported.
func Decompose(net *circuit.Network, sink string) ([]Subcircuit, error) {
	bc, ok := net.Module(circuit.Broadcaster)
	if !ok {
		return nil, &Error{
			Code:    ErrCodeDecompositionUnsupported,
			Message: "network has no broadcaster",
		}
	}
	roots := bc.Outputs

	pen, err := penultimate(net, sink)
	if err != nil {
		return nil, err
	}

	subs := make([]Subcircuit, 0, len(pen.Inputs))
	for _, end := range pen.Inputs {
		root, err := findRoot(net, roots, end)
		if err != nil {
			return nil, err
		}
		subs = append(subs, Subcircuit{
			Root: root,
			End:  end,
			Net:  induced(net, root, end),
		})
	}
	return subs, nil
}

// penultimate locates the unique conjunction feeding the sink.
func penultimate(net *circuit.Network, sink string) (*circuit.Module, error) {
	var found *circuit.Module
	for _, name := range net.Names() {
		m, _ := net.Module(name)
		for _, out := range m.Outputs {
			if out != sink {
				continue
			}
			if found != nil {
				return nil, &Error{
					Code:    ErrCodeDecompositionUnsupported,
					Message: "sink " + sink + " is fed by more than one module",
					Module:  m.Name,
				}
			}
			found = m
		}
	}
	if found == nil {
		return nil, &Error{
			Code:    ErrCodeDecompositionUnsupported,
			Message: "no module feeds sink " + sink,
		}
	}
	if found.Kind != circuit.KindConjunction {
		return nil, &Error{
			Code:    ErrCodeDecompositionUnsupported,
			Message: "module feeding sink " + sink + " is a " + found.Kind.String() + ", not a conjunction",
			Module:  found.Name,
		}
	}
	return found, nil
}

// findRoot walks input edges backward from end until it reaches one of
// the broadcaster's outputs. A visited set guards against back-edges; the
// walk must terminate at exactly one root.
func findRoot(net *circuit.Network, roots []string, end string) (string, error) {
	visited := map[string]bool{end: true}
	pending := []string{end}

	for len(pending) > 0 {
		name := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if contains(roots, name) {
			return name, nil
		}

		m, ok := net.Module(name)
		if !ok {
			continue
		}
		for _, in := range m.Inputs {
			if visited[in] {
				continue
			}
			visited[in] = true
			pending = append(pending, in)
		}
	}

	return "", &Error{
		Code:    ErrCodeDecompositionUnsupported,
		Message: "no broadcaster output reaches " + end + " along input edges",
		Module:  end,
	}
}

// induced extracts the sub-network forward-reachable from root, stopping
// expansion at end: the end module is included but its outputs are not
// followed, which is what isolates the sub-circuit behind its single
// end edge.
func induced(net *circuit.Network, root, end string) *circuit.Network {
	var modules []*circuit.Module
	seen := make(map[string]bool)
	pending := []string{root, end}

	for len(pending) > 0 {
		name := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if seen[name] {
			continue
		}
		seen[name] = true

		m, ok := net.Module(name)
		if !ok {
			continue // external sink
		}
		modules = append(modules, m.Clone())

		if name == end {
			continue
		}
		for _, out := range m.Outputs {
			pending = append(pending, out)
		}
	}

	return circuit.NewNetwork(modules)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
