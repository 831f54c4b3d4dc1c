package cli

import (
	"fmt"
	"os"

	"github.com/roach88/pulsenet/internal/circuit"
)

// loadNetwork reads and parses a wiring file. Missing files are command
// errors (exit 2); malformed wiring is a validation failure (exit 1).
func loadNetwork(path string) (*circuit.Network, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", WrapExitError(ExitCommandError,
			fmt.Sprintf("cannot read wiring file %s", path), err)
	}
	text := string(data)
	net, err := circuit.Parse(text)
	if err != nil {
		return nil, "", WrapExitError(ExitFailure,
			fmt.Sprintf("malformed wiring in %s", path), err)
	}
	return net, text, nil
}
