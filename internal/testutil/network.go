package testutil

import (
	"testing"

	"github.com/roach88/pulsenet/internal/circuit"
)

// MustNetwork parses a wiring description or fails the test.
func MustNetwork(t *testing.T, wiring string) *circuit.Network {
	t.Helper()
	net, err := circuit.Parse(wiring)
	if err != nil {
		t.Fatalf("parse wiring: %v", err)
	}
	return net
}
