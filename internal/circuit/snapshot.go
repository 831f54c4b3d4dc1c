package circuit

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"

	"golang.org/x/text/unicode/norm"
)

// Domain prefixes for content-addressed digests. The version suffix
// enables future encoding migration.
const (
	domainSnapshot = "pulsenet/snapshot/v1"
	domainWiring   = "pulsenet/wiring/v1"
)

// Snapshot returns a digest of the full internal state of the network:
// every flip-flop bit and every conjunction memory vector.
//
// The encoding is order-independent: module names are sorted and
// NFC-normalized before hashing, so two networks holding identical state
// produce identical digests regardless of construction order. The cycle
// finder uses the digest as a map key to detect recurring configurations.
func (n *Network) Snapshot() string {
	names := make([]string, 0, len(n.modules))
	for name := range n.modules {
		names = append(names, name)
	}
	sort.Strings(names)

	h := sha256.New()
	h.Write([]byte(domainSnapshot))
	h.Write([]byte{0x00}) // null separator prevents domain/data ambiguity

	for _, name := range names {
		m := n.modules[name]
		h.Write([]byte(norm.NFC.String(name)))
		h.Write([]byte{0x00})
		switch m.Kind {
		case KindFlipFlop:
			h.Write([]byte{stateByte(m.on)})
		case KindConjunction:
			for _, remembered := range m.memory {
				h.Write([]byte{stateByte(remembered)})
			}
		}
		h.Write([]byte{0x1e}) // record separator between modules
	}

	return hex.EncodeToString(h.Sum(nil))
}

// WiringDigest returns a digest of a raw wiring description, used by the
// run-log store to correlate runs with their input.
func WiringDigest(text string) string {
	h := sha256.New()
	h.Write([]byte(domainWiring))
	h.Write([]byte{0x00})
	h.Write([]byte(norm.NFC.String(text)))
	return hex.EncodeToString(h.Sum(nil))
}

func stateByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
