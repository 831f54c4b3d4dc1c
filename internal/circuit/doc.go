// Package circuit defines the pulse-network data model: typed modules
// (broadcaster, flip-flop, conjunction), the immutable wiring graph built
// from a textual description, and canonical state digests.
//
// A Network is built once by Parse and then driven by the engine package;
// only module-internal state (the flip-flop bit, the conjunction memory)
// mutates after construction. The wiring itself never changes.
package circuit
