// Package analysis answers "first press at which the sink receives a low
// pulse" without simulating every press.
//
// It relies on a structural property of the network: the sink is fed by
// exactly one conjunction, and the broadcaster fans out into independent
// sub-circuits that each communicate with the rest of the network only
// through a single edge into that conjunction. Each sub-circuit is
// simulated in isolation until its internal state recurs; the recurrence
// periods are then combined with a least-common-multiple reduction.
//
// Networks without that shape are rejected with a typed error rather than
// solved slowly; this is an acceleration technique, not a general solver.
package analysis
