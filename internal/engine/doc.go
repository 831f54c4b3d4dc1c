// Package engine drives a circuit.Network through button presses.
//
// One press injects the seed pulse and then delivers pending pulses in
// strict FIFO order until the queue drains. FIFO (breadth-first) delivery
// is a correctness requirement, not an implementation detail: modules fan
// out to several destinations, and depth-first delivery would change
// which conjunction sees which input first within the same press,
// corrupting its memory.
//
// The engine is single-writer and synchronous. A press runs to completion
// on the calling goroutine; nothing blocks or yields mid-press.
package engine
