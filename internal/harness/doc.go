// Package harness runs wiring conformance scenarios.
//
// A scenario is a YAML file bundling a wiring description with expected
// simulation results: pulse tallies after N presses and, optionally, the
// first-trigger press for a sink. The harness executes the scenario and
// records the pulse trace of the leading presses, which tests compare
// against golden files.
package harness
