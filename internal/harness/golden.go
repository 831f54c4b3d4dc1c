package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// TraceSnapshot is the golden-file form of a scenario's recorded trace.
type TraceSnapshot struct {
	ScenarioName string       `json:"scenario_name"`
	TracePresses uint64       `json:"trace_presses"`
	Trace        []TraceEvent `json:"trace"`
}

// AssertGolden compares the scenario's recorded trace against
// testdata/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func AssertGolden(t *testing.T, sc *Scenario, out *Outcome) {
	t.Helper()

	snapshot := TraceSnapshot{
		ScenarioName: sc.Name,
		TracePresses: sc.TracePresses,
		Trace:        out.Trace,
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		t.Fatalf("marshal trace snapshot: %v", err)
	}
	data = append(data, '\n')

	g := goldie.New(t)
	g.Assert(t, sc.Name, data)
}
