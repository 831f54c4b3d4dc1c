package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario defines a wiring conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Wiring is the inline wiring description.
	Wiring string `yaml:"wiring"`

	// Presses is the number of button presses to simulate. Zero skips
	// the counting run (trigger-only scenarios).
	Presses uint64 `yaml:"presses,omitempty"`

	// Expect validates the cumulative tally after Presses. Nil skips
	// tally validation.
	Expect *ExpectClause `yaml:"expect,omitempty"`

	// Trigger validates the first-trigger analysis. Nil skips it.
	Trigger *TriggerClause `yaml:"trigger,omitempty"`

	// TracePresses is the number of leading presses whose pulses are
	// recorded for golden comparison. Defaults to 1.
	TracePresses uint64 `yaml:"trace_presses,omitempty"`
}

// ExpectClause specifies the expected cumulative tally.
type ExpectClause struct {
	Low     uint64 `yaml:"low"`
	High    uint64 `yaml:"high"`
	Product uint64 `yaml:"product"`
}

// TriggerClause specifies the expected first-trigger press for a sink.
type TriggerClause struct {
	Sink  string `yaml:"sink"`
	Press uint64 `yaml:"press"`
}

// LoadScenario reads and validates a single scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if sc.Name == "" {
		return nil, fmt.Errorf("scenario %s: missing name", path)
	}
	if strings.TrimSpace(sc.Wiring) == "" {
		return nil, fmt.Errorf("scenario %s: missing wiring", path)
	}
	if sc.TracePresses == 0 {
		sc.TracePresses = 1
	}
	return &sc, nil
}

// LoadScenarioDir loads every *.yaml scenario under dir, sorted by file
// name for deterministic test ordering.
func LoadScenarioDir(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("glob scenarios: %w", err)
	}
	sort.Strings(paths)

	var scenarios []*Scenario
	for _, path := range paths {
		sc, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}
