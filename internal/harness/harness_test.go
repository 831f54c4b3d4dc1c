package harness_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pulsenet/internal/harness"
)

func TestScenarios(t *testing.T) {
	scenarios, err := harness.LoadScenarioDir(filepath.Join("testdata", "scenarios"))
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			out, err := harness.Run(sc)
			require.NoError(t, err)
			require.NoError(t, harness.Verify(sc, out))
			harness.AssertGolden(t, sc, out)
		})
	}
}

func TestLoadScenario_validation(t *testing.T) {
	writeScenario := func(t *testing.T, body string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "scenario.yaml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		return path
	}

	t.Run("missing name", func(t *testing.T) {
		_, err := harness.LoadScenario(writeScenario(t, "wiring: |\n  broadcaster -> a\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing name")
	})

	t.Run("missing wiring", func(t *testing.T) {
		_, err := harness.LoadScenario(writeScenario(t, "name: empty\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing wiring")
	})

	t.Run("trace presses defaults to one", func(t *testing.T) {
		sc, err := harness.LoadScenario(writeScenario(t, "name: ok\nwiring: |\n  broadcaster -> a\n  %a -> out\n"))
		require.NoError(t, err)
		assert.Equal(t, uint64(1), sc.TracePresses)
	})
}

func TestVerify_mismatch(t *testing.T) {
	sc := &harness.Scenario{
		Name:         "mismatch",
		Wiring:       "broadcaster -> a\n%a -> out\n",
		Presses:      1,
		TracePresses: 1,
		Expect:       &harness.ExpectClause{Low: 99, High: 0, Product: 0},
	}
	out, err := harness.Run(sc)
	require.NoError(t, err)

	err = harness.Verify(sc, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "low = 2, want 99")
}
