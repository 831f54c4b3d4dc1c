package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wiringBroadcastLoop = `broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a
`

const wiringInterference = `broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> output
`

const wiringDualCounter = `broadcaster -> r1, r2
%r1 -> c1
&c1 -> pen
%r2 -> s2
%s2 -> c2
&c2 -> pen
&pen -> rx
`

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// writeWiring drops a wiring file into a temp dir and returns its path.
func writeWiring(t *testing.T, wiring string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wiring.txt")
	require.NoError(t, os.WriteFile(path, []byte(wiring), 0o644))
	return path
}

func TestCountCommand(t *testing.T) {
	path := writeWiring(t, wiringBroadcastLoop)

	out, err := execute(t, "count", "-i", path)
	require.NoError(t, err)
	assert.Equal(t, "presses=1000 low=8000 high=4000 product=32000000\n", out)
}

func TestCountCommand_customPresses(t *testing.T) {
	path := writeWiring(t, wiringBroadcastLoop)

	out, err := execute(t, "count", "-i", path, "--presses", "1")
	require.NoError(t, err)
	assert.Equal(t, "presses=1 low=8 high=4 product=32\n", out)
}

func TestCountCommand_jsonFormat(t *testing.T) {
	path := writeWiring(t, wiringInterference)

	out, err := execute(t, "count", "-i", path, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"product": 11687500`)
	assert.Contains(t, out, `"low": 4250`)
}

func TestCountCommand_missingFile(t *testing.T) {
	_, err := execute(t, "count", "-i", filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCountCommand_malformedWiring(t *testing.T) {
	path := writeWiring(t, "broadcaster -> a\nbogus line\n")

	_, err := execute(t, "count", "-i", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestTriggerCommand(t *testing.T) {
	path := writeWiring(t, wiringDualCounter)

	out, err := execute(t, "trigger", "-i", path)
	require.NoError(t, err)
	assert.Equal(t, "sink=rx press=4\n", out)
}

func TestTriggerCommand_unsupportedNetwork(t *testing.T) {
	path := writeWiring(t, wiringBroadcastLoop)

	_, err := execute(t, "trigger", "-i", path, "--sink", "a")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestTriggerCommand_persistsAndListsRuns(t *testing.T) {
	prev := runTokens
	runTokens = fixedTokens{"run-0001"}
	defer func() { runTokens = prev }()

	path := writeWiring(t, wiringDualCounter)
	db := filepath.Join(t.TempDir(), "runs.db")

	_, err := execute(t, "trigger", "-i", path, "--db", db)
	require.NoError(t, err)

	out, err := execute(t, "runs", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "run-0001")
	assert.Contains(t, out, "mode=trigger")
	assert.Contains(t, out, "answer=4")
}

func TestValidateCommand(t *testing.T) {
	path := writeWiring(t, wiringInterference)

	out, err := execute(t, "validate", "-i", path)
	require.NoError(t, err)
	assert.Equal(t, "modules=5 flip-flops=2 conjunctions=2 edges=6 sinks=1\n", out)
}

func TestTraceCommand(t *testing.T) {
	path := writeWiring(t, wiringInterference)

	out, err := execute(t, "trace", "-i", path)
	require.NoError(t, err)
	assert.Contains(t, out, "button -low-> broadcaster")
	assert.Contains(t, out, "con -low-> output")
	assert.Contains(t, out, "low=4 high=4\n")
}

func TestRootCommand_invalidFormat(t *testing.T) {
	path := writeWiring(t, wiringInterference)

	_, err := execute(t, "count", "-i", path, "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

// fixedTokens is a single-token store.TokenGenerator for CLI tests.
type fixedTokens []string

func (f fixedTokens) Generate() string { return f[0] }
