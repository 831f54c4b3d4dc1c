package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pulsenet/internal/circuit"
)

func TestCombine_lcmReduction(t *testing.T) {
	subs := []SubcircuitResult{
		{Root: "r1", Period: 3, Cycle: Cycle{Start: 0, End: 3, Period: 3}},
		{Root: "r2", Period: 4, Cycle: Cycle{Start: 0, End: 4, Period: 4}},
		{Root: "r3", Period: 6, Cycle: Cycle{Start: 0, End: 6, Period: 6}},
	}
	press, err := combine(subs)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), press)
}

func TestCombine_rejectsTransientPrefix(t *testing.T) {
	subs := []SubcircuitResult{
		{Root: "r1", Period: 3, Cycle: Cycle{Start: 0, End: 3, Period: 3}},
		{Root: "r2", Period: 4, Cycle: Cycle{Start: 2, End: 6, Period: 4}},
	}
	_, err := combine(subs)
	require.Error(t, err)
	assert.True(t, IsAssumptionViolated(err))

	var ae *Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "r2", ae.Module)
}

func TestFindCycle_limitSurfacesCycleNotFound(t *testing.T) {
	// A period-2 sub-circuit cannot recur within a single press; the
	// exhausted search must surface the internal-invariant error rather
	// than loop forever.
	prev := maxCyclePresses
	maxCyclePresses = 1
	defer func() { maxCyclePresses = prev }()

	net, err := circuit.Parse("broadcaster -> r\n%r -> c\n&c -> pen\n&pen -> rx")
	require.NoError(t, err)
	subs, err := Decompose(net, "rx")
	require.NoError(t, err)
	require.Len(t, subs, 1)

	_, err = FindCycle(subs[0])
	require.Error(t, err)
	var ae *Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, ErrCodeCycleNotFound, ae.Code)
}

func TestGCDAndLCM(t *testing.T) {
	data := []struct {
		a, b, gcd, lcm uint64
	}{
		{1, 1, 1, 1},
		{2, 4, 2, 4},
		{3, 4, 1, 12},
		{6, 8, 2, 24},
		{3947, 4021, 1, 3947 * 4021},
	}
	for _, d := range data {
		assert.Equal(t, d.gcd, gcd(d.a, d.b))
		assert.Equal(t, d.gcd, gcd(d.b, d.a))
		assert.Equal(t, d.lcm, lcm(d.a, d.b))
	}
	assert.Equal(t, uint64(0), lcm(0, 5))
}
