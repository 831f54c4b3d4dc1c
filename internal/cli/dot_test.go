package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pulsenet/internal/circuit"
)

func TestWriteDot(t *testing.T) {
	net, err := circuit.Parse(wiringInterference)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, writeDot(buf, net))

	g := goldie.New(t)
	g.Assert(t, "dot-interference", buf.Bytes())
}

func TestDotCommand(t *testing.T) {
	path := writeWiring(t, wiringInterference)

	out, err := execute(t, "dot", "-i", path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "dot-interference", []byte(out))
}
