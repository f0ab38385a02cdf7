package pulsenet

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSample(t *testing.T, name string) Sample {
	t.Helper()
	b, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	s, ok := ParseSample(string(b))
	require.True(t, ok, name)
	return s
}

// recorder collects delivered pulses as "from -pulse-> to".
type recorder struct {
	trace []string
}

func (r *recorder) hooks() Hooks {
	return Hooks{
		OnPulse: func(e Event) {
			r.trace = append(r.trace, fmt.Sprintf("%s -%s-> %s", e.From, e.Pulse, e.To))
		},
	}
}

func TestPressChain(t *testing.T) {
	// The button pulse counts as one low pulse, then one per wire.
	n, err := ParseString(`broadcaster -> a, b, c
%a -> b
%b -> c
%c ->
`)
	require.NoError(t, err)
	assert.Equal(t, Tally{Low: 4, High: 2}, n.Press())
	assert.Equal(t, Tally{Low: 4, High: 2}, n.LastTally())
	assert.Equal(t, 1, n.Presses())
	assert.Equal(t, 6, n.LastTally().Total())

	for _, label := range []string{"a", "b", "c"} {
		m, _ := n.Module(label)
		assert.Equal(t, High, m.State(), label)
	}
}

func TestPressBreadthFirst(t *testing.T) {
	var r recorder
	s := loadSample(t, "sample1.txt")
	n, err := Parse(s.Lines(), WithHooks(r.hooks()))
	require.NoError(t, err)

	assert.Equal(t, Tally{Low: 8, High: 4}, n.Press())
	assert.Equal(t, []string{
		"button -low-> broadcaster",
		"broadcaster -low-> a",
		"broadcaster -low-> b",
		"broadcaster -low-> c",
		"a -high-> b",
		"b -high-> c",
		"c -high-> inv",
		"inv -low-> a",
		"a -low-> b",
		"b -low-> c",
		"c -low-> inv",
		"inv -high-> a",
	}, r.trace)
}

func TestPressConjunctionOutputs(t *testing.T) {
	var r recorder
	n, err := ParseString(`broadcaster -> x, y
%x -> c
%y -> c
&c -> out
`, WithHooks(r.hooks()))
	require.NoError(t, err)
	n.Press()

	var toOut []string
	for _, l := range r.trace {
		if l == "c -high-> out" || l == "c -low-> out" {
			toOut = append(toOut, l)
		}
	}
	// One input high, then both.
	assert.Equal(t, []string{"c -high-> out", "c -low-> out"}, toOut)
}

func TestPressSecondSample(t *testing.T) {
	s := loadSample(t, "sample2.txt")
	n := MustParse(s.Lines())
	want := []Tally{
		{Low: 4, High: 4},
		{Low: 4, High: 2},
		{Low: 5, High: 3},
		{Low: 4, High: 2},
	}
	for i, w := range want {
		assert.Equal(t, w, n.Press(), "press %d", i+1)
	}
}

func TestPressDeterministic(t *testing.T) {
	s := loadSample(t, "sample2.txt")
	run := func(n *Network) []Tally {
		var out []Tally
		for range 50 {
			out = append(out, n.Press())
		}
		return out
	}
	n := MustParse(s.Lines())
	first := run(n)
	assert.Equal(t, first, run(MustParse(s.Lines())))

	n.Reset()
	assert.Equal(t, 0, n.Presses())
	assert.Equal(t, Tally{}, n.LastTally())
	assert.Equal(t, first, run(n))
}

func TestPressBroadcasterTargetAbsorbed(t *testing.T) {
	var r recorder
	n, err := ParseString("broadcaster -> a\n%a -> broadcaster\n", WithHooks(r.hooks()))
	require.NoError(t, err)
	assert.Equal(t, Tally{Low: 2, High: 1}, n.Press())
	assert.Equal(t, []string{
		"button -low-> broadcaster",
		"broadcaster -low-> a",
		"a -high-> broadcaster",
	}, r.trace)
}

func TestHooks(t *testing.T) {
	var presses, converged []int
	pulses := 0
	n, err := ParseString("broadcaster -> a\n%a -> rx\n", WithHooks(Hooks{
		OnPress:     func(p int) { presses = append(presses, p) },
		OnPulse:     func(Event) { pulses++ },
		OnConverged: func(p int) { converged = append(converged, p) },
	}, Hooks{}))
	require.NoError(t, err)

	n.Press()
	n.Press()
	n.Press()
	assert.Equal(t, []int{1, 2, 3}, presses)
	assert.Equal(t, 9, pulses)
	assert.Equal(t, []int{2}, converged, "fires once, on the first low pulse")
}
