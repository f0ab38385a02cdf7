package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maisem/pulsenet"
)

const sample1 = `broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a
`

func TestCollectorCountsMatchTally(t *testing.T) {
	c := New()
	n, err := pulsenet.ParseString(sample1, pulsenet.WithHooks(c.Hooks()))
	require.NoError(t, err)

	var total pulsenet.Tally
	for range 4 {
		total = total.Add(n.Press())
	}

	assert.Equal(t, 4.0, testutil.ToFloat64(c.Presses))
	assert.Equal(t, float64(total.Low), testutil.ToFloat64(c.Pulses.WithLabelValues("low")))
	assert.Equal(t, float64(total.High), testutil.ToFloat64(c.Pulses.WithLabelValues("high")))
	// The button pulse reaches the broadcaster once per press.
	assert.Equal(t, 4.0, testutil.ToFloat64(c.ModulePulses.WithLabelValues("broadcaster")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.Converged))
}

func TestCollectorConverged(t *testing.T) {
	c := New()
	n, err := pulsenet.ParseString("broadcaster -> rx\n", pulsenet.WithHooks(c.Hooks()))
	require.NoError(t, err)
	n.Press()
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Converged))
}

func TestWriteFile(t *testing.T) {
	c := New()
	n, err := pulsenet.ParseString(sample1, pulsenet.WithHooks(c.Hooks()))
	require.NoError(t, err)
	n.Press()

	path := filepath.Join(t.TempDir(), "pulsenet.prom")
	require.NoError(t, c.WriteFile(path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `pulsenet_pulses_total{pulse="low"} 8`)
	assert.Contains(t, string(b), `pulsenet_pulses_total{pulse="high"} 4`)
	assert.Contains(t, string(b), "pulsenet_presses_total 1")
}

func TestCollectorRegistry(t *testing.T) {
	c := New()
	n, err := pulsenet.ParseString("broadcaster -> a\n%a -> rx\n", pulsenet.WithHooks(c.Hooks()))
	require.NoError(t, err)
	n.Press()
	n.Press()

	count, err := testutil.GatherAndCount(c.Registry(), "pulsenet_pulses_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per pulse level")

	// Undeclared targets are counted under their label.
	assert.Equal(t, 2.0, testutil.ToFloat64(c.ModulePulses.WithLabelValues("rx")))
	count, err = testutil.GatherAndCount(c.Registry(), "pulsenet_module_pulses_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count, "broadcaster, a and rx")
}
