package pulsenet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCycle(t *testing.T) {
	tests := []struct {
		sample string
		want   Cycle
	}{
		{"sample1.txt", Cycle{Start: 0, Period: 1}},
		{"sample2.txt", Cycle{Start: 0, Period: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.sample, func(t *testing.T) {
			n := MustParse(loadSample(t, tt.sample).Lines())
			got, ok := n.FindCycle(100)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindCycleLimit(t *testing.T) {
	n := MustParse(loadSample(t, "sample2.txt").Lines())
	_, ok := n.FindCycle(3)
	assert.False(t, ok)
	assert.Equal(t, 3, n.Presses())
}

func TestFingerprint(t *testing.T) {
	lines := loadSample(t, "sample2.txt").Lines()
	a, b := MustParse(lines), MustParse(lines)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	a.Press()
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	b.Press()
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	a.Reset()
	assert.Equal(t, MustParse(lines).Fingerprint(), a.Fingerprint())
}
