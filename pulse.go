package pulsenet

// Pulse is the signal carried on a wire.
type Pulse bool

const (
	Low  Pulse = false
	High Pulse = true
)

func (p Pulse) String() string {
	if p == High {
		return "high"
	}
	return "low"
}

// Tally counts the pulses sent during one or more presses.
type Tally struct {
	Low, High int
}

func (t *Tally) count(p Pulse) {
	if p == High {
		t.High++
	} else {
		t.Low++
	}
}

// Add returns the element-wise sum of t and o.
func (t Tally) Add(o Tally) Tally {
	return Tally{Low: t.Low + o.Low, High: t.High + o.High}
}

// Total returns the number of pulses in t.
func (t Tally) Total() int {
	return Sum(t.Low, t.High)
}

// Product returns Low*High.
func (t Tally) Product() int {
	return t.Low * t.High
}
