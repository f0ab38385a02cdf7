package pulsenet

import "tailscale.com/util/deephash"

// snapshot is the mutable state of a network in declaration order.
type snapshot struct {
	FlipFlops []bool
	Memory    [][]bool
}

var hashSnapshot = deephash.HasherForType[snapshot]()

// Fingerprint returns a hash of every flip-flop state and conjunction
// memory. Two networks parsed from the same input have equal fingerprints
// exactly when their modules are in the same state.
func (n *Network) Fingerprint() deephash.Sum {
	var s snapshot
	for _, m := range n.order {
		switch m.Kind {
		case FlipFlop:
			s.FlipFlops = append(s.FlipFlops, bool(m.on))
		case Conjunction:
			mem := make([]bool, len(m.inputs))
			for i, in := range m.inputs {
				mem[i] = bool(m.memory[in])
			}
			s.Memory = append(s.Memory, mem)
		}
	}
	return hashSnapshot(&s)
}

// Cycle describes a repeating sequence of whole-network states.
type Cycle struct {
	// Start is the press count at which the repeated state first occurred.
	Start int
	// Period is the number of presses between repeats.
	Period int
}

// FindCycle presses until the network returns to a state it was in before,
// pressing at most limit times. The state before the first press counts.
func (n *Network) FindCycle(limit int) (Cycle, bool) {
	seen := map[deephash.Sum]int{n.Fingerprint(): n.presses}
	for range limit {
		n.Press()
		fp := n.Fingerprint()
		if at, ok := seen[fp]; ok {
			c := Cycle{Start: at, Period: n.presses - at}
			n.logger.Debug("state cycle", "start", c.Start, "period", c.Period)
			return c, true
		}
		seen[fp] = n.presses
	}
	return Cycle{}, false
}
