package pulsenet

const (
	// DefaultPresses is the number of presses summed by PulseProduct.
	DefaultPresses = 1000
	// DefaultLimit bounds the extra presses spent by Converge.
	DefaultLimit = 10000
)

// PulseProduct presses the button the given number of times and returns
// the total low pulses multiplied by the total high pulses.
func (n *Network) PulseProduct(presses int) int {
	var total Tally
	for range presses {
		total = total.Add(n.Press())
	}
	n.logger.Debug("pulse totals", "presses", presses, "low", total.Low, "high", total.High)
	return total.Product()
}

// Converge keeps pressing until the press at which the sink first
// receives a low pulse is known, giving up after limit more presses.
// The result may be synthesized from the feeder's input periods rather
// than observed directly.
func (n *Network) Converge(limit int) (press int, ok bool) {
	for range limit {
		if n.converged != 0 {
			break
		}
		n.Press()
	}
	if n.converged == 0 {
		n.logger.Debug("no convergence", "limit", limit, "presses", n.presses)
	}
	return n.Converged()
}
