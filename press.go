package pulsenet

// signal is a pending pulse delivery.
type signal struct {
	from, to string
	pulse    Pulse
}

// Press pushes the button once and propagates every resulting pulse,
// breadth first. It returns the pulses sent during the press, counting
// the button's own low pulse to the broadcaster.
func (n *Network) Press() Tally {
	n.presses++
	n.firePress()

	var t Tally
	n.deliver(&t, signal{from: button, to: n.broadcaster, pulse: Low})
	for _, out := range n.modules[n.broadcaster].Outputs {
		n.queue.Push(signal{from: n.broadcaster, to: out, pulse: Low})
	}
	n.queue.While(func(s signal) bool {
		n.deliver(&t, s)
		m, ok := n.modules[s.to]
		if !ok {
			n.absorb(s)
			return true
		}
		switch m.Kind {
		case FlipFlop:
			if p, emit := m.flip(s.pulse); emit {
				n.send(m, p)
			}
		case Conjunction:
			n.send(m, m.conjoin(n.presses, s.from, s.pulse))
			if m.Label == n.feeder && m.allHigh() {
				n.synthesize(m)
			}
		case Broadcaster:
			// Only the button drives the broadcaster.
		}
		return true
	})
	n.last = t
	return t
}

func (n *Network) deliver(t *Tally, s signal) {
	t.count(s.pulse)
	n.firePulse(Event{Press: n.presses, From: s.from, To: s.to, Pulse: s.pulse})
}

func (n *Network) send(m *Module, p Pulse) {
	for _, out := range m.Outputs {
		n.queue.Push(signal{from: m.Label, to: out, pulse: p})
	}
}

// absorb handles a pulse to an undeclared label.
func (n *Network) absorb(s signal) {
	if s.to != n.sink || s.pulse != Low || n.converged != 0 {
		return
	}
	n.logger.Debug("sink received low pulse", "sink", s.to, "press", n.presses)
	n.setConverged(n.presses)
}

// synthesize records the convergence press as the LCM of the presses at
// which each input of the feeder first went high. Each input is assumed to
// repeat with that period.
func (n *Network) synthesize(m *Module) {
	if n.converged != 0 {
		return
	}
	periods := make([]uint64, 0, len(m.inputs))
	for _, in := range m.inputs {
		periods = append(periods, uint64(m.firstHigh[in]))
	}
	n.logger.Debug("feeder inputs cycled",
		"feeder", m.Label,
		"periods", periods,
		"press", n.presses,
	)
	n.setConverged(int(LCM(periods...)))
}

func (n *Network) setConverged(press int) {
	n.converged = press
	n.fireConverged()
}
