package pulsenet

// Event is a single pulse travelling along a wire.
type Event struct {
	Press int
	From  string
	To    string
	Pulse Pulse
}

// Hooks are callbacks fired while the network runs. Nil fields are skipped.
type Hooks struct {
	// OnPress fires at the start of each press.
	OnPress func(press int)
	// OnPulse fires as each pulse is delivered, in delivery order.
	OnPulse func(e Event)
	// OnConverged fires once, when the convergence press becomes known.
	OnConverged func(press int)
}

func (n *Network) firePress() {
	for _, h := range n.hooks {
		if h.OnPress != nil {
			h.OnPress(n.presses)
		}
	}
}

func (n *Network) firePulse(e Event) {
	for _, h := range n.hooks {
		if h.OnPulse != nil {
			h.OnPulse(e)
		}
	}
}

func (n *Network) fireConverged() {
	for _, h := range n.hooks {
		if h.OnConverged != nil {
			h.OnConverged(n.converged)
		}
	}
}
