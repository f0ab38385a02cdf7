package pulsenet

import "fmt"

// Kind is the behaviour of a module.
type Kind uint8

const (
	Broadcaster Kind = iota
	FlipFlop
	Conjunction
)

func (k Kind) String() string {
	switch k {
	case Broadcaster:
		return "broadcaster"
	case FlipFlop:
		return "flip-flop"
	case Conjunction:
		return "conjunction"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// prefix returns the declaration prefix for k.
func (k Kind) prefix() string {
	switch k {
	case FlipFlop:
		return "%"
	case Conjunction:
		return "&"
	}
	return ""
}

// Module is a node of the network. Only the fields of its Kind are used.
type Module struct {
	Label   string
	Kind    Kind
	Outputs []string

	// FlipFlop.
	on Pulse

	// Conjunction. inputs is in wiring order; memory and firstHigh are
	// keyed by input label.
	inputs    []string
	memory    map[string]Pulse
	firstHigh map[string]int
}

func newModule(label string, kind Kind, outputs []string) *Module {
	m := &Module{
		Label:   label,
		Kind:    kind,
		Outputs: outputs,
	}
	if kind == Conjunction {
		m.memory = make(map[string]Pulse)
		m.firstHigh = make(map[string]int)
	}
	return m
}

// State reports the current flip-flop state. It is Low for other kinds.
func (m *Module) State() Pulse {
	return m.on
}

// Inputs returns the tracked inputs of a conjunction in wiring order.
func (m *Module) Inputs() []string {
	return m.inputs
}

// Remembered returns the last pulse a conjunction received from input.
func (m *Module) Remembered(input string) Pulse {
	return m.memory[input]
}

// FirstHigh returns the press at which input first sent a High pulse to
// this conjunction.
func (m *Module) FirstHigh(input string) (press int, ok bool) {
	press, ok = m.firstHigh[input]
	return press, ok
}

// addInput registers src as a tracked conjunction input. Repeated wires
// from the same source are tracked once.
func (m *Module) addInput(src string) {
	if _, ok := m.memory[src]; ok {
		return
	}
	m.inputs = append(m.inputs, src)
	m.memory[src] = Low
}

// flip applies a pulse to a flip-flop. High pulses are ignored.
func (m *Module) flip(p Pulse) (out Pulse, emit bool) {
	if p == High {
		return Low, false
	}
	m.on = !m.on
	return m.on, true
}

// conjoin applies a pulse from src to a conjunction during press and
// returns the pulse it emits.
func (m *Module) conjoin(press int, src string, p Pulse) Pulse {
	m.memory[src] = p
	if p == High {
		if _, ok := m.firstHigh[src]; !ok {
			m.firstHigh[src] = press
		}
	}
	for _, in := range m.inputs {
		if m.memory[in] == Low {
			return High
		}
	}
	return Low
}

// allHigh reports whether every tracked input has sent High at least once.
// It is false for a conjunction with no inputs.
func (m *Module) allHigh() bool {
	return len(m.inputs) > 0 && len(m.firstHigh) >= len(m.inputs)
}

func (m *Module) reset() {
	m.on = Low
	for in := range m.memory {
		m.memory[in] = Low
	}
	clear(m.firstHigh)
}
