package pulsenet

import (
	"fmt"
	"strings"
)

// Builder constructs a Network in two phases. Declare registers modules and
// their outputs; Build then wires every conjunction to the modules that
// send to it, which is only possible once all declarations are known.
type Builder struct {
	n     *Network
	lines int
}

// NewBuilder returns an empty Builder.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{n: newNetwork(opts)}
}

// Declare parses and registers one declaration. lineNo is used in errors;
// pass 0 to number lines automatically. Blank lines are ignored.
func (b *Builder) Declare(lineNo int, line string) error {
	b.lines++
	if lineNo == 0 {
		lineNo = b.lines
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	m, err := b.parseLine(line)
	if err != nil {
		return &ParseError{Line: lineNo, Text: line, Reason: err.Error()}
	}
	if _, ok := b.n.modules[m.Label]; ok {
		return fmt.Errorf("line %d: %w: %q", lineNo, ErrDuplicate, m.Label)
	}
	b.n.modules[m.Label] = m
	b.n.order = append(b.n.order, m)
	return nil
}

func (b *Builder) parseLine(line string) (*Module, error) {
	decl, outs, ok := strings.Cut(line, "->")
	if !ok {
		return nil, fmt.Errorf("missing %q", "->")
	}
	if strings.Contains(outs, "->") {
		return nil, fmt.Errorf("more than one %q", "->")
	}
	decl = strings.TrimSpace(decl)

	var kind Kind
	label := decl
	switch {
	case strings.HasPrefix(decl, "%"):
		kind, label = FlipFlop, decl[1:]
	case strings.HasPrefix(decl, "&"):
		kind, label = Conjunction, decl[1:]
	case decl == b.n.broadcaster:
		kind = Broadcaster
	default:
		return nil, fmt.Errorf("untyped module %q", decl)
	}
	if label == "" {
		return nil, fmt.Errorf("empty label")
	}

	var outputs []string
	for _, o := range strings.Split(outs, ",") {
		if o = strings.TrimSpace(o); o != "" {
			outputs = append(outputs, o)
		}
	}
	return newModule(label, kind, outputs), nil
}

// Build wires conjunction inputs and returns the network. The Builder
// must not be used afterwards.
func (b *Builder) Build() (*Network, error) {
	n := b.n
	if m, ok := n.modules[n.broadcaster]; !ok || m.Kind != Broadcaster {
		return nil, ErrNoBroadcaster
	}
	for _, src := range n.order {
		for _, dst := range src.Outputs {
			if m, ok := n.modules[dst]; ok && m.Kind == Conjunction {
				m.addInput(src.Label)
			}
		}
	}
	w := n.Wiring()
	if n.feeder == "" {
		if preds := w.Predecessors(n.sink); len(preds) == 1 {
			n.feeder = preds[0]
		}
	}
	reach := w.Reachable(n.broadcaster)
	for _, m := range n.order {
		if !reach[m.Label] {
			n.logger.Warn("module unreachable from broadcaster", "module", m.Label)
		}
	}
	if f, ok := n.modules[n.feeder]; n.feeder != "" && (!ok || f.Kind != Conjunction) {
		n.logger.Warn("feeder is not a conjunction; cycle synthesis disabled", "feeder", n.feeder)
		n.feeder = ""
	}
	n.logger.Debug("built network",
		"modules", len(n.order),
		"sink", n.sink,
		"feeder", n.feeder,
	)
	b.n = nil
	return n, nil
}
