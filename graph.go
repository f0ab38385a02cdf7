package pulsenet

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// Wiring is the directed graph of a network's wires.
type Wiring struct {
	Nodes []string            // declared labels, in declaration order
	Edges map[string][]string // source -> outputs, in wire order
	preds map[string][]string
}

// Wiring returns the wire graph of n.
func (n *Network) Wiring() *Wiring {
	w := &Wiring{
		Edges: make(map[string][]string, len(n.order)),
		preds: make(map[string][]string),
	}
	for _, m := range n.order {
		w.Nodes = append(w.Nodes, m.Label)
		w.Edges[m.Label] = m.Outputs
		for _, out := range m.Outputs {
			if !slices.Contains(w.preds[out], m.Label) {
				w.preds[out] = append(w.preds[out], m.Label)
			}
		}
	}
	return w
}

// Predecessors returns the modules wired to label, in declaration order.
func (w *Wiring) Predecessors(label string) []string {
	return w.preds[label]
}

// Sinks returns the labels that receive wires but are never declared,
// sorted.
func (w *Wiring) Sinks() []string {
	sinks := map[string]bool{}
	for _, outs := range w.Edges {
		for _, o := range outs {
			if _, ok := w.Edges[o]; !ok {
				sinks[o] = true
			}
		}
	}
	keys := maps.Keys(sinks)
	slices.Sort(keys)
	return keys
}

// Reachable returns the set of labels reachable from a, including a.
func (w *Wiring) Reachable(a string) map[string]bool {
	visited := make(map[string]bool)
	q := NewQueue(a)
	q.While(func(v string) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for _, k := range w.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

// Mermaid renders the network as a Mermaid flowchart.
func (n *Network) Mermaid() string {
	w := n.Wiring()
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	for _, m := range n.order {
		opener, closer := "[", "]"
		switch m.Kind {
		case Broadcaster:
			opener, closer = "((", "))"
		case FlipFlop:
			opener, closer = "[/", "/]"
		case Conjunction:
			opener, closer = "{{", "}}"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s%s\"%s\n", mermaidID(m.Label), opener, m.Kind.prefix(), m.Label, closer)
	}
	for _, s := range w.Sinks() {
		fmt.Fprintf(&sb, "    %s([\"%s\"])\n", mermaidID(s), s)
	}
	for _, m := range n.order {
		for _, out := range m.Outputs {
			fmt.Fprintf(&sb, "    %s --> %s\n", mermaidID(m.Label), mermaidID(out))
		}
	}
	return sb.String()
}

// mermaidID makes label safe to use as a Mermaid node id.
func mermaidID(label string) string {
	var sb strings.Builder
	for _, r := range label {
		if r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}
	// Reserved words break the parser.
	if id := sb.String(); id != "end" && id != "graph" {
		return id
	}
	return "n_" + sb.String()
}
