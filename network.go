// Package pulsenet simulates networks of flip-flop and conjunction modules
// exchanging low and high pulses, driven by button presses.
//
// A network is described one module per line:
//
//	broadcaster -> a, b
//	%a -> inv
//	&inv -> b, rx
//
// Pulses sent to a label that is never declared are absorbed. The sink
// label (rx by default) is watched for its first low pulse, and the
// conjunction feeding it is watched so that the press count can be
// synthesized from the periods of its inputs.
package pulsenet

import (
	"log/slog"
	"strings"

	"github.com/maisem/pulsenet/internal/logging"
)

const (
	// DefaultBroadcaster is the label of the module pressed by the button.
	DefaultBroadcaster = "broadcaster"
	// DefaultSink is the label watched for convergence.
	DefaultSink = "rx"

	// button is the source label of the press pulse.
	button = "button"
)

// Network is a wired set of modules. It is not safe for concurrent use.
type Network struct {
	modules map[string]*Module
	order   []*Module // declaration order

	broadcaster string
	sink        string
	feeder      string

	logger *slog.Logger
	hooks  []Hooks

	queue     Queue[signal]
	presses   int
	last      Tally
	converged int // 0 until found; presses start at 1
}

// Option configures a Network.
type Option func(*Network)

// WithBroadcaster sets the label of the broadcaster module.
func WithBroadcaster(label string) Option {
	return func(n *Network) { n.broadcaster = label }
}

// WithSink sets the label watched for the first low pulse.
func WithSink(label string) Option {
	return func(n *Network) { n.sink = label }
}

// WithFeeder sets the conjunction whose inputs are combined by LCM. If
// unset, it is the unique module wired to the sink, if any.
func WithFeeder(label string) Option {
	return func(n *Network) { n.feeder = label }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(n *Network) { n.logger = l }
}

// WithHooks adds observation callbacks.
func WithHooks(h ...Hooks) Option {
	return func(n *Network) { n.hooks = append(n.hooks, h...) }
}

func newNetwork(opts []Option) *Network {
	n := &Network{
		modules:     make(map[string]*Module),
		broadcaster: DefaultBroadcaster,
		sink:        DefaultSink,
		logger:      logging.NewNop(),
	}
	for _, o := range opts {
		o(n)
	}
	return n
}

// Parse builds a network from declaration lines. Blank lines are skipped.
func Parse(lines []string, opts ...Option) (*Network, error) {
	b := NewBuilder(opts...)
	for i, l := range lines {
		if err := b.Declare(i+1, l); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// ParseString is Parse over the lines of s.
func ParseString(s string, opts ...Option) (*Network, error) {
	return Parse(strings.Split(s, "\n"), opts...)
}

// MustParse is like Parse but panics on error.
func MustParse(lines []string, opts ...Option) *Network {
	return MustGet(Parse(lines, opts...))
}

// Module returns the declared module with the given label.
func (n *Network) Module(label string) (*Module, bool) {
	m, ok := n.modules[label]
	return m, ok
}

// Modules returns the modules in declaration order.
func (n *Network) Modules() []*Module {
	return n.order
}

// Sink returns the label watched for convergence.
func (n *Network) Sink() string { return n.sink }

// Feeder returns the conjunction whose inputs are combined by LCM, or ""
// if there is none.
func (n *Network) Feeder() string { return n.feeder }

// Presses returns the number of presses since construction or Reset.
func (n *Network) Presses() int { return n.presses }

// LastTally returns the pulses counted during the most recent press.
func (n *Network) LastTally() Tally { return n.last }

// Converged returns the press count at which the sink first receives a
// low pulse, if it is known yet.
func (n *Network) Converged() (int, bool) {
	return n.converged, n.converged != 0
}

// Reset returns every module to its initial state and clears the press
// counter and convergence result.
func (n *Network) Reset() {
	for _, m := range n.order {
		m.reset()
	}
	n.presses = 0
	n.last = Tally{}
	n.converged = 0
}
