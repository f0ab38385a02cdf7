// Package metrics counts network activity with prometheus collectors and
// writes them in the text exposition format.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/maisem/pulsenet"
)

// Collector holds the pulsenet metrics on a private registry.
type Collector struct {
	reg *prometheus.Registry

	Pulses       *prometheus.CounterVec
	Presses      prometheus.Counter
	ModulePulses *prometheus.CounterVec
	Converged    prometheus.Gauge
}

// New returns a Collector with all metrics registered.
func New() *Collector {
	c := &Collector{
		reg: prometheus.NewRegistry(),
		Pulses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pulsenet_pulses_total",
				Help: "Pulses delivered, by level.",
			},
			[]string{"pulse"},
		),
		Presses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pulsenet_presses_total",
			Help: "Button presses.",
		}),
		ModulePulses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pulsenet_module_pulses_total",
				Help: "Pulses received, by target label, declared or not.",
			},
			[]string{"module"},
		),
		Converged: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pulsenet_converged_press",
			Help: "Press at which the sink first receives a low pulse, 0 if unknown.",
		}),
	}
	c.reg.MustRegister(c.Pulses, c.Presses, c.ModulePulses, c.Converged)
	return c
}

// Hooks returns callbacks that feed c from a network.
func (c *Collector) Hooks() pulsenet.Hooks {
	return pulsenet.Hooks{
		OnPress: func(int) {
			c.Presses.Inc()
		},
		OnPulse: func(e pulsenet.Event) {
			c.Pulses.WithLabelValues(e.Pulse.String()).Inc()
			c.ModulePulses.WithLabelValues(e.To).Inc()
		},
		OnConverged: func(press int) {
			c.Converged.Set(float64(press))
		},
	}
}

// Registry returns the registry holding c's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.reg
}

// WriteFile writes the current metric values to path.
func (c *Collector) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, c.reg)
}
