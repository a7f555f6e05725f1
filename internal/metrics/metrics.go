// Package metrics records format machine activity as Prometheus metrics.
package metrics

import (
	"context"

	"github.com/aretw0/inkwell/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the machine metrics on a private registry.
type Collector struct {
	registry    *prometheus.Registry
	commands    *prometheus.CounterVec
	transitions *prometheus.CounterVec
	actions     *prometheus.HistogramVec
}

// New creates a collector with its metrics registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inkwell_commands_total",
				Help: "Total number of dispatched commands",
			},
			[]string{"command", "handled"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inkwell_transitions_total",
				Help: "Total number of region value changes",
			},
			[]string{"region", "to", "source"},
		),
		actions: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "inkwell_action_duration_seconds",
				Help:    "Duration of bound action executions",
				Buckets: []float64{.00001, .0001, .001, .01, .1},
			},
			[]string{"action"},
		),
	}
	c.registry.MustRegister(c.commands, c.transitions, c.actions)
	return c
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Hooks returns lifecycle hooks that feed the collector.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCommand: func(_ context.Context, e *domain.CommandEvent) {
			handled := "false"
			if e.Handled {
				handled = "true"
			}
			c.commands.WithLabelValues(string(e.Command), handled).Inc()
		},
		OnTransition: func(_ context.Context, e *domain.TransitionEvent) {
			source := "command"
			if e.Type == domain.EventSync {
				source = "sync"
			}
			c.transitions.WithLabelValues(string(e.Region), string(e.To), source).Inc()
		},
		OnAction: func(_ context.Context, e *domain.ActionRunEvent) {
			c.actions.WithLabelValues(e.Action).Observe(e.Duration.Seconds())
		},
	}
}
