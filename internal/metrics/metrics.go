// Package metrics defines the Prometheus collectors exported by the bot.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the bot's collectors and the registry they are registered on.
type Metrics struct {
	Registry *prometheus.Registry

	commands           *prometheus.CounterVec
	rolls              *prometheus.CounterVec
	invalidExpressions prometheus.Counter
	sendFailures       prometheus.Counter
}

// New creates the collectors on a fresh registry, along with the Go runtime
// and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		commands: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dicebot_commands_total",
				Help: "Total number of handled commands",
			},
			[]string{"command"},
		),
		rolls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dicebot_rolls_total",
				Help: "Total number of d100 rolls by result category",
			},
			[]string{"category"},
		),
		invalidExpressions: factory.NewCounter(prometheus.CounterOpts{
			Name: "dicebot_invalid_expressions_total",
			Help: "Total number of rejected dice expressions",
		}),
		sendFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "dicebot_send_failures_total",
			Help: "Total number of replies that could not be sent",
		}),
	}
}

// CommandHandled counts one handled command.
func (m *Metrics) CommandHandled(command string) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(command).Inc()
}

// RollClassified counts one d100 roll in category.
func (m *Metrics) RollClassified(category string) {
	if m == nil {
		return
	}
	m.rolls.WithLabelValues(category).Inc()
}

// InvalidExpression counts one rejected expression.
func (m *Metrics) InvalidExpression() {
	if m == nil {
		return
	}
	m.invalidExpressions.Inc()
}

// SendFailed counts one failed reply.
func (m *Metrics) SendFailed() {
	if m == nil {
		return
	}
	m.sendFailures.Inc()
}
