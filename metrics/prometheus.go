package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector counts session actions by outcome. It satisfies
// service.ActionObserver.
type Collector struct {
	actions *prometheus.CounterVec
}

// NewCollector creates the counters and registers them with reg.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	c := &Collector{
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "session_actions_total",
				Help:      "Total number of session actions per action and outcome",
			},
			[]string{"action", "outcome"},
		),
	}
	reg.MustRegister(c.actions)
	return c
}

func (c *Collector) ObserveAction(action, outcome string) {
	c.actions.WithLabelValues(action, outcome).Inc()
}
