package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics stores the Prometheus collectors used across the bot.
type Metrics struct {
	Selections         *prometheus.CounterVec
	ConfirmedTotal     prometheus.Counter
	ValidationFailures *prometheus.CounterVec
	CancellationsTotal prometheus.Counter
	HandlerErrors      *prometheus.CounterVec
}

var (
	regOnce  sync.Once
	instance *Metrics
)

// Registry builds and registers the metrics singleton with the namespace.
func Registry(namespace string) *Metrics {
	regOnce.Do(func() {
		instance = &Metrics{
			Selections: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "deal_selections_total",
				Help:      "Total deal selections by outcome.",
			}, []string{"outcome"}),
			ConfirmedTotal: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "participations_confirmed_total",
				Help:      "Total participations that reached confirmed status.",
			}),
			ValidationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "field_validation_failures_total",
				Help:      "Total rejected field answers by field name.",
			}, []string{"field"}),
			CancellationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "participations_cancelled_total",
				Help:      "Total participations cancelled by users.",
			}),
			HandlerErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "handler_errors_total",
				Help:      "Total handler errors grouped by handler.",
			}, []string{"handler"}),
		}

		prometheus.MustRegister(
			instance.Selections,
			instance.ConfirmedTotal,
			instance.ValidationFailures,
			instance.CancellationsTotal,
			instance.HandlerErrors,
		)
	})
	return instance
}
