package container

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "beanfactory"

type metrics struct {
	registrations prometheus.Counter
	overwrites    prometheus.Counter
	inits         prometheus.Counter
	optOuts       prometheus.Counter
	queries       *prometheus.CounterVec
	notifications *prometheus.CounterVec
	definitions   prometheus.Gauge
	instances     prometheus.Gauge
}

// newMetrics builds the registry collectors. A nil reg leaves them unregistered.
func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		registrations: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "registrations_total",
			Help:      "Bean definitions registered, including overwrites.",
		}),
		overwrites: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "overwrites_total",
			Help:      "Registrations that replaced an existing definition.",
		}),
		inits: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "inits_total",
			Help:      "Init rounds processed.",
		}),
		optOuts: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "provider_opt_outs_total",
			Help:      "Provider calls that returned no value.",
		}),
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "queries_total",
			Help:      "Request-reply operations served, by operation.",
		}, []string{"op"}),
		notifications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "notifications_total",
			Help:      "Lifecycle events dispatched to notifiers, by event.",
		}, []string{"event"}),
		definitions: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "definitions",
			Help:      "Registered bean definitions.",
		}),
		instances: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "instances",
			Help:      "Instantiated beans.",
		}),
	}
}
