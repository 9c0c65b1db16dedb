package pricing

import "github.com/prometheus/client_golang/prometheus"

const metricsNamespace = "planner"

type metrics struct {
	lookups     *prometheus.CounterVec
	comparisons *prometheus.CounterVec
	regions     prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer, source Source) *metrics {
	if reg == nil {
		return nil
	}
	constLabels := prometheus.Labels{"source": source.Name()}
	m := &metrics{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Name:        "price_lookups_total",
			Help:        "Hourly price lookups partitioned by result.",
			ConstLabels: constLabels,
		}, []string{"result"}),
		comparisons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Name:        "region_comparisons_total",
			Help:        "Cross-region comparisons partitioned by whether any region had a price.",
			ConstLabels: constLabels,
		}, []string{"result"}),
		regions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Name:        "known_regions",
			Help:        "Number of regions the price source can be queried for.",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(m.lookups, m.comparisons, m.regions)
	m.regions.Set(float64(len(source.Regions())))
	return m
}

func (m *metrics) observeLookup(p Price) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(resultLabel(p.Found())).Inc()
}

func (m *metrics) observeComparison(found int) {
	if m == nil {
		return
	}
	m.comparisons.WithLabelValues(resultLabel(found > 0)).Inc()
}

func resultLabel(found bool) string {
	if found {
		return "found"
	}
	return "not_found"
}
