package catalog

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	Books     prometheus.GaugeFunc
	Watchers  prometheus.Gauge
	Published *prometheus.CounterVec
	Overruns  prometheus.Counter
}

// NewMetrics registers the catalog collectors on reg. books reports the
// current catalog size at scrape time.
func NewMetrics(reg prometheus.Registerer, books func() int) *Metrics {
	m := &Metrics{
		Books: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "catalog_books",
				Help: "Books currently in the catalog",
			},
			func() float64 { return float64(books()) },
		),
		Watchers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "catalog_watchers",
			Help: "Live watch subscriptions",
		}),
		Published: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_events_published_total",
				Help: "Mutation events fanned out to watchers",
			},
			[]string{"kind"},
		),
		Overruns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalog_watch_overruns_total",
			Help: "Watchers dropped because their queue was full",
		}),
	}

	reg.MustRegister(m.Books, m.Watchers, m.Published, m.Overruns)
	return m
}

func (m *Metrics) setWatchers(n int) {
	if m == nil {
		return
	}
	m.Watchers.Set(float64(n))
}

func (m *Metrics) published(k EventKind) {
	if m == nil {
		return
	}
	m.Published.WithLabelValues(k.String()).Inc()
}

func (m *Metrics) overrun() {
	if m == nil {
		return
	}
	m.Overruns.Inc()
}
