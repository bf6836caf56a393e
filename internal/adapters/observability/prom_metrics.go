package observability

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/maskor/spotlink/internal/ports"
)

type PromObs struct {
	counters map[string]prometheus.Counter
	gauges   map[string]prometheus.Gauge
	histos   map[string]prometheus.Observer
}

func NewPromObs() *PromObs {
	assembled := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "spotlink_snapshots_assembled_total",
		Help: "Total robot state snapshots successfully assembled.",
	})
	failures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "spotlink_assembly_failures_total",
		Help: "Assembly attempts aborted by fetch, timesync, or decode failures.",
	})
	published := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "spotlink_snapshots_published_total",
		Help: "Total snapshots delivered to sinks.",
	})
	queueDrops := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "spotlink_queue_dropped_total",
		Help: "Snapshots lost to queue backpressure policies.",
	})
	journalGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "spotlink_journal_size_bytes",
		Help: "Size of the snapshot journal on disk.",
	})
	queueGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "spotlink_queue_length",
		Help: "Current number of snapshots buffered in the in-memory queue.",
	})
	skewGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "spotlink_clock_skew_seconds",
		Help: "Latest estimated offset between local and robot clocks.",
	})
	assemblyLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "spotlink_assembly_latency_seconds",
		Help:    "Latency of one full fetch + translate assembly call.",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	})
	publishLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "spotlink_publish_latency_seconds",
		Help:    "Latency from dequeued snapshot to sink commit.",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	})

	prometheus.MustRegister(assembled, failures, published, queueDrops,
		journalGauge, queueGauge, skewGauge, assemblyLatency, publishLatency)

	return &PromObs{
		counters: map[string]prometheus.Counter{
			"spotlink_snapshots_assembled_total": assembled,
			"spotlink_assembly_failures_total":   failures,
			"spotlink_snapshots_published_total": published,
			"spotlink_queue_dropped_total":       queueDrops,
		},
		gauges: map[string]prometheus.Gauge{
			"spotlink_journal_size_bytes": journalGauge,
			"spotlink_queue_length":       queueGauge,
			"spotlink_clock_skew_seconds": skewGauge,
		},
		histos: map[string]prometheus.Observer{
			"spotlink_assembly_latency_seconds": assemblyLatency,
			"spotlink_publish_latency_seconds":  publishLatency,
		},
	}
}

func (p *PromObs) LogInfo(msg string, fields ...ports.Field) {}

func (p *PromObs) LogError(msg string, err error, fields ...ports.Field) {
	if err != nil {
		log.Printf("ERROR: %s: %v", msg, err)
	}
}

func (p *PromObs) LogCritical(msg string, err error, fields ...ports.Field) {
	if err != nil {
		log.Printf("CRITICAL: %s: %v", msg, err)
	}
}

func (p *PromObs) IncCounter(name string, v float64) {
	if c, ok := p.counters[name]; ok {
		c.Add(v)
	}
}

func (p *PromObs) ObserveLatency(name string, seconds float64) {
	if h, ok := p.histos[name]; ok {
		h.Observe(seconds)
	}
}

func (p *PromObs) SetGauge(name string, v float64) {
	if g, ok := p.gauges[name]; ok {
		g.Set(v)
	}
}
