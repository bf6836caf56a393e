package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPromObsMetrics(t *testing.T) {
	origReg := prometheus.DefaultRegisterer
	origGatherer := prometheus.DefaultGatherer
	t.Cleanup(func() {
		prometheus.DefaultRegisterer = origReg
		prometheus.DefaultGatherer = origGatherer
	})

	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg

	obs := NewPromObs()

	obs.IncCounter("spotlink_snapshots_assembled_total", 5)
	if got := testutil.ToFloat64(obs.counters["spotlink_snapshots_assembled_total"]); got != 5 {
		t.Fatalf("expected assembled counter 5, got %f", got)
	}

	obs.IncCounter("spotlink_queue_dropped_total", 2)
	if got := testutil.ToFloat64(obs.counters["spotlink_queue_dropped_total"]); got != 2 {
		t.Fatalf("expected queue drop counter 2, got %f", got)
	}

	obs.SetGauge("spotlink_journal_size_bytes", 42)
	if got := testutil.ToFloat64(obs.gauges["spotlink_journal_size_bytes"]); got != 42 {
		t.Fatalf("expected journal gauge 42, got %f", got)
	}

	obs.SetGauge("spotlink_clock_skew_seconds", -0.25)
	if got := testutil.ToFloat64(obs.gauges["spotlink_clock_skew_seconds"]); got != -0.25 {
		t.Fatalf("expected skew gauge -0.25, got %f", got)
	}

	obs.ObserveLatency("spotlink_assembly_latency_seconds", 0.5)
	hCollector := obs.histos["spotlink_assembly_latency_seconds"].(prometheus.Collector)
	if samples := testutil.CollectAndCount(hCollector); samples != 1 {
		t.Fatalf("expected latency histogram to record 1 sample, got %d", samples)
	}

	obs.IncCounter("not_registered_total", 1)
	obs.SetGauge("not_registered_gauge", 1)
	obs.ObserveLatency("not_registered_seconds", 1)
}
