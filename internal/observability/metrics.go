package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics holds the Prometheus counters and histograms for one aggregation
// run. Each Metrics instance carries its own registry: a batch job has no
// scrape endpoint, so the registry exists to be pushed (and to keep tests
// free of duplicate-registration panics).
type Metrics struct {
	FilesProcessed prometheus.Counter
	FilesSkipped   prometheus.Counter
	RowsRead       prometheus.Counter
	RowsTracked    prometheus.Counter
	ResultsEmitted prometheus.Counter

	FileProcessingDuration prometheus.Histogram

	registry *prometheus.Registry
}

// NewMetrics creates and registers all pipeline metrics on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FilesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "election_etl",
			Name:      "files_processed_total",
			Help:      "Input files successfully aggregated.",
		}),
		FilesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "election_etl",
			Name:      "files_skipped_total",
			Help:      "Input files skipped due to parse or column errors.",
		}),
		RowsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "election_etl",
			Name:      "rows_read_total",
			Help:      "Raw rows read from input files.",
		}),
		RowsTracked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "election_etl",
			Name:      "rows_tracked_total",
			Help:      "Rows matching a tracked statewide contest.",
		}),
		ResultsEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "election_etl",
			Name:      "county_results_total",
			Help:      "County contest results written to the document.",
		}),
		FileProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "election_etl",
			Name:      "file_processing_duration_seconds",
			Help:      "Duration of one file's extract-aggregate pass.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.FilesProcessed,
		m.FilesSkipped,
		m.RowsRead,
		m.RowsTracked,
		m.ResultsEmitted,
		m.FileProcessingDuration,
	)

	return m
}

// Push delivers the run's metrics to a Prometheus Pushgateway under the given
// job name. Batch jobs cannot be scraped, so metrics are pushed once at the
// end of the run.
func (m *Metrics) Push(url, job string) error {
	if err := push.New(url, job).Gatherer(m.registry).Push(); err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}
	return nil
}
