package metrics

import (
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"cvetrack/internal/store"
)

var (
	storedRecordsDesc = prometheus.NewDesc(
		"cvetrack_stored_records",
		"Number of records currently persisted in the store",
		nil,
		nil,
	)

	refreshesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cvetrack_refreshes_total",
			Help: "Total refresh runs by outcome",
		},
		[]string{"outcome"},
	)

	recordsAppendedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cvetrack_records_appended_total",
			Help: "Total records appended to the store across refreshes",
		},
	)
)

// StoreCollector is a custom Prometheus collector that reads the record
// store on each scrape.
type StoreCollector struct {
	repo store.Repository
}

// Describe sends the metric descriptor to the channel.
func (c *StoreCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- storedRecordsDesc
}

// Collect loads the store and emits its current size.
func (c *StoreCollector) Collect(ch chan<- prometheus.Metric) {
	records, err := c.repo.Load()
	if err != nil {
		slog.Error("failed to collect store metrics", "error", err)
		return
	}
	ch <- prometheus.MustNewConstMetric(storedRecordsDesc, prometheus.GaugeValue, float64(len(records)))
}

var initOnce sync.Once

// Init registers the collectors. Must be called once at startup.
func Init(repo store.Repository) {
	initOnce.Do(func() {
		prometheus.MustRegister(&StoreCollector{repo: repo}, refreshesTotal, recordsAppendedTotal)
	})
}

// RecordRefresh counts one refresh run with the given outcome.
func RecordRefresh(outcome string) {
	refreshesTotal.WithLabelValues(outcome).Inc()
}

// AddRecordsAppended counts records persisted by a refresh.
func AddRecordsAppended(n int) {
	recordsAppendedTotal.Add(float64(n))
}
