package tracker

import (
	"context"
	"fmt"
	"strconv"

	"cvetrack/internal/feed"
	"cvetrack/internal/metrics"
	"cvetrack/internal/models"
	"cvetrack/internal/store"
)

// Tracker runs one full refresh cycle: fetch, parse, dedupe-append,
// record the refresh time.
type Tracker struct {
	fetcher  *feed.Fetcher
	repo     store.Repository
	meta     *store.RefreshMeta
	minScore float64
}

// New creates a tracker. A minScore of zero disables severity filtering.
func New(fetcher *feed.Fetcher, repo store.Repository, meta *store.RefreshMeta, minScore float64) *Tracker {
	return &Tracker{fetcher: fetcher, repo: repo, meta: meta, minScore: minScore}
}

// Run executes a refresh and returns a display message. Failures from any
// stage are converted to the message here, not re-raised. Partial state
// is kept as-is: rows appended before a metadata failure stay appended.
func (t *Tracker) Run(ctx context.Context) string {
	raw, err := t.fetcher.Fetch(ctx)
	if err != nil {
		return t.fail(err)
	}

	records, err := feed.Parse(raw)
	if err != nil {
		return t.fail(err)
	}
	if t.minScore > 0 {
		records = filterByScore(records, t.minScore)
	}

	added, err := t.repo.Append(records)
	if err != nil {
		return t.fail(err)
	}

	if err := t.meta.Record(); err != nil {
		return t.fail(err)
	}

	metrics.RecordRefresh("success")
	metrics.AddRecordsAppended(added)
	return fmt.Sprintf("%d new CVEs added.", added)
}

func (t *Tracker) fail(err error) string {
	metrics.RecordRefresh("error")
	return fmt.Sprintf("Error: %v", err)
}

// filterByScore drops records scored below min. Records with an unknown
// score cannot be compared and are kept.
func filterByScore(records []models.Record, min float64) []models.Record {
	kept := make([]models.Record, 0, len(records))
	for _, r := range records {
		score, err := strconv.ParseFloat(r.Score, 64)
		if err == nil && score < min {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}
