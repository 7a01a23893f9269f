// Package testutil provides test fixtures backed by a temp directory.
package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"cvetrack/internal/models"
	"cvetrack/internal/store"
)

// TestRepo creates a CSV repository in a fresh temp directory. The
// backing file does not exist until the first append.
func TestRepo(t *testing.T) *store.CSVRepository {
	t.Helper()
	return store.NewCSVRepository(filepath.Join(t.TempDir(), "cves.csv"))
}

// TestMeta creates refresh metadata in a fresh temp directory.
func TestMeta(t *testing.T) *store.RefreshMeta {
	t.Helper()
	return store.NewRefreshMeta(filepath.Join(t.TempDir(), "last_updated.txt"))
}

// TestRecords returns one record per id, with distinct published dates in
// id order so ordering assertions stay readable.
func TestRecords(ids ...string) []models.Record {
	records := make([]models.Record, 0, len(ids))
	for i, id := range ids {
		records = append(records, models.Record{
			ID:          id,
			Description: "Test vulnerability " + id,
			Published:   fmt.Sprintf("2023-06-%02dT10:00Z", i+1),
			Score:       "7.5",
		})
	}
	return records
}
