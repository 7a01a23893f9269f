package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	"cvetrack/internal/models"
)

// Header is the fixed first row of the store file. It is part of the
// on-disk contract and must not change.
var Header = []string{"CVE ID", "Description", "Published Date", "CVSS v3.1 Score"}

// Repository is the persistent record store. Append never rewrites or
// reorders existing rows; it only adds rows whose id is novel at call
// time.
type Repository interface {
	Load() ([]models.Record, error)
	Append(records []models.Record) (int, error)
}

// CSVRepository stores records as rows of a flat CSV file, appended-to on
// each refresh and never compacted. The load-then-append sequence is
// serialized within this process; writers in other processes are not
// coordinated (single-writer assumption).
type CSVRepository struct {
	path string
	mu   sync.Mutex
}

// NewCSVRepository creates a repository backed by the given file path.
// The file is created lazily on first append.
func NewCSVRepository(path string) *CSVRepository {
	return &CSVRepository{path: path}
}

// Load reads the full store in file order, skipping the header row. A
// missing file is an empty store, not an error.
func (r *CSVRepository) Load() ([]models.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *CSVRepository) load() ([]models.Record, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read store: %w", err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	records := make([]models.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, models.Record{
			ID:          row[0],
			Description: row[1],
			Published:   row[2],
			Score:       row[3],
		})
	}
	return records, nil
}

// Append writes the subset of records whose ids are not already stored,
// in their given order, and returns the count written. The header row is
// written only when the file is created.
func (r *CSVRepository) Append(records []models.Record) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.load()
	if err != nil {
		return 0, err
	}
	stored := make(map[string]struct{}, len(existing))
	for _, rec := range existing {
		stored[rec.ID] = struct{}{}
	}

	var novel []models.Record
	for _, rec := range records {
		if _, ok := stored[rec.ID]; !ok {
			novel = append(novel, rec)
		}
	}

	writeHeader := false
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		writeHeader = true
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("failed to open store for append: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(Header); err != nil {
			return 0, fmt.Errorf("failed to write store header: %w", err)
		}
	}
	for _, rec := range novel {
		if err := w.Write([]string{rec.ID, rec.Description, rec.Published, rec.Score}); err != nil {
			return 0, fmt.Errorf("failed to write store: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, fmt.Errorf("failed to write store: %w", err)
	}

	return len(novel), nil
}
