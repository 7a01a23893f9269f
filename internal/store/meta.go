package store

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// NeverRefreshed is reported when no refresh has ever completed.
const NeverRefreshed = "Never"

const timeLayout = "2006-01-02 15:04:05"

// RefreshMeta tracks the timestamp of the last successful refresh in a
// single-line file, overwritten on each refresh.
type RefreshMeta struct {
	path string
}

// NewRefreshMeta creates refresh metadata backed by the given file path.
func NewRefreshMeta(path string) *RefreshMeta {
	return &RefreshMeta{path: path}
}

// Record overwrites the stored timestamp with the current wall-clock time.
func (m *RefreshMeta) Record() error {
	stamp := time.Now().Format(timeLayout)
	if err := os.WriteFile(m.path, []byte(stamp), 0o644); err != nil {
		return fmt.Errorf("failed to write refresh metadata: %w", err)
	}
	return nil
}

// Last returns the stored timestamp, or NeverRefreshed if it has never
// been written.
func (m *RefreshMeta) Last() string {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return NeverRefreshed
	}
	return strings.TrimSpace(string(data))
}
