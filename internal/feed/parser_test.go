package feed

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"cvetrack/internal/models"
)

const feedDoc = `{
	"CVE_Items": [
		{
			"cve": {
				"CVE_data_meta": {"ID": "CVE-2023-0001"},
				"description": {"description_data": [{"lang": "en", "value": "Remote code execution"}]}
			},
			"impact": {"baseMetricV3": {"cvssV3": {"baseScore": 9.8}}},
			"publishedDate": "2023-06-01T10:00Z"
		},
		{
			"cve": {
				"CVE_data_meta": {"ID": "CVE-2023-0002"},
				"description": {"description_data": [{"lang": "en", "value": "Information disclosure"}]}
			},
			"impact": {},
			"publishedDate": "2023-06-02T10:00Z"
		}
	]
}`

func TestParse(t *testing.T) {
	records, err := Parse([]byte(feedDoc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []models.Record{
		{ID: "CVE-2023-0001", Description: "Remote code execution", Published: "2023-06-01T10:00Z", Score: "9.8"},
		{ID: "CVE-2023-0002", Description: "Information disclosure", Published: "2023-06-02T10:00Z", Score: models.UnknownScore},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("parsed records mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_EmptyListIsValid(t *testing.T) {
	records, err := Parse([]byte(`{"CVE_Items": []}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Parse() returned %d records, want 0", len(records))
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"invalid json", `{not json`},
		{"missing CVE_Items key", `{"CVE_data_type": "CVE"}`},
		{
			"entry missing id",
			`{"CVE_Items": [{"cve": {"description": {"description_data": [{"value": "x"}]}}, "publishedDate": "2023-01-01"}]}`,
		},
		{
			"entry missing description",
			`{"CVE_Items": [{"cve": {"CVE_data_meta": {"ID": "CVE-1"}, "description": {"description_data": []}}, "publishedDate": "2023-01-01"}]}`,
		},
		{
			"entry missing published date",
			`{"CVE_Items": [{"cve": {"CVE_data_meta": {"ID": "CVE-1"}, "description": {"description_data": [{"value": "x"}]}}}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("Parse() error = %v, want *ParseError", err)
			}
		})
	}
}

func TestParse_OneMalformedEntryFailsTheBatch(t *testing.T) {
	doc := `{"CVE_Items": [
		{"cve": {"CVE_data_meta": {"ID": "CVE-1"}, "description": {"description_data": [{"value": "ok"}]}}, "publishedDate": "2023-01-01"},
		{"cve": {"description": {"description_data": [{"value": "no id"}]}}, "publishedDate": "2023-01-02"}
	]}`

	records, err := Parse([]byte(doc))
	if err == nil {
		t.Fatal("Parse() returned nil error for a batch with a malformed entry")
	}
	if records != nil {
		t.Errorf("Parse() returned %d records alongside an error, want none", len(records))
	}
}

func TestParse_ScoreFormatting(t *testing.T) {
	tests := []struct {
		name     string
		score    string
		expected string
	}{
		{"one decimal", "8.8", "8.8"},
		{"integer score", "10", "10"},
		{"trailing zero dropped", "7.50", "7.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `{"CVE_Items": [{"cve": {"CVE_data_meta": {"ID": "CVE-1"}, "description": {"description_data": [{"value": "x"}]}}, "impact": {"baseMetricV3": {"cvssV3": {"baseScore": ` + tt.score + `}}}, "publishedDate": "2023-01-01"}]}`

			records, err := Parse([]byte(doc))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if records[0].Score != tt.expected {
				t.Errorf("Score = %q, want %q", records[0].Score, tt.expected)
			}
		})
	}
}
