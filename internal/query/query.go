package query

import (
	"sort"
	"strings"

	"cvetrack/internal/models"
)

// PageSize is the fixed number of records per page.
const PageSize = 100

// Sort keys and directions accepted by Run.
const (
	SortDate  = "date"
	SortScore = "score"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Params are the listing controls. Page is 1-indexed.
type Params struct {
	Text  string
	Year  string
	Sort  string
	Order string
	Page  int
}

// Result is one page of filtered, sorted records plus the echoed params
// the presentation layer needs to rebuild its controls and page links.
type Result struct {
	Records    []models.Record
	Total      int
	TotalPages int
	Params     Params
}

// Run applies, in order: case-insensitive substring filter on the
// description, exact year-prefix filter on the published date, sort, and
// pagination. Later stages see only survivors of earlier ones. Equal sort
// keys keep input order. An out-of-range page yields an empty slice.
func Run(records []models.Record, p Params) Result {
	filtered := records
	if p.Text != "" {
		text := strings.ToLower(p.Text)
		kept := make([]models.Record, 0, len(filtered))
		for _, r := range filtered {
			if strings.Contains(strings.ToLower(r.Description), text) {
				kept = append(kept, r)
			}
		}
		filtered = kept
	}
	if p.Year != "" {
		kept := make([]models.Record, 0, len(filtered))
		for _, r := range filtered {
			if r.Year() == p.Year {
				kept = append(kept, r)
			}
		}
		filtered = kept
	}

	// Don't mutate the caller's slice when no filter made a copy.
	if p.Text == "" && p.Year == "" {
		filtered = append([]models.Record(nil), filtered...)
	}

	desc := p.Order == OrderDesc
	if p.Sort == SortScore {
		sort.SliceStable(filtered, func(i, j int) bool {
			if desc {
				return filtered[i].ScoreBucket() > filtered[j].ScoreBucket()
			}
			return filtered[i].ScoreBucket() < filtered[j].ScoreBucket()
		})
	} else {
		sort.SliceStable(filtered, func(i, j int) bool {
			if desc {
				return filtered[i].Published > filtered[j].Published
			}
			return filtered[i].Published < filtered[j].Published
		})
	}

	total := len(filtered)
	res := Result{
		Total:      total,
		TotalPages: (total + PageSize - 1) / PageSize,
		Params:     p,
	}

	start := (p.Page - 1) * PageSize
	if p.Page < 1 || start >= total {
		return res
	}
	end := start + PageSize
	if end > total {
		end = total
	}
	res.Records = filtered[start:end]
	return res
}
