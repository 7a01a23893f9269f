package handlers

import (
	"github.com/gofiber/fiber/v3"

	"cvetrack/internal/config"
	"cvetrack/internal/query"
	"cvetrack/internal/store"
)

// RecordHandler renders the CVE listing.
type RecordHandler struct {
	repo store.Repository
	meta *store.RefreshMeta
	cfg  *config.Config
}

// NewRecordHandler creates a new record handler.
func NewRecordHandler(repo store.Repository, meta *store.RefreshMeta, cfg *config.Config) *RecordHandler {
	return &RecordHandler{repo: repo, meta: meta, cfg: cfg}
}

// Index renders the filterable, sortable, paginated listing.
func (h *RecordHandler) Index(c fiber.Ctx) error {
	params := QueryParams(c)

	records, err := h.repo.Load()
	if err != nil {
		return err
	}
	res := query.Run(records, params)

	return c.Render("index", fiber.Map{
		"SiteTitle":   h.cfg.SiteTitle,
		"Records":     res.Records,
		"Total":       res.Total,
		"TotalPages":  res.TotalPages,
		"LastUpdated": h.meta.Last(),
		"Query":       res.Params.Text,
		"Year":        res.Params.Year,
		"Page":        res.Params.Page,
		"SortBy":      res.Params.Sort,
		"SortOrder":   res.Params.Order,
		"PrevPage":    res.Params.Page - 1,
		"NextPage":    res.Params.Page + 1,
		"HasPrev":     res.Params.Page > 1,
		"HasNext":     res.Params.Page < res.TotalPages,
		"Flash":       takeFlash(c),
	})
}
