package api

import (
	"github.com/gofiber/fiber/v3"

	"cvetrack/internal/handlers"
	"cvetrack/internal/models"
	"cvetrack/internal/query"
	"cvetrack/internal/store"
)

// RecordHandler serves the record listing as JSON.
type RecordHandler struct {
	repo store.Repository
	meta *store.RefreshMeta
}

// NewRecordHandler creates a new API record handler.
func NewRecordHandler(repo store.Repository, meta *store.RefreshMeta) *RecordHandler {
	return &RecordHandler{repo: repo, meta: meta}
}

// listResponse is one page of records with the echoed query parameters.
type listResponse struct {
	Records    []models.Record `json:"records"`
	Total      int             `json:"total"`
	TotalPages int             `json:"total_pages"`
	Page       int             `json:"page"`
	Query      string          `json:"query"`
	Year       string          `json:"year"`
	Sort       string          `json:"sort"`
	Order      string          `json:"order"`
}

// List applies the same filter/sort/paginate semantics as the HTML
// listing and returns the page as JSON.
func (h *RecordHandler) List(c fiber.Ctx) error {
	params := handlers.QueryParams(c)

	records, err := h.repo.Load()
	if err != nil {
		return recordsError(c, fiber.StatusInternalServerError, "failed to load records")
	}
	res := query.Run(records, params)

	// An empty page still marshals as a list, not null.
	page := res.Records
	if page == nil {
		page = []models.Record{}
	}

	return recordsOK(c, h.meta.Last(), listResponse{
		Records:    page,
		Total:      res.Total,
		TotalPages: res.TotalPages,
		Page:       res.Params.Page,
		Query:      res.Params.Text,
		Year:       res.Params.Year,
		Sort:       res.Params.Sort,
		Order:      res.Params.Order,
	})
}
