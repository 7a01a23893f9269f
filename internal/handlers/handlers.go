package handlers

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"cvetrack/internal/query"
	"cvetrack/internal/validation"
)

const flashKey = "flash"

// setFlash stores a one-shot message in the session.
func setFlash(c fiber.Ctx, message string) {
	if sess := session.FromContext(c); sess != nil {
		sess.Set(flashKey, message)
	}
}

// takeFlash returns and clears the pending flash message, if any.
func takeFlash(c fiber.Ctx) string {
	sess := session.FromContext(c)
	if sess == nil {
		return ""
	}
	msg, _ := sess.Get(flashKey).(string)
	if msg != "" {
		sess.Delete(flashKey)
	}
	return msg
}

// QueryParams extracts and normalizes the listing controls from the
// request. Shared by the HTML and JSON listing handlers.
func QueryParams(c fiber.Ctx) query.Params {
	year := c.Query("year")
	if !validation.ValidYear(year) {
		year = ""
	}
	return query.Params{
		Text:  c.Query("q"),
		Year:  year,
		Sort:  validation.NormalizeSort(c.Query("sort", query.SortDate)),
		Order: validation.NormalizeOrder(c.Query("order", query.OrderDesc)),
		Page:  validation.ParsePage(c.Query("page", "1")),
	}
}
