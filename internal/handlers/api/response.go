package api

import (
	"github.com/gofiber/fiber/v3"
)

// recordsOK wraps one page of records in the response envelope. The last
// refresh time rides on the envelope rather than inside the page payload.
func recordsOK(c fiber.Ctx, lastUpdated string, page any) error {
	return c.JSON(fiber.Map{
		"status":       "ok",
		"last_updated": lastUpdated,
		"data":         page,
	})
}

// recordsError reports a failed listing with the given HTTP status code.
func recordsError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}
