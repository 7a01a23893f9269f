// Package validation normalizes listing query parameters so malformed
// input degrades to defaults instead of erroring.
package validation

import (
	"regexp"
	"strconv"
)

// YearPattern defines the accepted year filter format.
var YearPattern = regexp.MustCompile(`^\d{4}$`)

// ValidYear reports whether a year filter is usable. Empty means
// "no filter".
func ValidYear(year string) bool {
	return year == "" || YearPattern.MatchString(year)
}

// ParsePage parses a 1-indexed page parameter, clamping malformed or
// non-positive values to 1.
func ParsePage(s string) int {
	page, err := strconv.Atoi(s)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// NormalizeSort maps unknown sort keys to the date sort.
func NormalizeSort(sort string) string {
	if sort == "score" {
		return "score"
	}
	return "date"
}

// NormalizeOrder maps unknown directions to descending.
func NormalizeOrder(order string) string {
	if order == "asc" {
		return "asc"
	}
	return "desc"
}
