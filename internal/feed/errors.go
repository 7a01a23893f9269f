package feed

import "fmt"

// FetchError reports a non-success HTTP status from the feed server.
type FetchError struct {
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to download feed: status %d", e.StatusCode)
}

// ParseError reports a structurally invalid feed document. A single
// malformed entry fails the whole batch.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "invalid feed document: " + e.Reason
}
