package protocol

import "time"

const (
	RouteIndex  = "/"
	RouteEvents = "/events"
)

const SSEEventGraph = "graph"

// GraphSnapshot is one rendering of the watched search, sent as the data of
// an SSE "graph" event. Error is set instead of DOT when the rebuild failed.
type GraphSnapshot struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Entry     string    `json:"entry"`
	Related   int       `json:"related"`
	DOT       string    `json:"dot,omitempty"`
	Error     string    `json:"error,omitempty"`
}
