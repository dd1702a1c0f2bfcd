// Package testutil holds deterministic helpers for golden tests.
package testutil

// DefaultTraceID is returned by a FixedTraceIDGenerator built with "".
const DefaultTraceID = "test-trace-default"

// FixedTraceIDGenerator returns the same trace ID every time, so JSON
// responses can be compared byte for byte against golden files.
//
// Thread-safety: FixedTraceIDGenerator is stateless and safe for concurrent use.
type FixedTraceIDGenerator struct {
	id string
}

// NewFixedTraceIDGenerator creates a generator returning id, or
// DefaultTraceID when id is empty.
func NewFixedTraceIDGenerator(id string) *FixedTraceIDGenerator {
	if id == "" {
		id = DefaultTraceID
	}
	return &FixedTraceIDGenerator{id: id}
}

// Generate returns the fixed trace ID.
func (g *FixedTraceIDGenerator) Generate() string {
	return g.id
}
