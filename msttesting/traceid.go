package msttesting

import "github.com/google/uuid"

// NewTraceID returns a fresh random identifier suitable for tagging a test
// run's log lines, mirroring mmrtesting's per-test trace-id convention.
func NewTraceID() string {
	return uuid.NewString()
}
