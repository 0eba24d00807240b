package run

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// seqCounter numbers runs within the process for easy log correlation
var seqCounter uint64

// Run represents a single join invocation
type Run struct {
	ID        string    // Unique run identifier (UUID)
	Seq       uint64    // Monotonic sequence number within the process
	Kind      string    // Join variant, e.g. "INNER JOIN"
	Active    bool      // Whether the run is still in progress
	StartTime time.Time // When the run began
}

// New creates a new run with a unique ID
func New(kind string) *Run {
	return &Run{
		ID:        uuid.New().String(),
		Seq:       atomic.AddUint64(&seqCounter, 1),
		Kind:      kind,
		Active:    true,
		StartTime: time.Now(),
	}
}

// Elapsed returns how long the run has been going
func (r *Run) Elapsed() time.Duration {
	return time.Since(r.StartTime)
}

// Close marks the run as inactive
func (r *Run) Close() {
	r.Active = false
}
