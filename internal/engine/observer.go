package engine

import "time"

// EventType represents different lifecycle phases of a join run
type EventType string

const (
	EventLoadStart  EventType = "load_start"
	EventLoadEnd    EventType = "load_end"
	EventJoinStart  EventType = "join_start"
	EventJoinEnd    EventType = "join_end"
	EventWriteStart EventType = "write_start"
	EventWriteEnd   EventType = "write_end"
	EventRunFailed  EventType = "run_failed"
)

// Event represents a lifecycle event in a join run
type Event struct {
	Type      EventType   // Type of event
	RunID     string      // Run ID for tracing
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (paths, row counts, error)
}

// Observer interface for event subscribers
// Observers receive events at major execution phases
type Observer interface {
	OnEvent(event Event)
}
