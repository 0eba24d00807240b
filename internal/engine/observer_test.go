package engine

import (
	"bytes"
	"log/slog"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/leengari/csvjoin/internal/storage"
)

// MockObserver is a test observer that records events
type MockObserver struct {
	Events []Event
}

func (m *MockObserver) OnEvent(event Event) {
	m.Events = append(m.Events, event)
}

func (m *MockObserver) types() []EventType {
	out := make([]EventType, len(m.Events))
	for i, e := range m.Events {
		out[i] = e.Type
	}
	return out
}

func TestAddObserver(t *testing.T) {
	eng := New("", storage.DefaultOptions(), nil)
	observer := &MockObserver{}

	eng.AddObserver(observer)

	assert.Check(t, is.Len(eng.observers, 1))
}

func TestRemoveObserver(t *testing.T) {
	eng := New("", storage.DefaultOptions(), nil)
	observer := &MockObserver{}

	eng.AddObserver(observer)
	eng.RemoveObserver(observer)

	assert.Check(t, is.Len(eng.observers, 0))
}

func TestNotifyWithNoObservers(t *testing.T) {
	eng := New("", storage.DefaultOptions(), nil)

	// Should not panic
	eng.notify(Event{Type: EventLoadStart, RunID: "test-run"})
}

func TestNotifyWithMultipleObservers(t *testing.T) {
	eng := New("", storage.DefaultOptions(), nil)
	observer1 := &MockObserver{}
	observer2 := &MockObserver{}

	eng.AddObserver(observer1)
	eng.AddObserver(observer2)

	eng.notify(Event{Type: EventJoinStart, RunID: "test-run", Data: "id"})

	assert.Assert(t, is.Len(observer1.Events, 1))
	assert.Assert(t, is.Len(observer2.Events, 1))
	assert.Equal(t, observer1.Events[0].Type, EventJoinStart)
	assert.Equal(t, observer2.Events[0].Type, EventJoinStart)
	assert.Check(t, !observer1.Events[0].Timestamp.IsZero(), "timestamp should be set")
}

func TestLoggingObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	lo := NewLoggingObserver(logger)

	lo.OnEvent(Event{Type: EventRunFailed, RunID: "r-1", Data: "boom"})

	out := buf.String()
	assert.Check(t, is.Contains(out, "level=WARN"))
	assert.Check(t, is.Contains(out, "event=run_failed"))
	assert.Check(t, is.Contains(out, "run_id=r-1"))
}
