package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/leengari/csvjoin/internal/domain/data"
	"github.com/leengari/csvjoin/internal/domain/errors"
	"github.com/leengari/csvjoin/internal/domain/run"
	"github.com/leengari/csvjoin/internal/query/operations/join"
	"github.com/leengari/csvjoin/internal/storage"
	"github.com/leengari/csvjoin/internal/storage/writer"
)

// DefaultOutputPath is where results are written unless configured otherwise
const DefaultOutputPath = "result.csv"

// Engine joins two delimited files and persists the chosen result.
// Every call overwrites the same output path; concurrent calls sharing an
// engine (or an output path) end with whichever write renamed last.
type Engine struct {
	outputPath string
	opts       storage.Options
	logger     *slog.Logger
	observers  []Observer // Observers for lifecycle events
}

// New creates a new Engine instance.
// An empty outputPath selects DefaultOutputPath; a nil logger selects slog.Default().
func New(outputPath string, opts storage.Options, logger *slog.Logger) *Engine {
	if outputPath == "" {
		outputPath = DefaultOutputPath
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		outputPath: outputPath,
		opts:       opts,
		logger:     logger,
		observers:  make([]Observer, 0),
	}
}

// OutputPath returns the file every successful run writes to
func (e *Engine) OutputPath() string {
	return e.outputPath
}

// InnerJoin writes and returns the rows of path1 and path2 that agree on spec
func (e *Engine) InnerJoin(path1, path2 string, spec data.JoinSpec) (*data.Table, error) {
	return e.Run(path1, path2, spec, join.TypeInner)
}

// LeftOuterJoin writes and returns path1's rows augmented with matches from path2
func (e *Engine) LeftOuterJoin(path1, path2 string, spec data.JoinSpec) (*data.Table, error) {
	return e.Run(path1, path2, spec, join.TypeLeft)
}

// RightOuterJoin writes and returns path2's rows augmented with matches from path1
func (e *Engine) RightOuterJoin(path1, path2 string, spec data.JoinSpec) (*data.Table, error) {
	return e.Run(path1, path2, spec, join.TypeRight)
}

// Run loads both files, joins them and writes the result.
// Nothing is written when the join fails. When only the write fails, the
// joined table is returned together with the write error.
func (e *Engine) Run(path1, path2 string, spec data.JoinSpec, joinType join.Type) (*data.Table, error) {
	r := run.New(joinType.String())
	defer r.Close()

	// 1. Reject an empty spec before touching the filesystem
	if spec.Empty() {
		e.fail(r, errors.ErrEmptyJoinSpec)
		return nil, errors.ErrEmptyJoinSpec
	}

	// 2. Load
	e.notify(Event{Type: EventLoadStart, RunID: r.ID, Data: []string{path1, path2}})
	left, err := storage.LoadTable(path1, e.opts, e.logger)
	if err != nil {
		e.fail(r, err)
		return nil, fmt.Errorf("load error: %w", err)
	}
	right, err := storage.LoadTable(path2, e.opts, e.logger)
	if err != nil {
		e.fail(r, err)
		return nil, fmt.Errorf("load error: %w", err)
	}
	e.notify(Event{Type: EventLoadEnd, RunID: r.ID, Data: map[string]interface{}{
		"left_rows":  len(left.Rows),
		"right_rows": len(right.Rows),
	}})

	// 3. Join
	e.notify(Event{Type: EventJoinStart, RunID: r.ID, Data: map[string]interface{}{
		"type": joinType.String(),
		"on":   spec.String(),
	}})
	result, err := join.Execute(left, right, spec, joinType)
	if err != nil {
		e.fail(r, err)
		return nil, fmt.Errorf("join error: %w", err)
	}
	e.notify(Event{Type: EventJoinEnd, RunID: r.ID, Data: map[string]interface{}{
		"rows_returned": len(result.Rows),
		"columns":       len(result.Columns),
	}})

	// 4. Persist
	e.notify(Event{Type: EventWriteStart, RunID: r.ID, Data: e.outputPath})
	if err := writer.SaveTable(e.outputPath, result, e.opts); err != nil {
		e.fail(r, err)
		return result, fmt.Errorf("write error: %w", err)
	}
	e.notify(Event{Type: EventWriteEnd, RunID: r.ID, Data: e.outputPath})

	e.logger.Info("join run completed",
		slog.String("run_id", r.ID),
		slog.Uint64("seq", r.Seq),
		slog.String("type", r.Kind),
		slog.String("left", path1),
		slog.String("right", path2),
		slog.String("output", e.outputPath),
		slog.Int("rows", len(result.Rows)),
		slog.Duration("elapsed", r.Elapsed()),
	)

	return result, nil
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

func (e *Engine) fail(r *run.Run, err error) {
	e.notify(Event{Type: EventRunFailed, RunID: r.ID, Data: err.Error()})
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
