package join

import (
	"fmt"
	"log/slog"

	"github.com/leengari/csvjoin/internal/domain/data"
	"github.com/leengari/csvjoin/internal/domain/errors"
)

// Join matches every row of leftTable against every row of rightTable
// (nested loops, O(|left|·|right|)) on the conjunction of spec's columns.
// Neither input is modified.
func Join(leftTable, rightTable *data.Table, spec data.JoinSpec) (*Result, error) {
	if leftTable == nil {
		return nil, fmt.Errorf("left table is nil")
	}
	if rightTable == nil {
		return nil, fmt.Errorf("right table is nil")
	}

	if err := validateJoinCondition(leftTable, rightTable, spec); err != nil {
		return nil, err
	}

	// Acquire read locks on both tables
	leftTable.RLock()
	defer leftTable.RUnlock()
	if rightTable != leftTable {
		rightTable.RLock()
		defer rightTable.RUnlock()
	}

	slog.Debug("Starting nested loop join",
		slog.String("left_table", leftTable.Name),
		slog.String("right_table", rightTable.Name),
		slog.String("on", spec.String()),
		slog.Int("left_rows", len(leftTable.Rows)),
		slog.Int("right_rows", len(rightTable.Rows)),
	)

	left := data.NewTable(leftTable.Name, leftTable.Columns)
	left.Rows = make([]data.Row, len(leftTable.Rows))
	matches := make([]data.Row, 0)
	matchedLeftRows := 0

	for i, leftRow := range leftTable.Rows {
		augmented := leftRow.Copy()
		matched := false

		for _, rightRow := range rightTable.Rows {
			ok, err := Check(leftRow, rightRow, spec)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}

			joined := leftRow.Copy()
			joined.Merge(rightRow)
			matches = append(matches, joined)

			// Last match wins on the augmented copy
			augmented.Merge(rightRow)
			matched = true
		}

		if matched {
			matchedLeftRows++
		}
		left.Rows[i] = augmented
	}

	if len(matches) == 0 {
		slog.Info("Join found no matching pairs",
			slog.String("left_table", leftTable.Name),
			slog.String("right_table", rightTable.Name),
		)
		return nil, errors.ErrNoMatch
	}

	slog.Info("Join completed",
		slog.String("left_table", leftTable.Name),
		slog.String("right_table", rightTable.Name),
		slog.Int("matches", len(matches)),
		slog.Int("unmatched_left_rows", len(leftTable.Rows)-matchedLeftRows),
	)

	return &Result{
		Left:    left,
		Matches: matches,
		Columns: unionColumns(leftTable.Columns, rightTable.Columns),
	}, nil
}

// Execute performs a JOIN with the specified type and returns the table
// that type exposes. A right join runs the matcher with the inputs swapped.
func Execute(leftTable, rightTable *data.Table, spec data.JoinSpec, joinType Type) (*data.Table, error) {
	switch joinType {
	case TypeInner:
		res, err := Join(leftTable, rightTable, spec)
		if err != nil {
			return nil, err
		}
		return res.Inner(), nil
	case TypeLeft:
		res, err := Join(leftTable, rightTable, spec)
		if err != nil {
			return nil, err
		}
		return res.Augmented(), nil
	case TypeRight:
		res, err := Join(rightTable, leftTable, spec)
		if err != nil {
			return nil, err
		}
		return res.Augmented(), nil
	default:
		return nil, fmt.Errorf("unknown JOIN type: %v", joinType)
	}
}
