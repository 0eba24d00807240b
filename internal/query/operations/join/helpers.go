package join

import (
	"log/slog"

	"github.com/leengari/csvjoin/internal/domain/data"
	"github.com/leengari/csvjoin/internal/domain/errors"
)

// Check reports whether a and b agree on every column of spec.
// Values are compared byte for byte; the first mismatch stops the scan.
// A column missing from either row is an error.
func Check(a, b data.Row, spec data.JoinSpec) (bool, error) {
	for _, jc := range spec {
		av, ok := a.Lookup(jc.Column)
		if !ok {
			return false, errors.NewMissingColumn("", jc.Column)
		}
		bv, ok := b.Lookup(jc.Column)
		if !ok {
			return false, errors.NewMissingColumn("", jc.Column)
		}
		if av != bv {
			return false, nil
		}
	}
	return true, nil
}

// validateJoinCondition checks if the join is valid
func validateJoinCondition(leftTable, rightTable *data.Table, spec data.JoinSpec) error {
	if spec.Empty() {
		return errors.ErrEmptyJoinSpec
	}

	for _, jc := range spec {
		if _, ok := leftTable.ResolveColumn(jc.Column); !ok {
			return errors.NewMissingColumn(leftTable.Name, jc.Column)
		}
		if _, ok := rightTable.ResolveColumn(jc.Column); !ok {
			return errors.NewMissingColumn(rightTable.Name, jc.Column)
		}
	}

	if len(leftTable.Rows) == 0 || len(rightTable.Rows) == 0 {
		slog.Warn("Joining against an empty table",
			slog.String("left_table", leftTable.Name),
			slog.Int("left_rows", len(leftTable.Rows)),
			slog.String("right_table", rightTable.Name),
			slog.Int("right_rows", len(rightTable.Rows)),
		)
	}

	return nil
}

// unionColumns returns left followed by the right columns left does not have.
// Names are compared exactly, the same way Row.Merge decides overlap.
func unionColumns(left, right []string) []string {
	seen := make(map[string]struct{}, len(left)+len(right))
	out := make([]string, 0, len(left)+len(right))
	for _, cols := range [][]string{left, right} {
		for _, col := range cols {
			if _, dup := seen[col]; dup {
				continue
			}
			seen[col] = struct{}{}
			out = append(out, col)
		}
	}
	return out
}
