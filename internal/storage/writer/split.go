package writer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/leengari/csvjoin/internal/domain/data"
	"github.com/leengari/csvjoin/internal/storage"
)

// SplitFile partitions the rows of path by the values of the by columns and
// writes one file per distinct combination into outDir, named after the
// values joined with "_" (e.g. "pune_married.csv"). The by columns are left
// out of the written files. Paths are returned in first-seen order.
func SplitFile(path string, by []string, outDir string, opts storage.Options, logger *slog.Logger) ([]string, error) {
	if len(by) == 0 {
		return nil, fmt.Errorf("split requires at least one column")
	}

	table, err := storage.LoadTable(path, opts, logger)
	if err != nil {
		return nil, err
	}

	parts, err := Partition(table, by)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	ext := ".csv"
	if opts.Format == storage.FormatJSON {
		ext = ".json"
	}

	written := make([]string, 0, len(parts))
	for _, part := range parts {
		target := filepath.Join(outDir, part.Name+ext)
		if err := SaveTable(target, part, opts); err != nil {
			return written, err
		}
		written = append(written, target)
	}

	logger.Info("file split",
		slog.String("source", path),
		slog.Any("by", by),
		slog.Int("files", len(written)),
	)

	return written, nil
}

// Partition groups the table's rows by the exact values of the by columns.
// Each part's header is the source header minus the by columns, and its
// Name is derived from the group values. Groups whose names collide after
// sanitizing get a numeric suffix.
func Partition(table *data.Table, by []string) ([]*data.Table, error) {
	table.RLock()
	defer table.RUnlock()

	resolved := make([]string, len(by))
	drop := make(map[string]bool, len(by))
	for i, col := range by {
		name, ok := table.ResolveColumn(col)
		if !ok {
			return nil, fmt.Errorf("split column %q not found in table %q", col, table.Name)
		}
		resolved[i] = name
		drop[name] = true
	}

	keep := make([]string, 0, len(table.Columns))
	for _, col := range table.Columns {
		if !drop[col] {
			keep = append(keep, col)
		}
	}

	groups := make(map[string]*data.Table)
	names := make(map[string]bool)
	order := make([]*data.Table, 0)
	for _, row := range table.Rows {
		values := row.Project(resolved)
		key := strings.Join(values, "\x00")
		part, ok := groups[key]
		if !ok {
			part = data.NewTable(uniqueName(partName(values), names), keep)
			groups[key] = part
			order = append(order, part)
		}

		out := data.NewRow()
		for _, col := range keep {
			v, _ := row.Get(col)
			out.Set(col, v)
		}
		part.Rows = append(part.Rows, out)
	}

	return order, nil
}

// uniqueName suffixes stem with -2, -3, ... until it is not in used.
// Distinct groups can sanitize to the same stem and must not share a file.
func uniqueName(stem string, used map[string]bool) string {
	name := stem
	for n := 2; used[strings.ToLower(name)]; n++ {
		name = fmt.Sprintf("%s-%d", stem, n)
	}
	used[strings.ToLower(name)] = true
	return name
}

// partName turns group values into a safe file stem
func partName(values []string) string {
	clean := make([]string, len(values))
	for i, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			v = "blank"
		}
		clean[i] = strings.Map(func(r rune) rune {
			switch r {
			case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
				return '-'
			}
			return r
		}, v)
	}
	return strings.Join(clean, "_")
}
