package writer

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leengari/csvjoin/internal/domain/data"
	"github.com/leengari/csvjoin/internal/storage"
)

// SaveTable writes the table to path using temp + atomic rename, so a
// reader never sees a half-written file. Two writers racing on the same
// path still end with whichever renamed last.
func SaveTable(path string, t *data.Table, opts storage.Options) error {
	if t == nil || path == "" {
		return fmt.Errorf("cannot save table: nil or missing path")
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpPath := tmp.Name()

	// Remove the temp file on every failure path
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err := WriteTable(bw, t, opts); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file for %s: %w", path, err)
	}

	// Atomic replace
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp → %s: %w", path, err)
	}
	committed = true

	slog.Info("Table saved successfully",
		slog.String("table", t.Name),
		slog.String("path", path),
		slog.String("format", string(opts.Format)),
		slog.Int("row_count", len(t.Rows)),
	)

	return nil
}

// WriteTable serializes the table to w in the requested format.
// CSV output starts with the header; fields follow t.Columns and absent
// values are written as empty strings.
func WriteTable(w io.Writer, t *data.Table, opts storage.Options) error {
	t.RLock()
	defer t.RUnlock()

	switch opts.Format {
	case storage.FormatCSV, "":
		return writeCSV(w, t, opts)
	case storage.FormatJSON:
		return writeJSON(w, t)
	default:
		return fmt.Errorf("unknown output format: %q", opts.Format)
	}
}

func writeCSV(w io.Writer, t *data.Table, opts storage.Options) error {
	csvWriter := csv.NewWriter(w)
	if opts.Delimiter != 0 {
		csvWriter.Comma = opts.Delimiter
	}

	if err := csvWriter.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := csvWriter.Write(row.Project(t.Columns)); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, t *data.Table) error {
	// Rows keep only the fields they carry, in column order
	out := make([]data.Row, len(t.Rows))
	for i, row := range t.Rows {
		projected := data.NewRow()
		for _, col := range t.Columns {
			if v, ok := row.Get(col); ok {
				projected.Set(col, v)
			}
		}
		out[i] = projected
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
