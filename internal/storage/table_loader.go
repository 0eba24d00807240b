package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/leengari/csvjoin/internal/domain/data"
	derrors "github.com/leengari/csvjoin/internal/domain/errors"
)

// LoadTable reads a delimited file fully into memory.
// The first record is the header; every following record must have the
// same number of fields.
func LoadTable(path string, opts Options, logger *slog.Logger) (*data.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table %s: %w", path, err)
	}
	defer f.Close()

	table, err := ReadTable(f, path, opts)
	if err != nil {
		return nil, err
	}

	logger.Info("table loaded",
		slog.String("table", table.Name),
		slog.Int("columns", len(table.Columns)),
		slog.Int("rows", len(table.Rows)),
	)

	return table, nil
}

// ReadTable parses a delimited stream into a table called name
func ReadTable(r io.Reader, name string, opts Options) (*data.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = opts.comma()
	reader.FieldsPerRecord = 0 // all records must match the header width

	header, err := reader.Read()
	if err == io.EOF {
		return nil, derrors.NewMalformedTable(name, 1, "missing header row")
	}
	if err != nil {
		return nil, malformed(name, err)
	}

	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	seen := make(map[string]bool, len(header))
	for _, col := range header {
		if seen[col] {
			return nil, derrors.NewMalformedTable(name, 1, fmt.Sprintf("duplicate column %q", col))
		}
		seen[col] = true
	}

	table := data.NewTable(name, header)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, malformed(name, err)
		}

		row := data.NewRow()
		for i, col := range header {
			row.Set(col, record[i])
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

func malformed(name string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &derrors.MalformedTableError{
			Table: name,
			Line:  pe.Line,
			Err:   pe.Err,
		}
	}
	return fmt.Errorf("failed to read table %s: %w", name, err)
}
