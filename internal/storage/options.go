package storage

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Format selects how a table is serialized on disk
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat maps a user supplied name to a Format
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV, "":
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format: %q", s)
	}
}

// Options controls how delimited files are read and written
type Options struct {
	Delimiter rune   // field separator, ',' when zero
	Format    Format // output format, csv when empty
}

// DefaultOptions returns comma separated CSV
func DefaultOptions() Options {
	return Options{Delimiter: ',', Format: FormatCSV}
}

func (o Options) comma() rune {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

// ParseDelimiter accepts a single character, or "\t" / "tab" for tabs
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return ',', nil
	case `\t`, "tab":
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	if r == '"' || r == '\r' || r == '\n' {
		return 0, fmt.Errorf("invalid delimiter %q", s)
	}
	return r, nil
}
