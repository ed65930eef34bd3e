// Package tabular provides a small in-memory table abstraction for uploaded
// comma-separated files. Handlers parse uploads into a Table once; the
// services only ever see columns and rows, never the CSV reader.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Table is a parsed spreadsheet-like upload: a header row plus data records.
type Table struct {
	header  []string
	records [][]string
	index   map[string]int
}

// ParseCSV reads a comma-separated table with a header row from r.
// Records with a wrong number of fields are rejected by the underlying reader.
func ParseCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV is empty: missing header row")
	}

	header := rows[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	return &Table{
		header:  header,
		records: rows[1:],
		index:   index,
	}, nil
}

// HasColumn reports whether the named column exists. Case-sensitive.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns all values of the named column, in row order.
// Returns nil when the column does not exist.
func (t *Table) Column(name string) []string {
	i, ok := t.index[name]
	if !ok {
		return nil
	}
	values := make([]string, 0, len(t.records))
	for _, rec := range t.records {
		if i < len(rec) {
			values = append(values, strings.TrimSpace(rec[i]))
		} else {
			values = append(values, "")
		}
	}
	return values
}

// Len returns the number of data rows (the header is not counted).
func (t *Table) Len() int {
	return len(t.records)
}
