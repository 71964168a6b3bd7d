package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Table is an in-memory relational table parsed from a delimited export
// file. The header row is kept separately from the data rows, and column
// lookups go through a name index built at parse time.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string

	index map[string]int
}

// ParseTable parses delimited text into a Table. The reader tolerates
// ragged rows and stray quotes, since provider exports are not always
// well-formed. Rows whose cells are all empty are dropped.
func ParseTable(name string, text []byte, comma rune) (*Table, error) {
	reader := csv.NewReader(bytes.NewReader(text))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse %s: no header row", name)
	}

	header := records[0]
	rows := make([][]string, 0, len(records)-1)
	for _, record := range records[1:] {
		if isEmptyRow(record) {
			continue
		}
		rows = append(rows, record)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}

	return &Table{
		Name:   name,
		Header: header,
		Rows:   rows,
		index:  index,
	}, nil
}

func isEmptyRow(record []string) bool {
	for _, cell := range record {
		if cell != "" {
			return false
		}
	}
	return true
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table header contains the named column.
func (t *Table) HasColumn(column string) bool {
	_, ok := t.index[column]
	return ok
}

// Value returns the cell at the given row for the named column. Missing
// columns and cells beyond a short row both yield the empty string, which
// is how the dataset encodes null.
func (t *Table) Value(row int, column string) string {
	i, ok := t.index[column]
	if !ok {
		return ""
	}
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	record := t.Rows[row]
	if i >= len(record) {
		return ""
	}
	return record[i]
}

// Column returns all values of the named column, one per data row.
// Unknown columns yield a slice of empty strings.
func (t *Table) Column(column string) []string {
	values := make([]string, len(t.Rows))
	for row := range t.Rows {
		values[row] = t.Value(row, column)
	}
	return values
}
