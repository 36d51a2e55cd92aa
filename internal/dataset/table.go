// Package dataset loads and saves the tabular files dateshift operates on.
//
// A [Table] is held fully in memory: a header row of unique column names and
// a slice of rows, each exactly as wide as the header. Delimited text and
// xlsx workbooks are supported; the codec is picked from the file extension.
package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateColumn is returned when two header cells share a name.
	ErrDuplicateColumn = errors.New("duplicate column")
	// ErrRowWidth is returned when a row does not match the header width.
	ErrRowWidth = errors.New("row width does not match header")
)

// Table is an in-memory dataset. Rows[i][j] is the cell of row i under Columns[j].
type Table struct {
	Columns []string
	Rows    [][]string

	index map[string]int
}

// NewTable builds a Table and checks its invariants: column names are unique
// and every row has exactly len(columns) cells.
func NewTable(columns []string, rows [][]string) (*Table, error) {
	t := &Table{Columns: columns, Rows: rows}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the Table invariants and rebuilds the column index.
func (t *Table) Validate() error {
	index := make(map[string]int, len(t.Columns))
	for i, name := range t.Columns {
		if prev, ok := index[name]; ok {
			return fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateColumn, name, prev+1, i+1)
		}
		index[name] = i
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("%w: row %d has %d cells, header has %d", ErrRowWidth, i+1, len(row), len(t.Columns))
		}
	}
	t.index = index
	return nil
}

// Index returns the position of column. Matching is exact and case-sensitive.
// Tables built by hand rather than by NewTable are scanned linearly.
func (t *Table) Index(column string) (int, bool) {
	if t.index != nil && len(t.index) == len(t.Columns) {
		i, ok := t.index[column]
		return i, ok
	}
	for i, name := range t.Columns {
		if name == column {
			return i, true
		}
	}
	return -1, false
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Column returns a copy of every value under column, in row order.
func (t *Table) Column(column string) ([]string, bool) {
	idx, ok := t.Index(column)
	if !ok {
		return nil, false
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values, true
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	columns := make([]string, len(t.Columns))
	copy(columns, t.Columns)

	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = make([]string, len(row))
		copy(rows[i], row)
	}

	clone := &Table{Columns: columns, Rows: rows}
	if t.index != nil {
		clone.index = make(map[string]int, len(t.index))
		for k, v := range t.index {
			clone.index[k] = v
		}
	}
	return clone
}
