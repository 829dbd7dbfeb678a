package table

import (
	"fmt"
	"reflect"
)

// Row is a single record keyed by column name.
type Row map[string]any

// Table is an ordered collection of rows sharing an ordered set of named
// columns. The zero value is unusable; construct with New.
type Table struct {
	cols []string
	rows []Row
}

// New creates an empty table with the given column order.
func New(cols ...string) *Table {
	return &Table{cols: append([]string(nil), cols...)}
}

// Columns returns the column names in order. The caller must not mutate
// the returned slice.
func (t *Table) Columns() []string {
	return t.cols
}

// Rows returns the rows in insertion order. The caller must not mutate
// the returned slice.
func (t *Table) Rows() []Row {
	return t.rows
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Append adds rows to the end of the table. Keys outside the column set
// are ignored during formatting; missing keys format as empty values.
func (t *Table) Append(rows ...Row) {
	t.rows = append(t.rows, rows...)
}

// Row returns the i-th row.
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// Equal reports whether two tables have the same column order and
// deeply equal rows.
func (t *Table) Equal(other *Table) bool {
	if other == nil {
		return false
	}
	if !reflect.DeepEqual(t.cols, other.cols) {
		return false
	}
	if len(t.rows) != len(other.rows) {
		return false
	}
	for i := range t.rows {
		if !reflect.DeepEqual(t.rows[i], other.rows[i]) {
			return false
		}
	}
	return true
}

// formatValue renders a cell for text output. nil renders as the empty
// string; []byte renders as its string contents.
func formatValue(v any) string {
	if v == nil {
		return ""
	}
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return fmt.Sprintf("%v", v)
}
