package result

import (
	"fmt"
	"strings"

	"github.com/rodrigouchoa/cyclop/pkg/cql"
)

// Cell is one column/value pair of a row. The value is opaque to this
// package; the producing collaborator owns it.
type Cell struct {
	Column cql.ColumnName
	Value  any
}

// Row is an ordered sequence of cells as returned for one database row.
// Rows from a column-family query are sparse: each row carries only the
// columns populated for it. A Row is read-only at this layer.
type Row struct {
	cells []Cell
}

func NewRow(cells ...Cell) Row {
	return Row{cells: cells}
}

func (r Row) Len() int {
	return len(r.cells)
}

// Cells returns the backing cell sequence in stored order. Callers must
// treat it as read-only.
func (r Row) Cells() []Cell {
	return r.cells
}

// Get returns the value stored for col, or false when the row has no cell
// for it.
func (r Row) Get(col cql.ColumnName) (any, bool) {
	for _, c := range r.cells {
		if c.Column.Equal(col) {
			return c.Value, true
		}
	}
	return nil, false
}

// Has reports whether the row holds a populated value for col. A nil value
// or an empty string does not count as populated.
func (r Row) Has(col cql.ColumnName) bool {
	v, ok := r.Get(col)
	return ok && populated(v)
}

func populated(v any) bool {
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return s != ""
	}
	return true
}

func (r Row) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, c := range r.cells {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", c.Column.Name, c.Value)
	}
	b.WriteByte('}')
	return b.String()
}
