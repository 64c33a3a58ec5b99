package completion

import (
	"fmt"

	"github.com/rodrigouchoa/cyclop/pkg/cql"
)

// ColumnLookup resolves the known column names of a table. Implementations
// must return a lexicographically ordered, duplicate-free list; the
// completion layer relies on that instead of sorting again.
type ColumnLookup interface {
	FindColumnNames(table cql.Table) ([]cql.ColumnName, error)
}

// ColumnsCompletion suggests column names once the cursor sits after the
// column-list opening paren of an INSERT statement.
type ColumnsCompletion struct {
	lookup ColumnLookup
}

func NewColumnsCompletion(lookup ColumnLookup) *ColumnsCompletion {
	return &ColumnsCompletion{lookup: lookup}
}

func (c *ColumnsCompletion) Marker() cql.Part {
	return cql.Part{Value: "("}
}

// Complete extracts the table following INSERT INTO and suggests its
// columns. A query with no extractable table yields the empty completion,
// not an error.
func (c *ColumnsCompletion) Complete(q cql.Query) (Completion, error) {
	table, ok := cql.ExtractTableName(cql.KwInsertInto, q)
	if !ok {
		return Empty(), nil
	}

	names, err := c.lookup.FindColumnNames(table)
	if err != nil {
		return Empty(), fmt.Errorf("find column names for %q: %w", table.Name, err)
	}
	return New(names), nil
}

func (c *ColumnsCompletion) String() string {
	return "ColumnsCompletion"
}
