package cmd

import (
	"fmt"
	"io"

	"github.com/rodrigouchoa/cyclop/pkg/cql"
	"github.com/rodrigouchoa/cyclop/pkg/result"
)

// renderResult prints rows with the common columns as the fixed layout and
// the dynamic columns listed per row, marked with '+'.
func renderResult(w io.Writer, rs *result.ResultSet) error {
	if rs.IsEmpty() {
		fmt.Fprintln(w, "(no rows)")
		return nil
	}
	if rs.PartitionKey().Defined() {
		fmt.Fprintf(w, "partition key: %s\n", rs.PartitionKey())
	}

	n := 0
	err := rs.Each(func(row result.Row, meta result.RowMetadata) error {
		n++
		fmt.Fprintf(w, "row %d\n", n)
		for _, col := range meta.CommonColumns {
			if v, ok := row.Get(col); ok {
				fmt.Fprintf(w, "  %-20s %v\n", col.Name, v)
			} else {
				fmt.Fprintf(w, "  %-20s -\n", col.Name)
			}
		}
		for _, col := range meta.DynamicColumns {
			if v, ok := row.Get(col); ok {
				fmt.Fprintf(w, "  + %-18s %v\n", col.Name, v)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "(%d rows)\n", n)
	return nil
}

func columnNames(cols []cql.ColumnName) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Name
	}
	return out
}
