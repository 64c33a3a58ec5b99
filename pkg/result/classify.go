package result

import "github.com/rodrigouchoa/cyclop/pkg/cql"

// Classify partitions columns into the common and dynamic subsets used to
// lay out a sparse result. A column populated in more than one row is
// common; a column populated in at most one row is dynamic. Both outputs
// keep the relative order of columns, and together they cover columns
// exactly once.
//
// columns is expected to be the first-seen-order union of every column key
// appearing in rows; the function does not verify that.
func Classify(rows []Row, columns []cql.ColumnName) (common, dynamic []cql.ColumnName) {
	common = make([]cql.ColumnName, 0, len(columns))
	dynamic = make([]cql.ColumnName, 0, len(columns))

	for _, col := range columns {
		seen := 0
		for _, row := range rows {
			if row.Has(col) {
				seen++
				if seen > 1 {
					break
				}
			}
		}
		if seen > 1 {
			common = append(common, col)
		} else {
			dynamic = append(dynamic, col)
		}
	}
	return common, dynamic
}
