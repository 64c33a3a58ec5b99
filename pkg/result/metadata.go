package result

import "github.com/rodrigouchoa/cyclop/pkg/cql"

// RowMetadata is the column classification handed out with row data. One
// value is computed per traversal and applies to every row of it; it is
// not per-row information.
type RowMetadata struct {
	// Columns is every column of the result, in the order the query
	// returned them.
	Columns []cql.ColumnName

	// CommonColumns and DynamicColumns partition Columns, each keeping its
	// relative order.
	CommonColumns  []cql.ColumnName
	DynamicColumns []cql.ColumnName

	// PartitionKey is absent when it could not be read from the driver.
	PartitionKey PartitionKey
}
