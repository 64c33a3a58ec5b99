package result

import "github.com/rodrigouchoa/cyclop/pkg/cql"

// Snapshot is the persistable slice of a ResultSet: the three column lists
// and nothing else. Row payloads and the driver-specific partition key are
// deliberately left behind so stored history entries stay small.
type Snapshot struct {
	Columns        []cql.ColumnName `json:"columns"`
	CommonColumns  []cql.ColumnName `json:"commonColumns"`
	DynamicColumns []cql.ColumnName `json:"dynamicColumns"`
}

// ToSnapshot copies the column classification out of rs. Rows and the
// partition key are never included.
func ToSnapshot(rs *ResultSet) Snapshot {
	return Snapshot{
		Columns:        copyColumns(rs.columns),
		CommonColumns:  copyColumns(rs.commonColumns),
		DynamicColumns: copyColumns(rs.dynamicColumns),
	}
}

// FromSnapshot rebuilds a metadata-only ResultSet. Rows come back empty
// and the partition key absent no matter what the snapshotted result held;
// rehydration never fails for lack of either. The result is unsuitable for
// row display without re-executing the query.
func FromSnapshot(s Snapshot) *ResultSet {
	return NewResultSet(s.CommonColumns, s.DynamicColumns, s.Columns, nil, PartitionKey{})
}

func copyColumns(cols []cql.ColumnName) []cql.ColumnName {
	if len(cols) == 0 {
		return nil
	}
	out := make([]cql.ColumnName, len(cols))
	copy(out, cols)
	return out
}
