package result

import (
	"fmt"
	"sync"

	"github.com/rodrigouchoa/cyclop/pkg/cql"
)

// ResultSet is the immutable aggregate for one executed query: the ordered
// column list, its common/dynamic classification, the row sequence and the
// partition key. Once constructed it never changes and may be shared freely
// between readers.
//
// Rows replay in exactly the order the producer stored them; a producer
// that wants newest-first display must store them newest first.
type ResultSet struct {
	columns        []cql.ColumnName
	commonColumns  []cql.ColumnName
	dynamicColumns []cql.ColumnName
	rows           []Row
	partitionKey   PartitionKey
	lock           sync.Locker
}

var emptyResult = &ResultSet{}

// Empty returns the canonical empty result. Code passing result sets
// around uses this value instead of nil.
func Empty() *ResultSet {
	return emptyResult
}

// NewResultSet builds a result from the output of Classify plus the row
// data and partition key supplied by the query collaborator. Consistency
// of the classification is not re-checked here.
func NewResultSet(common, dynamic, columns []cql.ColumnName, rows []Row, key PartitionKey) *ResultSet {
	return &ResultSet{
		columns:        columns,
		commonColumns:  common,
		dynamicColumns: dynamic,
		rows:           rows,
		partitionKey:   key,
	}
}

// NewLockedResultSet additionally binds the result to the read-side lock
// of the storage holding rows. Iterate acquires the lock; the iterator's
// Close releases it. Pass e.g. mu.RLocker() of the owning store.
func NewLockedResultSet(common, dynamic, columns []cql.ColumnName, rows []Row, key PartitionKey, lock sync.Locker) *ResultSet {
	rs := NewResultSet(common, dynamic, columns, rows, key)
	rs.lock = lock
	return rs
}

func (rs *ResultSet) IsEmpty() bool {
	return len(rs.rows) == 0
}

func (rs *ResultSet) Len() int {
	return len(rs.rows)
}

func (rs *ResultSet) Columns() []cql.ColumnName {
	return rs.columns
}

func (rs *ResultSet) CommonColumns() []cql.ColumnName {
	return rs.commonColumns
}

func (rs *ResultSet) DynamicColumns() []cql.ColumnName {
	return rs.dynamicColumns
}

func (rs *ResultSet) PartitionKey() PartitionKey {
	return rs.partitionKey
}

// Iterate starts a traversal over the rows. The returned iterator holds
// the backing storage's read lock (when the result is lock-bound) until
// Close is called; callers must close it on every exit path. Prefer Each
// unless the traversal really needs manual control.
func (rs *ResultSet) Iterate() *RowIterator {
	if rs.lock != nil {
		rs.lock.Lock()
	}
	return &RowIterator{
		Metadata: RowMetadata{
			Columns:        rs.columns,
			CommonColumns:  rs.commonColumns,
			DynamicColumns: rs.dynamicColumns,
			PartitionKey:   rs.partitionKey,
		},
		rows: rs.rows,
		lock: rs.lock,
	}
}

// Each runs fn for every row under a managed iterator, releasing it on
// every exit path, including an error from fn.
func (rs *ResultSet) Each(fn func(Row, RowMetadata) error) error {
	it := rs.Iterate()
	defer it.Close()

	for it.HasNext() {
		row, err := it.Next()
		if err != nil {
			return err
		}
		if err := fn(row, it.Metadata); err != nil {
			return err
		}
	}
	return nil
}

// String deliberately leaves out the full column list; the two subsets
// carry the same names.
func (rs *ResultSet) String() string {
	return fmt.Sprintf("ResultSet{commonColumns: %v, dynamicColumns: %v, rows: %v, partitionKey: %v}",
		rs.commonColumns, rs.dynamicColumns, rs.rows, rs.partitionKey)
}
