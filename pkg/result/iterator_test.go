package result

import (
	"errors"
	"sync"
	"testing"

	"github.com/rodrigouchoa/cyclop/pkg/cql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeRowSet() (*ResultSet, []Row) {
	rows := []Row{
		NewRow(cell("a", "r3")),
		NewRow(cell("a", "r2")),
		NewRow(cell("a", "r1")),
	}
	columns := []cql.ColumnName{col("a")}
	common, dynamic := Classify(rows, columns)
	return NewResultSet(common, dynamic, columns, rows, PartitionKey{}), rows
}

func TestRowIterator_ReplaysStoredOrder(t *testing.T) {
	// producer stored newest first; the iterator must not reorder
	rs, rows := threeRowSet()

	it := rs.Iterate()
	defer it.Close()

	for _, want := range rows {
		require.True(t, it.HasNext())
		got, err := it.Next()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.False(t, it.HasNext())
}

func TestRowIterator_NextPastEnd(t *testing.T) {
	rs, _ := threeRowSet()

	it := rs.Iterate()
	defer it.Close()

	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
	}

	_, err := it.Next()
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestRowIterator_RemoveAlwaysFails(t *testing.T) {
	rs, _ := threeRowSet()

	it := rs.Iterate()
	defer it.Close()

	assert.ErrorIs(t, it.Remove(), ErrReadOnly)
	_, err := it.Next()
	require.NoError(t, err)
	assert.ErrorIs(t, it.Remove(), ErrReadOnly)
}

func TestRowIterator_HoldsAndReleasesLock(t *testing.T) {
	var mu sync.RWMutex
	rows := []Row{NewRow(cell("a", 1))}
	columns := []cql.ColumnName{col("a")}
	common, dynamic := Classify(rows, columns)
	rs := NewLockedResultSet(common, dynamic, columns, rows, PartitionKey{}, mu.RLocker())

	it := rs.Iterate()
	assert.False(t, mu.TryLock(), "writer must be blocked while the iterator is open")

	require.NoError(t, it.Close())
	assert.True(t, mu.TryLock(), "closing the iterator must release the read lock")
	mu.Unlock()
}

func TestRowIterator_CloseIsIdempotent(t *testing.T) {
	var mu sync.RWMutex
	rows := []Row{NewRow(cell("a", 1))}
	columns := []cql.ColumnName{col("a")}
	rs := NewLockedResultSet(nil, columns, columns, rows, PartitionKey{}, mu.RLocker())

	// a second reader holds the lock too; double-closing the first iterator
	// must not release the second reader's hold
	mu.RLock()
	it := rs.Iterate()
	require.NoError(t, it.Close())
	require.NoError(t, it.Close())

	assert.False(t, mu.TryLock())
	mu.RUnlock()
	assert.True(t, mu.TryLock())
	mu.Unlock()
}

func TestRowIterator_MetadataConstantAcrossTraversal(t *testing.T) {
	rs, _ := threeRowSet()

	it := rs.Iterate()
	defer it.Close()

	first := it.Metadata
	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
		assert.Equal(t, first, it.Metadata)
	}
}

func TestEmptyIterator(t *testing.T) {
	it := EmptyIterator()
	assert.False(t, it.HasNext())
	assert.Empty(t, it.Metadata.Columns)
	_, err := it.Next()
	assert.ErrorIs(t, err, ErrExhausted)
	require.NoError(t, it.Close())
}

func TestEach_ReleasesLockOnError(t *testing.T) {
	var mu sync.RWMutex
	rows := []Row{NewRow(cell("a", 1)), NewRow(cell("a", 2))}
	columns := []cql.ColumnName{col("a")}
	common, dynamic := Classify(rows, columns)
	rs := NewLockedResultSet(common, dynamic, columns, rows, PartitionKey{}, mu.RLocker())

	boom := errors.New("boom")
	err := rs.Each(func(Row, RowMetadata) error { return boom })
	assert.ErrorIs(t, err, boom)

	assert.True(t, mu.TryLock(), "Each must release the lock when fn fails")
	mu.Unlock()
}
