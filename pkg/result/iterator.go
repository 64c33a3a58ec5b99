package result

import (
	"errors"
	"sync"
)

var (
	// ErrExhausted is returned by Next once no rows remain.
	ErrExhausted = errors.New("result: row iterator exhausted")

	// ErrReadOnly is returned by Remove; result rows cannot be mutated
	// through iteration.
	ErrReadOnly = errors.New("result: row iterator is read-only")
)

// RowIterator is a single-pass traversal over one ResultSet. It is not
// restartable and not safe for concurrent use.
//
// While open it may hold the read-side lock of the storage backing the
// rows, keeping the storage stable for the traversal. Close is mandatory
// on every exit path; an unclosed iterator leaks the lock and blocks
// writers indefinitely. This layer does not detect the leak.
type RowIterator struct {
	// Metadata is the classification computed when Iterate was called; the
	// same value applies to every row of this traversal.
	Metadata RowMetadata

	rows   []Row
	next   int
	lock   sync.Locker
	closed bool
}

// EmptyIterator returns an iterator over no rows with empty metadata. It
// holds no lock and closing it is a no-op.
func EmptyIterator() *RowIterator {
	return &RowIterator{}
}

func (it *RowIterator) HasNext() bool {
	return it.next < len(it.rows)
}

// Next returns the next row in stored order. After the last row it fails
// with ErrExhausted.
func (it *RowIterator) Next() (Row, error) {
	if it.next >= len(it.rows) {
		return Row{}, ErrExhausted
	}
	row := it.rows[it.next]
	it.next++
	return row, nil
}

// Remove always fails with ErrReadOnly, regardless of position.
func (it *RowIterator) Remove() error {
	return ErrReadOnly
}

// Close releases the storage lock. Calling it again is a no-op; only the
// first call releases.
func (it *RowIterator) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true
	if it.lock != nil {
		it.lock.Unlock()
	}
	return nil
}
