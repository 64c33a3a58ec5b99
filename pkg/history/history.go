package history

import (
	"errors"
	"sync"
	"time"

	"github.com/rodrigouchoa/cyclop/pkg/cql"
	"github.com/rodrigouchoa/cyclop/pkg/result"
)

// ErrExhausted is returned by Iterator.Next once no entries remain.
var ErrExhausted = errors.New("history: iterator exhausted")

// Entry is one executed statement together with the metadata-only snapshot
// of its result. Row data never enters history.
type Entry struct {
	Statement string          `json:"statement"`
	Executed  time.Time       `json:"executed"`
	Result    result.Snapshot `json:"result"`
}

// Query rebuilds the statement value.
func (e Entry) Query() cql.Query {
	return cql.NewQuery(e.Statement)
}

// History is a bounded buffer of executed statements, newest first. Writes
// and reads are guarded by one RWMutex; iterators hold the read side until
// closed.
type History struct {
	mu      sync.RWMutex
	limit   int
	entries []Entry
}

// New creates a history keeping at most limit entries; the oldest fall off.
func New(limit int) *History {
	if limit < 1 {
		limit = 1
	}
	return &History{limit: limit}
}

// Add records q at the newest position.
func (h *History) Add(q cql.Query, snap result.Snapshot) {
	h.AddEntry(Entry{Statement: q.Raw, Executed: time.Now(), Result: snap})
}

// AddEntry records e at the newest position, trimming the oldest entries
// beyond the limit.
func (h *History) AddEntry(e Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append([]Entry{e}, h.entries...)
	if len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Newest returns the most recent entry.
func (h *History) Newest() (Entry, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[0], true
}

// Iterate starts a newest-to-oldest traversal. The iterator holds the
// buffer's read lock; callers must Close it on every exit path or writers
// block forever. Prefer Each unless manual control is needed.
func (h *History) Iterate() *Iterator {
	h.mu.RLock()
	return &Iterator{entries: h.entries, lock: h.mu.RLocker()}
}

// Each runs fn for every entry, newest first, under a managed iterator.
func (h *History) Each(fn func(Entry) error) error {
	it := h.Iterate()
	defer it.Close()

	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return err
		}
		if err := fn(e); err != nil {
			return err
		}
	}
	return nil
}

// Iterator is a single-pass traversal over history entries, newest first.
// Not safe for concurrent use; Close is mandatory.
type Iterator struct {
	entries []Entry
	next    int
	lock    sync.Locker
	closed  bool
}

func (it *Iterator) HasNext() bool {
	return it.next < len(it.entries)
}

func (it *Iterator) Next() (Entry, error) {
	if it.next >= len(it.entries) {
		return Entry{}, ErrExhausted
	}
	e := it.entries[it.next]
	it.next++
	return e, nil
}

// Close releases the read lock. Calling it again is a no-op.
func (it *Iterator) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true
	if it.lock != nil {
		it.lock.Unlock()
	}
	return nil
}
