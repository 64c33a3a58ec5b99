package completion

import (
	"sync"

	"github.com/rodrigouchoa/cyclop/pkg/cql"
)

// Completer produces candidates when its marker is the token under the
// cursor.
type Completer interface {
	Marker() cql.Part
	Complete(q cql.Query) (Completion, error)
}

// Registry maps markers to completers for the console's TAB handler.
type Registry struct {
	mu       sync.RWMutex
	byMarker map[string]Completer
}

func NewRegistry() *Registry {
	return &Registry{byMarker: make(map[string]Completer)}
}

// Register adds c, replacing any completer with the same marker.
func (r *Registry) Register(c Completer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byMarker[c.Marker().Value] = c
}

// Find returns the completer registered for marker.
func (r *Registry) Find(marker cql.Part) (Completer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byMarker[marker.Value]
	return c, ok
}
