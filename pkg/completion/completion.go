package completion

import "github.com/rodrigouchoa/cyclop/pkg/cql"

// Completion is an ordered, duplicate-free set of column-name candidates.
// The order is whatever the producing lookup guaranteed; it is never
// re-sorted here.
type Completion struct {
	names []cql.ColumnName
}

// Empty is the completion with no candidates, returned instead of an error
// when nothing can be suggested.
func Empty() Completion {
	return Completion{}
}

// New keeps the first occurrence of every name, preserving input order.
func New(names []cql.ColumnName) Completion {
	out := make([]cql.ColumnName, 0, len(names))
	for _, n := range names {
		dup := false
		for _, seen := range out {
			if seen.Equal(n) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, n)
		}
	}
	return Completion{names: out}
}

func (c Completion) IsEmpty() bool {
	return len(c.names) == 0
}

func (c Completion) Len() int {
	return len(c.names)
}

// Names returns the candidates in suggestion order. Read-only.
func (c Completion) Names() []cql.ColumnName {
	return c.names
}

// Strings returns the bare column names, for console line editors.
func (c Completion) Strings() []string {
	out := make([]string, len(c.names))
	for i, n := range c.names {
		out[i] = n.Name
	}
	return out
}
