package result

import (
	"strings"

	"github.com/rodrigouchoa/cyclop/pkg/cql"
)

// PartitionKey names the column(s) the backing store groups rows by for
// one query. The zero value means the key could not be determined, which
// is a normal outcome, not an error.
type PartitionKey struct {
	columns []cql.ColumnName
}

func NewPartitionKey(columns ...cql.ColumnName) PartitionKey {
	return PartitionKey{columns: columns}
}

// ResolvePartitionKey derives a key from driver-reported column names,
// keeping only names that actually occur in the result's columns. When
// nothing matches the key is absent.
func ResolvePartitionKey(names []string, columns []cql.ColumnName) PartitionKey {
	var matched []cql.ColumnName
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		for _, col := range columns {
			if col.Name == n {
				matched = append(matched, col)
				break
			}
		}
	}
	return PartitionKey{columns: matched}
}

// Defined reports whether the key was determinable.
func (p PartitionKey) Defined() bool {
	return len(p.columns) > 0
}

// Columns returns the key columns in declaration order; empty when absent.
func (p PartitionKey) Columns() []cql.ColumnName {
	return p.columns
}

// Contains reports whether col is part of the key.
func (p PartitionKey) Contains(col cql.ColumnName) bool {
	for _, c := range p.columns {
		if c.Equal(col) {
			return true
		}
	}
	return false
}

func (p PartitionKey) String() string {
	if !p.Defined() {
		return "<none>"
	}
	names := make([]string, len(p.columns))
	for i, c := range p.columns {
		names[i] = c.Name
	}
	return strings.Join(names, ",")
}
