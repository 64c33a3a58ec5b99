package schema

import (
	"sort"
	"sync"

	"github.com/rodrigouchoa/cyclop/pkg/cql"
	"github.com/rodrigouchoa/cyclop/pkg/result"
)

// Catalog records the tables and columns observed in loaded data. It is
// the console's column lookup for completion: names come back sorted and
// duplicate-free, as the completion contract requires.
type Catalog struct {
	mu     sync.RWMutex
	tables map[string]*tableSchema
}

type tableSchema struct {
	table     cql.Table
	columns   []cql.ColumnName // first-seen order
	partition []string
}

func NewCatalog() *Catalog {
	return &Catalog{tables: make(map[string]*tableSchema)}
}

// Observe records col for table, keeping the first-seen order and the
// first-seen type tag.
func (c *Catalog) Observe(table cql.Table, col cql.ColumnName) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts := c.tables[table.Name]
	if ts == nil {
		ts = &tableSchema{table: table}
		c.tables[table.Name] = ts
	}
	for _, known := range ts.columns {
		if known.Equal(col) {
			return
		}
	}
	ts.columns = append(ts.columns, col)
}

// SetPartitionKey declares the partition column names for table.
func (c *Catalog) SetPartitionKey(table cql.Table, names ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts := c.tables[table.Name]
	if ts == nil {
		ts = &tableSchema{table: table}
		c.tables[table.Name] = ts
	}
	ts.partition = names
}

// PartitionKey resolves the declared partition key against the observed
// columns; absent when undeclared or nothing matches.
func (c *Catalog) PartitionKey(table cql.Table) result.PartitionKey {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ts := c.tables[table.Name]
	if ts == nil {
		return result.PartitionKey{}
	}
	return result.ResolvePartitionKey(ts.partition, ts.columns)
}

// Columns returns the observed columns of table in first-seen order.
func (c *Catalog) Columns(table cql.Table) []cql.ColumnName {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ts := c.tables[table.Name]
	if ts == nil {
		return nil
	}
	out := make([]cql.ColumnName, len(ts.columns))
	copy(out, ts.columns)
	return out
}

// Tables lists the known tables, sorted by name.
func (c *Catalog) Tables() []cql.Table {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]cql.Table, 0, len(c.tables))
	for _, ts := range c.tables {
		out = append(out, ts.table)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// FindColumnNames implements completion.ColumnLookup: lexicographically
// ordered, duplicate-free. An unknown table yields an empty list, not an
// error.
func (c *Catalog) FindColumnNames(table cql.Table) ([]cql.ColumnName, error) {
	cols := c.Columns(table)
	sort.Slice(cols, func(i, j int) bool { return cols[i].Name < cols[j].Name })
	return cols, nil
}
