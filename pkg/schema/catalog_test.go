package schema

import (
	"testing"

	"github.com/rodrigouchoa/cyclop/pkg/cql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_FindColumnNamesSortedAndUnique(t *testing.T) {
	c := NewCatalog()
	table := cql.NewTable("t")

	for _, n := range []string{"x", "a", "m", "a"} {
		c.Observe(table, cql.NewColumnName(table, n, cql.TypeText))
	}

	found, err := c.FindColumnNames(table)
	require.NoError(t, err)

	got := make([]string, len(found))
	for i, col := range found {
		got[i] = col.Name
	}
	assert.Equal(t, []string{"a", "m", "x"}, got)
}

func TestCatalog_UnknownTable(t *testing.T) {
	c := NewCatalog()

	found, err := c.FindColumnNames(cql.NewTable("missing"))
	require.NoError(t, err, "unknown table is empty, not an error")
	assert.Empty(t, found)
	assert.Empty(t, c.Columns(cql.NewTable("missing")))
}

func TestCatalog_ColumnsKeepFirstSeenOrder(t *testing.T) {
	c := NewCatalog()
	table := cql.NewTable("t")

	for _, n := range []string{"b", "a", "c"} {
		c.Observe(table, cql.NewColumnName(table, n, cql.TypeText))
	}
	// second observation of a column keeps the first type tag
	c.Observe(table, cql.NewColumnName(table, "b", cql.TypeInt))

	cols := c.Columns(table)
	require.Len(t, cols, 3)
	assert.Equal(t, "b", cols[0].Name)
	assert.Equal(t, cql.TypeText, cols[0].Type)
	assert.Equal(t, "a", cols[1].Name)
	assert.Equal(t, "c", cols[2].Name)
}

func TestCatalog_Tables(t *testing.T) {
	c := NewCatalog()
	c.Observe(cql.NewTable("zeta"), cql.NewColumnName(cql.NewTable("zeta"), "a", cql.TypeText))
	c.Observe(cql.NewTable("alpha"), cql.NewColumnName(cql.NewTable("alpha"), "a", cql.TypeText))

	tables := c.Tables()
	require.Len(t, tables, 2)
	assert.Equal(t, "alpha", tables[0].Name)
	assert.Equal(t, "zeta", tables[1].Name)
}

func TestCatalog_PartitionKey(t *testing.T) {
	c := NewCatalog()
	table := cql.NewTable("t")
	c.Observe(table, cql.NewColumnName(table, "id", cql.TypeInt))
	c.Observe(table, cql.NewColumnName(table, "name", cql.TypeText))

	assert.False(t, c.PartitionKey(table).Defined(), "undeclared key is absent")

	c.SetPartitionKey(table, "id")
	key := c.PartitionKey(table)
	require.True(t, key.Defined())
	assert.Equal(t, "id", key.Columns()[0].Name)

	c.SetPartitionKey(table, "bogus")
	assert.False(t, c.PartitionKey(table).Defined(), "unresolvable key is absent, not an error")
}
