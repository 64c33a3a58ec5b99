package completion

import (
	"errors"
	"sort"
	"testing"

	"github.com/rodrigouchoa/cyclop/pkg/cql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLookup serves column names sorted, as the ColumnLookup contract
// demands.
type fakeLookup struct {
	columns map[string][]string
	err     error
}

func (f *fakeLookup) FindColumnNames(table cql.Table) ([]cql.ColumnName, error) {
	if f.err != nil {
		return nil, f.err
	}
	names := append([]string{}, f.columns[table.Name]...)
	sort.Strings(names)

	out := make([]cql.ColumnName, len(names))
	for i, n := range names {
		out[i] = cql.NewColumnName(table, n, cql.TypeText)
	}
	return out, nil
}

func TestColumnsCompletion_NaturalOrder(t *testing.T) {
	lookup := &fakeLookup{columns: map[string][]string{"t": {"x", "a", "m"}}}
	cmp, err := NewColumnsCompletion(lookup).Complete(cql.NewQuery("INSERT INTO t ("))

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "m", "x"}, cmp.Strings())
}

func TestColumnsCompletion_NoTable(t *testing.T) {
	lookup := &fakeLookup{columns: map[string][]string{"t": {"a"}}}
	c := NewColumnsCompletion(lookup)

	tests := []struct {
		name  string
		query string
	}{
		{name: "different statement", query: "SELECT * FROM t"},
		{name: "keyword without table", query: "INSERT INTO "},
		{name: "empty query", query: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp, err := c.Complete(cql.NewQuery(tt.query))
			require.NoError(t, err, "a missing table is not an error")
			assert.True(t, cmp.IsEmpty())
		})
	}
}

func TestColumnsCompletion_UnknownTable(t *testing.T) {
	lookup := &fakeLookup{columns: map[string][]string{}}
	cmp, err := NewColumnsCompletion(lookup).Complete(cql.NewQuery("INSERT INTO nope ("))

	require.NoError(t, err)
	assert.True(t, cmp.IsEmpty())
}

func TestColumnsCompletion_LookupError(t *testing.T) {
	boom := errors.New("store down")
	lookup := &fakeLookup{err: boom}

	cmp, err := NewColumnsCompletion(lookup).Complete(cql.NewQuery("INSERT INTO t ("))
	assert.ErrorIs(t, err, boom)
	assert.True(t, cmp.IsEmpty())
}

func TestNew_DropsDuplicatesKeepsOrder(t *testing.T) {
	table := cql.NewTable("t")
	names := []cql.ColumnName{
		cql.NewColumnName(table, "a", cql.TypeText),
		cql.NewColumnName(table, "b", cql.TypeText),
		cql.NewColumnName(table, "a", cql.TypeInt), // same column, different tag
		cql.NewColumnName(table, "c", cql.TypeText),
	}

	cmp := New(names)
	assert.Equal(t, []string{"a", "b", "c"}, cmp.Strings())
	assert.Equal(t, 3, cmp.Len())
}

func TestRegistry(t *testing.T) {
	lookup := &fakeLookup{columns: map[string][]string{"t": {"a"}}}
	c := NewColumnsCompletion(lookup)

	r := NewRegistry()
	r.Register(c)

	got, ok := r.Find(cql.Part{Value: "("})
	require.True(t, ok)
	assert.Equal(t, c, got)

	_, ok = r.Find(cql.Part{Value: ")"})
	assert.False(t, ok)
}
