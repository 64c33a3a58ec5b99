package cql

import "strings"

// ColumnType is the coarse data type tag carried by a column identifier.
// It plays no part in column equality; it only informs rendering.
type ColumnType int

const (
	TypeUnknown ColumnType = iota
	TypeText
	TypeInt
	TypeFloat
	TypeBool
	TypeTimestamp
)

func (t ColumnType) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	case TypeTimestamp:
		return "timestamp"
	default:
		return "unknown"
	}
}

// Table identifies a column family. CQL identifiers are case-insensitive,
// so the name is normalized to lower case on construction.
type Table struct {
	Name string `json:"name"`
}

func NewTable(name string) Table {
	return Table{Name: strings.ToLower(strings.TrimSpace(name))}
}

func (t Table) String() string {
	return t.Name
}

// ColumnName is a table-qualified column identifier.
type ColumnName struct {
	Table Table      `json:"table"`
	Name  string     `json:"name"`
	Type  ColumnType `json:"type"`
}

func NewColumnName(table Table, name string, typ ColumnType) ColumnName {
	return ColumnName{Table: table, Name: strings.ToLower(strings.TrimSpace(name)), Type: typ}
}

// Equal reports whether two identifiers refer to the same column.
// The type tag is ignored; two observations of one column may carry
// different tags.
func (c ColumnName) Equal(o ColumnName) bool {
	return c.Name == o.Name && c.Table == o.Table
}

func (c ColumnName) String() string {
	if c.Table.Name == "" {
		return c.Name
	}
	return c.Table.Name + "." + c.Name
}

// Keyword is a canonical CQL keyword, possibly multi-word, stored in the
// same normalized form Query.Clean uses.
type Keyword struct {
	Value string
}

var (
	KwSelect     = Keyword{"select"}
	KwFrom       = Keyword{"from"}
	KwInsertInto = Keyword{"insert into"}
	KwUpdate     = Keyword{"update"}
	KwDeleteFrom = Keyword{"delete from"}
)

// Part is a raw query fragment, such as the marker token a completer
// anchors on.
type Part struct {
	Value string
}
