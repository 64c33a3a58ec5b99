package cql

import "strings"

// Query is a raw CQL statement together with its normalized form: lower
// case, whitespace collapsed to single spaces. Keyword matching and table
// extraction operate on the normalized form only.
type Query struct {
	Raw   string
	Clean string
}

func NewQuery(raw string) Query {
	return Query{Raw: raw, Clean: normalize(raw)}
}

func (q Query) IsEmpty() bool {
	return q.Clean == ""
}

func (q Query) String() string {
	return q.Raw
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// ExtractTableName finds the table identifier following the anchor keyword
// in q. The second return value is false when the keyword is missing or no
// identifier follows it; that is not an error condition.
func ExtractTableName(anchor Keyword, q Query) (Table, bool) {
	idx := strings.Index(q.Clean, anchor.Value)
	if idx == -1 {
		return Table{}, false
	}
	rest := strings.TrimSpace(q.Clean[idx+len(anchor.Value):])
	if rest == "" {
		return Table{}, false
	}

	// the identifier ends at the first space or opening paren
	end := len(rest)
	for i, r := range rest {
		if r == ' ' || r == '(' {
			end = i
			break
		}
	}
	name := strings.Trim(rest[:end], `();,"`)
	if name == "" {
		return Table{}, false
	}
	return NewTable(name), true
}
