package cql

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Console-side statement scanner. It classifies a REPL line into the two
// statement shapes the console acts on; anything richer is left to the
// database behind the driver boundary.

// SelectStmt is a `SELECT cols FROM table [LIMIT n]` line.
type SelectStmt struct {
	Star    bool     `parser:"'SELECT' ( @'*'"`
	Columns []string `parser:"| @Ident (',' @Ident)* )"`
	Table   string   `parser:"'FROM' @Ident"`
	Limit   *int     `parser:"('LIMIT' @Number)?"`
}

// InsertStmt is an `INSERT INTO table (cols)` line. The column list is
// optional so that a statement still being typed classifies correctly.
type InsertStmt struct {
	Table   string   `parser:"'INSERT' 'INTO' @Ident"`
	Columns []string `parser:"('(' @Ident (',' @Ident)* ')')?"`
}

// Statement is one parsed console line; exactly one branch is set.
type Statement struct {
	Select *SelectStmt `parser:"  @@"`
	Insert *InsertStmt `parser:"| @@"`
}

var (
	cqlLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Keyword", Pattern: `(?i)\b(SELECT|FROM|LIMIT|INSERT|INTO|VALUES)\b`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Number", Pattern: `\d+`},
		{Name: "String", Pattern: `'[^']*'|"[^"]*"`},
		{Name: "Punct", Pattern: `[,.()*;]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	stmtParser = participle.MustBuild[Statement](
		participle.Lexer(cqlLexer),
		participle.Unquote("String"),
		participle.CaseInsensitive("Keyword"),
		participle.Elide("Whitespace"),
	)
)

// ParseStatement parses a single console line. A trailing semicolon is
// accepted and ignored.
func ParseStatement(input string) (*Statement, error) {
	input = strings.TrimSpace(input)
	input = strings.TrimSuffix(input, ";")
	if input == "" {
		return nil, fmt.Errorf("empty statement")
	}

	stmt, err := stmtParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return stmt, nil
}
