package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/chzyer/readline"
	"github.com/rodrigouchoa/cyclop/pkg/completion"
	"github.com/rodrigouchoa/cyclop/pkg/conf"
	"github.com/rodrigouchoa/cyclop/pkg/cql"
	"github.com/rodrigouchoa/cyclop/pkg/history"
	"github.com/rodrigouchoa/cyclop/pkg/result"
	"github.com/rodrigouchoa/cyclop/pkg/schema"
)

// RunInteractive starts the console REPL. TAB after the column-list paren
// of an INSERT suggests the table's columns.
func RunInteractive(cfg *conf.Config, source *schema.Source) error {
	hist := history.New(cfg.History.Limit)
	store := history.NewFileStore(cfg.History.File)
	if err := hist.LoadFrom(store); err != nil {
		fmt.Fprintf(os.Stderr, "history: %v\n", err)
	}

	registry := completion.NewRegistry()
	registry.Register(completion.NewColumnsCompletion(source.Catalog()))

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "cql> ",
		AutoComplete:    &markerCompleter{registry: registry},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Println("Interactive mode. Type 'exit' or 'quit' to leave, 'tables' to list tables.")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.EqualFold(trimmed, "exit") || strings.EqualFold(trimmed, "quit") {
			break
		}
		if strings.EqualFold(trimmed, "tables") {
			for _, t := range source.Catalog().Tables() {
				fmt.Println(t)
			}
			continue
		}
		if strings.EqualFold(trimmed, "history") {
			printHistory(os.Stdout, hist)
			continue
		}

		if err := executeLine(source, hist, trimmed, cfg.Console.PageSize); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	if err := hist.SaveTo(store); err != nil {
		fmt.Fprintf(os.Stderr, "save history: %v\n", err)
	}
	return nil
}

// executeLine runs one statement; pageSize caps SELECT output unless the
// statement carries its own LIMIT.
func executeLine(source *schema.Source, hist *history.History, line string, pageSize int) error {
	stmt, err := cql.ParseStatement(line)
	if err != nil {
		return err
	}
	q := cql.NewQuery(line)

	switch {
	case stmt.Select != nil:
		limit := pageSize
		if stmt.Select.Limit != nil {
			limit = *stmt.Select.Limit
		}
		var projection []string
		if !stmt.Select.Star {
			projection = stmt.Select.Columns
		}

		rs, err := source.Select(cql.NewTable(stmt.Select.Table), projection, limit)
		if err != nil {
			return err
		}
		if err := renderResult(os.Stdout, rs); err != nil {
			return err
		}
		hist.Add(q, result.ToSnapshot(rs))

	case stmt.Insert != nil:
		// the console does not write data; the statement is only recorded
		fmt.Println("insert is not executed here; statement recorded to history")
		hist.Add(q, result.ToSnapshot(result.Empty()))
	}
	return nil
}

func printHistory(w io.Writer, hist *history.History) {
	if hist.Len() == 0 {
		fmt.Fprintln(w, "history is empty")
		return
	}
	_ = hist.Each(func(e history.Entry) error {
		fmt.Fprintf(w, "%s  %s\n", e.Executed.Format("2006-01-02 15:04:05"), e.Statement)
		return nil
	})
}

// markerCompleter bridges the completion registry into readline: it finds
// the marker token before the word under the cursor and asks the matching
// completer for candidates.
type markerCompleter struct {
	registry *completion.Registry
}

func (m *markerCompleter) Do(line []rune, pos int) ([][]rune, int) {
	before := line[:pos]

	start := len(before)
	for start > 0 && isIdentRune(before[start-1]) {
		start--
	}
	prefix := strings.ToLower(string(before[start:]))

	var marker string
	for i := start - 1; i >= 0; i-- {
		if before[i] == ' ' || before[i] == '\t' {
			continue
		}
		marker = string(before[i])
		break
	}
	if marker == "" {
		return nil, 0
	}

	completer, ok := m.registry.Find(cql.Part{Value: marker})
	if !ok {
		return nil, 0
	}
	cmp, err := completer.Complete(cql.NewQuery(string(before)))
	if err != nil || cmp.IsEmpty() {
		return nil, 0
	}

	var out [][]rune
	for _, name := range cmp.Strings() {
		if strings.HasPrefix(name, prefix) {
			out = append(out, []rune(name[len(prefix):]))
		}
	}
	return out, len(prefix)
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
