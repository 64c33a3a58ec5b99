package schema

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/rodrigouchoa/cyclop/pkg/cql"
	"github.com/rodrigouchoa/cyclop/pkg/result"
)

// Source holds the rows loaded for each table and hands them out as result
// sets bound to its read lock, so an open traversal keeps the buffer
// stable against concurrent loads.
type Source struct {
	mu      sync.RWMutex
	catalog *Catalog
	rows    map[string][]result.Row
}

func NewSource(catalog *Catalog) *Source {
	return &Source{catalog: catalog, rows: make(map[string][]result.Row)}
}

func (s *Source) Catalog() *Catalog {
	return s.catalog
}

// LoadJSONL appends one sparse row per non-blank line of r to table,
// observing every column in the catalog. Object key order is preserved;
// null values are treated as absent cells. Returns the number of rows
// loaded.
func (s *Source) LoadJSONL(table cql.Table, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var rows []result.Row
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		cells, err := decodeCells(table, text)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", line, err)
		}
		for _, c := range cells {
			s.catalog.Observe(table, c.Column)
		}
		rows = append(rows, result.NewRow(cells...))
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("read rows: %w", err)
	}

	s.mu.Lock()
	s.rows[table.Name] = append(s.rows[table.Name], rows...)
	s.mu.Unlock()
	return len(rows), nil
}

// Select builds a classified result over the current rows of table. The
// result is bound to the source's read lock; iterating it keeps loads out
// until the iterator is closed. A nil projection means all columns;
// limit <= 0 means all rows.
func (s *Source) Select(table cql.Table, projection []string, limit int) (*result.ResultSet, error) {
	s.mu.RLock()
	rows := s.rows[table.Name]
	s.mu.RUnlock()

	if len(rows) == 0 {
		if len(s.catalog.Columns(table)) == 0 {
			return result.Empty(), fmt.Errorf("table %q not loaded", table.Name)
		}
		return result.Empty(), nil
	}
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}

	columns := project(s.catalog.Columns(table), projection)
	common, dynamic := result.Classify(rows, columns)
	key := s.catalog.PartitionKey(table)
	return result.NewLockedResultSet(common, dynamic, columns, rows, key, s.mu.RLocker()), nil
}

// project keeps the observed columns named by the projection, in observed
// order. A nil projection keeps everything.
func project(columns []cql.ColumnName, projection []string) []cql.ColumnName {
	if len(projection) == 0 {
		return columns
	}
	out := make([]cql.ColumnName, 0, len(projection))
	for _, col := range columns {
		for _, name := range projection {
			if col.Name == strings.ToLower(name) {
				out = append(out, col)
				break
			}
		}
	}
	return out
}

// decodeCells reads one JSON object keeping key order, which a plain map
// decode would lose.
func decodeCells(table cql.Table, text string) ([]result.Cell, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode row: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("decode row: expected object, got %v", tok)
	}

	var cells []result.Cell
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode row: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("decode row: expected key, got %v", keyTok)
		}

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode value of %q: %w", key, err)
		}
		if raw == nil {
			continue
		}

		val, typ := coerce(raw)
		cells = append(cells, result.Cell{
			Column: cql.NewColumnName(table, key, typ),
			Value:  val,
		})
	}
	return cells, nil
}

func coerce(raw any) (any, cql.ColumnType) {
	switch v := raw.(type) {
	case string:
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			return ts, cql.TypeTimestamp
		}
		return v, cql.TypeText
	case bool:
		return v, cql.TypeBool
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, cql.TypeInt
		}
		f, err := v.Float64()
		if err != nil || math.IsInf(f, 0) {
			return v.String(), cql.TypeText
		}
		return f, cql.TypeFloat
	default:
		return v, cql.TypeUnknown
	}
}
