// Tab-delimited table loading and the minimal table operations used by the pipeline

package main

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shenwei356/util/pathutil"
	"github.com/shenwei356/xopen"
)

// Table is an in-memory tab-delimited table: ordered column names and
// string cells. Columns are looked up by their first occurrence
type Table struct {
	Columns []string
	Rows    [][]string
	index   map[string]int
}

// NewTable creates a table over the given columns and rows. Rows are not copied
func NewTable(columns []string, rows [][]string) *Table {
	t := &Table{
		Columns: columns,
		Rows:    rows,
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		if _, ok := t.index[c]; !ok {
			t.index[c] = i
		}
	}
	return t
}

func (t *Table) Len() int { return len(t.Rows) }

// ColumnIndex returns the position of a column and whether it exists
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// requireColumns returns a SchemaError for the first missing column
func (t *Table) requireColumns(source string, names ...string) error {
	for _, name := range names {
		if _, ok := t.index[name]; !ok {
			return &SchemaError{Source: source, Column: name}
		}
	}
	return nil
}

// checkInputExists returns an InputNotFoundError if path does not exist
func checkInputExists(path string) error {
	ok, err := pathutil.Exists(path)
	if err != nil {
		return fmt.Errorf("error checking %s: %v", path, err)
	}
	if !ok {
		return &InputNotFoundError{Path: path}
	}
	return nil
}

// LoadTable reads a tab-delimited file with a header line. Compressed
// inputs are detected transparently
func LoadTable(path string) (*Table, error) {
	if err := checkInputExists(path); err != nil {
		return nil, err
	}

	fh, err := xopen.Ropen(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %v", path, err)
	}
	defer fh.Close()

	t, err := ReadTable(fh)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return t, nil
}

// ReadTable parses a tab-delimited table from r. The first line is the header.
// Rows shorter than the header are padded with empty cells
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return NewTable(nil, nil), nil
	}
	if err != nil {
		return nil, err
	}

	var rows [][]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) > len(header) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %d fields, header has %d", line, len(record), len(header))
		}
		for len(record) < len(header) {
			record = append(record, "")
		}
		rows = append(rows, record)
	}

	return NewTable(header, rows), nil
}
