package main

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/shenwei356/xopen"
)

func TestReadTable(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCols []string
		wantRows [][]string
		wantErr  bool
	}{
		{
			name:     "Header and rows",
			input:    "id\tBC\tcount\n1\tAAAA\t3\n2\tBBBB\t5\n",
			wantCols: []string{"id", "BC", "count"},
			wantRows: [][]string{{"1", "AAAA", "3"}, {"2", "BBBB", "5"}},
		},
		{
			name:     "Short rows are padded",
			input:    "id\tBC\tcount\n1\tAAAA\n",
			wantCols: []string{"id", "BC", "count"},
			wantRows: [][]string{{"1", "AAAA", ""}},
		},
		{
			name:     "Commas are not delimiters",
			input:    "id\tnote\n1\ta,b\n",
			wantCols: []string{"id", "note"},
			wantRows: [][]string{{"1", "a,b"}},
		},
		{
			name:     "Header only",
			input:    "id\tBC\n",
			wantCols: []string{"id", "BC"},
			wantRows: nil,
		},
		{
			name:     "Empty input",
			input:    "",
			wantCols: nil,
			wantRows: nil,
		},
		{
			name:    "Row longer than header",
			input:   "id\tBC\n1\tAAAA\textra\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadTable(strings.NewReader(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadTable() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got.Columns, tt.wantCols) {
				t.Errorf("Columns = %v, want %v", got.Columns, tt.wantCols)
			}
			if !reflect.DeepEqual(got.Rows, tt.wantRows) {
				t.Errorf("Rows = %v, want %v", got.Rows, tt.wantRows)
			}
		})
	}
}

func TestColumnIndexFirstOccurrence(t *testing.T) {
	tbl := NewTable([]string{"id", "gene", "gene"}, nil)
	if i, ok := tbl.ColumnIndex("gene"); !ok || i != 1 {
		t.Errorf("ColumnIndex(gene) = %d, %v; want 1, true", i, ok)
	}
	if _, ok := tbl.ColumnIndex("BC"); ok {
		t.Error("ColumnIndex(BC) reported a missing column as present")
	}
}

func TestLoadTableMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.info.csv")
	_, err := LoadTable(path)

	var notFound *InputNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("LoadTable() error = %v, want InputNotFoundError", err)
	}
	if notFound.Path != path {
		t.Errorf("InputNotFoundError.Path = %q, want %q", notFound.Path, path)
	}
}

func TestLoadTableGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.info.csv.gz")
	w, err := xopen.Wopen(path)
	if err != nil {
		t.Fatal(err)
	}
	w.WriteString("id\tBC\tcount\n1\tAAAA\t3\n")
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	tbl, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable() error = %v", err)
	}
	want := [][]string{{"1", "AAAA", "3"}}
	if !reflect.DeepEqual(tbl.Rows, want) {
		t.Errorf("Rows = %v, want %v", tbl.Rows, want)
	}
}
