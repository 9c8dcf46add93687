package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(io.Discard)
}

// Helper function to build a tab-delimited table from rows of cells
func tsv(rows ...[]string) string {
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(strings.Join(r, "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}

// Helper function to write a test file
func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// Helper function to read back a gzipped file
func readGzip(t *testing.T, path string) string {
	t.Helper()
	fh, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fh.Close()
	gz, err := gzip.NewReader(fh)
	if err != nil {
		t.Fatal(err)
	}
	defer gz.Close()
	data, err := io.ReadAll(gz)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// Helper function to run a test body inside a fresh working directory
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

// Helper function to write the three-record sample used across tests
func writeSampleInputs(t *testing.T, dir string) string {
	t.Helper()
	base := filepath.Join(dir, "sample1")
	writeTestFile(t, base+".info.csv", tsv(
		[]string{"id", "BC", "count", "category"},
		[]string{"1", "AAAA", "3", "FSM"},
		[]string{"2", "AAAA", "2", "FSM"},
		[]string{"3", "BBBB", "5", "NIC"},
	))
	writeTestFile(t, base+".annotated.info.csv", tsv(
		[]string{"id", "gene", "transcript", "category"},
		[]string{"1", "g1", "t1", "full-splice_match"},
		[]string{"2", "g1", "t2", "full-splice_match"},
		[]string{"3", "g2", "t3", "novel_in_catalog"},
	))
	return base
}

func sampleTable() *Table {
	return NewTable(
		[]string{"id", "gene", "BC", "count", "category"},
		[][]string{
			{"1", "g1", "AAAA", "3", "FSM"},
			{"2", "g1", "AAAA", "2", "FSM"},
			{"3", "g2", "BBBB", "5", "NIC"},
		},
	)
}
