package main

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadGeneMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gene_map.txt")
	writeTestFile(t, path, tsv(
		[]string{"gene_id", "gene_name"},
		[]string{"ENSG00000141510", "TP53"},
		[]string{"ENSG00000012048", "BRCA1"},
		[]string{"ENSG99999999999", "TP53"},
		[]string{"ENSG00000000000", ""},
	))

	got, err := LoadGeneMap(path)
	if err != nil {
		t.Fatalf("LoadGeneMap() error = %v", err)
	}
	want := LabelMap{
		"TP53":  {ID: "ENSG99999999999", Name: "TP53"},
		"BRCA1": {ID: "ENSG00000012048", Name: "BRCA1"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadGeneMap() = %v, want %v", got, want)
	}
}

func TestLoadTranscriptMapMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript_map.txt")
	writeTestFile(t, path, tsv(
		[]string{"transcript_id", "gene_name"},
		[]string{"ENST00000269305", "TP53"},
	))

	_, err := LoadTranscriptMap(path)
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("LoadTranscriptMap() error = %v, want SchemaError", err)
	}
	if se.Column != TranscriptNameColumn {
		t.Errorf("SchemaError.Column = %q, want %q", se.Column, TranscriptNameColumn)
	}
}

func TestLoadLabelMapEmptyPath(t *testing.T) {
	for _, load := range []func(string) (LabelMap, error){LoadGeneMap, LoadTranscriptMap} {
		m, err := load("")
		if err != nil || m != nil {
			t.Errorf("load(\"\") = %v, %v; want nil, nil", m, err)
		}
	}
}

func TestLoadLabelMapMissingFile(t *testing.T) {
	_, err := LoadGeneMap(filepath.Join(t.TempDir(), "absent.txt"))
	var notFound *InputNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("LoadGeneMap() error = %v, want InputNotFoundError", err)
	}
}
