// Loading of gene/transcript label maps

package main

const (
	GeneIDColumn         = "gene_id"
	GeneNameColumn       = "gene_name"
	TranscriptIDColumn   = "transcript_id"
	TranscriptNameColumn = "transcript_name"
)

// LoadLabelMap reads a tab-delimited label file and maps each value of
// nameColumn to its (id, name) pair. When a name repeats, the last row wins
func LoadLabelMap(path, idColumn, nameColumn string) (LabelMap, error) {
	t, err := LoadTable(path)
	if err != nil {
		return nil, err
	}
	if err := t.requireColumns(path, idColumn, nameColumn); err != nil {
		return nil, err
	}
	ii, _ := t.ColumnIndex(idColumn)
	ni, _ := t.ColumnIndex(nameColumn)

	labels := make(LabelMap, t.Len())
	for _, row := range t.Rows {
		name := row[ni]
		if name == "" {
			continue
		}
		labels[name] = FeatureLabel{ID: row[ii], Name: name}
	}
	return labels, nil
}

// LoadGeneMap loads a gene_id/gene_name map. An empty path yields a nil map
func LoadGeneMap(path string) (LabelMap, error) {
	if path == "" {
		return nil, nil
	}
	return LoadLabelMap(path, GeneIDColumn, GeneNameColumn)
}

// LoadTranscriptMap loads a transcript_id/transcript_name map. An empty path
// yields a nil map
func LoadTranscriptMap(path string) (LabelMap, error) {
	if path == "" {
		return nil, nil
	}
	return LoadLabelMap(path, TranscriptIDColumn, TranscriptNameColumn)
}
