// Grouping of counts by (feature, barcode) and dense index assignment

package main

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

const (
	BarcodeColumn = "BC"
	CountColumn   = "count"

	// Per-sample suffix expected by cellranger-style consumers
	BarcodeSuffix = "-1"
)

// FeatureLabel is the (id, display name) pair written to features.tsv
type FeatureLabel struct {
	ID   string
	Name string
}

// LabelMap maps a feature name to its stable id and display name
type LabelMap map[string]FeatureLabel

// Lookup returns the label for feature, falling back to the feature itself
// as both id and name
func (m LabelMap) Lookup(feature string) FeatureLabel {
	if label, ok := m[feature]; ok {
		return label
	}
	return FeatureLabel{ID: feature, Name: feature}
}

// Cell is the summed count of one (feature, barcode) pair
type Cell struct {
	Feature string
	Barcode string
	Count   int64
}

// CellList implements sort.Interface, ordering by feature then barcode
type CellList []Cell

func (list CellList) Len() int { return len(list) }
func (list CellList) Less(i, j int) bool {
	if list[i].Feature != list[j].Feature {
		return list[i].Feature < list[j].Feature
	}
	return list[i].Barcode < list[j].Barcode
}
func (list CellList) Swap(i, j int) { list[i], list[j] = list[j], list[i] }

// Coordinate is one non-zero entry of the matrix, with one-based indices
type Coordinate struct {
	Row   int
	Col   int
	Value int64
}

// Matrix holds everything needed to write a MEX bundle
type Matrix struct {
	Coordinates []Coordinate
	Features    []FeatureLabel
	Barcodes    []string
}

// naTokens are the cell values read as missing, matching the pandas
// read_csv defaults
var naTokens = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

// isMissing reports whether a cell holds no value
func isMissing(s string) bool {
	_, ok := naTokens[s]
	return ok
}

// parseCount interprets a count cell. Missing cells count as zero and
// integral floats ("3.0") within the int64 range are accepted
func parseCount(s string) (int64, bool) {
	if isMissing(s) {
		return 0, true
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// GroupCounts sums the count column for every distinct (feature, barcode)
// pair and returns the cells sorted by feature then barcode. Rows with a
// missing feature or barcode carry no key and are skipped
func GroupCounts(t *Table, featureColumn string) (CellList, error) {
	if err := t.requireColumns("merged table", featureColumn, BarcodeColumn, CountColumn); err != nil {
		return nil, err
	}
	fi, _ := t.ColumnIndex(featureColumn)
	bi, _ := t.ColumnIndex(BarcodeColumn)
	ci, _ := t.ColumnIndex(CountColumn)

	type key struct{ feature, barcode string }
	positions := make(map[key]int)
	var cells CellList

	for n, row := range t.Rows {
		feature, barcode := row[fi], row[bi]
		if isMissing(feature) || isMissing(barcode) {
			continue
		}
		count, ok := parseCount(row[ci])
		if !ok {
			return nil, &SchemaError{
				Source: fmt.Sprintf("merged table row %d", n+1),
				Column: CountColumn,
				Reason: fmt.Sprintf("invalid count %q in column", row[ci]),
			}
		}

		k := key{feature, barcode}
		if p, seen := positions[k]; seen {
			cells[p].Count += count
			continue
		}
		positions[k] = len(cells)
		cells = append(cells, Cell{Feature: feature, Barcode: barcode, Count: count})
	}

	sort.Sort(cells)
	return cells, nil
}

// sortedIndex returns the sorted distinct values and their zero-based positions
func sortedIndex(values []string) ([]string, map[string]int) {
	index := make(map[string]int, len(values))
	for _, v := range values {
		index[v] = 0
	}
	sorted := make([]string, 0, len(index))
	for v := range index {
		sorted = append(sorted, v)
	}
	sort.Strings(sorted)
	for i, v := range sorted {
		index[v] = i
	}
	return sorted, index
}

// AggregateAndIndex groups t by (featureColumn, BC), assigns dense indices
// to the sorted distinct features and barcodes, and builds the one-based
// coordinate list with resolved feature labels. labels may be nil
func AggregateAndIndex(t *Table, featureColumn string, labels LabelMap) (*Matrix, error) {
	cells, err := GroupCounts(t, featureColumn)
	if err != nil {
		return nil, err
	}

	featureValues := make([]string, len(cells))
	barcodeValues := make([]string, len(cells))
	for i, c := range cells {
		featureValues[i] = c.Feature
		barcodeValues[i] = c.Barcode
	}
	features, featureIndex := sortedIndex(featureValues)
	barcodes, barcodeIndex := sortedIndex(barcodeValues)

	m := &Matrix{
		Coordinates: make([]Coordinate, len(cells)),
		Features:    make([]FeatureLabel, len(features)),
		Barcodes:    make([]string, len(barcodes)),
	}
	for i, c := range cells {
		m.Coordinates[i] = Coordinate{
			Row:   featureIndex[c.Feature] + 1,
			Col:   barcodeIndex[c.Barcode] + 1,
			Value: c.Count,
		}
	}
	for i, f := range features {
		m.Features[i] = labels.Lookup(f)
	}
	for i, bc := range barcodes {
		m.Barcodes[i] = bc + BarcodeSuffix
	}

	return m, nil
}
