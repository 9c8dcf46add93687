// Joining the quantification and annotation tables, and category filtering

package main

import "strings"

const (
	JoinColumn      = "id"
	CategoryColumn  = "category"
	AnnotatedSuffix = "_annotated"
	infoExt         = ".info.csv"
	annotatedExt    = ".annotated.info.csv"
)

// Merge performs an inner join of left and right on key.
//
// Output columns are the left columns followed by the right columns other
// than key; right columns whose name already appears on the left get suffix
// appended. Rows follow the left table order, each expanded with every
// matching right row in right table order. Unmatched rows are dropped
func Merge(left, right *Table, key, suffix string) (*Table, error) {
	li, ok := left.ColumnIndex(key)
	if !ok {
		return nil, &SchemaError{Source: "left table", Column: key}
	}
	ri, ok := right.ColumnIndex(key)
	if !ok {
		return nil, &SchemaError{Source: "right table", Column: key}
	}

	columns := make([]string, 0, len(left.Columns)+len(right.Columns)-1)
	columns = append(columns, left.Columns...)
	for j, c := range right.Columns {
		if j == ri {
			continue
		}
		if _, clash := left.ColumnIndex(c); clash {
			c += suffix
		}
		columns = append(columns, c)
	}

	matches := make(map[string][]int, len(right.Rows))
	for j, row := range right.Rows {
		matches[row[ri]] = append(matches[row[ri]], j)
	}

	var rows [][]string
	for _, lrow := range left.Rows {
		for _, j := range matches[lrow[li]] {
			rrow := right.Rows[j]
			row := make([]string, 0, len(columns))
			row = append(row, lrow...)
			row = append(row, rrow[:ri]...)
			row = append(row, rrow[ri+1:]...)
			rows = append(rows, row)
		}
	}

	return NewTable(columns, rows), nil
}

// ParseCategories splits a comma-separated category list, trimming
// whitespace and skipping empty items
//
// Example:
//   ParseCategories("full-splice_match, novel_in_catalog") // 2 categories
func ParseCategories(list string) []string {
	if list == "" {
		return nil
	}
	var categories []string
	for _, c := range strings.Split(list, ",") {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		categories = append(categories, c)
	}
	return categories
}

// FilterByCategory keeps rows whose category is one of categories.
// With no categories the table is returned unchanged
func FilterByCategory(t *Table, categories []string) (*Table, error) {
	if len(categories) == 0 {
		return t, nil
	}
	ci, ok := t.ColumnIndex(CategoryColumn)
	if !ok {
		return nil, &SchemaError{Source: "merged table", Column: CategoryColumn}
	}

	allowed := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		allowed[c] = struct{}{}
	}

	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if _, ok := allowed[row[ci]]; ok {
			rows = append(rows, row)
		}
	}
	return NewTable(t.Columns, rows), nil
}

// LoadInputs loads <base>.info.csv and <base>.annotated.info.csv and merges
// them on the id column. Both files are checked before either is read
func LoadInputs(base string) (*Table, error) {
	infoFile := base + infoExt
	annotatedFile := base + annotatedExt

	for _, f := range []string{infoFile, annotatedFile} {
		if err := checkInputExists(f); err != nil {
			return nil, err
		}
	}

	info, err := LoadTable(infoFile)
	if err != nil {
		return nil, err
	}
	annotated, err := LoadTable(annotatedFile)
	if err != nil {
		return nil, err
	}

	merged, err := Merge(info, annotated, JoinColumn, AnnotatedSuffix)
	if err != nil {
		if se, ok := err.(*SchemaError); ok {
			if _, found := info.ColumnIndex(JoinColumn); !found {
				se.Source = infoFile
			} else {
				se.Source = annotatedFile
			}
		}
		return nil, err
	}
	return merged, nil
}
