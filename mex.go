// MEX bundle writer (matrix.mtx, features.tsv, barcodes.tsv, each gzipped)

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

const (
	MatrixFile   = "matrix.mtx"
	FeaturesFile = "features.tsv"
	BarcodesFile = "barcodes.tsv"

	matrixMarketHeader = "%%MatrixMarket matrix coordinate integer general"
)

// FeatureTypeLabel returns the third features.tsv column for a granularity
func FeatureTypeLabel(granularity string) string {
	switch granularity {
	case "gene":
		return "Gene Expression"
	case "transcript":
		return "Transcript Expression"
	default:
		return granularity + " Expression"
	}
}

// BundleDir returns the output directory name for a granularity
func BundleDir(granularity, prefix string) string {
	return granularity + "_" + prefix
}

// WriteBundle writes the three MEX files for m into dir and gzips each of
// them at the given compression level. dir is created if needed.
//
// An uncompressed file is removed only once its .gz counterpart has been
// written and closed; on failure it is left in place
func WriteBundle(dir string, m *Matrix, featureType string, level int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &IOError{Op: "creating directory", Path: dir, Err: err}
	}

	files := []struct {
		name  string
		write func(w io.Writer) error
	}{
		{MatrixFile, func(w io.Writer) error { return writeMatrix(w, m) }},
		{FeaturesFile, func(w io.Writer) error { return writeFeatures(w, m.Features, featureType) }},
		{BarcodesFile, func(w io.Writer) error { return writeBarcodes(w, m.Barcodes) }},
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := writeFile(path, f.write); err != nil {
			return err
		}
		paths = append(paths, path)
	}

	for _, path := range paths {
		if err := gzipFile(path, level); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(w io.Writer) error) error {
	fh, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "creating", Path: path, Err: err}
	}
	bw := bufio.NewWriter(fh)
	if err := write(bw); err != nil {
		fh.Close()
		return &IOError{Op: "writing", Path: path, Err: err}
	}
	if err := bw.Flush(); err != nil {
		fh.Close()
		return &IOError{Op: "writing", Path: path, Err: err}
	}
	if err := fh.Close(); err != nil {
		return &IOError{Op: "closing", Path: path, Err: err}
	}
	return nil
}

func writeMatrix(w io.Writer, m *Matrix) error {
	if _, err := fmt.Fprintf(w, "%s\n%%\n%d %d %d\n",
		matrixMarketHeader, len(m.Features), len(m.Barcodes), len(m.Coordinates)); err != nil {
		return err
	}
	for _, c := range m.Coordinates {
		if _, err := fmt.Fprintf(w, "%d %d %d\n", c.Row, c.Col, c.Value); err != nil {
			return err
		}
	}
	return nil
}

func writeFeatures(w io.Writer, features []FeatureLabel, featureType string) error {
	for _, f := range features {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", f.ID, f.Name, featureType); err != nil {
			return err
		}
	}
	return nil
}

func writeBarcodes(w io.Writer, barcodes []string) error {
	for _, bc := range barcodes {
		if _, err := fmt.Fprintln(w, bc); err != nil {
			return err
		}
	}
	return nil
}

// gzipFile compresses path into path.gz and removes path afterwards.
// The gzip header carries no name or timestamp, so output is reproducible
func gzipFile(path string, level int) error {
	gzPath := path + ".gz"

	in, err := os.Open(path)
	if err != nil {
		return &IOError{Op: "opening", Path: path, Err: err}
	}

	out, err := os.Create(gzPath)
	if err != nil {
		in.Close()
		return &IOError{Op: "creating", Path: gzPath, Err: err}
	}

	fail := func(op string, err error) error {
		in.Close()
		out.Close()
		os.Remove(gzPath)
		return &IOError{Op: op, Path: gzPath, Err: err}
	}

	gz, err := gzip.NewWriterLevel(out, level)
	if err != nil {
		return fail("compressing", err)
	}
	if _, err := io.Copy(gz, in); err != nil {
		return fail("compressing", err)
	}
	if err := gz.Close(); err != nil {
		return fail("compressing", err)
	}
	if err := out.Close(); err != nil {
		in.Close()
		os.Remove(gzPath)
		return &IOError{Op: "closing", Path: gzPath, Err: err}
	}

	// Released before removal so the plain file can be deleted
	if err := in.Close(); err != nil {
		return &IOError{Op: "closing", Path: path, Err: err}
	}
	if err := os.Remove(path); err != nil {
		return &IOError{Op: "removing", Path: path, Err: err}
	}
	return nil
}
