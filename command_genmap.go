// Subcommand (`isomex genmap`) for deriving gene and transcript label maps from a GTF annotation

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/io/featio"
	"github.com/biogo/biogo/io/featio/gff"
	"github.com/shenwei356/xopen"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GenMapCommand creates the `genmap` subcommand which reads a GTF file and
// writes the gene and transcript label maps accepted by --gene_map and
// --transcript_map
func GenMapCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genmap <gtf> <gene_map_out> <transcript_map_out>",
		Short: "Generate gene and transcript label maps from a GTF annotation",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := cmd.Flags().GetString("log-level")
			if err != nil {
				return err
			}
			if err := setupLogging(cmd.ErrOrStderr(), level); err != nil {
				return err
			}
			return runGenMap(args[0], args[1], args[2])
		},
	}
	return cmd
}

// attr returns an unquoted GTF attribute value
func attr(f *gff.Feature, tag string) string {
	return strings.Trim(strings.TrimSpace(f.FeatAttributes.Get(tag)), `"`)
}

// labelCollector keeps the first label seen for every id, in input order
type labelCollector struct {
	seen   map[string]bool
	labels []FeatureLabel
}

func (c *labelCollector) add(id, name string) {
	if id == "" || c.seen[id] {
		return
	}
	if c.seen == nil {
		c.seen = make(map[string]bool)
	}
	if name == "" {
		name = id
	}
	c.seen[id] = true
	c.labels = append(c.labels, FeatureLabel{ID: id, Name: name})
}

// commentSkipper drops lines starting with '#' and terminates a final
// unterminated line. The gff reader only knows a few pragmas and fails on
// the ##description/##provider/##date headers written by GENCODE and
// Ensembl; it also discards a last record not followed by a newline
type commentSkipper struct {
	r    *bufio.Reader
	line []byte
	err  error
}

func (c *commentSkipper) Read(p []byte) (int, error) {
	for len(c.line) == 0 {
		if c.err != nil {
			return 0, c.err
		}
		var line []byte
		line, c.err = c.r.ReadBytes('\n')
		if len(line) > 0 && line[0] != '#' {
			if line[len(line)-1] != '\n' {
				line = append(line, '\n')
			}
			c.line = line
		}
	}
	n := copy(p, c.line)
	c.line = c.line[n:]
	return n, nil
}

// GenerateLabelMaps scans GTF features and collects (gene_id, gene_name)
// pairs from gene records and (transcript_id, transcript_name) pairs from
// transcript records. A missing name falls back to the id
func GenerateLabelMaps(r io.Reader) (genes, transcripts []FeatureLabel, err error) {
	var gc, tc labelCollector

	sc := featio.NewScanner(gff.NewReader(&commentSkipper{r: bufio.NewReader(r)}))
	for sc.Next() {
		f, ok := sc.Feat().(*gff.Feature)
		if !ok {
			continue
		}
		switch f.Feature {
		case "gene":
			gc.add(attr(f, GeneIDColumn), attr(f, GeneNameColumn))
		case "transcript":
			tc.add(attr(f, TranscriptIDColumn), attr(f, TranscriptNameColumn))
		}
	}
	if err := sc.Error(); err != nil {
		return nil, nil, fmt.Errorf("error reading GTF: %v", err)
	}

	return gc.labels, tc.labels, nil
}

// WriteLabelMap writes labels as a headered two-column TSV file
func WriteLabelMap(path, idColumn, nameColumn string, labels []FeatureLabel) error {
	outfh, err := xopen.Wopen(path)
	if err != nil {
		return &IOError{Op: "creating", Path: path, Err: err}
	}

	if _, err := fmt.Fprintf(outfh, "%s\t%s\n", idColumn, nameColumn); err != nil {
		outfh.Close()
		return &IOError{Op: "writing", Path: path, Err: err}
	}
	for _, l := range labels {
		if _, err := fmt.Fprintf(outfh, "%s\t%s\n", l.ID, l.Name); err != nil {
			outfh.Close()
			return &IOError{Op: "writing", Path: path, Err: err}
		}
	}

	if err := outfh.Close(); err != nil {
		return &IOError{Op: "closing", Path: path, Err: err}
	}
	return nil
}

// runGenMap reads gtfFile and writes the gene and transcript label maps
func runGenMap(gtfFile, geneMapOut, transcriptMapOut string) error {
	if err := checkInputExists(gtfFile); err != nil {
		return err
	}

	fh, err := xopen.Ropen(gtfFile)
	if err != nil {
		return fmt.Errorf("error opening %s: %v", gtfFile, err)
	}
	defer fh.Close()

	genes, transcripts, err := GenerateLabelMaps(fh)
	if err != nil {
		return err
	}

	if err := WriteLabelMap(geneMapOut, GeneIDColumn, GeneNameColumn, genes); err != nil {
		return err
	}
	log.WithFields(log.Fields{"path": geneMapOut, "genes": len(genes)}).Info("Gene map written")

	if err := WriteLabelMap(transcriptMapOut, TranscriptIDColumn, TranscriptNameColumn, transcripts); err != nil {
		return err
	}
	log.WithFields(log.Fields{"path": transcriptMapOut, "transcripts": len(transcripts)}).Info("Transcript map written")

	return nil
}
