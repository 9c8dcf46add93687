package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Custom help function used
// It provides nicely formatted help messages for the root command and the genmap subcommand
func helpFunc(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	if cmd.Name() == "genmap" {
		fmt.Fprintf(out, `
%s

%s
  Read a GTF annotation and write two tab-delimited label maps:
  gene_id/gene_name from "gene" records and transcript_id/transcript_name
  from "transcript" records. Missing names fall back to the id.

%s
  %s

%s
  %s

%s
  %s

`,
			bold(cyan("isomex genmap")+" - Generate gene and transcript label maps from a GTF file"),
			bold(yellow("Description:")),
			bold(yellow("Usage:")),
			cyan("isomex genmap <gtf> <gene_map_out> <transcript_map_out>"),
			bold(yellow("Flags:")),
			cyan("--log-level")+" <string> : Log level (debug, info, warn, error; default, 'info')",
			bold(yellow("Examples:")),
			cyan("isomex genmap gencode.v39.annotation.gtf.gz gene_map.txt transcript_map.txt"),
		)
		return
	}

	fmt.Fprintf(out, `
%s

%s
  Reads <basename>.info.csv and <basename>.annotated.info.csv (tab-delimited),
  joins them on 'id', and writes one cellranger-style MEX directory per level
  (<level>_<output_dir>/matrix.mtx.gz, features.tsv.gz, barcodes.tsv.gz).

%s
  %s
  %s
  %s
  %s
  %s
  %s
  %s
  %s
  %s
  %s

%s
  %s : Generate gene and transcript label maps from a GTF annotation

%s
  %s

  # Keep only FSM and NIC isoforms, use label maps generated from a GTF
  %s

  # Aggregate by an additional annotation column
  %s

`,
		bold(cyan("isomex")+" v."+VERSION+" - Convert isoform quantification tables into MEX matrices"),
		bold(yellow("Description:")),
		bold(yellow("Flags:")),
		cyan("-g, --gene_map")+" <string>        : Gene label map (gene_id, gene_name)",
		cyan("-t, --transcript_map")+" <string>  : Transcript label map (transcript_id, transcript_name)",
		cyan("-f, --filter_category")+" <string> : Comma-separated isoform categories to keep",
		cyan("-o, --output_dir")+" <string>      : Output suffix for <level>_<output_dir> (default, 'output')",
		cyan("-l, --levels")+" <strings>         : Feature columns to aggregate by (default, 'gene,transcript')",
		cyan("-c, --compress")+" <int>           : Gzip compression level (-1=default, 1-9)",
		cyan("    --config")+" <string>          : YAML configuration file",
		cyan("    --log-level")+" <string>       : Log level (debug, info, warn, error; default, 'info')",
		cyan("-h, --help")+"                     : Show help message",
		cyan("-v, --version")+"                  : Show version information",
		bold(yellow("Subcommands:")),
		cyan("genmap"),
		bold(yellow("Usage examples:")),
		cyan("isomex sample1"),
		cyan("isomex sample1 -f full-splice_match,novel_in_catalog -g gene_map.txt -t transcript_map.txt -o results"),
		cyan("isomex sample1 --levels gene,transcript,pbid"),
	)
}
