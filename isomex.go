package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const VERSION = "0.2.0"

// Define color functions
var (
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

// exitFunc is replaced in tests
var exitFunc = os.Exit

// RootCommand builds the `isomex <basename>` command with its subcommands
func RootCommand() *cobra.Command {
	var (
		configFile    string
		geneMap       string
		transcriptMap string
		categories    string
		outputDir     string
		levels        []string
		compLevel     int
		logLevel      string
		showVersion   bool
	)

	cmd := &cobra.Command{
		Use:           "isomex <basename>",
		Short:         bold("Convert isoform quantification tables into MEX matrices"),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				return nil
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "isomex %s\n", VERSION)
				return nil
			}

			cfg, err := LoadConfig(configFile)
			if err != nil {
				return err
			}

			// Flags given on the command line override the config file
			flags := cmd.Flags()
			if flags.Changed("gene_map") {
				cfg.GeneMap = geneMap
			}
			if flags.Changed("transcript_map") {
				cfg.TranscriptMap = transcriptMap
			}
			if flags.Changed("filter_category") {
				cfg.Categories = ParseCategories(categories)
			}
			if flags.Changed("output_dir") {
				cfg.OutputDir = outputDir
			}
			if flags.Changed("levels") {
				cfg.Levels = levels
			}
			if flags.Changed("compress") {
				cfg.CompressionLevel = compLevel
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}

			if err := cfg.validate(); err != nil {
				return err
			}
			if err := setupLogging(cmd.ErrOrStderr(), cfg.LogLevel); err != nil {
				return err
			}

			_, err = runConvert(args[0], cfg)
			return err
		},
	}

	defaults := DefaultConfig()
	flags := cmd.Flags()
	flags.StringVarP(&geneMap, "gene_map", "g", "", "Gene label map (tab-delimited: gene_id, gene_name)")
	flags.StringVarP(&transcriptMap, "transcript_map", "t", "", "Transcript label map (tab-delimited: transcript_id, transcript_name)")
	flags.StringVarP(&categories, "filter_category", "f", "", "Comma-separated list of isoform categories to keep")
	flags.StringVarP(&outputDir, "output_dir", "o", defaults.OutputDir, "Output suffix for the <level>_<output_dir> directories")
	flags.StringSliceVarP(&levels, "levels", "l", defaults.Levels, "Feature columns to aggregate by")
	flags.IntVarP(&compLevel, "compress", "c", defaults.CompressionLevel, "Gzip compression level (-1=default, 1-9)")
	flags.StringVar(&configFile, "config", "", "YAML configuration file")
	flags.BoolVarP(&showVersion, "version", "v", false, "Show version information")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", defaults.LogLevel, "Log level (debug, info, warn, error)")

	cmd.AddCommand(GenMapCommand())
	cmd.SetHelpFunc(helpFunc)

	return cmd
}

func main() {
	// Custom error handling
	if err := RootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, red("Error: "+err.Error()))
		fmt.Fprintln(os.Stderr, red("Try 'isomex --help' for more information"))
		exitFunc(1)
	}
}
