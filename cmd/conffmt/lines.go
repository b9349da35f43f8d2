package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"conffmt/internal/diagfmt"
	"conffmt/internal/driver"
)

var linesOutput string

var linesCmd = &cobra.Command{
	Use:   "lines <file>",
	Short: "Dump the classified line records of a file",
	Long: `Classify every line of a config file and print the resulting
records with their kind and nesting depth, before any rewriting.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if linesOutput != "pretty" && linesOutput != "json" {
			return fmt.Errorf("invalid --format value %q (expected pretty or json)", linesOutput)
		}

		maxDiag, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
		fileSet, records, bag, err := driver.ClassifyFile(args[0], maxDiag)

		if bag != nil && bag.Len() > 0 {
			bag.Sort()
			diagfmt.Pretty(cmd.ErrOrStderr(), bag, fileSet, diagfmt.PrettyOpts{
				Color:       useColor(cmd, os.Stderr),
				ShowNotes:   true,
				ShowContext: true,
			})
		}
		if err != nil {
			return err
		}

		if linesOutput == "json" {
			return diagfmt.FormatRecordsJSON(cmd.OutOrStdout(), records)
		}
		return diagfmt.FormatRecordsPretty(cmd.OutOrStdout(), records, fileSet)
	},
}

func init() {
	linesCmd.Flags().StringVar(&linesOutput, "format", "pretty", "output format (pretty|json)")
}
