package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"conffmt/internal/diag"
	"conffmt/internal/diagfmt"
	"conffmt/internal/driver"
)

var (
	lintOutput string
	lintExts   []string
)

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Check config files without rewriting them",
	Long: `Scan and validate config files, reporting mismatched section
brackets and duplicate sections. Files are never modified.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if lintOutput != "text" && lintOutput != "json" {
			return fmt.Errorf("invalid --format value %q (expected text or json)", lintOutput)
		}
		if len(args) == 0 {
			args = []string{"."}
		}

		maxDiag, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
		quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

		manifest, found, err := loadProjectManifest(".")
		if err != nil {
			return err
		}
		exts := lintExts
		if found {
			exts = append(manifest.Config.Format.Extensions, exts...)
		}

		fileSet, results, err := driver.LintPaths(cmd.Context(), args, exts, maxDiag)
		if err != nil {
			return err
		}

		merged := diag.NewBag(maxDiag * len(results))
		failed := 0
		for _, res := range results {
			if res.Err != nil {
				failed++
			}
			merged.Merge(res.Bag)
		}
		merged.Sort()

		if lintOutput == "json" {
			if err := diagfmt.JSON(cmd.OutOrStdout(), merged, fileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				IncludeNotes:     true,
				Max:              maxDiag,
			}); err != nil {
				return err
			}
		} else {
			diagfmt.Pretty(cmd.OutOrStdout(), merged, fileSet, diagfmt.PrettyOpts{
				Color:       useColor(cmd, os.Stdout),
				ShowNotes:   true,
				ShowContext: true,
			})
			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "%d file(s) checked, %d problem(s)\n", len(results), merged.Len())
			}
		}

		if failed > 0 || merged.HasErrors() {
			return fmt.Errorf("lint: problems found")
		}
		return nil
	},
}

func init() {
	lintCmd.Flags().StringVar(&lintOutput, "format", "text", "output format (text|json)")
	lintCmd.Flags().StringSliceVar(&lintExts, "ext", nil, "extra file extensions to collect from directories")
}
