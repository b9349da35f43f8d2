package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"conffmt/internal/diag"
	"conffmt/internal/diagfmt"
	"conffmt/internal/driver"
	"conffmt/internal/format"
	"conffmt/internal/source"
)

var (
	fmtCheck   bool
	fmtStdout  bool
	fmtOutput  string
	fmtIndent  int
	fmtJobs    int
	fmtNoCache bool
	fmtUI      bool
	fmtExts    []string
	fmtOutPath string
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [paths...]",
	Short: "Reformat config files in place",
	Long: `Reformat config files into the canonical layout.

Paths may be files or directories; directories are walked for config
extensions. With no paths the current directory is used. The single
path "-" reads from stdin and writes the result to stdout.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if fmtOutput != "text" && fmtOutput != "json" {
			return fmt.Errorf("invalid --format value %q (expected text or json)", fmtOutput)
		}
		if len(args) == 1 && args[0] == "-" {
			return runFmtStdin(cmd)
		}
		return runFmt(cmd, args)
	},
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "report files that would change without writing")
	fmtCmd.Flags().BoolVar(&fmtStdout, "stdout", false, "print formatted output instead of writing files")
	fmtCmd.Flags().StringVar(&fmtOutput, "format", "text", "output format (text|json)")
	fmtCmd.Flags().IntVar(&fmtIndent, "indent", 0, "spaces per nesting level (0 uses project or default)")
	fmtCmd.Flags().IntVar(&fmtJobs, "jobs", 0, "parallel workers (0 uses GOMAXPROCS)")
	fmtCmd.Flags().BoolVar(&fmtNoCache, "no-cache", false, "disable the canonical-result cache")
	fmtCmd.Flags().BoolVar(&fmtUI, "ui", false, "show interactive progress (requires a terminal)")
	fmtCmd.Flags().StringSliceVar(&fmtExts, "ext", nil, "extra file extensions to collect from directories")
	fmtCmd.Flags().StringVarP(&fmtOutPath, "output", "o", "", "write the result of a single input to this file instead of in place")
}

func runFmt(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}

	maxDiag, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	opts := driver.FormatOptions{
		Check:          fmtCheck,
		Stdout:         fmtStdout,
		MaxDiagnostics: maxDiag,
		Options:        format.Options{IndentWidth: fmtIndent},
		Jobs:           fmtJobs,
	}

	manifest, found, err := loadProjectManifest(".")
	if err != nil {
		return err
	}
	cacheEnabled := !fmtNoCache
	if found {
		if fmtIndent == 0 && manifest.Config.Format.Indent > 0 {
			opts.Options.IndentWidth = manifest.Config.Format.Indent
		}
		opts.Extensions = manifest.Config.Format.Extensions
		if !manifest.Config.Cache.enabled() {
			cacheEnabled = false
		}
	}
	opts.Extensions = append(opts.Extensions, fmtExts...)

	if fmtOutPath != "" {
		if len(args) != 1 {
			return fmt.Errorf("--output requires exactly one input path, got %d", len(args))
		}
		// Keep the source untouched; the result lands at --output below.
		opts.Stdout = true
	}

	if cacheEnabled && !fmtCheck && !fmtStdout && fmtOutPath == "" {
		if cache, cacheErr := driver.OpenDiskCache("conffmt"); cacheErr == nil {
			opts.Cache = cache
		}
	}

	var (
		fileSet *source.FileSet
		results []driver.FormatResult
	)
	if fmtUI && isTerminal(os.Stderr) && fmtOutput == "text" {
		fileSet, results, err = runFormatWithUI(cmd.Context(), args, opts)
	} else {
		fileSet, results, err = driver.FormatPaths(cmd.Context(), args, opts)
	}
	if err != nil {
		return err
	}

	if fmtOutPath != "" {
		return writeFmtOutput(cmd, fileSet, results)
	}
	if fmtOutput == "json" {
		return renderFmtJSON(cmd.OutOrStdout(), fileSet, results, maxDiag)
	}
	return renderFmtText(cmd, fileSet, results, quiet)
}

func writeFmtOutput(cmd *cobra.Command, fileSet *source.FileSet, results []driver.FormatResult) error {
	if len(results) != 1 {
		return fmt.Errorf("--output requires exactly one input file, matched %d", len(results))
	}
	res := &results[0]
	if res.Bag != nil && res.Bag.Len() > 0 {
		res.Bag.Sort()
		diagfmt.Pretty(cmd.ErrOrStderr(), res.Bag, fileSet, diagfmt.PrettyOpts{
			Color:       useColor(cmd, os.Stderr),
			ShowNotes:   true,
			ShowContext: true,
		})
	}
	if res.Err != nil {
		return res.Err
	}
	return os.WriteFile(fmtOutPath, res.Formatted, 0o644)
}

func runFmtStdin(cmd *cobra.Command) error {
	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	maxDiag, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	fileSet := source.NewFileSet()
	id := fileSet.AddVirtual("<stdin>", content)

	bag := diag.NewBag(maxDiag)
	formatted, err := format.Source(fileSet.Get(id), format.Options{IndentWidth: fmtIndent}, diag.BagReporter{Bag: bag})

	bag.Sort()
	diagfmt.Pretty(cmd.ErrOrStderr(), bag, fileSet, diagfmt.PrettyOpts{
		Color:       useColor(cmd, os.Stderr),
		ShowNotes:   true,
		ShowContext: true,
	})
	if err != nil {
		return err
	}

	if fmtOutPath != "" {
		return os.WriteFile(fmtOutPath, formatted, 0o644)
	}
	if _, werr := cmd.OutOrStdout().Write(formatted); werr != nil {
		return werr
	}
	return nil
}

func renderFmtText(cmd *cobra.Command, fileSet *source.FileSet, results []driver.FormatResult, quiet bool) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	prettyOpts := diagfmt.PrettyOpts{
		Color:       useColor(cmd, os.Stderr),
		ShowNotes:   true,
		ShowContext: true,
	}

	failed := 0
	changed := 0
	for i := range results {
		res := &results[i]
		if res.Bag != nil && res.Bag.Len() > 0 {
			res.Bag.Sort()
			diagfmt.Pretty(stderr, res.Bag, fileSet, prettyOpts)
		}
		switch {
		case res.Err != nil:
			failed++
			fmt.Fprintf(stderr, "error: %s: %v\n", res.Path, res.Err)
		case fmtStdout:
			if _, err := stdout.Write(res.Formatted); err != nil {
				return err
			}
		case res.Changed:
			changed++
			if !quiet {
				verb := "reformatted"
				if fmtCheck {
					verb = "would reformat"
				}
				fmt.Fprintf(stdout, "%s %s\n", verb, res.Path)
			}
		case res.FromCache:
			if !quiet {
				fmt.Fprintf(stdout, "ok %s (cached)\n", res.Path)
			}
		default:
			if !quiet {
				fmt.Fprintf(stdout, "ok %s\n", res.Path)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("fmt: %d file(s) failed", failed)
	}
	if fmtCheck && changed > 0 {
		return fmt.Errorf("fmt: %d file(s) not in canonical form", changed)
	}
	return nil
}

type fmtFileJSON struct {
	Path        string                   `json:"path"`
	Changed     bool                     `json:"changed"`
	FromCache   bool                     `json:"from_cache,omitempty"`
	Error       string                   `json:"error,omitempty"`
	Diagnostics []diagfmt.DiagnosticJSON `json:"diagnostics,omitempty"`
}

type fmtOutputJSON struct {
	Files   []fmtFileJSON `json:"files"`
	Changed int           `json:"changed"`
	Failed  int           `json:"failed"`
}

func renderFmtJSON(w io.Writer, fileSet *source.FileSet, results []driver.FormatResult, maxDiag int) error {
	out := fmtOutputJSON{Files: make([]fmtFileJSON, 0, len(results))}
	jsonOpts := diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true, Max: maxDiag}

	for i := range results {
		res := &results[i]
		entry := fmtFileJSON{
			Path:      res.Path,
			Changed:   res.Changed,
			FromCache: res.FromCache,
		}
		if res.Err != nil {
			entry.Error = res.Err.Error()
			out.Failed++
		}
		if res.Changed {
			out.Changed++
		}
		if res.Bag != nil && res.Bag.Len() > 0 {
			res.Bag.Sort()
			entry.Diagnostics = diagnosticsJSON(res.Bag, fileSet, jsonOpts)
		}
		out.Files = append(out.Files, entry)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}
	if out.Failed > 0 {
		return fmt.Errorf("fmt: %d file(s) failed", out.Failed)
	}
	if fmtCheck && out.Changed > 0 {
		return fmt.Errorf("fmt: %d file(s) not in canonical form", out.Changed)
	}
	return nil
}

func diagnosticsJSON(bag *diag.Bag, fileSet *source.FileSet, opts diagfmt.JSONOpts) []diagfmt.DiagnosticJSON {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}
	out := make([]diagfmt.DiagnosticJSON, 0, len(items))
	for _, d := range items {
		out = append(out, diagfmt.ToJSON(d, fileSet, opts))
	}
	return out
}
