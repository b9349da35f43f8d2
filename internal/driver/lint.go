package driver

import (
	"context"
	"errors"

	"conffmt/internal/diag"
	"conffmt/internal/rewrite"
	"conffmt/internal/scan"
	"conffmt/internal/source"
	"conffmt/internal/validate"
)

// LintResult holds the diagnostics for one linted file.
type LintResult struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
	Err    error
}

// LintPaths classifies and validates without producing output. Every
// collected file gets a result; fatal scan errors land both in the result
// error and its bag.
func LintPaths(ctx context.Context, paths, exts []string, maxDiagnostics int) (*source.FileSet, []LintResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	files, err := CollectConfigFiles(ctx, paths, exts)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, errors.New("lint: no config files found")
	}

	if maxDiagnostics <= 0 {
		maxDiagnostics = 256
	}

	fileSet := source.NewFileSet()
	results := make([]LintResult, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return fileSet, results, err
		}

		res := LintResult{Path: path}
		bag := diag.NewBag(maxDiagnostics)
		res.Bag = bag

		id, loadErr := fileSet.Load(path)
		if loadErr != nil {
			bag.Add(diag.NewError(diag.IOReadFailed, source.Span{}, loadErr.Error()))
			res.Err = loadErr
			results = append(results, res)
			continue
		}
		res.FileID = id

		records, scanErr := scan.File(fileSet.Get(id), scan.Options{Reporter: diag.BagReporter{Bag: bag}})
		if scanErr != nil {
			res.Err = scanErr
			results = append(results, res)
			continue
		}

		validate.Records(rewrite.Apply(records), diag.BagReporter{Bag: bag})
		results = append(results, res)
	}

	return fileSet, results, nil
}
