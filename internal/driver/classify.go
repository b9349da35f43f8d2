package driver

import (
	"conffmt/internal/diag"
	"conffmt/internal/line"
	"conffmt/internal/scan"
	"conffmt/internal/source"
)

// ClassifyFile loads one file and returns its classified record sequence as
// the scanner produced it, before any rewrite pass. Used by the record dump
// command.
func ClassifyFile(path string, maxDiagnostics int) (*source.FileSet, []line.Record, *diag.Bag, error) {
	if maxDiagnostics <= 0 {
		maxDiagnostics = 256
	}

	fileSet := source.NewFileSet()
	id, err := fileSet.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}

	bag := diag.NewBag(maxDiagnostics)
	records, err := scan.File(fileSet.Get(id), scan.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err != nil {
		return fileSet, nil, bag, err
	}
	return fileSet, records, bag, nil
}
