package format

import (
	"conffmt/internal/diag"
	"conffmt/internal/line"
	"conffmt/internal/rewrite"
	"conffmt/internal/scan"
	"conffmt/internal/source"
	"conffmt/internal/validate"
)

// Source beautifies one file: classify, rewrite, validate, render.
//
// The result is a deterministic function of the file content and the
// options; nothing is shared between calls, so Source is safe to invoke
// concurrently for independent files. Duplicate-section warnings go to the
// reporter and do not affect the returned output. The only error is a
// *scan.MismatchedBracketsError, in which case no output is produced.
func Source(f *source.File, opts Options, reporter diag.Reporter) ([]byte, error) {
	records, err := scan.File(f, scan.Options{Reporter: reporter})
	if err != nil {
		return nil, err
	}

	records = rewrite.Apply(records)
	validate.Records(records, reporter)
	return Render(records, opts), nil
}

// Records exposes the classified and rewritten record sequence without
// rendering, for record dumps and inspection.
func Records(f *source.File, reporter diag.Reporter) ([]line.Record, error) {
	records, err := scan.File(f, scan.Options{Reporter: reporter})
	if err != nil {
		return nil, err
	}
	return rewrite.Apply(records), nil
}
