// Package validate checks the finished record sequence for duplicate
// section paths. Findings are warnings only; validation never mutates
// records and never aborts a run.
package validate

import (
	"fmt"
	"strings"

	"conffmt/internal/diag"
	"conffmt/internal/line"
	"conffmt/internal/source"
)

// Records walks the record sequence maintaining the current section path
// (outermost open section down to the current one). Each Section record
// truncates the path to its depth and appends its own name; a path that was
// already seen is reported as a ValDuplicateSection warning carrying the
// span of the re-occurrence and a note pointing at the first one.
func Records(recs []line.Record, reporter diag.Reporter) {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}

	seen := make(map[string]source.Span)
	var path []string

	for _, r := range recs {
		if r.Kind != line.Section {
			continue
		}

		if r.Depth < len(path) {
			path = path[:r.Depth]
		}
		path = append(path, r.SectionName())
		key := strings.Join(path, "/")

		if first, ok := seen[key]; ok {
			reporter.Report(diag.ValDuplicateSection, diag.SevWarning, r.Span,
				fmt.Sprintf("duplicate section: %s", key),
				[]diag.Note{{Span: first, Msg: "first defined here"}})
			continue
		}
		seen[key] = r.Span
	}
}
