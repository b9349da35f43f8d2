package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"conffmt/internal/line"
	"conffmt/internal/source"
)

// RecordOutput is one classified record in JSON dumps.
type RecordOutput struct {
	Kind  string      `json:"kind"`
	Depth int         `json:"depth"`
	Text  string      `json:"text,omitempty"`
	Span  source.Span `json:"span"`
}

// FormatRecordsPretty writes records in a human-readable listing, one per
// source line.
func FormatRecordsPretty(w io.Writer, recs []line.Record, fs *source.FileSet) error {
	for i, rec := range recs {
		fmt.Fprintf(w, "%4d: %-8s depth=%d", i+1, rec.Kind.String(), rec.Depth)

		if rec.Text != "" {
			fmt.Fprintf(w, " %q", rec.Text)
		}

		if !rec.Span.Empty() || rec.Span.Start != 0 {
			startPos, _ := fs.Resolve(rec.Span)
			fmt.Fprintf(w, " at %d:%d", startPos.Line, startPos.Col)
		}

		fmt.Fprintln(w)
	}
	return nil
}

// FormatRecordsJSON writes records as a JSON array.
func FormatRecordsJSON(w io.Writer, recs []line.Record) error {
	output := make([]RecordOutput, 0, len(recs))
	for _, rec := range recs {
		output = append(output, RecordOutput{
			Kind:  rec.Kind.String(),
			Depth: rec.Depth,
			Text:  rec.Text,
			Span:  rec.Span,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
