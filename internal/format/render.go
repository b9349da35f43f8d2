package format

import (
	"bytes"
	"strings"

	"conffmt/internal/line"
)

// Render maps each record to one output line: blanks to empty lines, all
// other records to their text behind depth * indent spaces. Non-empty
// output ends with exactly one newline.
func Render(recs []line.Record, opts Options) []byte {
	opts = opts.withDefaults()
	if len(recs) == 0 {
		return nil
	}

	indentUnit := strings.Repeat(" ", opts.IndentWidth)

	var buf bytes.Buffer
	for _, r := range recs {
		if r.Kind != line.Blank {
			for i := 0; i < r.Depth; i++ {
				buf.WriteString(indentUnit)
			}
			buf.WriteString(r.Text)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
