package rewrite

import (
	"slices"

	"conffmt/internal/line"
)

// AlignHeaderComments re-depths comments that head a section.
//
// For each Comment, the records after it are scanned over a run of only
// Comment/Blank records. If the run terminates at a Section, every Comment
// in the block takes the Section's depth instead of the stack depth it was
// classified with. A run that reaches key-value or bare content first is not
// a header and is left untouched. After rewriting a block the walk jumps to
// the section so the block interior is not re-scanned.
func AlignHeaderComments(recs []line.Record) []line.Record {
	out := slices.Clone(recs)
	i := 0
	for i < len(out) {
		if out[i].Kind == line.Comment {
			if si := headerSectionIndex(out, i+1); si >= 0 {
				for k := i; k < si; k++ {
					if out[k].Kind == line.Comment {
						out[k].Depth = out[si].Depth
					}
				}
				i = si
				continue
			}
		}
		i++
	}
	return out
}
