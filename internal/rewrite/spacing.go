package rewrite

import (
	"conffmt/internal/line"
)

// NormalizeSpacing applies the spacing rules in their canonical order:
// suppress blanks leading into header comment blocks, insert a separator
// after key-value content that runs into a section, and insert a separator
// before top-level sections and their header blocks. Blank-run collapsing
// and edge trimming happen afterwards in CollapseBlanks.
func NormalizeSpacing(recs []line.Record) []line.Record {
	recs = suppressHeaderBlanks(recs)
	recs = insertContentSeparators(recs)
	return insertTopLevelSeparators(recs)
}

// suppressHeaderBlanks drops every Blank whose next content is a Comment
// heading a section, and every Blank sitting between a header comment and
// the Section it documents. The separator before such a block is re-inserted
// by a later rule when one is warranted, which keeps the before-comment and
// after-content rules independent.
func suppressHeaderBlanks(recs []line.Record) []line.Record {
	out := make([]line.Record, 0, len(recs))
	for i, r := range recs {
		if r.Kind == line.Blank {
			if ci := nextContent(recs, i+1); ci >= 0 {
				leadsToHeader := recs[ci].Kind == line.Comment && headsSection(recs, ci)
				afterHeader := recs[ci].Kind == line.Section &&
					len(out) > 0 && out[len(out)-1].Kind == line.Comment
				if leadsToHeader || afterHeader {
					continue
				}
			}
		}
		out = append(out, r)
	}
	return out
}

// insertContentSeparators puts one Blank after a KeyValue record whose
// following content is a Section, or a Comment heading one, unless a blank
// is already there.
func insertContentSeparators(recs []line.Record) []line.Record {
	out := make([]line.Record, 0, len(recs)+4)
	for i, r := range recs {
		out = append(out, r)
		if r.Kind != line.KeyValue || i+1 >= len(recs) {
			continue
		}
		if recs[i+1].Kind == line.Blank {
			continue
		}
		next := recs[i+1]
		if next.Kind == line.Section ||
			(next.Kind == line.Comment && headsSection(recs, i+1)) {
			out = append(out, line.NewBlank())
		}
	}
	return out
}

// insertTopLevelSeparators puts one Blank before a depth-0 Section, or
// before the first Comment of a block heading one, when the preceding record
// is neither Blank nor Comment.
func insertTopLevelSeparators(recs []line.Record) []line.Record {
	out := make([]line.Record, 0, len(recs)+4)
	for i, r := range recs {
		if i > 0 {
			prev := recs[i-1]
			sep := prev.Kind != line.Blank && prev.Kind != line.Comment
			topSection := r.Kind == line.Section && r.Depth == 0
			topHeader := r.Kind == line.Comment && headsTopLevelSection(recs, i)
			if sep && (topSection || topHeader) &&
				len(out) > 0 && out[len(out)-1].Kind != line.Blank {
				out = append(out, line.NewBlank())
			}
		}
		out = append(out, r)
	}
	return out
}
