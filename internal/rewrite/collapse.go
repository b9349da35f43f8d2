package rewrite

import "conffmt/internal/line"

// CollapseBlanks reduces every run of consecutive Blank records to a single
// one and removes leading and trailing blanks entirely.
func CollapseBlanks(recs []line.Record) []line.Record {
	out := make([]line.Record, 0, len(recs))
	for _, r := range recs {
		if r.Kind == line.Blank && len(out) > 0 && out[len(out)-1].Kind == line.Blank {
			continue
		}
		out = append(out, r)
	}
	for len(out) > 0 && out[0].Kind == line.Blank {
		out = out[1:]
	}
	for len(out) > 0 && out[len(out)-1].Kind == line.Blank {
		out = out[:len(out)-1]
	}
	return out
}
