package rewrite

import "conffmt/internal/line"

// Pass is one rewrite step over the full record sequence. Passes produce a
// fresh slice; callers may keep the input.
type Pass func([]line.Record) []line.Record

// Passes returns the rewrite passes in their canonical order. Later passes
// rely on the results of earlier ones.
func Passes() []Pass {
	return []Pass{
		AlignHeaderComments,
		NormalizeSpacing,
		CollapseBlanks,
	}
}

// Apply runs all passes in order.
func Apply(recs []line.Record) []line.Record {
	for _, pass := range Passes() {
		recs = pass(recs)
	}
	return recs
}
