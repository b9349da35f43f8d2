package line

import (
	"fmt"

	"conffmt/internal/source"
)

// Record represents a single classified line with its canonical text and
// rendering depth.
type Record struct {
	Kind Kind
	// Depth is the zero-based nesting level. Blank records carry depth 0 by
	// convention.
	Depth int
	// Text is the trimmed canonical content, empty for Blank records.
	Text string
	// Span covers the originating line in the source file. Records inserted
	// by rewrite passes carry an empty span.
	Span source.Span
}

// NewBlank returns a synthetic blank record with no source span.
func NewBlank() Record {
	return Record{Kind: Blank}
}

// IsContent reports whether the record is a KeyValue or Other line, the
// kinds that terminate a comment header block.
func (r Record) IsContent() bool {
	return r.Kind == KeyValue || r.Kind == Other
}

// SectionName returns the name between the brackets of a Section record.
// For non-section records it returns an empty string.
func (r Record) SectionName() string {
	if r.Kind != Section {
		return ""
	}
	name, _, _, ok := MatchSection(r.Text)
	if !ok {
		return ""
	}
	return name
}

func (r Record) String() string {
	return fmt.Sprintf("%s depth=%d %q", r.Kind, r.Depth, r.Text)
}
