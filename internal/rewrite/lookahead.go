package rewrite

import "conffmt/internal/line"

// headerSectionIndex scans forward from start over a run of Comment and
// Blank records and returns the index of the Section record terminating the
// run, or -1 when the run hits content or the end of the sequence first.
func headerSectionIndex(recs []line.Record, start int) int {
	for j := start; j < len(recs); j++ {
		switch recs[j].Kind {
		case line.Comment, line.Blank:
			continue
		case line.Section:
			return j
		default:
			return -1
		}
	}
	return -1
}

// headsSection reports whether the Comment at idx starts a header block,
// i.e. the records after it (comments and blanks only) terminate at a
// Section.
func headsSection(recs []line.Record, idx int) bool {
	return headerSectionIndex(recs, idx+1) >= 0
}

// headsTopLevelSection reports whether the Comment at idx starts a header
// block for a depth-0 Section.
func headsTopLevelSection(recs []line.Record, idx int) bool {
	si := headerSectionIndex(recs, idx+1)
	return si >= 0 && recs[si].Depth == 0
}

// nextContent returns the index of the first non-Blank record at or after
// start, or -1.
func nextContent(recs []line.Record, start int) int {
	for j := start; j < len(recs); j++ {
		if recs[j].Kind != line.Blank {
			return j
		}
	}
	return -1
}
