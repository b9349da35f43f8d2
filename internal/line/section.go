package line

import "regexp"

// sectionRe matches a section header: one or more opening brackets, a
// non-greedy name (possibly empty), one or more closing brackets. Bracket
// count balance is checked by the caller, not the pattern.
var sectionRe = regexp.MustCompile(`^(\[+)(.*?)(\]+)$`)

// MatchSection parses a trimmed line as a section header. It returns the
// captured name and the opening/closing bracket counts. ok is false when the
// line is not a section header at all; mismatched counts still return ok.
func MatchSection(text string) (name string, left, right int, ok bool) {
	m := sectionRe.FindStringSubmatch(text)
	if m == nil {
		return "", 0, 0, false
	}
	return m[2], len(m[1]), len(m[3]), true
}
