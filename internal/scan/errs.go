package scan

import "fmt"

// MismatchedBracketsError is the single fatal scan failure: a section header
// whose opening and closing bracket counts differ. It carries the 1-based
// source line and the raw line text for diagnostics.
type MismatchedBracketsError struct {
	Path string
	Line uint32
	Raw  string
}

func (e *MismatchedBracketsError) Error() string {
	return fmt.Sprintf("%s:%d: mismatched brackets in section: %s", e.Path, e.Line, e.Raw)
}
