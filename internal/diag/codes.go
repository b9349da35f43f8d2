package diag

import (
	"fmt"
)

// Code is a compact numeric diagnostic identifier with a stable string form.
type Code uint16

const (
	// UnknownCode is the fallback for unclassified diagnostics.
	UnknownCode Code = 0

	// Classification (line scanner)
	ScanInfo Code = 1000
	// ScanMismatchedBrackets reports a section header whose opening and
	// closing bracket counts differ. The single fatal condition.
	ScanMismatchedBrackets Code = 1001

	// Validation
	ValInfo Code = 2000
	// ValDuplicateSection reports a fully qualified section path that occurs
	// more than once. Non-fatal.
	ValDuplicateSection Code = 2001

	// IO and driver
	IOInfo Code = 4000
	// IOReadFailed reports a file that could not be read.
	IOReadFailed Code = 4001
	// IOWriteFailed reports a file that could not be written back.
	IOWriteFailed Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:            "unknown diagnostic",
	ScanInfo:               "scanner note",
	ScanMismatchedBrackets: "mismatched section brackets",
	ValInfo:                "validation note",
	ValDuplicateSection:    "duplicate section path",
	IOInfo:                 "io note",
	IOReadFailed:           "cannot read file",
	IOWriteFailed:          "cannot write file",
}

// ID returns the stable short identifier, e.g. "SCN1001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("SCN%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("VAL%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
