package scan

import "conffmt/internal/diag"

// Options configures a Scanner.
type Options struct {
	// Reporter receives the fatal diagnostic on mismatched brackets. May be
	// nil; the scan still aborts with an error.
	Reporter diag.Reporter
}
