package diag

// Severity ranks a diagnostic. Ordering matters: HasErrors and the Bag sort
// compare severities numerically, so new levels must keep SevError highest.
type Severity uint8

const (
	// SevInfo marks purely informational output.
	SevInfo Severity = iota
	// SevWarning marks a finding that does not stop the run, such as a
	// duplicate section path.
	SevWarning
	// SevError marks a fatal finding; formatting produces no output.
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}
