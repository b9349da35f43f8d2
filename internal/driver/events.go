package driver

// EventKind classifies a progress event.
type EventKind uint8

const (
	// EventStart marks the beginning of work on a file.
	EventStart EventKind = iota
	// EventDone marks a successfully processed file.
	EventDone
	// EventFailed marks a file that produced a fatal error.
	EventFailed
	// EventSkipped marks a file served from the canonical-result cache.
	EventSkipped
)

// Event is one progress notification emitted while formatting. Consumed by
// the progress UI; emission is best-effort and never blocks correctness.
type Event struct {
	Path    string
	Kind    EventKind
	Changed bool
}

func emit(events chan<- Event, ev Event) {
	if events == nil {
		return
	}
	events <- ev
}
