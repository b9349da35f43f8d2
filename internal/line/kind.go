package line

// Kind represents the category of a classified line.
type Kind uint8

const (
	// Invalid indicates an erroneous record.
	Invalid Kind = iota
	// Blank represents an empty or whitespace-only line.
	Blank
	// Comment represents a '#' comment line.
	Comment
	// Section represents a bracketed section header like [name] or [[name]].
	Section
	// KeyValue represents a 'key = value' assignment line.
	KeyValue
	// Other represents a bare content line matching no other kind.
	Other
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "Blank"
	case Comment:
		return "Comment"
	case Section:
		return "Section"
	case KeyValue:
		return "KeyValue"
	case Other:
		return "Other"
	default:
		return "Invalid"
	}
}
