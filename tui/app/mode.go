package app

// Mode is the controller state.
type Mode int

const (
	// ModeNormal shows the table. Quit and Edit are the only actions.
	ModeNormal Mode = iota
	// ModeInput edits a "name,offset" line below the table.
	ModeInput
	// ModeHelp is reserved. Nothing enters it and it ignores every key.
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInput:
		return "input"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Validity describes what committing the current input would do.
type Validity int

const (
	// ValidityEmpty means there is nothing to commit.
	ValidityEmpty Validity = iota
	// ValidityValid means the line parses and adds a new name.
	ValidityValid
	// ValidityExists means the line parses and overwrites a stored name.
	ValidityExists
	// ValidityInvalid means the line does not parse.
	ValidityInvalid
)

func (v Validity) String() string {
	switch v {
	case ValidityValid:
		return "new"
	case ValidityExists:
		return "update"
	case ValidityInvalid:
		return "invalid"
	default:
		return "empty"
	}
}
