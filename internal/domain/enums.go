package domain

// OpResult is the outcome of a board operation. Operations report
// failures as values; they never panic or terminate the process.
type OpResult int

const (
	ResultOK            OpResult = iota
	ResultOutOfRange             // row, column, or digit outside 1..9
	ResultOccupied               // write attempted on a non-empty cell
	ResultRuleViolation          // digit already in the row, column, or region
	ResultEmpty                  // erase attempted on an empty cell
	ResultProtected              // erase attempted on a fixed given
)

func (r OpResult) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultOutOfRange:
		return "out of range"
	case ResultOccupied:
		return "occupied"
	case ResultRuleViolation:
		return "rule violation"
	case ResultEmpty:
		return "empty"
	case ResultProtected:
		return "protected"
	default:
		return "unknown"
	}
}

// Phase distinguishes the one-time seeding phase from interactive editing.
type Phase int

const (
	PhaseSeeding Phase = iota
	PhaseInteractive
)

func (p Phase) String() string {
	if p == PhaseSeeding {
		return "seeding"
	}
	return "interactive"
}
