package parser

import "fmt"

// State is the current state of the parser state machine. Every command has its own set of states, all of them
// start after StateCommand.
type State int

const (
	StateCommand State = iota

	StateColumnsValue
	StateColumnsNext
	StateColumnsFuncParam
	StateColumnsFuncNext
	StateTablesValue
	StateTablesNext
	StateTablesJoin
	StateUsingOpen
	StateUsingValue

	StateEnd
)

func (s State) String() string {
	switch s {
	case StateCommand:
		return "Command"
	case StateColumnsValue:
		return "ColumnsValue"
	case StateColumnsNext:
		return "ColumnsNext"
	case StateColumnsFuncParam:
		return "ColumnsFuncParam"
	case StateColumnsFuncNext:
		return "ColumnsFuncNext"
	case StateTablesValue:
		return "TablesValue"
	case StateTablesNext:
		return "TablesNext"
	case StateTablesJoin:
		return "TablesJoin"
	case StateUsingOpen:
		return "UsingOpen"
	case StateUsingValue:
		return "UsingValue"
	case StateEnd:
		return "End"
	}
	return fmt.Sprintf("!! INVALID STATE %d !!", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
