package statement

import (
	"fmt"
	"github.com/hauke96/sigolo/v2"
	"strings"
)

type Command int

const (
	CommandUnknown Command = iota
	CommandSelect
	CommandInsert
	CommandUpdate
	CommandDelete
)

var commandKeywords = map[string]Command{
	"select": CommandSelect,
	"insert": CommandInsert,
	"update": CommandUpdate,
	"delete": CommandDelete,
}

// CommandFromKeyword returns the command for the given lower-case keyword or CommandUnknown.
func CommandFromKeyword(keyword string) Command {
	command, ok := commandKeywords[keyword]
	if !ok {
		return CommandUnknown
	}
	return command
}

func (c Command) String() string {
	switch c {
	case CommandUnknown:
		return "unknown"
	case CommandSelect:
		return "select"
	case CommandInsert:
		return "insert"
	case CommandUpdate:
		return "update"
	case CommandDelete:
		return "delete"
	}
	return fmt.Sprintf("!! INVALID COMMAND %d !!", int(c))
}

func (c Command) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Statement is the parsed representation of one SQL command. All text is owned by the statement, it does not
// reference the token sequence it was parsed from.
type Statement interface {
	Command() Command
	// String returns the canonical SQL text of the statement including the terminating ";".
	String() string
	Print(indent int)
}

type SelectStatement struct {
	columns  []ColumnValue
	tables   []TableEntry
	joinKeys []JoinKey
}

func NewSelectStatement(columns []ColumnValue, tables []TableEntry, joinKeys []JoinKey) *SelectStatement {
	return &SelectStatement{
		columns:  columns,
		tables:   tables,
		joinKeys: joinKeys,
	}
}

func (s *SelectStatement) Command() Command {
	return CommandSelect
}

func (s *SelectStatement) GetColumns() []ColumnValue {
	return s.columns
}

func (s *SelectStatement) GetTables() []TableEntry {
	return s.tables
}

func (s *SelectStatement) GetJoinKeys() []JoinKey {
	return s.joinKeys
}

func (s *SelectStatement) String() string {
	var sb strings.Builder

	sb.WriteString("select ")
	sb.WriteString(joinColumns(s.columns))

	if len(s.tables) > 0 {
		sb.WriteString(" from ")
		for _, table := range s.tables {
			switch t := table.(type) {
			case *JoinMarker:
				if t.kind == JoinKindCross {
					sb.WriteString(", ")
				} else {
					sb.WriteString(" " + t.String() + " ")
				}
			default:
				sb.WriteString(t.String())
			}
		}
	}

	for _, joinKey := range s.joinKeys {
		sb.WriteString(" using(" + joinKey.String() + ")")
	}

	sb.WriteString(";")
	return sb.String()
}

func (s *SelectStatement) Print(indent int) {
	sigolo.Debugf("%sSelectStatement", spacing(indent))

	sigolo.Debugf("%scolumns:", spacing(indent+2))
	for _, column := range s.columns {
		column.Print(indent + 4)
	}

	sigolo.Debugf("%stables:", spacing(indent+2))
	for _, table := range s.tables {
		table.Print(indent + 4)
	}

	if len(s.joinKeys) > 0 {
		sigolo.Debugf("%sjoin keys:", spacing(indent+2))
		for _, joinKey := range s.joinKeys {
			joinKey.Print(indent + 4)
		}
	}
}

// UnsupportedStatement records a recognized command whose clauses can't be parsed yet.
type UnsupportedStatement struct {
	command Command
}

func NewUnsupportedStatement(command Command) *UnsupportedStatement {
	return &UnsupportedStatement{
		command: command,
	}
}

func (s *UnsupportedStatement) Command() Command {
	return s.command
}

func (s *UnsupportedStatement) String() string {
	return s.command.String() + ";"
}

func (s *UnsupportedStatement) Print(indent int) {
	sigolo.Debugf("%sUnsupportedStatement: %s", spacing(indent), s.command.String())
}

func spacing(indent int) string {
	return strings.Repeat(" ", indent)
}
