package parser

import (
	"github.com/hauke96/sigolo/v2"
	"sqlfront/statement"
	"sqlfront/util"
)

const (
	fromKeyword  = "from"
	joinKeyword  = "join"
	usingKeyword = "using"
)

// selectParser is the state machine of the SELECT command. The accumulated lists are turned into the statement once
// the terminating ";" has been consumed.
type selectParser struct {
	parser *Parser
	state  State

	columns  []statement.ColumnValue
	function *statement.FunctionCall // The function call whose arguments are currently parsed.
	tables   []statement.TableEntry
	joinKeys []statement.JoinKey

	usingDepth int      // Parenthesis depth within the current USING list.
	usingNames []string // Names of the current USING list.
}

func newSelectParser(p *Parser) commandParser {
	return &selectParser{
		parser: p,
		state:  StateColumnsValue,
	}
}

func (s *selectParser) currentState() State {
	return s.state
}

func (s *selectParser) statement() statement.Statement {
	return statement.NewSelectStatement(s.columns, s.tables, s.joinKeys)
}

func (s *selectParser) moveToState(state State) {
	sigolo.Tracef("select: %s -> %s", s.state.String(), state.String())
	s.state = state
}

func (s *selectParser) unexpected(token *Token) error {
	return ParseErrorUnexpectedToken(token, s.state, statement.CommandSelect)
}

func (s *selectParser) handleToken(token *Token) error {
	switch token.kind {
	case TokenKindWord:
		return s.handleWord(token)
	case TokenKindQuoted:
		return s.handleQuoted(token)
	case TokenKindComma:
		return s.handleComma(token)
	case TokenKindLeftParenthesis:
		return s.handleLeftParenthesis(token)
	case TokenKindRightParenthesis:
		return s.handleRightParenthesis(token)
	case TokenKindSemicolon:
		return s.handleSemicolon(token)
	}
	return s.unexpected(token)
}

func (s *selectParser) handleWord(token *Token) error {
	switch s.state {
	case StateColumnsValue:
		s.columns = append(s.columns, statement.NewPlainName(token.lexeme))
		s.moveToState(StateColumnsNext)
	case StateColumnsNext:
		if s.parser.keyword(token) != fromKeyword {
			return s.unexpected(token)
		}
		s.moveToState(StateTablesValue)
	case StateColumnsFuncParam:
		s.function.AddArgument(statement.NewPlainName(token.lexeme))
		s.moveToState(StateColumnsFuncNext)
	case StateTablesValue:
		s.tables = append(s.tables, statement.NewTableName(token.lexeme))
		s.moveToState(StateTablesNext)
	case StateTablesNext:
		keyword := s.parser.keyword(token)
		if keyword == usingKeyword {
			s.moveToState(StateUsingOpen)
			return nil
		}
		joinKind, isJoin := statement.JoinKindFromKeyword(keyword)
		if !isJoin {
			return s.unexpected(token)
		}
		s.tables = append(s.tables, statement.NewJoinMarker(joinKind))
		s.moveToState(StateTablesJoin)
	case StateTablesJoin:
		if s.parser.keyword(token) != joinKeyword {
			return s.unexpected(token)
		}
		s.moveToState(StateTablesValue)
	case StateUsingValue:
		return s.handleUsingName(token)
	default:
		return s.unexpected(token)
	}
	return nil
}

func (s *selectParser) handleQuoted(token *Token) error {
	switch s.state {
	case StateColumnsValue:
		s.columns = append(s.columns, statement.NewQuotedName(token.lexeme, token.quote))
		s.moveToState(StateColumnsNext)
	case StateColumnsFuncParam:
		s.function.AddArgument(statement.NewQuotedName(token.lexeme, token.quote))
		s.moveToState(StateColumnsFuncNext)
	default:
		return s.unexpected(token)
	}
	return nil
}

func (s *selectParser) handleComma(token *Token) error {
	switch s.state {
	case StateColumnsNext:
		s.moveToState(StateColumnsValue)
	case StateColumnsFuncNext:
		s.moveToState(StateColumnsFuncParam)
	case StateTablesNext:
		s.tables = append(s.tables, statement.NewJoinMarker(statement.JoinKindCross))
		s.moveToState(StateTablesValue)
	case StateUsingValue:
		// Only separates the names
	default:
		return s.unexpected(token)
	}
	return nil
}

func (s *selectParser) handleLeftParenthesis(token *Token) error {
	switch s.state {
	case StateColumnsNext:
		lastIndex := len(s.columns) - 1
		if lastIndex < 0 {
			util.LogFatalBug("No column in state %s", s.state.String())
		}
		plainName, isPlainName := s.columns[lastIndex].(*statement.PlainName)
		if !isPlainName {
			return ParseErrorFunctionOnNonPlainColumn(token, s.state, s.columns[lastIndex].String())
		}
		s.function = statement.NewFunctionCall(plainName.GetName())
		s.columns[lastIndex] = s.function
		s.moveToState(StateColumnsFuncParam)
	case StateUsingOpen:
		s.usingDepth = 1
		s.usingNames = nil
		s.moveToState(StateUsingValue)
	case StateUsingValue:
		s.usingDepth++
	default:
		// TODO Nested queries in StateTablesValue, see statement.NestedQuery.
		return s.unexpected(token)
	}
	return nil
}

func (s *selectParser) handleRightParenthesis(token *Token) error {
	switch s.state {
	case StateColumnsFuncNext:
		s.function = nil
		s.moveToState(StateColumnsNext)
	case StateUsingValue:
		s.usingDepth--
		if s.usingDepth > 0 {
			return nil
		}
		if len(s.usingNames) == 0 {
			return s.unexpected(token)
		}
		s.closeUsingList()
		s.moveToState(StateTablesNext)
	default:
		return s.unexpected(token)
	}
	return nil
}

func (s *selectParser) handleSemicolon(token *Token) error {
	switch s.state {
	case StateColumnsNext, StateTablesNext:
		s.moveToState(StateEnd)
	default:
		return s.unexpected(token)
	}
	return nil
}

// handleUsingName collects the names of the USING list. A list holds at most two names.
func (s *selectParser) handleUsingName(token *Token) error {
	if len(s.usingNames) >= 2 {
		return ParseErrorIncompleteUsingPair(token, s.state, s.usingNames[0], s.usingNames[1])
	}
	s.usingNames = append(s.usingNames, token.lexeme)
	return nil
}

func (s *selectParser) closeUsingList() {
	switch len(s.usingNames) {
	case 1:
		s.joinKeys = append(s.joinKeys, statement.NewSingleColumn(s.usingNames[0]))
	case 2:
		s.joinKeys = append(s.joinKeys, statement.NewColumnPair(s.usingNames[0], s.usingNames[1]))
	default:
		util.LogFatalBug("Unexpected number of %d names in USING list", len(s.usingNames))
	}
	s.usingNames = nil
}
