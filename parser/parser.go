package parser

import (
	"github.com/hauke96/sigolo/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"sqlfront/statement"
	"unicode/utf8"
)

// commandParser is the state machine of one command. It gets every token after the command keyword.
type commandParser interface {
	handleToken(token *Token) error
	currentState() State
	statement() statement.Statement
}

// commandParsers contains the state machines of all commands with an implemented grammar. Recognized commands
// without entry fail with a NotImplemented error.
var commandParsers = map[statement.Command]func(p *Parser) commandParser{
	statement.CommandSelect: newSelectParser,
}

// Parser turns the tokens of exactly one statement into a statement.Statement. A parser is not reusable, use Parse
// to get a fresh one for every statement.
type Parser struct {
	token []*Token
	index int

	caser   cases.Caser // Not safe for concurrent use.
	command statement.Command
	current commandParser
}

// ParseStatementString lexes and parses the given statement. Lexing errors are returned unchanged.
func ParseStatementString(statementString string) (statement.Statement, error) {
	token, err := Lex(statementString)
	if err != nil {
		return nil, err
	}

	sigolo.Tracef("Found %d token", len(token))
	for _, t := range token {
		sigolo.Tracef("  kind=%s, pos=%d : %s", t.kind.String(), t.startPosition, t.String())
	}

	return Parse(token)
}

// Parse turns the given tokens into a statement. It fails on the first token that can't be consumed in the current
// state and when the tokens end before the statement is terminated.
func Parse(token []*Token) (statement.Statement, error) {
	parser := &Parser{
		token: token,
		index: 0,
		caser: cases.Lower(language.Und),
	}
	return parser.parse()
}

func (p *Parser) currentToken() *Token {
	if p.index >= len(p.token) {
		return nil
	}
	return p.token[p.index]
}

func (p *Parser) state() State {
	if p.current == nil {
		return StateCommand
	}
	return p.current.currentState()
}

// keyword returns the lower-cased lexeme of a word token. Any other token is never a keyword and results in "".
func (p *Parser) keyword(token *Token) string {
	if token.kind != TokenKindWord {
		return ""
	}
	return p.caser.String(token.lexeme)
}

// endPosition is the position right behind the last token.
func (p *Parser) endPosition() int {
	if len(p.token) == 0 {
		return 0
	}
	lastToken := p.token[len(p.token)-1]
	return lastToken.startPosition + utf8.RuneCountInString(lastToken.String())
}

func (p *Parser) parse() (statement.Statement, error) {
	for ; p.index < len(p.token); p.index++ {
		token := p.currentToken()
		sigolo.Tracef("Handle token %q in state %s", token.String(), p.state().String())

		var err error
		if p.current == nil {
			err = p.handleCommand(token)
		} else {
			err = p.current.handleToken(token)
		}
		if err != nil {
			return nil, err
		}
	}

	if p.state() != StateEnd {
		return nil, ParseErrorUnexpectedEnd(p.endPosition(), p.state(), p.command)
	}

	result := p.current.statement()
	result.Print(0)

	return result, nil
}

func (p *Parser) handleCommand(token *Token) error {
	if token.kind != TokenKindWord {
		return ParseErrorUnexpectedToken(token, StateCommand, statement.CommandUnknown)
	}

	command := statement.CommandFromKeyword(p.keyword(token))
	if command == statement.CommandUnknown {
		return ParseErrorUnknownCommand(token)
	}
	p.command = command

	newCommandParser, ok := commandParsers[command]
	if !ok {
		statement.NewUnsupportedStatement(command).Print(0)
		return ParseErrorNotImplemented(token, command)
	}

	sigolo.Tracef("Start parsing %s statement", command.String())
	p.current = newCommandParser(p)
	return nil
}
