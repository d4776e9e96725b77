package parser

import (
	"fmt"
	"runtime"
	"sqlfront/statement"
	"strings"
)

type stack *[]uintptr

// getCurrentStack creates a new stack without the last three frames, because they are from the internal calls (e.g. to
// this function) and therefore irrelevant to the function creating the error.
func getCurrentStack() stack {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	var st = pcs[0:n]
	return &st
}

func getPrintableStackTrace(stack stack) string {
	if stack == nil {
		return ""
	}

	var sb strings.Builder

	for _, pc := range *stack {
		f := runtime.FuncForPC(pc)
		file, line := f.FileLine(pc)
		sb.WriteString(fmt.Sprintf("%s\n\t%s:%d\n", f.Name(), file, line))
	}

	return sb.String()
}

func formatWithStack(s fmt.State, verb rune, err error, stack stack) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s\n%s", err.Error(), getPrintableStackTrace(stack))
			return
		}
		fmt.Fprintf(s, "%s", err.Error())
	case 's':
		fmt.Fprintf(s, "%s", err.Error())
	case 'q':
		fmt.Fprintf(s, "%q", err.Error())
	}
}

type LexErrorKind int

const (
	LexErrorKindUnmatchedQuote LexErrorKind = iota
	LexErrorKindUnmatchedEscape
)

func (k LexErrorKind) String() string {
	switch k {
	case LexErrorKindUnmatchedQuote:
		return "UnmatchedQuote"
	case LexErrorKindUnmatchedEscape:
		return "UnmatchedEscape"
	}
	return fmt.Sprintf("!! INVALID LEX ERROR KIND %d !!", int(k))
}

func (k LexErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// LexError is returned when the input ended within a quote or directly after an escape character.
type LexError struct {
	Message  string       `json:"message"`
	Kind     LexErrorKind `json:"kind"`
	Position int          `json:"position"`
	stack    stack
}

var (
	ErrUnmatchedQuote  = &LexError{Kind: LexErrorKindUnmatchedQuote, Message: "Lexing error: Unmatched quote."}
	ErrUnmatchedEscape = &LexError{Kind: LexErrorKindUnmatchedEscape, Message: "Lexing error: Unmatched escape character."}
)

func LexErrorUnmatchedQuote(quote rune, position int) *LexError {
	return &LexError{
		Message:  fmt.Sprintf("Lexing error: Quote %c opened at position %d is never closed.", quote, position),
		Kind:     LexErrorKindUnmatchedQuote,
		Position: position,
		stack:    getCurrentStack(),
	}
}

func LexErrorUnmatchedEscape(position int) *LexError {
	return &LexError{
		Message:  fmt.Sprintf("Lexing error: Escape character at position %d is not followed by any character.", position),
		Kind:     LexErrorKindUnmatchedEscape,
		Position: position,
		stack:    getCurrentStack(),
	}
}

func (e *LexError) Format(s fmt.State, verb rune) {
	formatWithStack(s, verb, e, e.stack)
}

func (e *LexError) Error() string {
	return e.Message
}

// Is reports whether the target is a lex error of the same kind, so that errors.Is works with the ErrUnmatched...
// values.
func (e *LexError) Is(target error) bool {
	t, ok := target.(*LexError)
	return ok && t.Kind == e.Kind
}

type ParseErrorKind int

const (
	ParseErrorKindUnknownCommand ParseErrorKind = iota
	ParseErrorKindUnexpectedToken
	ParseErrorKindFunctionOnNonPlainColumn
	ParseErrorKindIncompleteUsingPair
	ParseErrorKindNotImplemented
	ParseErrorKindUnexpectedEnd
)

func (k ParseErrorKind) String() string {
	switch k {
	case ParseErrorKindUnknownCommand:
		return "UnknownCommand"
	case ParseErrorKindUnexpectedToken:
		return "UnexpectedToken"
	case ParseErrorKindFunctionOnNonPlainColumn:
		return "FunctionOnNonPlainColumn"
	case ParseErrorKindIncompleteUsingPair:
		return "IncompleteUsingPair"
	case ParseErrorKindNotImplemented:
		return "NotImplemented"
	case ParseErrorKindUnexpectedEnd:
		return "UnexpectedEnd"
	}
	return fmt.Sprintf("!! INVALID PARSE ERROR KIND %d !!", int(k))
}

func (k ParseErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseError names the token the parser could not consume and the state it was in. For UnexpectedEnd errors there is
// no such token, Found is empty and Position points right behind the last token.
type ParseError struct {
	Message  string            `json:"message"`
	Kind     ParseErrorKind    `json:"kind"`
	Found    string            `json:"found,omitempty"`
	Position int               `json:"position"`
	State    State             `json:"state"`
	Command  statement.Command `json:"command"`
	token    *Token
	stack    stack
}

var (
	ErrUnknownCommand           = &ParseError{Kind: ParseErrorKindUnknownCommand, Message: "Parsing error: Unknown command."}
	ErrUnexpectedToken          = &ParseError{Kind: ParseErrorKindUnexpectedToken, Message: "Parsing error: Unexpected token."}
	ErrFunctionOnNonPlainColumn = &ParseError{Kind: ParseErrorKindFunctionOnNonPlainColumn, Message: "Parsing error: Function call on non-plain column."}
	ErrIncompleteUsingPair      = &ParseError{Kind: ParseErrorKindIncompleteUsingPair, Message: "Parsing error: Too many names in USING list."}
	ErrNotImplemented           = &ParseError{Kind: ParseErrorKindNotImplemented, Message: "Parsing error: Command not implemented."}
	ErrUnexpectedEnd            = &ParseError{Kind: ParseErrorKindUnexpectedEnd, Message: "Parsing error: Unexpected end of statement."}
)

func newParseError(kind ParseErrorKind, message string, token *Token, state State, command statement.Command) *ParseError {
	err := &ParseError{
		Message: message,
		Kind:    kind,
		State:   state,
		Command: command,
		token:   token,
		stack:   getCurrentStack(),
	}
	if token != nil {
		err.Found = token.String()
		err.Position = token.startPosition
	}
	return err
}

func ParseErrorUnknownCommand(token *Token) *ParseError {
	return newParseError(
		ParseErrorKindUnknownCommand,
		fmt.Sprintf("Parsing error: Unknown command '%s' at position %d.", token.String(), token.startPosition),
		token, StateCommand, statement.CommandUnknown)
}

func ParseErrorUnexpectedToken(token *Token, state State, command statement.Command) *ParseError {
	return newParseError(
		ParseErrorKindUnexpectedToken,
		fmt.Sprintf("Parsing error: Unexpected '%s' of kind %s at position %d in state %s.", token.String(), token.kind.String(), token.startPosition, state.String()),
		token, state, command)
}

func ParseErrorFunctionOnNonPlainColumn(token *Token, state State, column string) *ParseError {
	return newParseError(
		ParseErrorKindFunctionOnNonPlainColumn,
		fmt.Sprintf("Parsing error: '%s' at position %d would turn column %s into a function call, but only plain column names can be called.", token.String(), token.startPosition, column),
		token, state, statement.CommandSelect)
}

func ParseErrorIncompleteUsingPair(token *Token, state State, left string, right string) *ParseError {
	return newParseError(
		ParseErrorKindIncompleteUsingPair,
		fmt.Sprintf("Parsing error: Unexpected third name '%s' at position %d in USING list after '%s' and '%s'.", token.String(), token.startPosition, left, right),
		token, state, statement.CommandSelect)
}

func ParseErrorNotImplemented(token *Token, command statement.Command) *ParseError {
	return newParseError(
		ParseErrorKindNotImplemented,
		fmt.Sprintf("Parsing error: Command '%s' at position %d is not implemented.", command.String(), token.startPosition),
		token, StateCommand, command)
}

// ParseErrorUnexpectedEnd reports the state the parser is in after its last token, e.g. TablesValue for "select a
// from" since "from" moves the parser into TablesValue.
func ParseErrorUnexpectedEnd(position int, state State, command statement.Command) *ParseError {
	err := newParseError(
		ParseErrorKindUnexpectedEnd,
		fmt.Sprintf("Parsing error: Token stream ended at position %d in state %s.", position, state.String()),
		nil, state, command)
	err.Position = position
	return err
}

// Token returns the token that couldn't be consumed or nil for UnexpectedEnd errors.
func (e *ParseError) Token() *Token {
	return e.token
}

func (e *ParseError) Format(s fmt.State, verb rune) {
	formatWithStack(s, verb, e, e.stack)
}

func (e *ParseError) Error() string {
	return e.Message
}

// Is reports whether the target is a parse error of the same kind.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}
