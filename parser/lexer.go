package parser

import (
	"fmt"
	"github.com/hauke96/sigolo/v2"
	"strings"
	"unicode"
)

const escapeChar = '\\'

type escapeState int

const (
	escapeStateNormal escapeState = iota
	escapeStateEscaping
)

type Lexer struct {
	input []rune
	index int // Position in input.

	escapeState   escapeState
	escapeIndex   int  // Position of the last escape character.
	quote         rune // The delimiter of the currently open quote or 0 when outside of quotes.
	quoteIndex    int  // Position of the opening delimiter.
	pending       strings.Builder
	pendingKind   TokenKind
	pendingQuote  rune
	pendingStart  int
	pendingLength int

	tokens []*Token
}

func NewLexer(input string) *Lexer {
	return &Lexer{
		input:       []rune(input),
		index:       0,
		pendingKind: TokenKindWord,
	}
}

// Lex splits the input into tokens. It only classifies characters, any grammar is up to the parser.
func Lex(input string) ([]*Token, error) {
	return NewLexer(input).read()
}

func (l *Lexer) inQuote() bool {
	return l.quote != 0
}

// char returns the rune at the current location or the rune '-1' if there is no next char.
func (l *Lexer) char() rune {
	if l.index >= len(l.input) {
		return -1
	}
	return l.input[l.index]
}

func (l *Lexer) read() ([]*Token, error) {
	for ; l.index < len(l.input); l.index++ {
		l.processChar(l.char())
	}

	if l.escapeState == escapeStateEscaping {
		return nil, LexErrorUnmatchedEscape(l.escapeIndex)
	}
	if l.inQuote() {
		return nil, LexErrorUnmatchedQuote(l.quote, l.quoteIndex)
	}

	l.flush()

	return l.tokens, nil
}

func (l *Lexer) processChar(char rune) {
	if l.escapeState == escapeStateEscaping {
		l.tracef("Add escaped character")
		l.escapeState = escapeStateNormal
		l.appendToPending(char, l.escapeIndex)
		return
	}

	if char == escapeChar {
		l.tracef("Start escaping")
		l.escapeState = escapeStateEscaping
		l.escapeIndex = l.index
		return
	}

	if l.inQuote() {
		if char == l.quote {
			l.tracef("Close quote")
			l.quote = 0
			l.flush()
			return
		}
		l.appendToPending(char, l.index)
		return
	}

	if unicode.IsSpace(char) {
		l.flush()
		return
	}

	switch char {
	case '\'', '"':
		l.tracef("Open quote")
		l.flush()
		l.quote = char
		l.quoteIndex = l.index
		l.pendingKind = TokenKindQuoted
		l.pendingQuote = char
		l.pendingStart = l.index
	case ',', '(', ')', ';':
		l.flush()
		l.emit(NewPunctuationToken(char, l.index))
	default:
		l.appendToPending(char, l.index)
	}
}

// appendToPending adds the character to the pending token. A new word starts at the given position, which is the
// backslash for escaped characters.
func (l *Lexer) appendToPending(char rune, start int) {
	if l.pendingLength == 0 && l.pendingKind == TokenKindWord {
		l.pendingStart = start
	}
	l.pending.WriteRune(char)
	l.pendingLength++
}

// flush emits the pending token if it has at least one character. Empty tokens, also empty quoted text, are dropped.
func (l *Lexer) flush() {
	if l.pendingLength > 0 {
		lexeme := l.pending.String()
		if l.pendingKind == TokenKindQuoted {
			l.emit(NewQuotedToken(lexeme, l.pendingQuote, l.pendingStart))
		} else {
			l.emit(NewWordToken(lexeme, l.pendingStart))
		}
	}

	l.pending.Reset()
	l.pendingLength = 0
	l.pendingKind = TokenKindWord
	l.pendingQuote = 0
}

func (l *Lexer) emit(token *Token) {
	l.tracef("Found token kind=%s, pos=%d, lexeme=%q", token.kind.String(), token.startPosition, token.lexeme)
	l.tokens = append(l.tokens, token)
}

func (l *Lexer) tracef(format string, args ...any) {
	if !sigolo.ShouldLogTrace() {
		return
	}
	formattedMessage := format
	if len(args) > 0 {
		formattedMessage = fmt.Sprintf(format, args...)
	}
	sigolo.Traceb(1, "[%d, %q] %s", l.index, l.char(), formattedMessage)
}
