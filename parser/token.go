package parser

import (
	"fmt"
	"strings"
)

type TokenKind int

const (
	TokenKindUnknown TokenKind = iota

	TokenKindWord
	TokenKindQuoted

	TokenKindComma
	TokenKindLeftParenthesis
	TokenKindRightParenthesis
	TokenKindSemicolon
)

func (k TokenKind) String() string {
	switch k {
	case TokenKindUnknown:
		return "TokenKindUnknown"
	case TokenKindWord:
		return "TokenKindWord"
	case TokenKindQuoted:
		return "TokenKindQuoted"
	case TokenKindComma:
		return "TokenKindComma"
	case TokenKindLeftParenthesis:
		return "TokenKindLeftParenthesis"
	case TokenKindRightParenthesis:
		return "TokenKindRightParenthesis"
	case TokenKindSemicolon:
		return "TokenKindSemicolon"
	}
	return fmt.Sprintf("!! INVALID TOKEN KIND %d !!", k)
}

// Lexeme returns a short human readable description of the kind, used in error messages.
func (k TokenKind) Lexeme() string {
	switch k {
	case TokenKindUnknown:
		return "UNKNOWN"
	case TokenKindWord:
		return "word"
	case TokenKindQuoted:
		return "quoted text"
	case TokenKindComma:
		return ","
	case TokenKindLeftParenthesis:
		return "("
	case TokenKindRightParenthesis:
		return ")"
	case TokenKindSemicolon:
		return ";"
	}
	return fmt.Sprintf("!! INVALID TOKEN KIND %d !!", k)
}

func (k TokenKind) MarshalText() ([]byte, error) {
	return []byte(k.Lexeme()), nil
}

func punctuationKind(char rune) TokenKind {
	switch char {
	case ',':
		return TokenKindComma
	case '(':
		return TokenKindLeftParenthesis
	case ')':
		return TokenKindRightParenthesis
	case ';':
		return TokenKindSemicolon
	}
	return TokenKindUnknown
}

// Token is one classified lexical unit. The lexeme of a quoted token excludes its delimiters, the lexeme of
// punctuation is the punctuation character itself.
type Token struct {
	kind          TokenKind
	lexeme        string
	quote         rune // Only set for TokenKindQuoted.
	startPosition int  // Rune index of the first character in the input (the opening delimiter for quoted text).
}

func NewWordToken(lexeme string, startPosition int) *Token {
	return &Token{
		kind:          TokenKindWord,
		lexeme:        lexeme,
		startPosition: startPosition,
	}
}

func NewQuotedToken(lexeme string, quote rune, startPosition int) *Token {
	return &Token{
		kind:          TokenKindQuoted,
		lexeme:        lexeme,
		quote:         quote,
		startPosition: startPosition,
	}
}

// NewPunctuationToken creates a token for one of the characters , ( ) and ;. Any other character results in a
// token of kind TokenKindUnknown.
func NewPunctuationToken(char rune, startPosition int) *Token {
	return &Token{
		kind:          punctuationKind(char),
		lexeme:        string(char),
		startPosition: startPosition,
	}
}

func (t *Token) Kind() TokenKind {
	return t.kind
}

func (t *Token) Lexeme() string {
	return t.lexeme
}

func (t *Token) Quote() rune {
	return t.quote
}

func (t *Token) StartPosition() int {
	return t.startPosition
}

// Equal compares only the lexemes. The kind is ignored, so an escaped "," word equals a comma token.
func (t *Token) Equal(other *Token) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.lexeme == other.lexeme
}

// String returns the canonical rendering of the token, quoted text is wrapped in its delimiters.
func (t *Token) String() string {
	if t.kind == TokenKindQuoted {
		return string(t.quote) + t.lexeme + string(t.quote)
	}
	return t.lexeme
}

func TokensEqual(a []*Token, b []*Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// RenderTokens joins the canonical renderings of the given tokens with single spaces.
func RenderTokens(tokens []*Token) string {
	renderedTokens := make([]string, len(tokens))
	for i, token := range tokens {
		renderedTokens[i] = token.String()
	}
	return strings.Join(renderedTokens, " ")
}
