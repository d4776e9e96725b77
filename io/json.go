package io

import (
	"encoding/json"
	"github.com/pkg/errors"
	"io"
	"sqlfront/parser"
	"sqlfront/statement"
)

type tokenJson struct {
	Kind     parser.TokenKind `json:"kind"`
	Lexeme   string           `json:"lexeme"`
	Quote    string           `json:"quote,omitempty"`
	Position int              `json:"position"`
}

func WriteTokensAsJson(tokens []*parser.Token, writer io.Writer) error {
	tokenObjects := make([]tokenJson, len(tokens))
	for i, token := range tokens {
		tokenObjects[i] = tokenJson{
			Kind:     token.Kind(),
			Lexeme:   token.Lexeme(),
			Position: token.StartPosition(),
		}
		if token.Kind() == parser.TokenKindQuoted {
			tokenObjects[i].Quote = string(token.Quote())
		}
	}

	return writeJson(tokenObjects, writer)
}

func WriteStatementAsJson(stmt statement.Statement, writer io.Writer) error {
	return writeJson(stmt, writer)
}

func writeJson(value any, writer io.Writer) error {
	jsonBytes, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "Unable to marshal JSON")
	}

	_, err = writer.Write(jsonBytes)
	return errors.Wrap(err, "Unable to write JSON")
}
