package io

import (
	"bytes"
	"sqlfront/parser"
	"sqlfront/util"
	"testing"
)

func TestWriteTokensAsJson(t *testing.T) {
	// Arrange
	tokens, err := parser.Lex("count(\"a\");")
	util.AssertNil(t, err)
	buffer := &bytes.Buffer{}

	// Act
	err = WriteTokensAsJson(tokens, buffer)

	// Assert
	util.AssertNil(t, err)
	expected := `[{"kind":"word","lexeme":"count","position":0},` +
		`{"kind":"(","lexeme":"(","position":5},` +
		`{"kind":"quoted text","lexeme":"a","quote":"\"","position":6},` +
		`{"kind":")","lexeme":")","position":9},` +
		`{"kind":";","lexeme":";","position":10}]`
	util.AssertEqual(t, expected, buffer.String())
}

func TestWriteStatementAsJson(t *testing.T) {
	// Arrange
	stmt, err := parser.ParseStatementString("select a from t;")
	util.AssertNil(t, err)
	buffer := &bytes.Buffer{}

	// Act
	err = WriteStatementAsJson(stmt, buffer)

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, `{"command":"select","columns":[{"type":"plain-name","name":"a"}],"tables":[{"type":"table-name","name":"t"}],"join-keys":[]}`, buffer.String())
}
