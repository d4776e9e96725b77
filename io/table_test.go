package io

import (
	"bytes"
	"sqlfront/parser"
	"sqlfront/statement"
	"sqlfront/util"
	"testing"
)

func TestWriteTokensAsTable(t *testing.T) {
	// Arrange
	tokens, err := parser.Lex("select 'a b';")
	util.AssertNil(t, err)
	buffer := &bytes.Buffer{}

	// Act
	err = WriteTokensAsTable(tokens, buffer)

	// Assert
	util.AssertNil(t, err)
	output := buffer.String()
	util.AssertMatch(t, `\| *# *\| *kind *\| *token *\| *position *\|`, output)
	util.AssertMatch(t, `\| *0 *\| *TokenKindWord *\| *select *\| *0 *\|`, output)
	util.AssertMatch(t, `\| *1 *\| *TokenKindQuoted *\| *'a b' *\| *7 *\|`, output)
	util.AssertMatch(t, `\| *2 *\| *TokenKindSemicolon *\| *; *\| *12 *\|`, output)
}

func TestWriteStatementAsTable(t *testing.T) {
	// Arrange
	stmt, err := parser.ParseStatementString("select a, count(b) from t1 left join t2 using(x, y);")
	util.AssertNil(t, err)
	buffer := &bytes.Buffer{}

	// Act
	err = WriteStatementAsTable(stmt, buffer)

	// Assert
	util.AssertNil(t, err)
	output := buffer.String()
	util.AssertMatch(t, `\| *columns *\| *0 *\| *plain name *\| *a *\|`, output)
	util.AssertMatch(t, `\| *columns *\| *1 *\| *function call *\| *count\(b\) *\|`, output)
	util.AssertMatch(t, `\| *tables *\| *0 *\| *table name *\| *t1 *\|`, output)
	util.AssertMatch(t, `\| *tables *\| *1 *\| *join *\| *left join *\|`, output)
	util.AssertMatch(t, `\| *tables *\| *2 *\| *table name *\| *t2 *\|`, output)
	util.AssertMatch(t, `\| *using *\| *0 *\| *column pair *\| *x, y *\|`, output)
}

func TestWriteStatementAsTable_unsupportedStatement(t *testing.T) {
	// Arrange
	buffer := &bytes.Buffer{}

	// Act
	err := WriteStatementAsTable(statement.NewUnsupportedStatement(statement.CommandUpdate), buffer)

	// Assert
	util.AssertNil(t, err)
	util.AssertMatch(t, `\| *command *\| *0 *\| *unsupported *\| *update *\|`, buffer.String())
}
