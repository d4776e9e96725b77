package io

import (
	"fmt"
	"github.com/hauke96/sigolo/v2"
	"github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"
	"github.com/pkg/errors"
	"io"
	"sqlfront/parser"
	"sqlfront/statement"
)

func newTableWriter(writer io.Writer, header ...interface{}) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(writer)

	// Don't uppercase the header values.
	t.Style().Format.Header = text.FormatDefault

	t.AppendHeader(header)
	return t
}

func WriteTokensAsTable(tokens []*parser.Token, writer io.Writer) error {
	sigolo.Debugf("Write %d token as table", len(tokens))

	t := newTableWriter(writer, "#", "kind", "token", "position")
	for i, token := range tokens {
		t.AppendRow(table.Row{i, token.Kind().String(), token.String(), token.StartPosition()})
	}
	t.Render()

	return writeNewline(writer)
}

// WriteStatementAsTable writes one row per column, table entry and join key of the statement.
func WriteStatementAsTable(stmt statement.Statement, writer io.Writer) error {
	sigolo.Debugf("Write %s statement as table", stmt.Command().String())

	t := newTableWriter(writer, "clause", "#", "type", "value")

	switch s := stmt.(type) {
	case *statement.SelectStatement:
		for i, column := range s.GetColumns() {
			t.AppendRow(table.Row{"columns", i, typeName(column), column.String()})
		}
		for i, tableEntry := range s.GetTables() {
			t.AppendRow(table.Row{"tables", i, typeName(tableEntry), tableEntry.String()})
		}
		for i, joinKey := range s.GetJoinKeys() {
			t.AppendRow(table.Row{"using", i, typeName(joinKey), joinKey.String()})
		}
	default:
		t.AppendRow(table.Row{"command", 0, typeName(stmt), stmt.Command().String()})
	}

	t.Render()

	return writeNewline(writer)
}

func typeName(value any) string {
	switch value.(type) {
	case *statement.PlainName:
		return "plain name"
	case *statement.QuotedName:
		return "quoted name"
	case *statement.FunctionCall:
		return "function call"
	case *statement.TableName:
		return "table name"
	case *statement.JoinMarker:
		return "join"
	case *statement.NestedQuery:
		return "nested query"
	case *statement.SingleColumn:
		return "single column"
	case *statement.ColumnPair:
		return "column pair"
	case *statement.UnsupportedStatement:
		return "unsupported"
	}
	return fmt.Sprintf("%T", value)
}

func writeNewline(writer io.Writer) error {
	_, err := writer.Write([]byte("\n"))
	return errors.Wrap(err, "Unable to write table")
}
