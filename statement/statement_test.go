package statement

import (
	"encoding/json"
	"github.com/hauke96/sigolo/v2"
	"sqlfront/util"
	"testing"
)

func createSelectStatement() *SelectStatement {
	return NewSelectStatement(
		[]ColumnValue{
			NewPlainName("a"),
			NewQuotedName("b c", '"'),
			NewFunctionCall("count", NewPlainName("d"), NewQuotedName("e", '\'')),
		},
		[]TableEntry{
			NewTableName("t1"),
			NewJoinMarker(JoinKindLeft),
			NewTableName("t2"),
			NewJoinMarker(JoinKindCross),
			NewTableName("t3"),
		},
		[]JoinKey{
			NewSingleColumn("x"),
			NewColumnPair("y", "z"),
		},
	)
}

func TestSelectStatement_String(t *testing.T) {
	// Arrange
	stmt := createSelectStatement()

	// Act
	sql := stmt.String()

	// Assert
	util.AssertEqual(t, "select a, \"b c\", count(d, 'e') from t1 left join t2, t3 using(x) using(y, z);", sql)
}

func TestSelectStatement_StringWithoutTables(t *testing.T) {
	stmt := NewSelectStatement([]ColumnValue{NewPlainName("a")}, nil, nil)
	util.AssertEqual(t, "select a;", stmt.String())
}

func TestSelectStatement_Print(t *testing.T) {
	// Arrange
	sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	stmt := createSelectStatement()

	// Act & Assert (must not panic)
	stmt.Print(0)
	NewUnsupportedStatement(CommandDelete).Print(2)
	NewNestedQuery().Print(4)
}

func TestSelectStatement_MarshalJSON(t *testing.T) {
	// Arrange
	stmt := createSelectStatement()

	// Act
	jsonBytes, err := json.Marshal(stmt)

	// Assert
	util.AssertNil(t, err)
	expected := `{"command":"select",` +
		`"columns":[{"type":"plain-name","name":"a"},{"type":"quoted-name","name":"b c","quote":"\""},` +
		`{"type":"function-call","name":"count","arguments":[{"type":"plain-name","name":"d"},{"type":"quoted-name","name":"e","quote":"'"}]}],` +
		`"tables":[{"type":"table-name","name":"t1"},{"type":"join-marker","kind":"left"},{"type":"table-name","name":"t2"},` +
		`{"type":"join-marker","kind":"cross"},{"type":"table-name","name":"t3"}],` +
		`"join-keys":[{"type":"single-column","name":"x"},{"type":"column-pair","left":"y","right":"z"}]}`
	util.AssertEqual(t, expected, string(jsonBytes))
}

func TestSelectStatement_MarshalJSONEmptyLists(t *testing.T) {
	// Arrange
	stmt := NewSelectStatement([]ColumnValue{NewFunctionCall("now")}, nil, nil)

	// Act
	jsonBytes, err := json.Marshal(stmt)

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, `{"command":"select","columns":[{"type":"function-call","name":"now","arguments":[]}],"tables":[],"join-keys":[]}`, string(jsonBytes))
}

func TestUnsupportedStatement(t *testing.T) {
	// Arrange
	stmt := NewUnsupportedStatement(CommandInsert)

	// Act
	jsonBytes, err := json.Marshal(stmt)

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, `{"command":"insert"}`, string(jsonBytes))
	util.AssertEqual(t, CommandInsert, stmt.Command())
	util.AssertEqual(t, "insert;", stmt.String())
}

func TestNestedQuery(t *testing.T) {
	jsonBytes, err := json.Marshal(NewNestedQuery())
	util.AssertNil(t, err)
	util.AssertEqual(t, `{"type":"nested-query"}`, string(jsonBytes))
	util.AssertEqual(t, "(...)", NewNestedQuery().String())
}

func TestCommandFromKeyword(t *testing.T) {
	util.AssertEqual(t, CommandSelect, CommandFromKeyword("select"))
	util.AssertEqual(t, CommandInsert, CommandFromKeyword("insert"))
	util.AssertEqual(t, CommandUpdate, CommandFromKeyword("update"))
	util.AssertEqual(t, CommandDelete, CommandFromKeyword("delete"))
	util.AssertEqual(t, CommandUnknown, CommandFromKeyword("drop"))
	util.AssertEqual(t, CommandUnknown, CommandFromKeyword("SELECT"))
}

func TestJoinKindFromKeyword(t *testing.T) {
	for _, kind := range []JoinKind{JoinKindLeft, JoinKindRight, JoinKindInner, JoinKindNatural} {
		parsedKind, ok := JoinKindFromKeyword(kind.String())
		util.AssertTrue(t, ok)
		util.AssertEqual(t, kind, parsedKind)
	}

	_, ok := JoinKindFromKeyword("cross")
	util.AssertFalse(t, ok)
	_, ok = JoinKindFromKeyword("join")
	util.AssertFalse(t, ok)
}

func TestJoinMarker_String(t *testing.T) {
	util.AssertEqual(t, "natural join", NewJoinMarker(JoinKindNatural).String())
	util.AssertEqual(t, "cross join", NewJoinMarker(JoinKindCross).String())
}

func TestSelectStatement_StringEscapesSpecialCharacters(t *testing.T) {
	// Arrange
	stmt := NewSelectStatement(
		[]ColumnValue{
			NewPlainName("a b"),
			NewQuotedName(`it"s`, '"'),
			NewQuotedName(`it"s`, '\''),
			NewFunctionCall("f(x", NewPlainName(`c\d`)),
		},
		[]TableEntry{NewTableName("t,u"), NewJoinMarker(JoinKindInner), NewTableName("v;w")},
		[]JoinKey{NewSingleColumn("k'1"), NewColumnPair("l)", "m\tn")},
	)

	// Act
	sql := stmt.String()

	// Assert
	util.AssertEqual(t, `select a\ b, "it\"s", 'it"s', f\(x(c\\d) from t\,u inner join v\;w using(k\'1) using(l\), m\`+"\t"+`n);`, sql)
}
