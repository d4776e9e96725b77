package statement

import (
	"fmt"
	"github.com/hauke96/sigolo/v2"
)

type JoinKind int

const (
	JoinKindLeft JoinKind = iota
	JoinKindRight
	JoinKindInner
	JoinKindNatural
	JoinKindCross
)

// joinKeywords maps the keywords preceding "join" to their kind. Cross joins are only created implicitly by a
// comma in the table list.
var joinKeywords = map[string]JoinKind{
	"left":    JoinKindLeft,
	"right":   JoinKindRight,
	"inner":   JoinKindInner,
	"natural": JoinKindNatural,
}

// JoinKindFromKeyword returns the join kind for the given lower-case keyword. The bool is false when the keyword
// doesn't start a join.
func JoinKindFromKeyword(keyword string) (JoinKind, bool) {
	kind, ok := joinKeywords[keyword]
	return kind, ok
}

func (k JoinKind) String() string {
	switch k {
	case JoinKindLeft:
		return "left"
	case JoinKindRight:
		return "right"
	case JoinKindInner:
		return "inner"
	case JoinKindNatural:
		return "natural"
	case JoinKindCross:
		return "cross"
	}
	return fmt.Sprintf("!! INVALID JOIN KIND %d !!", int(k))
}

func (k JoinKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// TableEntry is one entry of the table list. A JoinMarker always directly precedes the TableName it belongs to.
type TableEntry interface {
	String() string
	Print(indent int)
}

type TableName struct {
	name string
}

func NewTableName(name string) *TableName {
	return &TableName{name: name}
}

func (t *TableName) GetName() string {
	return t.name
}

func (t *TableName) String() string {
	return escapeName(t.name)
}

func (t *TableName) Print(indent int) {
	sigolo.Debugf("%sTableName: %s", spacing(indent), t.name)
}

type JoinMarker struct {
	kind JoinKind
}

func NewJoinMarker(kind JoinKind) *JoinMarker {
	return &JoinMarker{kind: kind}
}

func (t *JoinMarker) GetKind() JoinKind {
	return t.kind
}

func (t *JoinMarker) String() string {
	return t.kind.String() + " join"
}

func (t *JoinMarker) Print(indent int) {
	sigolo.Debugf("%sJoinMarker: %s", spacing(indent), t.kind.String())
}

// NestedQuery is a placeholder for sub-queries in the table list. The parser doesn't produce it yet.
type NestedQuery struct {
}

func NewNestedQuery() *NestedQuery {
	return &NestedQuery{}
}

func (t *NestedQuery) String() string {
	return "(...)"
}

func (t *NestedQuery) Print(indent int) {
	sigolo.Debugf("%sNestedQuery", spacing(indent))
}
