package statement

import (
	"github.com/hauke96/sigolo/v2"
	"strings"
)

// ColumnValue is one entry of the column list of a select statement or an argument of a function call.
type ColumnValue interface {
	String() string
	Print(indent int)
}

type PlainName struct {
	name string
}

func NewPlainName(name string) *PlainName {
	return &PlainName{name: name}
}

func (c *PlainName) GetName() string {
	return c.name
}

func (c *PlainName) String() string {
	return escapeName(c.name)
}

func (c *PlainName) Print(indent int) {
	sigolo.Debugf("%sPlainName: %s", spacing(indent), c.name)
}

type QuotedName struct {
	name  string
	quote rune
}

func NewQuotedName(name string, quote rune) *QuotedName {
	return &QuotedName{
		name:  name,
		quote: quote,
	}
}

func (c *QuotedName) GetName() string {
	return c.name
}

func (c *QuotedName) GetQuote() rune {
	return c.quote
}

func (c *QuotedName) String() string {
	return string(c.quote) + escapeQuoted(c.name, c.quote) + string(c.quote)
}

func (c *QuotedName) Print(indent int) {
	sigolo.Debugf("%sQuotedName: %s", spacing(indent), c.String())
}

type FunctionCall struct {
	name      string
	arguments []ColumnValue
}

func NewFunctionCall(name string, arguments ...ColumnValue) *FunctionCall {
	return &FunctionCall{
		name:      name,
		arguments: arguments,
	}
}

func (c *FunctionCall) GetName() string {
	return c.name
}

func (c *FunctionCall) GetArguments() []ColumnValue {
	return c.arguments
}

func (c *FunctionCall) AddArgument(argument ColumnValue) {
	c.arguments = append(c.arguments, argument)
}

func (c *FunctionCall) String() string {
	return escapeName(c.name) + "(" + joinColumns(c.arguments) + ")"
}

func (c *FunctionCall) Print(indent int) {
	sigolo.Debugf("%sFunctionCall: %s", spacing(indent), c.name)
	for _, argument := range c.arguments {
		argument.Print(indent + 2)
	}
}

func joinColumns(columns []ColumnValue) string {
	renderedColumns := make([]string, len(columns))
	for i, column := range columns {
		renderedColumns[i] = column.String()
	}
	return strings.Join(renderedColumns, ", ")
}
