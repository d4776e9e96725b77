package statement

import "github.com/hauke96/sigolo/v2"

// JoinKey is built from the names of one USING list.
type JoinKey interface {
	String() string
	Print(indent int)
}

type SingleColumn struct {
	name string
}

func NewSingleColumn(name string) *SingleColumn {
	return &SingleColumn{name: name}
}

func (k *SingleColumn) GetName() string {
	return k.name
}

func (k *SingleColumn) String() string {
	return escapeName(k.name)
}

func (k *SingleColumn) Print(indent int) {
	sigolo.Debugf("%sSingleColumn: %s", spacing(indent), k.name)
}

type ColumnPair struct {
	left  string
	right string
}

func NewColumnPair(left string, right string) *ColumnPair {
	return &ColumnPair{
		left:  left,
		right: right,
	}
}

func (k *ColumnPair) GetLeft() string {
	return k.left
}

func (k *ColumnPair) GetRight() string {
	return k.right
}

func (k *ColumnPair) String() string {
	return escapeName(k.left) + ", " + escapeName(k.right)
}

func (k *ColumnPair) Print(indent int) {
	sigolo.Debugf("%sColumnPair: %s, %s", spacing(indent), k.left, k.right)
}
