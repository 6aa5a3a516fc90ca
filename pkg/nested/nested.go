// Package nested builds the self-similar expression that describes a
// structural level: level L is L copies of level L-1, bottoming out at a
// single unit for levels 0 and 1.
//
//	nested.Render(nested.Build(3))  // [[[1],[1]],[[1],[1]],[[1],[1]]]
package nested

import (
	"strconv"
	"strings"
)

// Expr is one node of a nested expression. For Level >= 2 Children holds
// exactly Level structurally identical copies of Build(Level-1); for
// Level <= 1 it is empty.
type Expr struct {
	Level    int
	Children []Expr
}

// Build returns the expression for level.
func Build(level int) Expr {
	if level <= 1 {
		return Expr{Level: level}
	}
	child := Build(level - 1)
	children := make([]Expr, level)
	for i := range children {
		children[i] = child.clone()
	}
	return Expr{Level: level, Children: children}
}

func (e Expr) clone() Expr {
	if len(e.Children) == 0 {
		return Expr{Level: e.Level}
	}
	children := make([]Expr, len(e.Children))
	for i, c := range e.Children {
		children[i] = c.clone()
	}
	return Expr{Level: e.Level, Children: children}
}

// Render expands e fully: "[1]" for level <= 1, otherwise Level copies of
// the rendering one level down, comma-joined inside brackets.
func Render(e Expr) string {
	var b strings.Builder
	render(&b, e.Level)
	return b.String()
}

func render(b *strings.Builder, level int) {
	if level <= 1 {
		b.WriteString("[1]")
		return
	}
	b.WriteByte('[')
	for i := range level {
		if i > 0 {
			b.WriteByte(',')
		}
		render(b, level-1)
	}
	b.WriteByte(']')
}

// ToArray is the structural analogue of Render: []any{1} at the base case,
// otherwise Level elements each equal to ToArray(Build(Level-1)).
func ToArray(e Expr) []any {
	if e.Level <= 1 {
		return []any{1}
	}
	out := make([]any, e.Level)
	for i := range out {
		out[i] = ToArray(Expr{Level: e.Level - 1})
	}
	return out
}

// String returns the compact notation: "[L]" for an expression without
// children, otherwise "[L[c,c,...]]".
func (e Expr) String() string {
	var b strings.Builder
	e.write(&b)
	return b.String()
}

func (e Expr) write(b *strings.Builder) {
	b.WriteByte('[')
	b.WriteString(strconv.Itoa(e.Level))
	if len(e.Children) > 0 {
		b.WriteByte('[')
		for i, c := range e.Children {
			if i > 0 {
				b.WriteByte(',')
			}
			c.write(b)
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
}

// Leaves returns the number of units in the full rendering: L! for L >= 1,
// and 1 for L <= 1.
func (e Expr) Leaves() int {
	if len(e.Children) == 0 {
		return 1
	}
	n := 0
	for _, c := range e.Children {
		n += c.Leaves()
	}
	return n
}

// Depth returns the bracket nesting depth of the full rendering.
func (e Expr) Depth() int {
	if e.Level <= 1 {
		return 1
	}
	return e.Level
}
