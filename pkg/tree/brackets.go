package tree

import (
	"strings"

	"github.com/matzehuels/cosmos/pkg/errors"
)

const (
	openBracket  = '('
	closeBracket = ')'
)

// ToBrackets renders t as bracket text: Empty is "", Leaf is "()", and a
// Node is "(" followed by its children's text and ")".
func ToBrackets(t Tree) string {
	var b strings.Builder
	writeBrackets(&b, t)
	return b.String()
}

func writeBrackets(b *strings.Builder, t Tree) {
	switch t := t.(type) {
	case Leaf:
		b.WriteString("()")
	case Node:
		b.WriteByte(openBracket)
		for _, c := range t.Children {
			writeBrackets(b, c)
		}
		b.WriteByte(closeBracket)
	}
}

// FromBrackets parses a Dyck word as the children of an implicit root.
// The empty word is a root alone (Leaf); every group without inner groups is
// a Leaf; all other groups are Nodes. It fails with MALFORMED_INPUT when s
// contains anything but brackets or is not balanced.
func FromBrackets(s string) (Tree, error) {
	if err := checkBalanced(s); err != nil {
		return nil, err
	}
	p := parser{s: s}
	return group(p.siblings()), nil
}

// ParseRooted parses text that includes the root's own brackets, the form
// produced by ToBrackets. The empty string is Empty; anything else must be
// a single balanced group.
func ParseRooted(s string) (Tree, error) {
	if s == "" {
		return Empty{}, nil
	}
	if err := checkBalanced(s); err != nil {
		return nil, err
	}
	depth := 0
	for i := 0; i < len(s)-1; i++ {
		if s[i] == openBracket {
			depth++
		} else {
			depth--
		}
		if depth == 0 {
			return nil, errors.Malformed(i+1, "more than one root group")
		}
	}
	return FromBrackets(s[1 : len(s)-1])
}

// checkBalanced verifies the alphabet, that no prefix closes more groups
// than it opened, and that the totals match.
func checkBalanced(s string) error {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case openBracket:
			depth++
		case closeBracket:
			depth--
			if depth < 0 {
				return errors.Malformed(i, "unmatched %q", closeBracket)
			}
		default:
			return errors.Malformed(i, "unexpected byte %q", s[i])
		}
	}
	if depth != 0 {
		return errors.Malformed(len(s), "%d unclosed %q", depth, openBracket)
	}
	return nil
}

// parser is a recursive-descent reader over balanced input.
type parser struct {
	s   string
	pos int
}

// siblings reads consecutive groups until a closing bracket or the end.
func (p *parser) siblings() []Tree {
	var out []Tree
	for p.pos < len(p.s) && p.s[p.pos] == openBracket {
		p.pos++
		children := p.siblings()
		p.pos++ // matching close, guaranteed by checkBalanced
		out = append(out, group(children))
	}
	return out
}

func group(children []Tree) Tree {
	if len(children) == 0 {
		return Leaf{}
	}
	return Node{Children: children}
}
