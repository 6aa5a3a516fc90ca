package tree

import "strings"

// Kind identifies the variant of a Tree.
type Kind int

const (
	KindEmpty Kind = iota
	KindLeaf
	KindNode
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindLeaf:
		return "Leaf"
	case KindNode:
		return "Node"
	}
	return "Kind(?)"
}

// Tree is a rooted tree. Implementations are Empty, Leaf and Node; the
// interface is closed by an unexported method.
//
// Trees are immutable values: no function in this package modifies a tree
// after constructing it, and callers must not modify Node.Children.
type Tree interface {
	Kind() Kind
	String() string
	isTree()
}

// Empty is the tree with no nodes.
type Empty struct{}

// Leaf is a single node without children.
type Leaf struct{}

// Node is a root with ordered children.
type Node struct {
	Children []Tree
}

func (Empty) Kind() Kind { return KindEmpty }
func (Leaf) Kind() Kind  { return KindLeaf }
func (Node) Kind() Kind  { return KindNode }

func (Empty) isTree() {}
func (Leaf) isTree()  {}
func (Node) isTree()  {}

func (Empty) String() string { return "Empty" }
func (Leaf) String() string  { return "Leaf" }

// String renders the node structurally, e.g. "Node[Empty Leaf]".
func (n Node) String() string {
	var b strings.Builder
	b.WriteString("Node[")
	for i, c := range n.Children {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(str(c))
	}
	b.WriteByte(']')
	return b.String()
}

func str(t Tree) string {
	if t == nil {
		return "Empty"
	}
	return t.String()
}

// NewNode builds a node owning a copy of children. With no children it
// returns Leaf{}.
func NewNode(children ...Tree) Tree {
	if len(children) == 0 {
		return Leaf{}
	}
	owned := make([]Tree, len(children))
	copy(owned, children)
	return Node{Children: owned}
}

// Clone returns a deep copy of t. A nil tree clones to Empty.
func Clone(t Tree) Tree {
	n, ok := t.(Node)
	if !ok {
		if t == nil {
			return Empty{}
		}
		return t
	}
	children := make([]Tree, len(n.Children))
	for i, c := range n.Children {
		children[i] = Clone(c)
	}
	return Node{Children: children}
}

// Equal reports whether a and b have the same variants in the same order.
// nil is equal to Empty.
func Equal(a, b Tree) bool {
	if a == nil {
		a = Empty{}
	}
	if b == nil {
		b = Empty{}
	}
	if a.Kind() != b.Kind() {
		return false
	}
	na, ok := a.(Node)
	if !ok {
		return true
	}
	nb := b.(Node)
	if len(na.Children) != len(nb.Children) {
		return false
	}
	for i := range na.Children {
		if !Equal(na.Children[i], nb.Children[i]) {
			return false
		}
	}
	return true
}

// Size returns the number of nodes: 0 for Empty, 1 for Leaf.
func Size(t Tree) int {
	switch t := t.(type) {
	case Leaf:
		return 1
	case Node:
		n := 1
		for _, c := range t.Children {
			n += Size(c)
		}
		return n
	}
	return 0
}

// Depth returns the number of nodes on the longest root-to-leaf path.
func Depth(t Tree) int {
	switch t := t.(type) {
	case Leaf:
		return 1
	case Node:
		d := 0
		for _, c := range t.Children {
			d = max(d, Depth(c))
		}
		return d + 1
	}
	return 0
}
