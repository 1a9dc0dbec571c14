// Package mathresolver renders expression trees into fixed-width,
// multi-line character layouts: fractions with a bar, stacked exponents,
// subscripted logarithm bases, operator chains and set-theory operators.
//
// Design goals:
//   - Deterministic output: the same tree always yields the same matrix
//   - Column arithmetic in runes; visual width corrections are reported
//     separately as spans
//   - No shared mutable state: a Resolver may be used from many goroutines
//   - Embeddable in Go services, CLI tools, and agent backends
package mathresolver

import (
	"strings"
)

// ============================================================
// Expression tree
// ============================================================

// Kind distinguishes leaves from operator applications.
type Kind int

const (
	// KindVariable is a leaf: a variable name or a literal.
	KindVariable Kind = iota
	// KindFunction is an operator or function application.
	KindFunction
)

func (k Kind) String() string {
	if k == KindVariable {
		return "variable"
	}
	return "function"
}

// Node is one node of an expression tree. Trees are consumed read-only by
// the resolver; Parent is a non-owning back reference and may be nil.
type Node struct {
	Kind     Kind
	Value    string
	Children []*Node
	ID       int
	Parent   *Node
}

// V returns a leaf node.
func V(value string) *Node { return &Node{Kind: KindVariable, Value: value} }

// Op returns an operator node applied to children.
func Op(value string, children ...*Node) *Node {
	return &Node{Kind: KindFunction, Value: value, Children: children}
}

// Wrap returns a root node holding expr as its only child. The resolver
// expects wrapped trees; expr itself is not modified.
func Wrap(expr *Node) *Node {
	if expr == nil {
		return Op("")
	}
	return Op("", expr)
}

// Number assigns pre-order identifiers starting at 0 and sets parent links.
// It is meant for freshly built trees and returns root for chaining.
func Number(root *Node) *Node {
	next := 0
	var walk func(n, parent *Node)
	walk = func(n, parent *Node) {
		n.ID = next
		n.Parent = parent
		next++
		for _, c := range n.Children {
			walk(c, n)
		}
	}
	if root != nil {
		walk(root, nil)
	}
	return root
}

// IsLeaf reports whether n is a variable or literal.
func (n *Node) IsLeaf() bool { return n.Kind == KindVariable }

// Expression returns the expression held by a wrapped root, or nil.
func (n *Node) Expression() *Node {
	if n == nil || len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// Clone returns a deep copy of n with fresh parent links.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{Kind: n.Kind, Value: n.Value, ID: n.ID}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, ch := range n.Children {
			cc := ch.Clone()
			cc.Parent = c
			c.Children[i] = cc
		}
	}
	return c
}

// Equal reports structural equality, ignoring identifiers.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind || n.Value != other.Value || len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// Find returns the node with the given identifier, or nil.
func (n *Node) Find(id int) *Node {
	if n == nil {
		return nil
	}
	if n.ID == id {
		return n
	}
	for _, c := range n.Children {
		if f := c.Find(id); f != nil {
			return f
		}
	}
	return nil
}

// String returns the structure-string form of n.
func (n *Node) String() string {
	var sb strings.Builder
	writeStructure(&sb, n)
	return sb.String()
}
