package mathresolver

import (
	"fmt"
	"unicode/utf8"
)

// ============================================================
// Layout boxes
// ============================================================

// Point is a cell coordinate: X is the column, Y the row.
type Point struct{ X, Y int }

// Box is one node of the layout tree. It mirrors the expression tree one
// to one; Category selects the geometry used by measure, place and flatten.
type Box struct {
	Category Category
	Op       Operation
	Origin   *Node
	// ID is the identifier of Origin, kept for callers that correlate
	// cells back to subexpressions.
	ID       int
	Children []*Box

	Length   int
	Height   int
	Baseline int
	Brackets bool

	// LeftTop and RightBottom are absolute and inclusive; they are only
	// meaningful after placement.
	LeftTop     Point
	RightBottom Point

	// Text is the display text of a leaf; Substituted reports that it
	// differs from the raw token.
	Text        string
	Substituted bool
}

// IsLeaf reports whether b lays out a variable or literal.
func (b *Box) IsLeaf() bool { return b.Category == CategoryLeaf }

// BaselineRow returns the absolute row of b's baseline.
func (b *Box) BaselineRow() int { return b.LeftTop.Y + b.Baseline }

// Contains reports whether the cell lies inside b.
func (b *Box) Contains(row, col int) bool {
	return row >= b.LeftTop.Y && row <= b.RightBottom.Y && col >= b.LeftTop.X && col <= b.RightBottom.X
}

// Walk calls fn for b and every descendant in pre-order.
func (b *Box) Walk(fn func(*Box)) {
	fn(b)
	for _, c := range b.Children {
		c.Walk(fn)
	}
}

// ============================================================
// Tree construction and bracket decision
// ============================================================

type builder struct {
	catalog *Catalog
	style   Style
	domain  Domain
}

func (bd *builder) build(n, parent *Node, brackets bool) (*Box, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil node", ErrNothingToRender)
	}
	if n.Kind == KindVariable {
		if n.Value == "" {
			return nil, fmt.Errorf("%w: empty leaf (id %d)", ErrNothingToRender, n.ID)
		}
		text, sub := Substitute(n.Value, parent != nil, bd.style, bd.domain)
		return &Box{
			Category:    CategoryLeaf,
			Origin:      n,
			ID:          n.ID,
			Text:        text,
			Substituted: sub,
		}, nil
	}

	op := bd.catalog.Lookup(n.Value)
	box := &Box{Category: op.Category, Op: op, Origin: n, ID: n.ID, Brackets: brackets}
	if err := checkArity(box); err != nil {
		return nil, err
	}
	for i, c := range n.Children {
		child, err := bd.build(c, n, bd.needBrackets(box, i, c))
		if err != nil {
			return nil, err
		}
		box.Children = append(box.Children, child)
	}
	return box, nil
}

// checkArity rejects operator nodes whose children cannot be laid out by
// their category. A one-argument log is drawn as a plain call.
func checkArity(b *Box) error {
	n := len(b.Origin.Children)
	bad := false
	switch b.Category {
	case CategoryDiv:
		bad = n != 2
	case CategoryPow:
		bad = n < 2
	case CategoryLog:
		switch n {
		case 1:
			b.Category = CategoryFunction
		case 2:
		default:
			bad = true
		}
	case CategorySetNot, CategoryRightUnary:
		bad = n != 1
	case CategoryPlus, CategoryMult, CategoryMinus,
		CategorySetAnd, CategorySetOr, CategorySetMinus, CategorySetImplic:
		bad = n == 0
	}
	if bad {
		return fmt.Errorf("%w: %q (id %d) cannot take %d operands", ErrNothingToRender, b.Op.Name, b.Origin.ID, n)
	}
	return nil
}

// needBrackets decides whether the child at index pos of parent is
// wrapped in parentheses. Only operator children with a priority are ever
// bracketed; by default they are when they bind no tighter than parent.
func (bd *builder) needBrackets(parent *Box, pos int, child *Node) bool {
	p := priorityOf(bd.catalog, child)
	if p == NoPriority {
		return false
	}
	cop := bd.catalog.Lookup(child.Value)
	switch parent.Category {
	case CategoryDiv, CategoryLog, CategoryFunction:
		return false
	case CategoryPlus:
		if isUnaryMinus(cop, child) {
			return false
		}
	case CategoryMinus:
		if len(parent.Origin.Children) > 1 {
			additive := bd.additivePriority(parent)
			if pos == 0 {
				return p < additive
			}
			return p <= additive || isUnaryMinus(cop, child)
		}
	case CategoryPow:
		// Raised powers and logs delimit themselves.
		if pos > 0 && (cop.Category == CategoryPow || cop.Category == CategoryLog) {
			return false
		}
	}
	return p <= parent.Op.Priority
}

func (bd *builder) additivePriority(sub *Box) int {
	if plus := bd.catalog.Lookup("+"); plus.IsOperator() && plus.Category == CategoryPlus {
		return plus.Priority
	}
	return sub.Op.Priority
}

func isUnaryMinus(op Operation, n *Node) bool {
	return op.Category == CategoryMinus && len(n.Children) == 1
}

// omitsSeparator reports that child carries its own sign inside a sum.
func omitsSeparator(parent, child *Box) bool {
	return parent.Category == CategoryPlus && child.Category == CategoryMinus &&
		len(child.Children) == 1 && !child.Brackets
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }

func bracketWidth(b *Box) int {
	if b.Brackets {
		return 1
	}
	return 0
}
