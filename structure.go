package mathresolver

import (
	"fmt"
	"strings"
)

// ============================================================
// Structure strings: op(arg;arg;...)
// ============================================================

// SyntaxError reports a malformed structure string.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("structure string: %s at offset %d", e.Msg, e.Offset)
}

// ParseStructure parses a prefix structure string such as
// "(+(^(2;/(1;2));/(1;4)))" into a wrapped tree. The outer parentheses
// are optional. Identifiers are assigned in pre-order.
func ParseStructure(s string) (*Node, error) {
	p := &structParser{src: s}
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, &SyntaxError{Offset: p.pos, Msg: "empty input"}
	}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf("unexpected %q", p.src[p.pos])}
	}
	return Number(asRoot(n)), nil
}

// MustParseStructure is like ParseStructure but panics on error.
func MustParseStructure(s string) *Node {
	n, err := ParseStructure(s)
	if err != nil {
		panic(err)
	}
	return n
}

type structParser struct {
	src string
	pos int
}

func (p *structParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n') {
		p.pos++
	}
}

func (p *structParser) expr() (*Node, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && !strings.ContainsRune("();", rune(p.src[p.pos])) {
		p.pos++
	}
	name := strings.TrimSpace(p.src[start:p.pos])
	if p.pos >= len(p.src) || p.src[p.pos] != '(' {
		if name == "" {
			return nil, &SyntaxError{Offset: start, Msg: "empty operand"}
		}
		return V(name), nil
	}
	p.pos++ // (
	node := Op(name)
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == ')' {
		p.pos++
		return node, nil
	}
	for {
		child, err := p.expr()
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf("unclosed %q", name+"(")}
		}
		switch p.src[p.pos] {
		case ';':
			p.pos++
		case ')':
			p.pos++
			return node, nil
		default:
			return nil, &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf("unexpected %q", p.src[p.pos])}
		}
	}
}

func writeStructure(sb *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	sb.WriteString(n.Value)
	if n.Kind == KindVariable {
		return
	}
	sb.WriteByte('(')
	for i, c := range n.Children {
		if i > 0 {
			sb.WriteByte(';')
		}
		writeStructure(sb, c)
	}
	sb.WriteByte(')')
}
