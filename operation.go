package mathresolver

import (
	"fmt"
	"sort"
	"strings"
)

// ============================================================
// Operation catalog
// ============================================================

// Category selects the layout geometry of an operator node.
type Category int

const (
	CategoryFunction Category = iota
	CategoryDiv
	CategoryPow
	CategoryPlus
	CategoryMult
	CategoryLog
	CategoryMinus
	CategorySetAnd
	CategorySetOr
	CategorySetMinus
	CategorySetNot
	CategorySetImplic
	CategoryRightUnary
	// CategoryLeaf is used only by layout boxes of variables and literals.
	CategoryLeaf
)

var categoryNames = map[Category]string{
	CategoryFunction:   "function",
	CategoryDiv:        "div",
	CategoryPow:        "pow",
	CategoryPlus:       "plus",
	CategoryMult:       "mult",
	CategoryLog:        "log",
	CategoryMinus:      "minus",
	CategorySetAnd:     "set_and",
	CategorySetOr:      "set_or",
	CategorySetMinus:   "set_minus",
	CategorySetNot:     "set_not",
	CategorySetImplic:  "set_implic",
	CategoryRightUnary: "right_unary",
	CategoryLeaf:       "leaf",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// ParseCategory is the inverse of Category.String.
func ParseCategory(s string) (Category, error) {
	for c, name := range categoryNames {
		if name == strings.ToLower(strings.TrimSpace(s)) && c != CategoryLeaf {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// NoPriority marks tokens that are not operators.
const NoPriority = -1

// Operation describes how an operator token is laid out.
type Operation struct {
	Name     string
	Display  string
	Priority int
	Category Category
}

// IsOperator reports whether the operation has a priority.
func (o Operation) IsOperator() bool { return o.Priority != NoPriority }

// Catalog maps operator tokens to operations. A Catalog is immutable once
// built and safe for concurrent use.
type Catalog struct {
	ops     map[string]Operation
	entries []CatalogEntry
}

// CatalogEntry is one row of the operator table: every token in Tokens
// resolves to the same display, priority and category.
type CatalogEntry struct {
	Tokens   []string `yaml:"tokens" json:"tokens"`
	Category string   `yaml:"category" json:"category"`
	Display  string   `yaml:"display,omitempty" json:"display,omitempty"`
	Priority int      `yaml:"priority" json:"priority"`
}

var defaultEntries = []CatalogEntry{
	{Tokens: []string{"+"}, Category: "plus", Display: "+", Priority: 0},
	{Tokens: []string{"-"}, Category: "minus", Display: "-", Priority: 1},
	{Tokens: []string{"*"}, Category: "mult", Display: "*", Priority: 2},
	{Tokens: []string{"/"}, Category: "div", Display: "—", Priority: 3},
	{Tokens: []string{"^"}, Category: "pow", Display: "^", Priority: 4},
	{Tokens: []string{"log"}, Category: "log", Display: "log", Priority: 4},
	{Tokens: []string{"factorial", "!"}, Category: "right_unary", Display: "!", Priority: 5},
	{Tokens: []string{"implic", "->"}, Category: "set_implic", Display: "→", Priority: 3},
	{Tokens: []string{"and", "&"}, Category: "set_and", Display: "∧", Priority: 2},
	{Tokens: []string{"or", "|"}, Category: "set_or", Display: "∨", Priority: 2},
	{Tokens: []string{"set-", `\`}, Category: "set_minus", Display: "−", Priority: 2},
	{Tokens: []string{"not", "~"}, Category: "set_not", Display: "¬", Priority: 1},
}

var defaultCatalog = mustCatalog(defaultEntries)

// DefaultCatalog returns the built-in operator table.
func DefaultCatalog() *Catalog { return defaultCatalog }

// NewCatalog builds a catalog from a complete operator table.
func NewCatalog(entries []CatalogEntry) (*Catalog, error) {
	c := &Catalog{ops: map[string]Operation{}}
	for i, e := range entries {
		if len(e.Tokens) == 0 {
			return nil, fmt.Errorf("catalog entry %d: no tokens", i)
		}
		cat, err := ParseCategory(e.Category)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		if e.Priority < 0 {
			return nil, fmt.Errorf("catalog entry %d: priority must be >= 0, got %d", i, e.Priority)
		}
		for _, tok := range e.Tokens {
			if tok == "" {
				return nil, fmt.Errorf("catalog entry %d: empty token", i)
			}
			if _, dup := c.ops[tok]; dup {
				return nil, fmt.Errorf("catalog entry %d: duplicate token %q", i, tok)
			}
			display := e.Display
			if display == "" {
				display = tok
			}
			c.ops[tok] = Operation{Name: tok, Display: display, Priority: e.Priority, Category: cat}
		}
		cp := e
		cp.Tokens = append([]string(nil), e.Tokens...)
		c.entries = append(c.entries, cp)
	}
	return c, nil
}

func mustCatalog(entries []CatalogEntry) *Catalog {
	c, err := NewCatalog(entries)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the operation for token. Unknown tokens are generic
// functions with NoPriority.
func (c *Catalog) Lookup(token string) Operation {
	if op, ok := c.ops[token]; ok {
		return op
	}
	return Operation{Name: token, Display: token, Priority: NoPriority, Category: CategoryFunction}
}

// Priority returns the priority of token, or NoPriority.
func (c *Catalog) Priority(token string) int { return c.Lookup(token).Priority }

// Entries returns a copy of the operator table.
func (c *Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, len(c.entries))
	for i, e := range c.entries {
		out[i] = e
		out[i].Tokens = append([]string(nil), e.Tokens...)
	}
	return out
}

// Tokens returns every known token in sorted order.
func (c *Catalog) Tokens() []string {
	out := make([]string, 0, len(c.ops))
	for tok := range c.ops {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// LookupOperation consults the default catalog.
func LookupOperation(token string) Operation { return defaultCatalog.Lookup(token) }

// priorityOf returns the priority of an operator node in the given catalog.
// Leaves are never operators.
func priorityOf(c *Catalog, n *Node) int {
	if n.Kind != KindFunction {
		return NoPriority
	}
	return c.Priority(n.Value)
}
