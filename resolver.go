package mathresolver

import (
	"fmt"
	"io"
	"log"
)

// ============================================================
// Resolver
// ============================================================

// Resolver lays out expression trees. The zero value is not usable; build
// one with NewResolver. A Resolver holds no mutable state and may be
// shared between goroutines.
type Resolver struct {
	catalog  *Catalog
	measurer Measurer
	style    Style
	domain   Domain
	logger   *log.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithStyle selects the variable style.
func WithStyle(s Style) Option { return func(r *Resolver) { r.style = s } }

// WithDomain selects the task domain.
func WithDomain(d Domain) Option { return func(r *Resolver) { r.domain = d } }

// WithCatalog replaces the operator table.
func WithCatalog(c *Catalog) Option {
	return func(r *Resolver) {
		if c != nil {
			r.catalog = c
		}
	}
}

// WithMeasurer sets how span scale factors are measured.
func WithMeasurer(m Measurer) Option {
	return func(r *Resolver) {
		if m != nil {
			r.measurer = m
		}
	}
}

// WithLogger receives a line for every tree that could not be laid out.
func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResolver returns a resolver using the default catalog, the default
// style, the algebra domain and terminal cell widths.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		catalog:  defaultCatalog,
		measurer: CellMeasurer{},
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Style returns the configured variable style.
func (r *Resolver) Style() Style { return r.style }

// Domain returns the configured task domain.
func (r *Resolver) Domain() Domain { return r.domain }

// Catalog returns the operator table in use.
func (r *Resolver) Catalog() *Catalog { return r.catalog }

// Resolve lays out the expression held by the wrapped tree root. A nil
// root, a root without children or a malformed subtree yields an empty
// result and an error wrapping ErrNothingToRender. The tree is not
// modified.
func (r *Resolver) Resolve(root *Node) (*Result, error) {
	expr := root.Expression()
	if expr == nil {
		r.logger.Printf("error during building tree: no expression")
		return &Result{}, fmt.Errorf("%w: tree has no expression", ErrNothingToRender)
	}
	bd := &builder{catalog: r.catalog, style: r.style, domain: r.domain}
	tree, err := bd.build(expr, root, false)
	if err != nil {
		r.logger.Printf("error during building tree: %v", err)
		return &Result{}, err
	}
	tree.measure()
	tree.place(Point{})

	f := &flattener{canvas: newCanvas(tree.Length, tree.Height), measurer: r.measurer}
	f.flatten(tree)
	return &Result{
		Matrix:   f.canvas.matrix(),
		Spans:    f.spans,
		Tree:     tree,
		Baseline: tree.Baseline,
	}, nil
}

// ResolveToPlain lays out root with a resolver built from opts.
func ResolveToPlain(root *Node, opts ...Option) (*Result, error) {
	return NewResolver(opts...).Resolve(root)
}

// ResolveStructure parses a structure string and lays it out.
func (r *Resolver) ResolveStructure(s string) (*Result, error) {
	root, err := ParseStructure(s)
	if err != nil {
		return &Result{}, fmt.Errorf("%w: %w", ErrNothingToRender, err)
	}
	return r.Resolve(root)
}

// PrettyPrint renders root with default settings, or returns the error
// text when it cannot be rendered.
func PrettyPrint(root *Node) string {
	res, err := ResolveToPlain(root)
	if err != nil {
		return err.Error() + "\n"
	}
	return res.String()
}
