package mathresolver

import (
	"errors"
	"strings"
)

// ============================================================
// Errors
// ============================================================

var (
	// ErrNothingToRender reports a missing or malformed expression tree.
	ErrNothingToRender = errors.New("nothing to render")
	// ErrUnrenderable reports layouts that cannot be shown in the
	// requested form, such as a multi-line side of a single-line rule.
	ErrUnrenderable = errors.New("unrenderable")
)

// Unrenderable is the text returned together with ErrUnrenderable.
const Unrenderable = "unrenderable"

// ============================================================
// Matrix and spans
// ============================================================

// Matrix is a block of equal-width text rows.
type Matrix []string

// String joins the rows, terminating each with a newline.
func (m Matrix) String() string {
	var sb strings.Builder
	for _, row := range m {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Height returns the number of rows.
func (m Matrix) Height() int { return len(m) }

// Width returns the rune width of the rows.
func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return runeLen(m[0])
}

// Span marks the runes [Start, End) of Row as a substituted glyph that
// should be stretched horizontally by Scale when drawn.
type Span struct {
	Row   int     `json:"row"`
	Start int     `json:"start"`
	End   int     `json:"end"`
	Scale float64 `json:"scale"`
}

// Result is the outcome of one render.
type Result struct {
	Matrix Matrix
	Spans  []Span
	// Tree is the laid-out expression; nil for empty results and for
	// composed rules.
	Tree *Box
	// Baseline is the row shared by the top-level operator.
	Baseline int
}

// Empty reports whether nothing was rendered.
func (r *Result) Empty() bool { return r == nil || len(r.Matrix) == 0 }

// String returns the canonical text form of the matrix.
func (r *Result) String() string {
	if r == nil {
		return ""
	}
	return r.Matrix.String()
}

// canvas is the row buffer written during flattening.
type canvas struct {
	rows [][]rune
}

func newCanvas(width, height int) *canvas {
	rows := make([][]rune, height)
	for i := range rows {
		row := make([]rune, width)
		for j := range row {
			row[j] = ' '
		}
		rows[i] = row
	}
	return &canvas{rows: rows}
}

// put writes s starting at column x of row y, clipping at the edges.
func (c *canvas) put(x, y int, s string) {
	if y < 0 || y >= len(c.rows) {
		return
	}
	row := c.rows[y]
	for _, r := range s {
		if x >= 0 && x < len(row) {
			row[x] = r
		}
		x++
	}
}

func (c *canvas) matrix() Matrix {
	m := make(Matrix, len(c.rows))
	for i, row := range c.rows {
		m[i] = string(row)
	}
	return m
}
