package mathresolver

import (
	"strings"
)

// ============================================================
// Measure pass (bottom-up)
// ============================================================

func (b *Box) measure() {
	for _, c := range b.Children {
		c.measure()
	}
	switch b.Category {
	case CategoryLeaf:
		b.Length, b.Height, b.Baseline = runeLen(b.Text), 1, 0
	case CategoryDiv:
		num, den := b.Children[0], b.Children[1]
		b.Length = max(num.Length, den.Length)
		b.Height = num.Height + 1 + den.Height
		b.Baseline = num.Height
	case CategoryPow:
		b.Length, b.Height = 0, 0
		for _, c := range b.Children {
			b.Length += c.Length
			b.Height += c.Height
		}
		b.Baseline = b.Height - b.Children[0].Height + b.Children[0].Baseline
	case CategoryLog:
		arg, base := b.Children[0], b.Children[1]
		label := max(0, arg.Baseline)
		b.Length = runeLen(b.Op.Display) + base.Length + 1 + arg.Length + 1
		b.Height = max(label+arg.Height-arg.Baseline, label+1+base.Height)
		b.Baseline = label
	case CategoryMinus, CategorySetNot:
		if len(b.Children) == 1 {
			c := b.Children[0]
			b.Length = runeLen(b.Op.Display) + c.Length
			b.Height, b.Baseline = c.Height, c.Baseline
			break
		}
		b.measureChain()
	case CategoryRightUnary:
		c := b.Children[0]
		b.Length = c.Length + runeLen(b.Op.Display)
		b.Height, b.Baseline = c.Height, c.Baseline
	case CategoryFunction:
		b.Length = runeLen(b.Op.Display) + 2
		for i, c := range b.Children {
			if i > 0 {
				b.Length++
			}
			b.Length += c.Length
		}
		b.Height, b.Baseline = align(b.Children)
	default:
		b.measureChain()
	}
	b.Length += 2 * bracketWidth(b)
}

func (b *Box) measureChain() {
	sep := runeLen(b.Op.Display)
	b.Length = 0
	for i, c := range b.Children {
		if i > 0 && !omitsSeparator(b, c) {
			b.Length += sep
		}
		b.Length += c.Length
	}
	b.Height, b.Baseline = align(b.Children)
}

// align returns the height and baseline of a row of boxes that share one
// baseline row.
func align(children []*Box) (height, baseline int) {
	above, below := 0, 1
	for _, c := range children {
		above = max(above, c.Baseline)
		below = max(below, c.Height-c.Baseline)
	}
	return above + below, above
}

// ============================================================
// Place pass (top-down)
// ============================================================

func (b *Box) place(leftTop Point) {
	b.LeftTop = leftTop
	b.RightBottom = Point{X: leftTop.X + b.Length - 1, Y: leftTop.Y + b.Height - 1}
	x := leftTop.X + bracketWidth(b)
	y := leftTop.Y
	switch b.Category {
	case CategoryLeaf:
	case CategoryDiv:
		num, den := b.Children[0], b.Children[1]
		bar := b.barLength()
		num.place(Point{X: x + centered(bar, num.Length), Y: y})
		den.place(Point{X: x + centered(bar, den.Length), Y: y + num.Height + 1})
	case CategoryPow:
		top := y + b.Height
		for _, c := range b.Children {
			top -= c.Height
			c.place(Point{X: x, Y: top})
			x += c.Length
		}
	case CategoryLog:
		arg, base := b.Children[0], b.Children[1]
		x += runeLen(b.Op.Display)
		base.place(Point{X: x, Y: y + b.Baseline + 1})
		x += base.Length + 1
		arg.place(Point{X: x, Y: y + b.Baseline - arg.Baseline})
	case CategoryMinus, CategorySetNot:
		if len(b.Children) == 1 {
			c := b.Children[0]
			c.place(Point{X: x + runeLen(b.Op.Display), Y: y})
			break
		}
		b.placeChain(x, y)
	case CategoryRightUnary:
		b.Children[0].place(Point{X: x, Y: y})
	case CategoryFunction:
		x += runeLen(b.Op.Display) + 1
		for _, c := range b.Children {
			c.place(Point{X: x, Y: y + b.Baseline - c.Baseline})
			x += c.Length + 1
		}
	default:
		b.placeChain(x, y)
	}
}

func (b *Box) placeChain(x, y int) {
	sep := runeLen(b.Op.Display)
	for i, c := range b.Children {
		if i > 0 && !omitsSeparator(b, c) {
			x += sep
		}
		c.place(Point{X: x, Y: y + b.Baseline - c.Baseline})
		x += c.Length
	}
}

// centered returns the offset that centers a block of width n over width
// total, leaning right when the slack is odd.
func centered(total, n int) int { return (total - n + 1) / 2 }

func (b *Box) barLength() int { return b.Length - 2*bracketWidth(b) }

// bracketRow is the row parentheses are drawn on. Fractions put them at
// their vertical middle rather than on the bar.
func (b *Box) bracketRow() int {
	if b.Category == CategoryDiv {
		return b.LeftTop.Y + b.Height/2
	}
	return b.BaselineRow()
}

// ============================================================
// Flatten pass
// ============================================================

type flattener struct {
	canvas   *canvas
	measurer Measurer
	spans    []Span
}

func (f *flattener) flatten(b *Box) {
	if b.Brackets {
		row := b.bracketRow()
		f.canvas.put(b.LeftTop.X, row, "(")
		f.canvas.put(b.RightBottom.X, row, ")")
	}
	x := b.LeftTop.X + bracketWidth(b)
	row := b.BaselineRow()
	switch b.Category {
	case CategoryLeaf:
		f.canvas.put(x, row, b.Text)
		if b.Substituted {
			f.spans = append(f.spans, Span{
				Row:   row,
				Start: x,
				End:   x + runeLen(b.Text),
				Scale: scaleFactor(f.measurer, b.Text),
			})
		}
	case CategoryDiv:
		f.canvas.put(x, row, strings.Repeat(barGlyph(b.Op), b.barLength()))
	case CategoryLog:
		arg := b.Children[0]
		f.canvas.put(x, row, b.Op.Display)
		f.canvas.put(arg.LeftTop.X-1, row, "(")
		f.canvas.put(arg.RightBottom.X+1, row, ")")
	case CategoryMinus, CategorySetNot:
		if len(b.Children) == 1 {
			f.canvas.put(x, row, b.Op.Display)
			break
		}
		f.separators(b)
	case CategoryRightUnary:
		f.canvas.put(b.Children[0].RightBottom.X+1, row, b.Op.Display)
	case CategoryFunction:
		f.canvas.put(x, row, b.Op.Display+"(")
		for i, c := range b.Children {
			if i > 0 {
				f.canvas.put(c.LeftTop.X-1, row, ",")
			}
		}
		f.canvas.put(b.RightBottom.X-bracketWidth(b), row, ")")
	case CategoryPow:
	default:
		f.separators(b)
	}
	for _, c := range b.Children {
		f.flatten(c)
	}
}

func (f *flattener) separators(b *Box) {
	sep := runeLen(b.Op.Display)
	for i, c := range b.Children {
		if i > 0 && !omitsSeparator(b, c) {
			f.canvas.put(c.LeftTop.X-sep, b.BaselineRow(), b.Op.Display)
		}
	}
}

// barGlyph returns the single rune drawn repeatedly as a fraction bar.
func barGlyph(op Operation) string {
	if runeLen(op.Display) == 1 {
		return op.Display
	}
	return "—"
}
