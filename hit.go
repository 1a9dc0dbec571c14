package mathresolver

// ============================================================
// Hit-testing
// ============================================================

// NodeAt returns the deepest box covering the cell, or nil.
func (r *Result) NodeAt(row, col int) *Box {
	if r == nil || r.Tree == nil || !r.Tree.Contains(row, col) {
		return nil
	}
	b := r.Tree
	for {
		next := (*Box)(nil)
		for _, c := range b.Children {
			if c.Contains(row, col) {
				next = c
				break
			}
		}
		if next == nil {
			return b
		}
		b = next
	}
}

// CellAt converts a rune offset into Matrix.String() to a cell. Offsets
// that fall on a line break or past the end are rejected.
func (r *Result) CellAt(offset int) (row, col int, ok bool) {
	if r.Empty() || offset < 0 {
		return 0, 0, false
	}
	stride := r.Matrix.Width() + 1
	row, col = offset/stride, offset%stride
	if row >= r.Matrix.Height() || col == stride-1 {
		return 0, 0, false
	}
	return row, col, true
}

// AtomAt returns the expression node rendered at a text offset. Cells
// holding brackets, separators or padding resolve to the enclosing
// operator node.
func (r *Result) AtomAt(offset int) *Node {
	row, col, ok := r.CellAt(offset)
	if !ok {
		return nil
	}
	if b := r.NodeAt(row, col); b != nil {
		return b.Origin
	}
	return nil
}
