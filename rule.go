package mathresolver

import (
	"strings"
)

// ============================================================
// Rules: from → to
// ============================================================

// RuleArrow separates the two sides of a rendered rule.
const RuleArrow = " → "

// GetRule renders a rule on one line. Both sides must be single-row
// layouts; otherwise Unrenderable is returned with ErrUnrenderable.
func GetRule(from, to *Result) (string, error) {
	if from.Empty() || to.Empty() {
		return "", ErrNothingToRender
	}
	if from.Matrix.Height() != 1 || to.Matrix.Height() != 1 {
		return Unrenderable, ErrUnrenderable
	}
	return from.Matrix[0] + RuleArrow + to.Matrix[0], nil
}

// JoinRule places two layouts side by side, aligned on their baselines,
// with RuleArrow on the shared baseline row. Spans of both sides are moved
// to their new cells. The result has no Tree.
func JoinRule(from, to *Result) (*Result, error) {
	if from.Empty() || to.Empty() {
		return &Result{}, ErrNothingToRender
	}
	above := max(from.Baseline, to.Baseline)
	below := max(from.Matrix.Height()-from.Baseline, to.Matrix.Height()-to.Baseline)
	height := above + below

	fromShift := above - from.Baseline
	toShift := above - to.Baseline
	fromW, arrowW := from.Matrix.Width(), runeLen(RuleArrow)

	rows := make(Matrix, height)
	for y := 0; y < height; y++ {
		var sb strings.Builder
		sb.WriteString(rowOrBlank(from.Matrix, y-fromShift))
		if y == above {
			sb.WriteString(RuleArrow)
		} else {
			sb.WriteString(strings.Repeat(" ", arrowW))
		}
		sb.WriteString(rowOrBlank(to.Matrix, y-toShift))
		rows[y] = sb.String()
	}

	spans := make([]Span, 0, len(from.Spans)+len(to.Spans))
	for _, s := range from.Spans {
		s.Row += fromShift
		spans = append(spans, s)
	}
	for _, s := range to.Spans {
		s.Row += toShift
		s.Start += fromW + arrowW
		s.End += fromW + arrowW
		spans = append(spans, s)
	}
	return &Result{Matrix: rows, Spans: spans, Baseline: above}, nil
}

func rowOrBlank(m Matrix, y int) string {
	if y < 0 || y >= len(m) {
		return strings.Repeat(" ", m.Width())
	}
	return m[y]
}
