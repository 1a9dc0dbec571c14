package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	mathresolver "github.com/njchilds90/mathresolver"
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	spanStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
)

// printer writes results either as the plain matrix text or, on a
// terminal, framed with substituted glyphs highlighted.
type printer struct {
	out    io.Writer
	styled bool
	spans  bool
}

func (p *printer) print(res *mathresolver.Result) {
	if p.styled {
		fmt.Fprintln(p.out, frameStyle.Render(strings.Join(highlight(res), "\n")))
	} else {
		fmt.Fprint(p.out, res.String())
	}
	if p.spans {
		for _, s := range res.Spans {
			fmt.Fprintf(p.out, "span row=%d cols=[%d,%d) scale=%.3f\n", s.Row, s.Start, s.End, s.Scale)
		}
	}
}

// highlight returns the matrix rows with every span styled.
func highlight(res *mathresolver.Result) []string {
	byRow := map[int][]mathresolver.Span{}
	for _, s := range res.Spans {
		byRow[s.Row] = append(byRow[s.Row], s)
	}
	rows := make([]string, len(res.Matrix))
	for y, row := range res.Matrix {
		spans := byRow[y]
		if len(spans) == 0 {
			rows[y] = row
			continue
		}
		slices.SortFunc(spans, func(a, b mathresolver.Span) int { return a.Start - b.Start })
		runes := []rune(row)
		var sb strings.Builder
		x := 0
		for _, s := range spans {
			if s.Start < x || s.End > len(runes) {
				continue
			}
			sb.WriteString(string(runes[x:s.Start]))
			sb.WriteString(spanStyle.Render(string(runes[s.Start:s.End])))
			x = s.End
		}
		sb.WriteString(string(runes[x:]))
		rows[y] = sb.String()
	}
	return rows
}
