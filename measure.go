package mathresolver

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// ============================================================
// Width measurement
// ============================================================

// Measurer reports the rendered width of a string in arbitrary units.
type Measurer interface {
	Width(s string) float64
}

// CellMeasurer measures terminal cells. Ambiguous-width runes such as
// Greek letters count as two cells when EastAsian is set.
type CellMeasurer struct {
	EastAsian bool
}

func (m CellMeasurer) Width(s string) float64 {
	c := runewidth.Condition{EastAsianWidth: m.EastAsian, StrictEmojiNeutral: true}
	return float64(c.StringWidth(s))
}

// FaceMeasurer measures advances in a font face. Faces are not safe for
// concurrent use, so measurers built by NewFaceMeasurer serialize calls.
type FaceMeasurer struct {
	Face font.Face
	mu   *sync.Mutex
}

// NewFaceMeasurer returns a measurer for face, or for Go Regular at 13px
// when face is nil. A fixed-advance face such as basicfont.Face7x13 gives
// every glyph the same width, so every span scale is 1.
func NewFaceMeasurer(face font.Face) FaceMeasurer {
	if face == nil {
		face = defaultFace()
	}
	return FaceMeasurer{Face: face, mu: new(sync.Mutex)}
}

func (m FaceMeasurer) Width(s string) float64 {
	face := m.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	if m.mu != nil {
		m.mu.Lock()
		defer m.mu.Unlock()
	}
	return float64(font.MeasureString(face, s)) / 64
}

var goRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// defaultFace falls back to basicfont.Face7x13 if the embedded font fails
// to load.
func defaultFace() font.Face {
	f, err := goRegular()
	if err != nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 13, DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// checkSymbol is the reference glyph a substituted leaf is scaled against.
const checkSymbol = "A"

// scaleFactor returns how much text must be stretched horizontally to
// occupy the same width as the same number of reference glyphs.
func scaleFactor(m Measurer, text string) float64 {
	w := m.Width(text)
	if w <= 0 {
		return 1
	}
	return m.Width(strings.Repeat(checkSymbol, utf8.RuneCountInString(text))) / w
}
