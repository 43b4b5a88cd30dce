package cell

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
)

// Cell is one terminal character cell. Symbol holds a single grapheme
// cluster. Colors set to tcell.ColorDefault are treated as absent.
type Cell struct {
	Symbol string
	Style  tcell.Style
}

func New(symbol string) Cell {
	return Cell{Symbol: symbol, Style: tcell.StyleDefault}
}

func Empty() Cell {
	return New(" ")
}

func (c Cell) Foreground(color tcell.Color) Cell {
	c.Style = c.Style.Foreground(color)
	return c
}

func (c Cell) Background(color tcell.Color) Cell {
	c.Style = c.Style.Background(color)
	return c
}

func (c Cell) Attributes(attrs tcell.AttrMask) Cell {
	c.Style = c.Style.Attributes(attrs)
	return c
}

func (c Cell) String() string {
	fg, bg, attrs := c.Style.Decompose()
	return fmt.Sprintf("Cell{Symbol: %q, FG: %v, BG: %v, Attrs: %d}", c.Symbol, fg, bg, attrs)
}

var attrSequences = []struct {
	mask tcell.AttrMask
	seq  string
}{
	{tcell.AttrBold, termenv.BoldSeq},
	{tcell.AttrDim, termenv.FaintSeq},
	{tcell.AttrItalic, termenv.ItalicSeq},
	{tcell.AttrUnderline, termenv.UnderlineSeq},
	{tcell.AttrBlink, termenv.BlinkSeq},
	{tcell.AttrReverse, termenv.ReverseSeq},
	{tcell.AttrStrikeThrough, termenv.CrossOutSeq},
}

var resetSeq = termenv.CSI + termenv.ResetSeq + "m"

// render writes the style changes the cell needs, its glyph, and a reset so
// the next cell starts from the terminal default.
func (c Cell) render(buf *strings.Builder) {
	fg, bg, attrs := c.Style.Decompose()
	if seq, ok := colorSequence(bg, true); ok {
		buf.WriteString(termenv.CSI + seq + "m")
	}
	if seq, ok := colorSequence(fg, false); ok {
		buf.WriteString(termenv.CSI + seq + "m")
	}
	for _, attr := range attrSequences {
		if attrs&attr.mask == attr.mask {
			buf.WriteString(termenv.CSI + attr.seq + "m")
		}
	}
	buf.WriteString(c.Symbol)
	buf.WriteString(resetSeq)
}

func colorSequence(color tcell.Color, background bool) (string, bool) {
	if color == tcell.ColorDefault || color == tcell.ColorReset || !color.Valid() {
		return "", false
	}
	if color.IsRGB() {
		r, g, b := color.RGB()
		prefix := termenv.Foreground
		if background {
			prefix = termenv.Background
		}
		return fmt.Sprintf("%s;2;%d;%d;%d", prefix, r, g, b), true
	}
	return termenv.ANSI256Color(int(color - tcell.ColorValid)).Sequence(background), true
}
