package widgets

import (
	"fmt"
	"strings"

	"cellkit/cell"
	"cellkit/flex"
	"cellkit/ui"

	"github.com/gdamore/tcell/v2"
)

// Spacer takes the free space along its parent's axis and paints it with
// Fill.
type Spacer struct {
	ui.Base
	Fill tcell.Style
}

func NewSpacer() *Spacer {
	style := flex.DefaultStyle()
	style.FlexGrow = 1
	style.FlexBasis = flex.Pt(0)
	return &Spacer{Base: ui.NewBase(style), Fill: tcell.StyleDefault}
}

// FixedSpacer is a blank block of the given size.
func FixedSpacer(width, height float64) *Spacer {
	return &Spacer{Base: ui.NewBase(fixedStyle(width, height)), Fill: tcell.StyleDefault}
}

func (s *Spacer) Draw(buf *cell.Buffer, node ui.Node) []ui.Cmd {
	if s.Fill == tcell.StyleDefault {
		return nil
	}
	x, y, width, height := node.Rect().Round()
	for j := y; j < y+height; j++ {
		for i := x; i < x+width; i++ {
			buf.SetCell(i, j, cell.Cell{Symbol: " ", Style: s.Fill})
		}
	}
	return nil
}

func (s *Spacer) String() string { return toString(s) }

func (s *Spacer) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sSpacer(%s)\n", offset, s.Style())
}
