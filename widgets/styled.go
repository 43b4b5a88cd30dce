package widgets

import (
	"fmt"
	"strings"

	"cellkit/cell"
	"cellkit/flex"
	"cellkit/ui"

	"github.com/gdamore/tcell/v2"
)

// Styled wraps one widget and paints its area with a colour scheme. Colours
// the child sets itself win; attributes are combined.
type Styled struct {
	ui.Base
	scheme tcell.Style
	widget ui.Widget
}

func NewStyled(scheme tcell.Style, widget ui.Widget) *Styled {
	return &Styled{Base: ui.NewBase(flex.DefaultStyle()), scheme: scheme, widget: widget}
}

// Style follows the wrapped widget, so the painted area tracks it when the
// widget resizes itself.
func (s *Styled) Style() flex.Style {
	style := s.widget.Style()
	style.Direction = flex.Column
	return style
}

func (s *Styled) SetSize(width, height *float64) {
	s.widget.SetSize(width, height)
}

func (s *Styled) Children() []ui.Widget {
	return []ui.Widget{s.widget}
}

func (s *Styled) Draw(buf *cell.Buffer, node ui.Node) []ui.Cmd {
	x, y, width, height := node.Rect().Round()
	for j := y; j < y+height; j++ {
		for i := x; i < x+width; i++ {
			buf.SetCell(i, j, cell.Cell{Symbol: " ", Style: s.scheme})
		}
	}
	childNode, ok := node.Child(0)
	if !ok {
		return nil
	}
	cmds := s.widget.Draw(buf, childNode)

	schemeFG, schemeBG, schemeAttrs := s.scheme.Decompose()
	for j := y; j < y+height; j++ {
		for i := x; i < x+width; i++ {
			c := buf.Get(i, j)
			fg, bg, attrs := c.Style.Decompose()
			if fg == tcell.ColorDefault {
				fg = schemeFG
			}
			if bg == tcell.ColorDefault {
				bg = schemeBG
			}
			c.Style = tcell.StyleDefault.Foreground(fg).Background(bg).Attributes(attrs | schemeAttrs)
			buf.SetCell(i, j, c)
		}
	}
	return cmds
}

func (s *Styled) String() string { return toString(s) }

func (s *Styled) ToString(buf *strings.Builder, offset string) {
	fg, bg, attrs := s.scheme.Decompose()
	fmt.Fprintf(buf, "%sStyled(FG: %v, BG: %v, Attrs: %d)\n", offset, fg, bg, attrs)
	childToString(buf, offset+"| ", s.widget)
}
