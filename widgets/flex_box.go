package widgets

import (
	"fmt"
	"strings"

	"cellkit/cell"
	"cellkit/flex"
	"cellkit/ui"

	"github.com/gdamore/tcell/v2"
)

// FlexBox lays its children out along one axis.
type FlexBox struct {
	ui.Base
	children    []ui.Widget
	border      bool
	borderStyle tcell.Style
}

func NewFlexBox(children ...ui.Widget) *FlexBox {
	box := &FlexBox{Base: ui.NewBase(flex.DefaultStyle())}
	box.children = append(box.children, children...)
	return box
}

func Row(children ...ui.Widget) *FlexBox {
	return NewFlexBox(children...).Horizontal()
}

func Column(children ...ui.Widget) *FlexBox {
	return NewFlexBox(children...).Vertical()
}

func (b *FlexBox) Horizontal() *FlexBox {
	return b.direction(flex.Row)
}

func (b *FlexBox) Vertical() *FlexBox {
	return b.direction(flex.Column)
}

func (b *FlexBox) direction(direction flex.Direction) *FlexBox {
	style := b.Style()
	style.Direction = direction
	b.SetStyle(style)
	return b
}

func (b *FlexBox) SetFlexGrow(grow float64) *FlexBox {
	style := b.Style()
	style.FlexGrow = grow
	b.SetStyle(style)
	return b
}

// SetBorder frames the box. Children are laid out over the whole box, so
// callers usually pad with a Spacer.
func (b *FlexBox) SetBorder(border bool, style tcell.Style) *FlexBox {
	b.border, b.borderStyle = border, style
	return b
}

func (b *FlexBox) Children() []ui.Widget {
	return b.children
}

func (b *FlexBox) AddChild(child ui.Widget) bool {
	b.children = append(b.children, child)
	return true
}

func (b *FlexBox) Draw(buf *cell.Buffer, node ui.Node) []ui.Cmd {
	if b.border {
		x, y, width, height := node.Rect().Round()
		drawBorder(buf, x, y, width, height, lineBorder, b.borderStyle)
	}
	var cmds []ui.Cmd
	for i, child := range b.children {
		childNode, ok := node.Child(i)
		if !ok {
			continue
		}
		cmds = append(cmds, child.Draw(buf, childNode)...)
	}
	return cmds
}

func (b *FlexBox) String() string { return toString(b) }

func (b *FlexBox) ToString(buf *strings.Builder, offset string) {
	style := b.Style()
	fmt.Fprintf(buf, "%sFlexBox(%s, ID: %q, %s)\n", offset, style.Direction, b.ID(), style)
	for _, child := range b.children {
		childToString(buf, offset+"| ", child)
	}
}
