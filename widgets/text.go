package widgets

import (
	"fmt"
	"strings"

	"cellkit/cell"
	"cellkit/flex"
	"cellkit/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Text is a one-line label. Text that does not fit ends with an ellipsis.
type Text struct {
	ui.Base
	text      string
	TextStyle tcell.Style
}

func NewText(text string) *Text {
	t := &Text{TextStyle: tcell.StyleDefault}
	t.SetText(text)
	return t
}

func (t *Text) Text() string {
	return t.text
}

// SetText resizes the label to the new text.
func (t *Text) SetText(text string) {
	t.text = text
	style := fixedStyle(float64(labelWidth(text)), 1)
	style.MinSize.Width = flex.Pt(0)
	t.Base.SetStyle(style)
}

func (t *Text) Draw(buf *cell.Buffer, node ui.Node) []ui.Cmd {
	x, y, width, _ := node.Rect().Round()
	writeLabel(buf, x, y, width, runewidth.Truncate(t.text, width, "…"), t.TextStyle)
	return nil
}

func (t *Text) String() string { return toString(t) }

func (t *Text) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sText(%q)\n", offset, t.text)
}
