package widgets

import (
	"fmt"
	"strings"

	"cellkit/cell"
	"cellkit/events"
	"cellkit/flex"
	"cellkit/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TextInput is a framed single-line editor. It spans its parent's width
// unless sized explicitly.
type TextInput struct {
	ui.Base
	input     *InputBuffer
	rounded   bool
	TextStyle tcell.Style
	onInput   []func(value string) any
}

func NewTextInput(value string) *TextInput {
	style := flex.DefaultStyle()
	style.Size = flex.Dimensions{Width: flex.Pct(1), Height: flex.Pt(3)}
	style.MinSize.Height = flex.Pt(3)
	return &TextInput{
		Base:      ui.NewBase(style),
		input:     NewInputBuffer(value),
		TextStyle: tcell.StyleDefault,
	}
}

func (t *TextInput) Value() string {
	return t.input.Value()
}

func (t *TextInput) SetValue(value string) {
	t.input.SetValue(value)
}

func (t *TextInput) Input() *InputBuffer {
	return t.input
}

func (t *TextInput) SetRounded(rounded bool) {
	t.rounded = rounded
}

func (t *TextInput) OnInput(listener func(value string) any) {
	t.onInput = append(t.onInput, listener)
}

func (t *TextInput) Draw(buf *cell.Buffer, node ui.Node) []ui.Cmd {
	x, y, width, height := node.Rect().Round()
	symbols := lineBorder
	if t.rounded {
		symbols = roundedBorder
	}
	// there is no thick rounded corner
	if t.Focused() {
		symbols = thickBorder
	}
	drawBorder(buf, x, y, width, height, symbols, t.TextStyle)
	inner := width - 2
	writeLabel(buf, x+1, y+1, inner, runewidth.Truncate(t.Value(), inner, ""), t.TextStyle)

	if !t.Focused() {
		return nil
	}
	column := t.input.CursorColumn()
	if column > inner-1 {
		column = inner - 1
	}
	return []ui.Cmd{ui.ShowCursor{}, ui.MoveTo{X: x + 1 + column, Y: y + 1}}
}

func (t *TextInput) ProcessEvent(event events.Event, rect ui.Rect) []any {
	switch event := event.(type) {
	case events.Key:
		if !t.input.ProcessKey(event) {
			return nil
		}
		var msgs []any
		for _, listener := range t.onInput {
			msgs = append(msgs, listener(t.Value()))
		}
		return msgs

	case events.Mouse:
		if event.Action == events.MouseDown {
			x, _, _, _ := rect.Round()
			t.input.SetCursorColumn(event.X - x - 1)
		}
	}
	return nil
}

func (t *TextInput) String() string { return toString(t) }

func (t *TextInput) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sTextInput(%q, Cursor: %d, ID: %q)\n", offset, t.Value(), t.input.Cursor(), t.ID())
}
