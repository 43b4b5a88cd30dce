package widgets

import (
	"fmt"
	"strings"

	"cellkit/cell"
	"cellkit/events"
	"cellkit/ui"

	"github.com/gdamore/tcell/v2"
)

// Button is a framed label. Its natural size is the label plus the frame.
type Button struct {
	ui.Base
	label     string
	rounded   bool
	TextStyle tcell.Style
	onClick   []func(events.Mouse) any
}

func NewButton(label string) *Button {
	b := &Button{label: label, TextStyle: tcell.StyleDefault}
	b.SetLabel(label)
	return b
}

func (b *Button) Label() string {
	return b.label
}

// SetLabel resizes the button to fit the new label.
func (b *Button) SetLabel(label string) {
	b.label = label
	b.Base.SetStyle(fixedStyle(float64(labelWidth(label)+2), 3))
}

func (b *Button) SetRounded(rounded bool) {
	b.rounded = rounded
}

// OnClick registers a listener called on every pointer press.
func (b *Button) OnClick(listener func(events.Mouse) any) {
	b.onClick = append(b.onClick, listener)
}

func (b *Button) Draw(buf *cell.Buffer, node ui.Node) []ui.Cmd {
	x, y, width, height := node.Rect().Round()
	symbols := lineBorder
	if b.rounded {
		symbols = roundedBorder
	}
	if b.Focused() {
		symbols = thickBorder
	}
	drawBorder(buf, x, y, width, height, symbols, b.TextStyle)
	writeLabel(buf, x+1, y+height/2, width-2, b.label, b.TextStyle)
	return nil
}

func (b *Button) ProcessEvent(event events.Event, _ ui.Rect) []any {
	mouse, ok := isDown(event)
	if !ok {
		return nil
	}
	var msgs []any
	for _, listener := range b.onClick {
		msgs = append(msgs, listener(mouse))
	}
	return msgs
}

func (b *Button) String() string { return toString(b) }

func (b *Button) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sButton(%q, ID: %q)\n", offset, b.label, b.ID())
}
