package widgets

import (
	"fmt"
	"strings"

	"cellkit/cell"
	"cellkit/events"
	"cellkit/ui"

	"github.com/gdamore/tcell/v2"
)

const (
	boxChecked   = "[x]"
	boxUnchecked = "[ ]"
)

// Checkbox toggles on every pointer press and reports the new state.
type Checkbox struct {
	ui.Base
	label     string
	checked   bool
	TextStyle tcell.Style
	onInput   []func(checked bool) any
}

func NewCheckbox(label string) *Checkbox {
	c := &Checkbox{TextStyle: tcell.StyleDefault}
	c.SetLabel(label)
	return c
}

func (c *Checkbox) SetLabel(label string) {
	c.label = label
	c.Base.SetStyle(fixedStyle(float64(labelWidth(label)+4), 1))
}

func (c *Checkbox) Checked() bool {
	return c.checked
}

func (c *Checkbox) SetChecked(checked bool) {
	c.checked = checked
}

func (c *Checkbox) OnInput(listener func(checked bool) any) {
	c.onInput = append(c.onInput, listener)
}

func (c *Checkbox) Draw(buf *cell.Buffer, node ui.Node) []ui.Cmd {
	x, y, width, _ := node.Rect().Round()
	symbol := boxUnchecked
	if c.checked {
		symbol = boxChecked
	}
	style := c.TextStyle
	if c.Focused() {
		style = style.Bold(true)
	}
	buf.WriteString(x, y, symbol, style)
	writeLabel(buf, x+4, y, width-4, c.label, c.TextStyle)
	return nil
}

func (c *Checkbox) ProcessEvent(event events.Event, _ ui.Rect) []any {
	if _, ok := isDown(event); !ok {
		return nil
	}
	c.checked = !c.checked
	var msgs []any
	for _, listener := range c.onInput {
		msgs = append(msgs, listener(c.checked))
	}
	return msgs
}

func (c *Checkbox) String() string { return toString(c) }

func (c *Checkbox) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sCheckbox(%q, Checked: %v, ID: %q)\n", offset, c.label, c.checked, c.ID())
}
