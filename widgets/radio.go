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
	radioChecked   = "(•)"
	radioUnchecked = "( )"
)

// Radio is selected by a pointer press. Deselecting the rest of a group is
// left to the application's dispatcher.
type Radio struct {
	ui.Base
	label     string
	checked   bool
	TextStyle tcell.Style
	onInput   []func(checked bool) any
}

func NewRadio(label string) *Radio {
	r := &Radio{TextStyle: tcell.StyleDefault}
	r.SetLabel(label)
	return r
}

func (r *Radio) SetLabel(label string) {
	r.label = label
	r.Base.SetStyle(fixedStyle(float64(labelWidth(label)+4), 1))
}

func (r *Radio) Checked() bool {
	return r.checked
}

func (r *Radio) SetChecked(checked bool) {
	r.checked = checked
}

func (r *Radio) OnInput(listener func(checked bool) any) {
	r.onInput = append(r.onInput, listener)
}

func (r *Radio) Draw(buf *cell.Buffer, node ui.Node) []ui.Cmd {
	x, y, width, _ := node.Rect().Round()
	symbol := radioUnchecked
	if r.checked {
		symbol = radioChecked
	}
	style := r.TextStyle
	if r.Focused() {
		style = style.Bold(true)
	}
	buf.WriteString(x, y, symbol, style)
	writeLabel(buf, x+4, y, width-4, r.label, r.TextStyle)
	return nil
}

// ProcessEvent emits only when the press changes the state.
func (r *Radio) ProcessEvent(event events.Event, _ ui.Rect) []any {
	if _, ok := isDown(event); !ok || r.checked {
		return nil
	}
	r.checked = true
	var msgs []any
	for _, listener := range r.onInput {
		msgs = append(msgs, listener(true))
	}
	return msgs
}

func (r *Radio) String() string { return toString(r) }

func (r *Radio) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sRadio(%q, Checked: %v, ID: %q)\n", offset, r.label, r.checked, r.ID())
}
