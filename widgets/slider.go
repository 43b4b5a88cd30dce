package widgets

import (
	"fmt"
	"math"
	"strings"

	"cellkit/cell"
	"cellkit/events"
	"cellkit/flex"
	"cellkit/ui"

	"github.com/gdamore/tcell/v2"
)

// Slider holds a value in [0, 1] picked by pressing or dragging along it.
type Slider struct {
	ui.Base
	value      float64
	thickTrack bool
	TextStyle  tcell.Style
	onInput    []func(value float64) any
}

func NewSlider(value float64) *Slider {
	style := flex.DefaultStyle()
	style.Size = flex.Dimensions{Width: flex.Pct(1), Height: flex.Pt(1)}
	style.MinSize.Height = flex.Pt(1)
	s := &Slider{Base: ui.NewBase(style), TextStyle: tcell.StyleDefault}
	s.SetValue(value)
	return s
}

func (s *Slider) Value() float64 {
	return s.value
}

func (s *Slider) SetValue(value float64) {
	s.value = math.Max(0, math.Min(1, value))
}

func (s *Slider) SetThickTrack(thick bool) {
	s.thickTrack = thick
}

func (s *Slider) OnInput(listener func(value float64) any) {
	s.onInput = append(s.onInput, listener)
}

func (s *Slider) Draw(buf *cell.Buffer, node ui.Node) []ui.Cmd {
	x, y, width, _ := node.Rect().Round()
	if width <= 0 {
		return nil
	}
	track := lineBorder.horizontal
	if s.thickTrack {
		track = thickBorder.horizontal
	}
	for i := 1; i < width-1; i++ {
		buf.SetCell(x+i, y, cell.Cell{Symbol: track, Style: s.TextStyle})
	}
	thumb := int(math.Round(s.value * float64(width-1)))
	style := s.TextStyle
	if s.Focused() {
		style = style.Bold(true)
	}
	buf.SetCell(x+thumb, y, cell.Cell{Symbol: "█", Style: style})
	return nil
}

func (s *Slider) ProcessEvent(event events.Event, rect ui.Rect) []any {
	mouse, ok := event.(events.Mouse)
	if !ok || (mouse.Action != events.MouseDown && mouse.Action != events.MouseDrag) {
		return nil
	}
	if rect.Width <= 1 {
		return nil
	}
	value := (float64(mouse.X) - rect.X) / (rect.Width - 1)
	previous := s.value
	s.SetValue(value)
	if s.value == previous {
		return nil
	}
	var msgs []any
	for _, listener := range s.onInput {
		msgs = append(msgs, listener(s.value))
	}
	return msgs
}

func (s *Slider) String() string { return toString(s) }

func (s *Slider) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sSlider(%.3f, ID: %q)\n", offset, s.value, s.ID())
}
