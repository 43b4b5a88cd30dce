package widgets

import (
	"fmt"
	"strings"

	"cellkit/cell"
	"cellkit/events"
	"cellkit/flex"
	"cellkit/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/ansi"
)

// Widget is a ui.Widget that can describe itself for the debug log.
type Widget interface {
	ui.Widget
	String() string
	ToString(buf *strings.Builder, offset string)
}

func toString[W Widget](w W) string {
	buf := &strings.Builder{}
	w.ToString(buf, "")
	return buf.String()
}

// childToString dumps any widget, falling back to its type for widgets
// from outside this package.
func childToString(buf *strings.Builder, offset string, widget ui.Widget) {
	if w, ok := widget.(Widget); ok {
		w.ToString(buf, offset)
		return
	}
	fmt.Fprintf(buf, "%s%T\n", offset, widget)
}

// labelWidth is the number of cells a label occupies on screen.
func labelWidth(label string) int {
	return ansi.PrintableRuneWidth(label)
}

func fixedStyle(width, height float64) flex.Style {
	style := flex.DefaultStyle()
	style.Size = flex.Dimensions{Width: flex.Pt(width), Height: flex.Pt(height)}
	style.MinSize = style.Size
	return style
}

func isDown(event events.Event) (events.Mouse, bool) {
	mouse, ok := event.(events.Mouse)
	return mouse, ok && mouse.Action == events.MouseDown
}

// writeLabel writes text at (x, y) clipped to maxWidth cells.
func writeLabel(buf *cell.Buffer, x, y, maxWidth int, text string, style tcell.Style) {
	if maxWidth <= 0 {
		return
	}
	clipped := cell.NewBuffer(maxWidth, 1)
	n := clipped.WriteString(0, 0, text, style)
	for i := 0; i < n; i++ {
		buf.SetCell(x+i, y, clipped.Get(i, 0))
	}
}
