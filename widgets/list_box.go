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

// ListBox is a framed scrollable list. Each item takes one row, plus a
// divider row below it when dividers are on.
type ListBox struct {
	ui.Base
	items     []string
	dividers  bool
	scrollTop int
	selected  int
	TextStyle tcell.Style
	onSelect  []func(index int, item string) any
}

func NewListBox(items ...string) *ListBox {
	style := flex.DefaultStyle()
	style.Size = flex.Dimensions{Width: flex.Pct(1), Height: flex.Pct(1)}
	style.MinSize.Height = flex.Pt(1)
	return &ListBox{
		Base:      ui.NewBase(style),
		items:     items,
		dividers:  true,
		selected:  -1,
		TextStyle: tcell.StyleDefault,
	}
}

func (l *ListBox) SetItems(items []string) {
	l.items = items
	l.scrollTop = 0
	if l.selected >= len(items) {
		l.selected = -1
	}
}

func (l *ListBox) Items() []string {
	return l.items
}

func (l *ListBox) SetDividers(dividers bool) {
	l.dividers = dividers
}

// Selected returns the selected item index, or -1.
func (l *ListBox) Selected() int {
	return l.selected
}

func (l *ListBox) ScrollTop() int {
	return l.scrollTop
}

func (l *ListBox) OnSelect(listener func(index int, item string) any) {
	l.onSelect = append(l.onSelect, listener)
}

func (l *ListBox) rowsPerItem() int {
	if l.dividers {
		return 2
	}
	return 1
}

func (l *ListBox) visibleItems(height int) int {
	inner := height - 2
	if inner <= 0 {
		return 0
	}
	return (inner + l.rowsPerItem() - 1) / l.rowsPerItem()
}

func (l *ListBox) maxScrollTop(height int) int {
	max := len(l.items) - l.visibleItems(height)
	if max < 0 {
		return 0
	}
	return max
}

func (l *ListBox) Draw(buf *cell.Buffer, node ui.Node) []ui.Cmd {
	x, y, width, height := node.Rect().Round()
	drawBorder(buf, x, y, width, height, lineBorder, l.TextStyle)
	inner := width - 3
	bottom := y + height - 1
	for row, i := y+1, l.scrollTop; i < len(l.items) && row < bottom; i++ {
		style := l.TextStyle
		if i == l.selected {
			style = style.Reverse(true)
		}
		writeLabel(buf, x+2, row, inner, runewidth.Truncate(l.items[i], inner, "…"), style)
		row++
		if l.dividers && row < bottom {
			drawDivider(buf, x+1, x+width-2, row, lineBorder, l.TextStyle)
			buf.SetCell(x, row, cell.Cell{Symbol: lineBorder.leftTee, Style: l.TextStyle})
			buf.SetCell(x+width-1, row, cell.Cell{Symbol: lineBorder.rightTee, Style: l.TextStyle})
			row++
		}
	}
	return nil
}

func (l *ListBox) ProcessEvent(event events.Event, rect ui.Rect) []any {
	mouse, ok := event.(events.Mouse)
	if !ok {
		return nil
	}
	_, top, _, height := rect.Round()
	switch mouse.Action {
	case events.ScrollUp:
		if l.scrollTop > 0 {
			l.scrollTop--
		}
	case events.ScrollDown:
		if l.scrollTop < l.maxScrollTop(height) {
			l.scrollTop++
		}
	case events.MouseDown:
		row := mouse.Y - top - 1
		if row < 0 || row >= height-2 || row%l.rowsPerItem() != 0 {
			return nil
		}
		index := l.scrollTop + row/l.rowsPerItem()
		if index >= len(l.items) {
			return nil
		}
		l.selected = index
		var msgs []any
		for _, listener := range l.onSelect {
			msgs = append(msgs, listener(index, l.items[index]))
		}
		return msgs
	}
	return nil
}

func (l *ListBox) String() string { return toString(l) }

func (l *ListBox) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sListBox(Items: %d, ScrollTop: %d, Selected: %d, ID: %q)\n", offset, len(l.items), l.scrollTop, l.selected, l.ID())
}
