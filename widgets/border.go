package widgets

import (
	"cellkit/cell"

	"github.com/gdamore/tcell/v2"
)

type borderSymbols struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	leftTee, rightTee                          string
}

var (
	lineBorder = borderSymbols{
		topLeft: "┌", topRight: "┐", bottomLeft: "└", bottomRight: "┘",
		horizontal: "─", vertical: "│", leftTee: "├", rightTee: "┤",
	}
	roundedBorder = borderSymbols{
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│", leftTee: "├", rightTee: "┤",
	}
	thickBorder = borderSymbols{
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃", leftTee: "┣", rightTee: "┫",
	}
)

// drawBorder frames the rectangle. Rectangles smaller than 2×2 are skipped.
func drawBorder(buf *cell.Buffer, x, y, width, height int, symbols borderSymbols, style tcell.Style) {
	if width < 2 || height < 2 {
		return
	}
	right, bottom := x+width-1, y+height-1
	for i := x + 1; i < right; i++ {
		buf.SetCell(i, y, cell.Cell{Symbol: symbols.horizontal, Style: style})
		buf.SetCell(i, bottom, cell.Cell{Symbol: symbols.horizontal, Style: style})
	}
	for j := y + 1; j < bottom; j++ {
		buf.SetCell(x, j, cell.Cell{Symbol: symbols.vertical, Style: style})
		buf.SetCell(right, j, cell.Cell{Symbol: symbols.vertical, Style: style})
	}
	buf.SetCell(x, y, cell.Cell{Symbol: symbols.topLeft, Style: style})
	buf.SetCell(right, y, cell.Cell{Symbol: symbols.topRight, Style: style})
	buf.SetCell(x, bottom, cell.Cell{Symbol: symbols.bottomLeft, Style: style})
	buf.SetCell(right, bottom, cell.Cell{Symbol: symbols.bottomRight, Style: style})
}

// drawDivider draws a horizontal line from left to right inclusive.
func drawDivider(buf *cell.Buffer, left, right, y int, symbols borderSymbols, style tcell.Style) {
	for i := left; i <= right; i++ {
		buf.SetCell(i, y, cell.Cell{Symbol: symbols.horizontal, Style: style})
	}
}
