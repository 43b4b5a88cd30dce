package cell

import (
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Buffer is a full frame of cells, row-major.
type Buffer struct {
	cells         []Cell
	width, height int
}

func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Reset()
	return b
}

func (b *Buffer) Width() int {
	return b.width
}

func (b *Buffer) Height() int {
	return b.height
}

func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns an empty cell for coordinates outside the buffer.
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Empty()
	}
	return b.cells[y*b.width+x]
}

// SetCell drops writes outside the buffer.
func (b *Buffer) SetCell(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// SetSymbol writes a default-styled cell.
func (b *Buffer) SetSymbol(x, y int, symbol string) {
	b.SetCell(x, y, New(symbol))
}

func (b *Buffer) Fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

func (b *Buffer) Reset() {
	b.Fill(Empty())
}

// WriteString writes one cell per grapheme cluster starting at (x, y) and
// returns the number of cells written. Text outside the grid is dropped.
func (b *Buffer) WriteString(x, y int, s string, style tcell.Style) int {
	written := 0
	graphemes := uniseg.NewGraphemes(norm.NFC.String(s))
	for graphemes.Next() {
		if x >= b.width {
			break
		}
		if b.InBounds(x, y) {
			b.SetCell(x, y, Cell{Symbol: graphemes.Str(), Style: style})
			written++
		}
		x++
	}
	return written
}

// Render serializes the whole grid row-major. Every cell is written with
// its own style changes followed by a reset.
func (b *Buffer) Render(w io.Writer) error {
	buf := &strings.Builder{}
	for _, c := range b.cells {
		c.render(buf)
	}
	_, err := io.WriteString(w, buf.String())
	return err
}

// String is the plain text of the buffer, one line per row.
func (b *Buffer) String() string {
	buf := &strings.Builder{}
	for y := 0; y < b.height; y++ {
		if y > 0 {
			buf.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			buf.WriteString(b.cells[y*b.width+x].Symbol)
		}
	}
	return buf.String()
}
