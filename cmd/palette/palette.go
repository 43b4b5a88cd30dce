package main

import (
	"fmt"
	"log"
	"os"

	"cellkit/cell"

	"github.com/gdamore/tcell/v2"
)

const swatch = 9

func main() {
	log.SetFlags(0)

	// System colours in rows of 8, then the cube and the greys in rows of 6.
	var rows [][]int
	for i := 0; i < 16; i += 8 {
		rows = append(rows, span(i, 8))
	}
	for i := 16; i < 256; i += 6 {
		rows = append(rows, span(i, 6))
	}

	for _, row := range rows {
		buf := cell.NewBuffer(len(row)*swatch, 1)
		for x, color := range row {
			buf.WriteString(x*swatch, 0, fmt.Sprintf("   %3v   ", color), swatchStyle(color))
		}
		if err := buf.Render(os.Stdout); err != nil {
			log.Printf("Failed to print palette: %v", err)
			return
		}
		fmt.Println()
	}
}

func span(from, n int) []int {
	result := make([]int, 0, n)
	for i := from; i < from+n && i < 256; i++ {
		result = append(result, i)
	}
	return result
}

func swatchStyle(color int) tcell.Style {
	style := tcell.StyleDefault.Background(tcell.PaletteColor(color))
	dark := color == 0 || color == 4 || (color >= 16 && color < 22) || (color >= 232 && color < 244)
	if dark {
		return style.Foreground(tcell.PaletteColor(15))
	}
	return style.Foreground(tcell.PaletteColor(0))
}
