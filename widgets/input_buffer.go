package widgets

import (
	"strings"

	"cellkit/events"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// InputBuffer is single-line editable text. The cursor counts grapheme
// clusters, so a combining sequence is always edited as one unit.
type InputBuffer struct {
	graphemes []string
	cursor    int
}

func NewInputBuffer(value string) *InputBuffer {
	b := &InputBuffer{}
	b.SetValue(value)
	return b
}

func splitGraphemes(s string) []string {
	var result []string
	graphemes := uniseg.NewGraphemes(norm.NFC.String(s))
	for graphemes.Next() {
		result = append(result, graphemes.Str())
	}
	return result
}

// SetValue replaces the content and moves the cursor to the end.
func (b *InputBuffer) SetValue(value string) {
	b.graphemes = splitGraphemes(value)
	b.cursor = len(b.graphemes)
}

func (b *InputBuffer) Value() string {
	return strings.Join(b.graphemes, "")
}

// Cursor is the cursor position in grapheme clusters.
func (b *InputBuffer) Cursor() int {
	return b.cursor
}

// CursorColumn is the screen column of the cursor relative to the start
// of the text.
func (b *InputBuffer) CursorColumn() int {
	return runewidth.StringWidth(strings.Join(b.graphemes[:b.cursor], ""))
}

// SetCursorColumn puts the cursor at the cluster covering column, or at the
// end when column is past the text.
func (b *InputBuffer) SetCursorColumn(column int) {
	if column <= 0 {
		b.cursor = 0
		return
	}
	width := 0
	for i, grapheme := range b.graphemes {
		next := width + runewidth.StringWidth(grapheme)
		if column < next {
			b.cursor = i
			return
		}
		width = next
	}
	b.cursor = len(b.graphemes)
}

// Insert adds text at the cursor. Combining marks merge with the cluster
// before the cursor.
func (b *InputBuffer) Insert(text string) {
	before := strings.Join(b.graphemes[:b.cursor], "") + text
	after := strings.Join(b.graphemes[b.cursor:], "")
	b.graphemes = splitGraphemes(before + after)
	b.cursor = len(splitGraphemes(before))
	if b.cursor > len(b.graphemes) {
		b.cursor = len(b.graphemes)
	}
}

func (b *InputBuffer) Backspace() bool {
	if b.cursor == 0 {
		return false
	}
	b.graphemes = append(b.graphemes[:b.cursor-1], b.graphemes[b.cursor:]...)
	b.cursor--
	return true
}

func (b *InputBuffer) Delete() bool {
	if b.cursor >= len(b.graphemes) {
		return false
	}
	b.graphemes = append(b.graphemes[:b.cursor], b.graphemes[b.cursor+1:]...)
	return true
}

func (b *InputBuffer) Left() {
	if b.cursor > 0 {
		b.cursor--
	}
}

func (b *InputBuffer) Right() {
	if b.cursor < len(b.graphemes) {
		b.cursor++
	}
}

func (b *InputBuffer) Home() {
	b.cursor = 0
}

func (b *InputBuffer) End() {
	b.cursor = len(b.graphemes)
}

// ProcessKey applies an editing key and reports whether the value changed.
func (b *InputBuffer) ProcessKey(key events.Key) bool {
	switch key.Code {
	case events.KeyRune:
		if key.Mods&(events.ModCtrl|events.ModAlt) != 0 {
			return false
		}
		b.Insert(string(key.Rune))
		return true
	case events.KeyBackspace:
		return b.Backspace()
	case events.KeyDelete:
		return b.Delete()
	case events.KeyLeft:
		b.Left()
	case events.KeyRight:
		b.Right()
	case events.KeyHome:
		b.Home()
	case events.KeyEnd:
		b.End()
	}
	return false
}
