package cell

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func render(t *testing.T, b *Buffer) string {
	t.Helper()
	out := &strings.Builder{}
	if err := b.Render(out); err != nil {
		t.Fatalf("render: %v", err)
	}
	return out.String()
}

func TestRenderStyledCell(t *testing.T) {
	b := NewBuffer(1, 1)
	b.SetCell(0, 0, New("H").
		Foreground(tcell.PaletteColor(9)).
		Background(tcell.PaletteColor(11)).
		Attributes(tcell.AttrBold|tcell.AttrItalic|tcell.AttrStrikeThrough))

	expected := "\x1b[48;5;11m\x1b[38;5;9m\x1b[1m\x1b[3m\x1b[9mH\x1b[0m"
	if got := render(t, b); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestRenderDefaultCell(t *testing.T) {
	b := NewBuffer(1, 1)
	b.SetSymbol(0, 0, "H")
	if got := render(t, b); got != "H\x1b[0m" {
		t.Errorf("expected %q, got %q", "H\x1b[0m", got)
	}
}

func TestRenderRGB(t *testing.T) {
	b := NewBuffer(1, 1)
	b.SetCell(0, 0, New("▀").Foreground(tcell.NewRGBColor(10, 20, 30)).Background(tcell.NewRGBColor(0, 0, 255)))
	expected := "\x1b[48;2;0;0;255m\x1b[38;2;10;20;30m▀\x1b[0m"
	if got := render(t, b); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestRenderIsRowMajor(t *testing.T) {
	b := NewBuffer(2, 2)
	b.WriteString(0, 0, "ab", tcell.StyleDefault)
	b.WriteString(0, 1, "cd", tcell.StyleDefault)
	expected := "a\x1b[0mb\x1b[0mc\x1b[0md\x1b[0m"
	if got := render(t, b); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestNewBufferIsBlank(t *testing.T) {
	b := NewBuffer(3, 2)
	if b.String() != "   \n   " {
		t.Errorf("unexpected buffer %q", b.String())
	}
	if strings.Contains(render(t, b), "\x1b[3") || strings.Contains(render(t, b), "\x1b[4") {
		t.Error("blank buffer should not emit colour sequences")
	}
}

func TestOutOfBoundsWritesAreDropped(t *testing.T) {
	b := NewBuffer(3, 2)
	before := b.String()
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {100, 100}} {
		b.SetSymbol(pos[0], pos[1], "X")
		b.SetCell(pos[0], pos[1], New("Y"))
	}
	if b.String() != before {
		t.Errorf("expected unchanged buffer, got %q", b.String())
	}
	if c := b.Get(-1, -1); c.Symbol != " " {
		t.Errorf("expected empty cell, got %s", c)
	}
}

func TestWriteStringClips(t *testing.T) {
	b := NewBuffer(4, 1)
	if n := b.WriteString(2, 0, "hello", tcell.StyleDefault); n != 2 {
		t.Errorf("expected 2 cells written, got %d", n)
	}
	if b.String() != "  he" {
		t.Errorf("unexpected buffer %q", b.String())
	}
	if n := b.WriteString(0, 5, "hello", tcell.StyleDefault); n != 0 {
		t.Errorf("expected nothing written off-screen, got %d", n)
	}
	if n := b.WriteString(-3, 0, "hello", tcell.StyleDefault); n != 2 {
		t.Errorf("expected 2 cells written from a negative x, got %d", n)
	}
	if b.String() != "lohe" {
		t.Errorf("unexpected buffer %q", b.String())
	}
}

func TestWriteStringGraphemes(t *testing.T) {
	b := NewBuffer(4, 1)
	n := b.WriteString(0, 0, "e\u0301🇺🇸x", tcell.StyleDefault.Bold(true))
	if n != 3 {
		t.Fatalf("expected 3 cells, got %d", n)
	}
	if s := b.Get(0, 0).Symbol; s != "\u00e9" {
		t.Errorf("expected composed é, got %q", s)
	}
	if s := b.Get(1, 0).Symbol; s != "🇺🇸" {
		t.Errorf("expected flag cluster, got %q", s)
	}
	if _, _, attrs := b.Get(2, 0).Style.Decompose(); attrs&tcell.AttrBold == 0 {
		t.Error("expected bold style")
	}
}

func TestFillAndReset(t *testing.T) {
	b := NewBuffer(2, 1)
	b.Fill(New("#"))
	if b.String() != "##" {
		t.Errorf("unexpected buffer %q", b.String())
	}
	b.Reset()
	if b.String() != "  " {
		t.Errorf("unexpected buffer %q", b.String())
	}
}

func TestNegativeSize(t *testing.T) {
	b := NewBuffer(-2, 3)
	if b.Width() != 0 || b.Height() != 3 {
		t.Errorf("unexpected size %d×%d", b.Width(), b.Height())
	}
	b.SetSymbol(0, 0, "X")
}
