package widgets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"cellkit/cell"
	"cellkit/events"
	"cellkit/flex"
	"cellkit/ui"

	"github.com/gdamore/tcell/v2"
)

// draw lays root out on a width × height screen and draws it.
func draw(root ui.Widget, width, height int) (*cell.Buffer, *ui.Tree, []ui.Cmd) {
	tree := ui.ComputeLayout(root, flex.Size{Width: float64(width), Height: float64(height)})
	buf := cell.NewBuffer(width, height)
	cmds := root.Draw(buf, tree.Root())
	return buf, tree, cmds
}

func line(buf *cell.Buffer, y int) string {
	return strings.Split(buf.String(), "\n")[y]
}

func rectOf(t *testing.T, tree *ui.Tree, index int) ui.Rect {
	t.Helper()
	node, ok := tree.Node(index)
	if !ok {
		t.Fatalf("no node %d in\n%s", index, tree)
	}
	return node.Rect()
}

func TestCheckboxToggles(t *testing.T) {
	checkbox := NewCheckbox("ok")
	checkbox.OnInput(func(checked bool) any { return checked })
	root := Row(checkbox)

	buf, tree, _ := draw(root, 10, 1)
	if line(buf, 0) != "[ ] ok    " {
		t.Errorf("unexpected %q", line(buf, 0))
	}
	rect := rectOf(t, tree, 1)
	if rect.Width != 6 {
		t.Errorf("expected width 6, got %g", rect.Width)
	}

	msgs := checkbox.ProcessEvent(events.Down(1, 0), rect)
	if len(msgs) != 1 || msgs[0] != true || !checkbox.Checked() {
		t.Errorf("expected checked message, got %v", msgs)
	}
	msgs = checkbox.ProcessEvent(events.Down(1, 0), rect)
	if len(msgs) != 1 || msgs[0] != false || checkbox.Checked() {
		t.Errorf("expected unchecked message, got %v", msgs)
	}
	if msgs := checkbox.ProcessEvent(events.Mouse{Action: events.MouseUp}, rect); msgs != nil {
		t.Errorf("expected no messages on release, got %v", msgs)
	}

	buf, _, _ = draw(root, 10, 1)
	if line(buf, 0) != "[ ] ok    " {
		t.Errorf("unexpected %q", line(buf, 0))
	}
}

func TestRadioSelectsOnce(t *testing.T) {
	radio := NewRadio("a")
	radio.OnInput(func(checked bool) any { return "selected" })
	if msgs := radio.ProcessEvent(events.Down(0, 0), ui.Rect{}); len(msgs) != 1 {
		t.Errorf("expected one message, got %v", msgs)
	}
	if msgs := radio.ProcessEvent(events.Down(0, 0), ui.Rect{}); msgs != nil {
		t.Errorf("expected no message for selected radio, got %v", msgs)
	}
	buf, _, _ := draw(Row(radio), 6, 1)
	if line(buf, 0) != "(•) a " {
		t.Errorf("unexpected %q", line(buf, 0))
	}
}

func TestButton(t *testing.T) {
	button := NewButton("Go")
	button.OnClick(func(m events.Mouse) any { return m.X })
	root := Row(button)
	buf, tree, _ := draw(root, 6, 3)

	expected := "┌──┐  \n│Go│  \n└──┘  "
	if buf.String() != expected {
		t.Errorf("expected\n%s\ngot\n%s", expected, buf.String())
	}
	msgs := button.ProcessEvent(events.Down(2, 1), rectOf(t, tree, 1))
	if len(msgs) != 1 || msgs[0] != 2 {
		t.Errorf("unexpected messages %v", msgs)
	}

	button.SetFocused(true)
	buf, _, _ = draw(root, 6, 3)
	if buf.Get(0, 0).Symbol != "┏" {
		t.Errorf("expected thick border when focused, got %q", buf.Get(0, 0).Symbol)
	}
}

func TestTextInput(t *testing.T) {
	input := NewTextInput("hi")
	input.OnInput(func(value string) any { return value })
	root := Column(input)

	_, tree, cmds := draw(root, 20, 5)
	if len(cmds) != 0 {
		t.Errorf("expected no cursor commands when unfocused, got %v", cmds)
	}
	rect := rectOf(t, tree, 1)
	if rect.Width != 20 || rect.Height != 3 {
		t.Errorf("unexpected rect %s", rect)
	}

	input.SetFocused(true)
	buf, _, cmds := draw(root, 20, 5)
	if len(cmds) != 2 || cmds[0] != (ui.ShowCursor{}) || cmds[1] != (ui.MoveTo{X: 3, Y: 1}) {
		t.Errorf("unexpected cursor commands %v", cmds)
	}
	if buf.Get(0, 0).Symbol != "┏" || line(buf, 1)[:len("┃hi")] != "┃hi" {
		t.Errorf("unexpected drawing\n%s", buf)
	}

	msgs := input.ProcessEvent(events.Rune('!'), rect)
	if len(msgs) != 1 || msgs[0] != "hi!" {
		t.Errorf("unexpected messages %v", msgs)
	}
	if msgs := input.ProcessEvent(events.Key{Code: events.KeyLeft}, rect); msgs != nil {
		t.Errorf("cursor movement should not emit, got %v", msgs)
	}

	input.ProcessEvent(events.Down(2, 1), rect)
	if input.Input().Cursor() != 1 {
		t.Errorf("expected cursor 1 after click, got %d", input.Input().Cursor())
	}
	input.ProcessEvent(events.Key{Code: events.KeyBackspace}, rect)
	if input.Value() != "i!" {
		t.Errorf("unexpected value %q", input.Value())
	}
}

func TestInputBuffer(t *testing.T) {
	b := NewInputBuffer("ab")
	b.Insert("e")
	b.Insert("\u0301")
	if b.Value() != "ab\u00e9" || b.Cursor() != 3 {
		t.Errorf("unexpected %q cursor %d", b.Value(), b.Cursor())
	}
	if !b.Backspace() || b.Value() != "ab" {
		t.Errorf("expected whole cluster removed, got %q", b.Value())
	}

	b.SetValue("日本x")
	if b.CursorColumn() != 5 {
		t.Errorf("expected column 5, got %d", b.CursorColumn())
	}
	b.SetCursorColumn(3)
	if b.Cursor() != 1 {
		t.Errorf("expected cursor on second cluster, got %d", b.Cursor())
	}
	b.Home()
	if b.Backspace() {
		t.Error("backspace at start must do nothing")
	}
	if !b.Delete() || b.Value() != "本x" {
		t.Errorf("unexpected %q", b.Value())
	}
	b.End()
	b.Right()
	if b.Cursor() != 2 || b.Delete() {
		t.Errorf("unexpected cursor %d", b.Cursor())
	}
	if b.ProcessKey(events.Ctrl('a')) {
		t.Error("control keys must not insert")
	}
}

func TestSlider(t *testing.T) {
	slider := NewSlider(0)
	slider.OnInput(func(value float64) any { return value })
	root := Column(slider)
	buf, tree, _ := draw(root, 11, 1)
	if line(buf, 0) != "█───────── " {
		t.Errorf("unexpected %q", line(buf, 0))
	}

	rect := rectOf(t, tree, 1)
	msgs := slider.ProcessEvent(events.Down(5, 0), rect)
	if len(msgs) != 1 || msgs[0] != 0.5 {
		t.Errorf("unexpected messages %v", msgs)
	}
	msgs = slider.ProcessEvent(events.Mouse{Action: events.MouseDrag, X: 20}, rect)
	if slider.Value() != 1 || len(msgs) != 1 {
		t.Errorf("expected clamp to 1, got %g", slider.Value())
	}
	if msgs := slider.ProcessEvent(events.Mouse{Action: events.MouseDrag, X: 15}, rect); msgs != nil {
		t.Errorf("expected no message without change, got %v", msgs)
	}
}

func TestListBox(t *testing.T) {
	list := NewListBox("one", "two", "three", "four")
	list.OnSelect(func(index int, item string) any { return item })
	root := Column(list)
	buf, tree, _ := draw(root, 10, 6)

	expected := strings.Join([]string{
		"┌────────┐",
		"│ one    │",
		"├────────┤",
		"│ two    │",
		"├────────┤",
		"└────────┘",
	}, "\n")
	if buf.String() != expected {
		t.Errorf("expected\n%s\ngot\n%s", expected, buf.String())
	}

	rect := rectOf(t, tree, 1)
	msgs := list.ProcessEvent(events.Down(3, 3), rect)
	if len(msgs) != 1 || msgs[0] != "two" || list.Selected() != 1 {
		t.Errorf("unexpected messages %v", msgs)
	}
	if msgs := list.ProcessEvent(events.Down(3, 2), rect); msgs != nil {
		t.Errorf("divider click must not select, got %v", msgs)
	}

	for i := 0; i < 10; i++ {
		list.ProcessEvent(events.Mouse{Action: events.ScrollDown, X: 3, Y: 3}, rect)
	}
	if list.ScrollTop() != 2 {
		t.Errorf("expected scroll clamped to 2, got %d", list.ScrollTop())
	}
	list.ProcessEvent(events.Mouse{Action: events.ScrollUp, X: 3, Y: 3}, rect)
	if list.ScrollTop() != 1 {
		t.Errorf("expected scroll 1, got %d", list.ScrollTop())
	}
}

func TestImageDecodeError(t *testing.T) {
	_, err := NewImage([]byte("not an image"))
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if !errors.Is(err, image.ErrFormat) {
		t.Errorf("expected image.ErrFormat, got %v", decodeErr.Err)
	}
}

func TestImageHalfBlocks(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 4))
	for x := 0; x < 2; x++ {
		for y := 0; y < 4; y++ {
			src.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	data := &bytes.Buffer{}
	if err := png.Encode(data, src); err != nil {
		t.Fatal(err)
	}
	img, err := NewImage(data.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if img.Format() != "png" {
		t.Errorf("expected png, got %q", img.Format())
	}

	buf, tree, _ := draw(Row(img), 4, 4)
	if rect := rectOf(t, tree, 1); rect.Width != 2 || rect.Height != 2 {
		t.Errorf("expected 2×2 cells, got %s", rect)
	}
	c := buf.Get(1, 1)
	fg, bg, _ := c.Style.Decompose()
	if c.Symbol != "▄" || !fg.IsRGB() || !bg.IsRGB() {
		t.Fatalf("unexpected cell %s", c)
	}
	for _, color := range []tcell.Color{fg, bg} {
		if r, g, b := color.RGB(); r < 250 || g > 5 || b > 5 {
			t.Errorf("expected red, got %d %d %d", r, g, b)
		}
	}
}

func TestStyledFillsBackground(t *testing.T) {
	text := NewText("hey")
	root := Row(NewStyled(tcell.StyleDefault.Background(tcell.ColorNavy), text))
	buf, _, _ := draw(root, 5, 1)
	_, bg, _ := buf.Get(0, 0).Style.Decompose()
	if bg != tcell.ColorNavy || buf.Get(0, 0).Symbol != "h" {
		t.Errorf("unexpected cell %s", buf.Get(0, 0))
	}
	if _, bg, _ := buf.Get(4, 0).Style.Decompose(); bg != tcell.ColorDefault {
		t.Errorf("expected default outside the wrapper, got %v", bg)
	}
}

func TestStyledFollowsResizedChild(t *testing.T) {
	text := NewText("hey")
	styled := NewStyled(tcell.StyleDefault.Background(tcell.ColorNavy), text)
	root := Row(styled)
	text.SetText("hello")

	buf, tree, _ := draw(root, 8, 1)
	if outer, inner := rectOf(t, tree, 1), rectOf(t, tree, 2); outer != inner || outer.Width != 5 {
		t.Errorf("expected wrapper and child to share 5 columns, got %s and %s", outer, inner)
	}
	if _, bg, _ := buf.Get(4, 0).Style.Decompose(); bg != tcell.ColorNavy || buf.Get(4, 0).Symbol != "o" {
		t.Errorf("unexpected cell %s", buf.Get(4, 0))
	}
}

func TestFlexBoxDrawsChildrenInLayout(t *testing.T) {
	input := NewTextInput("x")
	input.SetFocused(true)
	width := 10.0
	input.SetSize(&width, nil)
	root := Column(NewText("title"), Row(FixedSpacer(2, 3), input))

	buf, tree, cmds := draw(root, 12, 4)
	if line(buf, 0) != "title       " {
		t.Errorf("unexpected %q", line(buf, 0))
	}
	if rect := rectOf(t, tree, 4); rect.X != 2 || rect.Y != 1 {
		t.Errorf("unexpected input rect %s", rect)
	}
	if len(cmds) != 2 || cmds[1] != (ui.MoveTo{X: 4, Y: 2}) {
		t.Errorf("unexpected cmds %v", cmds)
	}
	if !strings.Contains(root.String(), "| | TextInput(\"x\"") {
		t.Errorf("unexpected dump\n%s", root)
	}
}
