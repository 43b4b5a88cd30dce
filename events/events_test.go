package events

import "testing"

func TestIsQuit(t *testing.T) {
	for _, r := range "cqdz" {
		if !Ctrl(r).IsQuit() {
			t.Errorf("expected Ctrl+%c to quit", r)
		}
	}
	notQuit := []Key{
		Rune('c'),
		Ctrl('x'),
		{Code: KeyEnter, Mods: ModCtrl},
		{Code: KeyRune, Rune: 'q', Mods: ModAlt},
	}
	for _, key := range notQuit {
		if key.IsQuit() {
			t.Errorf("expected %s not to quit", key)
		}
	}
	if !(Key{Code: KeyRune, Rune: 'c', Mods: ModCtrl | ModShift}).IsQuit() {
		t.Error("expected Ctrl+Shift+c to quit")
	}
}

func TestLocation(t *testing.T) {
	located := []Event{
		Down(3, 4),
		Mouse{Action: MouseUp, X: 3, Y: 4},
		Mouse{Action: MouseDrag, X: 3, Y: 4},
		Mouse{Action: ScrollUp, X: 3, Y: 4},
		Mouse{Action: ScrollDown, X: 3, Y: 4},
	}
	for _, event := range located {
		x, y, ok := Location(event)
		if !ok || x != 3 || y != 4 {
			t.Errorf("%s: expected location (3, 4), got (%d, %d, %v)", event, x, y, ok)
		}
	}
	for _, event := range []Event{Rune('a'), Resize{Width: 80, Height: 24}} {
		if _, _, ok := Location(event); ok {
			t.Errorf("%s: expected no location", event)
		}
	}
}

func TestString(t *testing.T) {
	if s := Ctrl('q').String(); s != "Key(Ctrl+Rune[q])" {
		t.Errorf("unexpected %q", s)
	}
	if s := (Key{Code: KeyLeft}).String(); s != "Key(Left)" {
		t.Errorf("unexpected %q", s)
	}
}
