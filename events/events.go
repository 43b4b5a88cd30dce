package events

import (
	"fmt"
	"strings"
)

type Event interface {
	event()
	String() string
}

type Modifiers byte

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModNone Modifiers = 0
)

func (m Modifiers) String() string {
	mods := []string{}
	if m&ModCtrl == ModCtrl {
		mods = append(mods, "Ctrl")
	}
	if m&ModAlt == ModAlt {
		mods = append(mods, "Alt")
	}
	if m&ModShift == ModShift {
		mods = append(mods, "Shift")
	}
	return strings.Join(mods, "+")
}

type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyRune
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDn
)

var keyNames = map[KeyCode]string{
	KeyUnknown:   "Unknown",
	KeyRune:      "Rune",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyEsc:       "Esc",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPgUp:      "PgUp",
	KeyPgDn:      "PgDn",
}

func (k KeyCode) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "UNKNOWN KEY"
}

type Key struct {
	Code KeyCode
	Rune rune
	Mods Modifiers
}

func (Key) event() {}

func Rune(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

func Ctrl(r rune) Key {
	return Key{Code: KeyRune, Rune: r, Mods: ModCtrl}
}

// IsQuit reports the global quit shortcut: Ctrl with c, q, d or z.
func (k Key) IsQuit() bool {
	if k.Mods&ModCtrl != ModCtrl || k.Code != KeyRune {
		return false
	}
	switch k.Rune {
	case 'c', 'q', 'd', 'z':
		return true
	}
	return false
}

func (k Key) String() string {
	name := k.Code.String()
	if k.Code == KeyRune {
		name = fmt.Sprintf("Rune[%c]", k.Rune)
	}
	if k.Mods != ModNone {
		return fmt.Sprintf("Key(%s+%s)", k.Mods, name)
	}
	return fmt.Sprintf("Key(%s)", name)
}

type MouseAction int

const (
	MouseDown MouseAction = iota
	MouseUp
	MouseDrag
	ScrollUp
	ScrollDown
)

func (a MouseAction) String() string {
	switch a {
	case MouseDown:
		return "Down"
	case MouseUp:
		return "Up"
	case MouseDrag:
		return "Drag"
	case ScrollUp:
		return "ScrollUp"
	case ScrollDown:
		return "ScrollDown"
	}
	return "UNKNOWN MOUSE ACTION"
}

type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "None"
	case ButtonLeft:
		return "Left"
	case ButtonMiddle:
		return "Middle"
	case ButtonRight:
		return "Right"
	}
	return "UNKNOWN BUTTON"
}

type Mouse struct {
	Action MouseAction
	Button Button
	X, Y   int
	Mods   Modifiers
}

func (Mouse) event() {}

func Down(x, y int) Mouse {
	return Mouse{Action: MouseDown, Button: ButtonLeft, X: x, Y: y}
}

func (m Mouse) String() string {
	return fmt.Sprintf("Mouse(%s, Button: %s, X: %d, Y: %d, Mods: {%s})", m.Action, m.Button, m.X, m.Y, m.Mods)
}

type Resize struct {
	Width, Height int
}

func (Resize) event() {}

func (r Resize) String() string {
	return fmt.Sprintf("Resize(Width: %d, Height: %d)", r.Width, r.Height)
}

// Location returns the screen cell an event points at. Only mouse events
// carry one.
func Location(event Event) (x, y int, ok bool) {
	if mouse, isMouse := event.(Mouse); isMouse {
		return mouse.X, mouse.Y, true
	}
	return 0, 0, false
}
