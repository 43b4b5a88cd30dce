package tcell

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"cellkit/events"

	"github.com/gdamore/tcell/v2"
)

var ErrClosed = errors.New("tcell device: screen closed")

// Device drives a real terminal. tcell owns raw mode, the alternate screen
// and input decoding; frames are written as raw bytes to the same tty.
type Device struct {
	screen      tcell.Screen
	out         *bufio.Writer
	buttons     tcell.ButtonMask
	initialized bool
	finalized   bool
}

func New() (*Device, error) {
	tty, err := tcell.NewDevTty()
	if err != nil {
		return nil, fmt.Errorf("tcell device: open tty: %w", err)
	}
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	if err != nil {
		return nil, fmt.Errorf("tcell device: new screen: %w", err)
	}
	return NewWithScreen(screen, tty), nil
}

// NewWithScreen builds a device over an existing screen, such as a
// tcell.SimulationScreen, writing frames to out.
func NewWithScreen(screen tcell.Screen, out io.Writer) *Device {
	return &Device{screen: screen, out: bufio.NewWriter(out)}
}

func (d *Device) Init() error {
	if err := d.screen.Init(); err != nil {
		return fmt.Errorf("tcell device: init: %w", err)
	}
	d.initialized = true
	d.screen.EnableMouse()
	return nil
}

// Fini is safe to call more than once and after a failed Init. tcell undoes
// its own partial setup when Init fails.
func (d *Device) Fini() error {
	if d.finalized {
		return nil
	}
	d.finalized = true
	d.out.Reset(io.Discard)
	if d.initialized {
		d.screen.Fini()
	}
	return nil
}

func (d *Device) Size() (width, height int) {
	return d.screen.Size()
}

func (d *Device) Write(p []byte) (int, error) {
	return d.out.Write(p)
}

func (d *Device) Flush() error {
	return d.out.Flush()
}

// PollEvent blocks until an event the UI cares about arrives. Mouse motion
// with no button held and tcell housekeeping events are skipped.
func (d *Device) PollEvent() (events.Event, error) {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return nil, ErrClosed
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			width, height := ev.Size()
			return events.Resize{Width: width, Height: height}, nil

		case *tcell.EventKey:
			return translateKey(ev), nil

		case *tcell.EventMouse:
			if event, ok := d.translateMouse(ev); ok {
				return event, nil
			}

		case *tcell.EventError:
			return nil, fmt.Errorf("tcell device: %w", ev)
		}
	}
}

func translateMods(mods tcell.ModMask) events.Modifiers {
	result := events.ModNone
	if mods&tcell.ModShift != 0 {
		result |= events.ModShift
	}
	if mods&tcell.ModCtrl != 0 {
		result |= events.ModCtrl
	}
	if mods&tcell.ModAlt != 0 {
		result |= events.ModAlt
	}
	return result
}

var keyCodes = map[tcell.Key]events.KeyCode{
	tcell.KeyEnter:      events.KeyEnter,
	tcell.KeyTab:        events.KeyTab,
	tcell.KeyBackspace:  events.KeyBackspace,
	tcell.KeyBackspace2: events.KeyBackspace,
	tcell.KeyDelete:     events.KeyDelete,
	tcell.KeyEscape:     events.KeyEsc,
	tcell.KeyUp:         events.KeyUp,
	tcell.KeyDown:       events.KeyDown,
	tcell.KeyLeft:       events.KeyLeft,
	tcell.KeyRight:      events.KeyRight,
	tcell.KeyHome:       events.KeyHome,
	tcell.KeyEnd:        events.KeyEnd,
	tcell.KeyPgUp:       events.KeyPgUp,
	tcell.KeyPgDn:       events.KeyPgDn,
}

func translateKey(ev *tcell.EventKey) events.Key {
	mods := translateMods(ev.Modifiers())
	if code, ok := keyCodes[ev.Key()]; ok {
		return events.Key{Code: code, Mods: mods}
	}
	switch key := ev.Key(); {
	case key == tcell.KeyRune:
		return events.Key{Code: events.KeyRune, Rune: ev.Rune(), Mods: mods}
	case key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ:
		return events.Key{Code: events.KeyRune, Rune: 'a' + rune(key-tcell.KeyCtrlA), Mods: mods | events.ModCtrl}
	}
	return events.Key{Code: events.KeyUnknown, Mods: mods}
}

const pressButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

func translateButton(buttons tcell.ButtonMask) events.Button {
	switch {
	case buttons&tcell.Button1 != 0:
		return events.ButtonLeft
	case buttons&tcell.Button2 != 0:
		return events.ButtonRight
	case buttons&tcell.Button3 != 0:
		return events.ButtonMiddle
	}
	return events.ButtonNone
}

// translateMouse turns tcell's button state reports into transitions.
func (d *Device) translateMouse(ev *tcell.EventMouse) (events.Mouse, bool) {
	x, y := ev.Position()
	mouse := events.Mouse{X: x, Y: y, Mods: translateMods(ev.Modifiers())}
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		mouse.Action = events.ScrollUp
		return mouse, true
	case buttons&tcell.WheelDown != 0:
		mouse.Action = events.ScrollDown
		return mouse, true
	}

	pressed, last := buttons&pressButtons, d.buttons
	d.buttons = pressed
	switch {
	case pressed == 0 && last == 0:
		return mouse, false
	case last == 0:
		mouse.Action, mouse.Button = events.MouseDown, translateButton(pressed)
	case pressed == 0:
		mouse.Action, mouse.Button = events.MouseUp, translateButton(last)
	default:
		mouse.Action, mouse.Button = events.MouseDrag, translateButton(pressed)
	}
	return mouse, true
}
