package device

import "cellkit/events"

// Device is the terminal the loop draws on and reads input from.
type Device interface {
	// Init enters raw mode and the alternate screen and enables mouse
	// reporting.
	Init() error
	// Fini restores the terminal. It is safe to call more than once.
	Fini() error
	Size() (width, height int)
	// PollEvent blocks until the next input event.
	PollEvent() (events.Event, error)
	Write(p []byte) (int, error)
	Flush() error
}
