package mock_device

import (
	"bytes"
	"errors"
	"sync"

	"cellkit/events"
	"cellkit/stream"
)

var ErrNoMoreEvents = errors.New("mock device: no more events")

// Device replays queued events and records everything written to it.
type Device struct {
	InitErr  error
	PollErr  error // returned instead of ErrNoMoreEvents once the script runs out
	FlushErr error

	mu      sync.Mutex
	width   int
	height  int
	events  *stream.Stream[events.Event]
	pending bytes.Buffer
	output  bytes.Buffer
	calls   []string
	finis   int
}

// New returns a device whose event stream stays open until Close.
func New(width, height int) *Device {
	return &Device{
		width:  width,
		height: height,
		events: stream.NewStream[events.Event]("mock_device"),
	}
}

// NewScripted returns a device that delivers evs and then reports
// ErrNoMoreEvents.
func NewScripted(width, height int, evs ...events.Event) *Device {
	d := New(width, height)
	d.Push(evs...)
	d.Close()
	return d
}

func (d *Device) Push(evs ...events.Event) {
	d.events.Push(evs...)
}

func (d *Device) Close() {
	d.events.Close()
}

func (d *Device) Init() error {
	d.record("Init")
	return d.InitErr
}

func (d *Device) Fini() error {
	d.mu.Lock()
	d.finis++
	d.mu.Unlock()
	d.record("Fini")
	return nil
}

func (d *Device) Size() (width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.width, d.height
}

func (d *Device) PollEvent() (events.Event, error) {
	d.record("PollEvent")
	ev, ok := d.events.Pull()
	if !ok {
		if d.PollErr != nil {
			return nil, d.PollErr
		}
		return nil, ErrNoMoreEvents
	}
	if resize, ok := ev.(events.Resize); ok {
		d.mu.Lock()
		d.width, d.height = resize.Width, resize.Height
		d.mu.Unlock()
	}
	return ev, nil
}

func (d *Device) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending.Write(p)
}

func (d *Device) Flush() error {
	d.record("Flush")
	if d.FlushErr != nil {
		return d.FlushErr
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.output.Write(d.pending.Bytes())
	d.pending.Reset()
	return nil
}

// Output returns every flushed byte.
func (d *Device) Output() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.output.String()
}

// Calls lists device method calls in order, without Write and Size.
func (d *Device) Calls() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.calls...)
}

func (d *Device) FiniCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.finis
}

func (d *Device) record(call string) {
	d.mu.Lock()
	d.calls = append(d.calls, call)
	d.mu.Unlock()
}
