package renderer

import (
	"errors"
	"fmt"
	"io"
	"log"

	"cellkit/cell"
	"cellkit/device"
	"cellkit/events"
	"cellkit/flex"
	"cellkit/ui"

	"github.com/muesli/termenv"
)

// Dispatcher lets the application react to widget messages. It may mutate
// any widget reachable from root.
type Dispatcher interface {
	Dispatch(msg any, root ui.Widget)
}

type DispatchFunc func(msg any, root ui.Widget)

func (f DispatchFunc) Dispatch(msg any, root ui.Widget) {
	f(msg, root)
}

type State int

const (
	Initializing State = iota
	Running
	Finalizing
	Terminated
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "Initializing"
	case Running:
		return "Running"
	case Finalizing:
		return "Finalizing"
	case Terminated:
		return "Terminated"
	}
	return "UNKNOWN STATE"
}

type Renderer struct {
	dev        device.Device
	root       ui.Widget
	dispatcher Dispatcher
	log        *log.Logger

	state  State
	width  int
	height int
	tree   *ui.Tree
	focus  ui.FocusState
}

type Option func(*Renderer)

func WithDispatcher(dispatcher Dispatcher) Option {
	return func(r *Renderer) { r.dispatcher = dispatcher }
}

// WithLogger sets the debug log. Without it the renderer logs nothing.
func WithLogger(logger *log.Logger) Option {
	return func(r *Renderer) { r.log = logger }
}

func New(dev device.Device, root ui.Widget, opts ...Option) *Renderer {
	r := &Renderer{
		dev:  dev,
		root: root,
		log:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) State() State {
	return r.state
}

// Focused returns the preorder index of the focused widget.
func (r *Renderer) Focused() (int, bool) {
	return r.focus.Index()
}

// Tree returns the most recent layout.
func (r *Renderer) Tree() *ui.Tree {
	return r.tree
}

// Run owns the terminal until a quit key arrives or the device fails. The
// terminal is restored on every exit path, panics included.
func (r *Renderer) Run() (err error) {
	r.state = Initializing
	defer func() {
		r.state = Finalizing
		if finiErr := r.dev.Fini(); finiErr != nil {
			err = errors.Join(err, fmt.Errorf("renderer: finalize device: %w", finiErr))
		}
		r.state = Terminated
	}()
	// A partial Init may already have changed terminal modes, so Fini runs
	// on this path too.
	if err := r.dev.Init(); err != nil {
		return fmt.Errorf("renderer: init device: %w", err)
	}

	r.resize(r.dev.Size())

	r.state = Running
	for {
		if err := r.frame(); err != nil {
			return err
		}
		event, err := r.dev.PollEvent()
		if err != nil {
			return fmt.Errorf("renderer: poll event: %w", err)
		}
		r.log.Printf("renderer: event %s", event)
		if r.handleEvent(event) {
			return nil
		}
	}
}

var homeSeq = fmt.Sprintf(termenv.CSI+termenv.CursorPositionSeq, 1, 1)

func (r *Renderer) frame() error {
	buf := cell.NewBuffer(r.width, r.height)
	cmds := r.root.Draw(buf, r.tree.Root())

	if _, err := io.WriteString(r.dev, termenv.CSI+termenv.HideCursorSeq+homeSeq); err != nil {
		return fmt.Errorf("renderer: write frame: %w", err)
	}
	if err := buf.Render(r.dev); err != nil {
		return fmt.Errorf("renderer: write frame: %w", err)
	}
	if err := r.dev.Flush(); err != nil {
		return fmt.Errorf("renderer: flush frame: %w", err)
	}
	if len(cmds) == 0 {
		return nil
	}
	for _, cmd := range cmds {
		if err := cmd.Execute(r.dev); err != nil {
			return fmt.Errorf("renderer: execute %v: %w", cmd, err)
		}
	}
	if err := r.dev.Flush(); err != nil {
		return fmt.Errorf("renderer: flush commands: %w", err)
	}
	return nil
}

// handleEvent routes one event and reports whether the loop should quit.
func (r *Renderer) handleEvent(event events.Event) bool {
	switch event := event.(type) {
	case events.Key:
		if event.IsQuit() {
			r.log.Printf("renderer: quit on %s", event)
			return true
		}
		index, ok := r.focus.Index()
		if !ok {
			return false
		}
		widget, found := ui.Find(r.root, index)
		node, inTree := r.tree.Node(index)
		if !found || !inTree {
			return false
		}
		r.dispatch(widget.ProcessEvent(event, node.Rect()))

	case events.Mouse:
		if event.Action == events.MouseDown {
			if index, ok := r.tree.IndexAt(float64(event.X), float64(event.Y)); ok {
				r.focus.Set(r.root, index)
				r.log.Printf("renderer: focus %d", index)
			}
		}
		r.routeLocated(event)

	case events.Resize:
		r.resize(event.Width, event.Height)

	default:
		log.Panicf("### unhandled event: %#v", event)
	}
	return false
}

// routeLocated delivers a located event to every widget under it,
// innermost first, then dispatches the collected messages.
func (r *Renderer) routeLocated(event events.Event) {
	x, y, ok := events.Location(event)
	if !ok {
		return
	}
	hits := r.tree.Hit(float64(x), float64(y))
	var msgs []any
	for i := len(hits) - 1; i >= 0; i-- {
		widget, found := ui.Find(r.root, hits[i])
		if !found {
			continue
		}
		node, _ := r.tree.Node(hits[i])
		msgs = append(msgs, widget.ProcessEvent(event, node.Rect())...)
	}
	r.dispatch(msgs)
}

func (r *Renderer) dispatch(msgs []any) {
	if r.dispatcher != nil {
		for _, msg := range msgs {
			r.log.Printf("renderer: dispatch %#v", msg)
			r.dispatcher.Dispatch(msg, r.root)
		}
	}
	r.recomputeLayout()
}

// resize pins the root to the terminal size and lays the tree out again.
func (r *Renderer) resize(width, height int) {
	r.width, r.height = width, height
	w, h := float64(width), float64(height)
	r.root.SetSize(&w, &h)
	r.recomputeLayout()
}

func (r *Renderer) recomputeLayout() {
	r.tree = ui.ComputeLayout(r.root, flex.Size{Width: float64(r.width), Height: float64(r.height)})
}
