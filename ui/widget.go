package ui

import (
	"cellkit/cell"
	"cellkit/events"
	"cellkit/flex"
)

// Widget is a node of the UI tree. The loop lays the tree out, asks every
// widget to draw into the frame buffer, and routes input events to it.
type Widget interface {
	Style() flex.Style
	// Draw paints the widget and its subtree. node carries the absolute
	// rectangle of the widget and of its descendants.
	Draw(buf *cell.Buffer, node Node) []Cmd
	Children() []Widget
	// AddChild reports false for widgets that cannot hold children.
	AddChild(child Widget) bool
	// ProcessEvent handles one event inside rect and returns the
	// application messages it produced.
	ProcessEvent(event events.Event, rect Rect) []any
	SetFocused(focused bool)
	// SetSize fixes the width and/or height. A nil value leaves the
	// dimension unchanged.
	SetSize(width, height *float64)
	ID() string
	SetID(id string)
}

// Base gives a leaf widget the default behaviour. Widgets embed it and
// override what they need.
type Base struct {
	id      string
	focused bool
	style   flex.Style
}

func NewBase(style flex.Style) Base {
	return Base{style: style}
}

func (b *Base) Style() flex.Style {
	return b.style
}

func (b *Base) SetStyle(style flex.Style) {
	b.style = style
}

func (b *Base) Children() []Widget {
	return nil
}

func (b *Base) AddChild(Widget) bool {
	return false
}

func (b *Base) ProcessEvent(events.Event, Rect) []any {
	return nil
}

func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

func (b *Base) Focused() bool {
	return b.focused
}

func (b *Base) SetSize(width, height *float64) {
	if width != nil {
		b.style.Size.Width = flex.Pt(*width)
	}
	if height != nil {
		b.style.Size.Height = flex.Pt(*height)
	}
}

func (b *Base) ID() string {
	return b.id
}

func (b *Base) SetID(id string) {
	b.id = id
}
