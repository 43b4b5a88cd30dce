package ui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Cmd is a terminal action a widget asks for during draw. The loop executes
// commands after the frame buffer has been written, in emission order.
type Cmd interface {
	cmd()
	Execute(w io.Writer) error
}

// MoveTo places the terminal cursor on a zero-based cell.
type MoveTo struct {
	X, Y int
}

type ShowCursor struct{}

type HideCursor struct{}

func (MoveTo) cmd()     {}
func (ShowCursor) cmd() {}
func (HideCursor) cmd() {}

func (c MoveTo) Execute(w io.Writer) error {
	_, err := fmt.Fprintf(w, termenv.CSI+termenv.CursorPositionSeq, c.Y+1, c.X+1)
	return err
}

func (ShowCursor) Execute(w io.Writer) error {
	_, err := io.WriteString(w, termenv.CSI+termenv.ShowCursorSeq)
	return err
}

func (HideCursor) Execute(w io.Writer) error {
	_, err := io.WriteString(w, termenv.CSI+termenv.HideCursorSeq)
	return err
}

func (c MoveTo) String() string {
	return fmt.Sprintf("MoveTo(%d, %d)", c.X, c.Y)
}

func (ShowCursor) String() string {
	return "ShowCursor"
}

func (HideCursor) String() string {
	return "HideCursor"
}
