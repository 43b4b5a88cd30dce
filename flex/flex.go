package flex

import (
	"fmt"
	"strings"
)

type Direction int

const (
	Row Direction = iota
	Column
)

func (d Direction) String() string {
	switch d {
	case Row:
		return "Row"
	case Column:
		return "Column"
	}
	return "UNKNOWN DIRECTION"
}

type Unit int

const (
	Undefined Unit = iota
	Auto
	Points
	Percent
)

// Dimension is a size preference. Percent values are fractions of the
// parent's size: 1.0 is the whole parent.
type Dimension struct {
	Unit  Unit
	Value float64
}

var AutoDim = Dimension{Unit: Auto}

func Pt(value float64) Dimension {
	return Dimension{Unit: Points, Value: value}
}

func Pct(value float64) Dimension {
	return Dimension{Unit: Percent, Value: value}
}

func (d Dimension) resolve(parent float64) (float64, bool) {
	switch d.Unit {
	case Points:
		return d.Value, true
	case Percent:
		return d.Value * parent, true
	}
	return 0, false
}

func (d Dimension) String() string {
	switch d.Unit {
	case Points:
		return fmt.Sprintf("%gpt", d.Value)
	case Percent:
		return fmt.Sprintf("%g%%", d.Value*100)
	case Auto:
		return "auto"
	}
	return "undefined"
}

type Dimensions struct {
	Width, Height Dimension
}

type Size struct {
	Width, Height float64
}

// Style holds the preferences of one node. The zero value is valid but does
// not shrink; DefaultStyle matches the usual flexbox defaults.
type Style struct {
	Direction  Direction
	Size       Dimensions
	MinSize    Dimensions
	FlexGrow   float64
	FlexShrink float64
	FlexBasis  Dimension
}

func DefaultStyle() Style {
	return Style{
		Size:       Dimensions{Width: AutoDim, Height: AutoDim},
		MinSize:    Dimensions{Width: AutoDim, Height: AutoDim},
		FlexShrink: 1,
		FlexBasis:  AutoDim,
	}
}

func (s Style) String() string {
	return fmt.Sprintf("Style{Direction: %s, Size: %s×%s, MinSize: %s×%s, Grow: %g, Shrink: %g, Basis: %s}",
		s.Direction, s.Size.Width, s.Size.Height, s.MinSize.Width, s.MinSize.Height, s.FlexGrow, s.FlexShrink, s.FlexBasis)
}

type Node struct {
	Style    Style
	Children []*Node
}

func NewNode(style Style, children ...*Node) *Node {
	return &Node{Style: style, Children: children}
}

// Layout is the solved geometry of a Node. X and Y are relative to the
// parent's origin.
type Layout struct {
	X, Y          float64
	Width, Height float64
	Children      []*Layout
}

func (l *Layout) String() string {
	buf := &strings.Builder{}
	l.toString(buf, "")
	return buf.String()
}

func (l *Layout) toString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sLayout{X: %g, Y: %g, Width: %g, Height: %g}\n", offset, l.X, l.Y, l.Width, l.Height)
	for _, child := range l.Children {
		child.toString(buf, offset+"| ")
	}
}
