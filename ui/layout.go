package ui

import (
	"fmt"
	"math"
	"strings"

	"cellkit/flex"
)

// Rect is an absolute screen rectangle in cell units.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the cell (x, y) lies in [X, X+Width) × [Y, Y+Height).
func (r Rect) Contains(x, y float64) bool {
	return r.X <= x && r.X+r.Width > x &&
		r.Y <= y && r.Y+r.Height > y
}

// Round snaps the rectangle to whole cells.
func (r Rect) Round() (x, y, width, height int) {
	x, y = int(math.Round(r.X)), int(math.Round(r.Y))
	width = int(math.Round(r.X+r.Width)) - x
	height = int(math.Round(r.Y+r.Height)) - y
	return x, y, width, height
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect{X: %g, Y: %g, Width: %g, Height: %g}", r.X, r.Y, r.Width, r.Height)
}

type layoutNode struct {
	rect     Rect
	children []int
}

// Tree is the computed layout of a widget tree. Slot i holds the widget
// with preorder index i.
type Tree struct {
	nodes []layoutNode
}

// Node is a view of one slot of a Tree.
type Node struct {
	tree  *Tree
	index int
}

// ComputeLayout builds the flex tree for root, solves it against the
// available size and stores absolute rectangles in preorder.
func ComputeLayout(root Widget, available flex.Size) *Tree {
	flexRoot := buildFlexNode(root)
	layout := flex.Compute(flexRoot, available)
	tree := &Tree{}
	tree.add(layout, 0, 0)
	return tree
}

func buildFlexNode(widget Widget) *flex.Node {
	node := flex.NewNode(widget.Style())
	for _, child := range widget.Children() {
		node.Children = append(node.Children, buildFlexNode(child))
	}
	return node
}

func (t *Tree) add(layout *flex.Layout, parentX, parentY float64) int {
	index := len(t.nodes)
	rect := Rect{X: parentX + layout.X, Y: parentY + layout.Y, Width: layout.Width, Height: layout.Height}
	t.nodes = append(t.nodes, layoutNode{rect: rect})
	children := make([]int, 0, len(layout.Children))
	for _, child := range layout.Children {
		children = append(children, t.add(child, rect.X, rect.Y))
	}
	t.nodes[index].children = children
	return index
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) Root() Node {
	return Node{tree: t, index: 0}
}

func (t *Tree) Node(index int) (Node, bool) {
	if index < 0 || index >= len(t.nodes) {
		return Node{}, false
	}
	return Node{tree: t, index: index}, true
}

func (t *Tree) String() string {
	if len(t.nodes) == 0 {
		return "Tree{}"
	}
	buf := &strings.Builder{}
	t.Root().toString(buf, "")
	return buf.String()
}

func (n Node) Index() int {
	return n.index
}

func (n Node) Rect() Rect {
	if n.tree == nil {
		return Rect{}
	}
	return n.tree.nodes[n.index].rect
}

func (n Node) Children() []Node {
	if n.tree == nil {
		return nil
	}
	indices := n.tree.nodes[n.index].children
	result := make([]Node, len(indices))
	for i, index := range indices {
		result[i] = Node{tree: n.tree, index: index}
	}
	return result
}

// Child returns the i-th child, or false when there is none.
func (n Node) Child(i int) (Node, bool) {
	if n.tree == nil {
		return Node{}, false
	}
	indices := n.tree.nodes[n.index].children
	if i < 0 || i >= len(indices) {
		return Node{}, false
	}
	return Node{tree: n.tree, index: indices[i]}, true
}

func (n Node) String() string {
	return fmt.Sprintf("Node[%d]%s", n.index, n.Rect())
}

func (n Node) toString(buf *strings.Builder, offset string) {
	buf.WriteString(offset)
	buf.WriteString(n.String())
	buf.WriteByte('\n')
	for _, child := range n.Children() {
		child.toString(buf, offset+"| ")
	}
}
