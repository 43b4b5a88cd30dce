package flex

import (
	yoga "github.com/kjk/flex"
)

// Compute solves the tree once against the available size and returns a
// layout tree with the same shape as root.
func Compute(root *Node, available Size) *Layout {
	width, ok := root.Style.Size.Width.resolve(available.Width)
	if !ok {
		width = available.Width
	}
	height, ok := root.Style.Size.Height.resolve(available.Height)
	if !ok {
		height = available.Height
	}
	width = applyMin(width, root.Style.MinSize.Width, available.Width)
	height = applyMin(height, root.Style.MinSize.Height, available.Height)

	config := yoga.NewConfig()
	config.SetPointScaleFactor(0) // rounding happens at draw time
	solved := build(root, config)
	solved.StyleSetWidth(float32(width))
	solved.StyleSetHeight(float32(height))
	yoga.CalculateLayout(solved, float32(width), float32(height), yoga.DirectionLTR)

	return collect(root, solved)
}

func build(node *Node, config *yoga.Config) *yoga.Node {
	result := yoga.NewNodeWithConfig(config)
	apply(result, node.Style)
	for i, child := range node.Children {
		result.InsertChild(build(child, config), i)
	}
	return result
}

func apply(node *yoga.Node, style Style) {
	if style.Direction == Row {
		node.StyleSetFlexDirection(yoga.FlexDirectionRow)
	} else {
		node.StyleSetFlexDirection(yoga.FlexDirectionColumn)
	}
	node.StyleSetFlexGrow(float32(style.FlexGrow))
	node.StyleSetFlexShrink(float32(style.FlexShrink))

	switch style.FlexBasis.Unit {
	case Points:
		node.StyleSetFlexBasis(float32(style.FlexBasis.Value))
	case Percent:
		node.StyleSetFlexBasisPercent(percent(style.FlexBasis))
	case Auto:
		yoga.NodeStyleSetFlexBasisAuto(node)
	}

	switch style.Size.Width.Unit {
	case Points:
		node.StyleSetWidth(float32(style.Size.Width.Value))
	case Percent:
		node.StyleSetWidthPercent(percent(style.Size.Width))
	case Auto:
		node.StyleSetWidthAuto()
	}
	switch style.Size.Height.Unit {
	case Points:
		node.StyleSetHeight(float32(style.Size.Height.Value))
	case Percent:
		node.StyleSetHeightPercent(percent(style.Size.Height))
	case Auto:
		node.StyleSetHeightAuto()
	}

	switch style.MinSize.Width.Unit {
	case Points:
		node.StyleSetMinWidth(float32(style.MinSize.Width.Value))
	case Percent:
		node.StyleSetMinWidthPercent(percent(style.MinSize.Width))
	}
	switch style.MinSize.Height.Unit {
	case Points:
		node.StyleSetMinHeight(float32(style.MinSize.Height.Value))
	case Percent:
		node.StyleSetMinHeightPercent(percent(style.MinSize.Height))
	}
}

// percent converts a fraction into the 0..100 scale the solver expects.
func percent(d Dimension) float32 {
	return float32(d.Value * 100)
}

func collect(node *Node, solved *yoga.Node) *Layout {
	result := &Layout{
		X:      float64(solved.LayoutGetLeft()),
		Y:      float64(solved.LayoutGetTop()),
		Width:  float64(solved.LayoutGetWidth()),
		Height: float64(solved.LayoutGetHeight()),
	}
	if len(node.Children) == 0 {
		return result
	}
	result.Children = make([]*Layout, len(node.Children))
	for i, child := range node.Children {
		result.Children[i] = collect(child, solved.GetChild(i))
	}
	return result
}

func applyMin(size float64, min Dimension, parent float64) float64 {
	if min, ok := min.resolve(parent); ok && size < min {
		return min
	}
	return size
}
