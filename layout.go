// layout.go re-exports layout types from internal/layout and internal/widget.
// Any changes to those types must be mirrored here.
package boxtree

import (
	"github.com/grindlemire/go-boxtree/internal/layout"
	"github.com/grindlemire/go-boxtree/internal/widget"
)

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Rect represents a rectangle with an origin and a size.
type Rect = layout.Rect

// Transform is a node's local affine transform.
type Transform = layout.Transform

// BoxClamp is the size range a parent allows a child.
type BoxClamp = layout.BoxClamp

// Tree is the arena of layout nodes.
type Tree = layout.Tree

// NodeID addresses a node in a Tree.
type NodeID = layout.NodeID

// Render is the interface every layout participant implements.
type Render = layout.Render

// Ctx is handed to Render.PerformLayout.
type Ctx = layout.Ctx

// Props are the side-channel properties a parent reads from its children.
type Props = layout.Props

// PassStats summarises one layout pass.
type PassStats = layout.PassStats

// Flex lays children out in rows or columns.
type Flex = layout.Flex

// SizedBox forces its child to a fixed size.
type SizedBox = widget.SizedBox

// Box prefers a size and lays its children out within it.
type Box = widget.Box

// Stack overlaps its children.
type Stack = widget.Stack

// StackFit determines how a Stack passes its clamp on.
type StackFit = widget.StackFit

const (
	StackLoose       = widget.StackLoose
	StackExpand      = widget.StackExpand
	StackPassthrough = widget.StackPassthrough
)

// Visibility shows or hides its child.
type Visibility = widget.Visibility

// IgnorePointer hides its child from hit testing.
type IgnorePointer = widget.IgnorePointer

// Inf is the unbounded extent.
var Inf = layout.Inf

// NewTree creates an empty tree.
func NewTree(opts ...layout.Option) *Tree {
	return layout.NewTree(opts...)
}

// Sz creates a Size.
func Sz(w, h float32) Size {
	return layout.Sz(w, h)
}

// Pt creates a Point.
func Pt(x, y float32) Point {
	return layout.Pt(x, y)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float32) Rect {
	return layout.NewRect(x, y, width, height)
}

// Unlimited returns a clamp with no bounds.
func Unlimited() BoxClamp {
	return layout.Unlimited()
}

// FixedSize returns a clamp satisfied only by size.
func FixedSize(size Size) BoxClamp {
	return layout.FixedSize(size)
}

// MaxSize returns a clamp bounded above by size.
func MaxSize(size Size) BoxClamp {
	return layout.MaxSize(size)
}

// MinSize returns a clamp bounded below by size.
func MinSize(size Size) BoxClamp {
	return layout.MinSize(size)
}

// Expanded declares id a flexible child with the given factor.
func Expanded(t *Tree, id NodeID, flex float32) {
	widget.Expanded(t, id, flex)
}

// AlignSelf overrides the cross-axis alignment of id.
func AlignSelf(t *Tree, id NodeID, a Align) {
	widget.AlignSelf(t, id, a)
}

// InParentLayout lays id out against its Stack parent's final size.
func InParentLayout(t *Tree, id NodeID) {
	widget.InParentLayout(t, id)
}
