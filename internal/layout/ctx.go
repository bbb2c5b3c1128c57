package layout

import (
	"fmt"
	"slices"
)

// Ctx is handed to a participant's PerformLayout. It scopes layout requests
// to the node being laid out and its direct children.
type Ctx struct {
	pass *pass
	id   NodeID
}

// ID returns the node being laid out.
func (c *Ctx) ID() NodeID {
	return c.id
}

// Children returns the node's children in tree order.
// The returned slice must not be modified.
func (c *Ctx) Children() []NodeID {
	return c.pass.tree.Children(c.id)
}

// ChildrenReversed returns a copy of the node's children in reverse order.
func (c *Ctx) ChildrenReversed() []NodeID {
	rev := slices.Clone(c.Children())
	slices.Reverse(rev)
	return rev
}

// SingleChild returns the first child, if the node has any.
func (c *Ctx) SingleChild() (NodeID, bool) {
	children := c.Children()
	if len(children) == 0 {
		return NodeID{}, false
	}
	return children[0], true
}

// AssertSingleChild returns the only child and panics unless there is exactly one.
func (c *Ctx) AssertSingleChild() NodeID {
	children := c.Children()
	if len(children) != 1 {
		panic(fmt.Sprintf("layout: %v expects a single child, has %d", c.id, len(children)))
	}
	return children[0]
}

// PerformChildLayout lays out child under clamp and returns its size.
// A child whose cached clamp matches and whose size is still valid is not
// laid out again.
func (c *Ctx) PerformChildLayout(child NodeID, clamp BoxClamp) Size {
	c.mustBeChild(child)
	return c.pass.layout(child, clamp)
}

// PerformSingleChildLayout lays out the first child, if any.
func (c *Ctx) PerformSingleChildLayout(clamp BoxClamp) (Size, bool) {
	child, ok := c.SingleChild()
	if !ok {
		return Size{}, false
	}
	return c.pass.layout(child, clamp), true
}

// AssertPerformSingleChildLayout lays out the only child and panics unless
// there is exactly one.
func (c *Ctx) AssertPerformSingleChildLayout(clamp BoxClamp) Size {
	return c.pass.layout(c.AssertSingleChild(), clamp)
}

// UpdatePosition places child relative to this node's origin.
// Positions never trigger relayout.
func (c *Ctx) UpdatePosition(child NodeID, pos Point) {
	c.mustBeChild(child)
	info := c.pass.tree.store.LayoutInfoOrDefault(child)
	if info.Pos != pos {
		info.Pos = pos
		c.pass.touch(child)
	}
}

// WidgetBoxRect returns the child's box in this node's space, if the child
// has been measured.
func (c *Ctx) WidgetBoxRect(child NodeID) (Rect, bool) {
	c.mustBeChild(child)
	return c.pass.tree.store.LayoutBoxRect(child)
}

// MustWidgetBoxRect is WidgetBoxRect for children that must have been
// measured earlier in this layout call.
func (c *Ctx) MustWidgetBoxRect(child NodeID) Rect {
	r, ok := c.WidgetBoxRect(child)
	if !ok {
		panic(fmt.Sprintf("layout: %v read the box of unmeasured child %v", c.id, child))
	}
	return r
}

// Props returns the side-channel props of child.
func (c *Ctx) Props(child NodeID) Props {
	p, _ := c.pass.tree.Props(child)
	return p
}

// FlexFactor returns the flex factor child declares, if any.
func (c *Ctx) FlexFactor(child NodeID) (float32, bool) {
	p := c.Props(child)
	return p.Flex, p.HasFlex
}

func (c *Ctx) mustBeChild(child NodeID) {
	if p, ok := c.pass.tree.Parent(child); !ok || p != c.id {
		panic(fmt.Sprintf("layout: %v is not a child of %v", child, c.id))
	}
}
