package layout

// Props are auxiliary layout properties a parent may read from a child
// without knowing the child's concrete Render type. They are stored in a
// sparse side map on the Tree, independent of the node's participant.
type Props struct {
	// Flex is the child's share of the leftover main-axis space of its line.
	// Only meaningful when HasFlex is set.
	Flex    float32
	HasFlex bool

	// AlignSelf overrides the container's cross-axis alignment (nil = inherit).
	AlignSelf *Align

	// InParentLayout asks a Stack to lay the child out against the stack's
	// final size instead of letting it contribute to that size.
	InParentLayout bool
}

// FlexProps returns Props declaring a flex factor.
func FlexProps(flex float32) Props {
	return Props{Flex: flex, HasFlex: true}
}

func (p Props) isZero() bool {
	return !p.HasFlex && p.AlignSelf == nil && !p.InParentLayout
}

// SetProps attaches props to id. Parents read props during their own
// layout, so the parent is marked dirty.
func (t *Tree) SetProps(id NodeID, p Props) {
	t.mustGet(id)
	if p.isZero() {
		delete(t.props, id)
	} else {
		t.props[id] = p
	}
	if parent, ok := t.Parent(id); ok {
		t.MarkDirty(parent)
	}
}

// Props returns the props attached to id.
func (t *Tree) Props(id NodeID) (Props, bool) {
	p, ok := t.props[id]
	return p, ok
}
