package widget

import "github.com/grindlemire/go-boxtree/internal/layout"

// Expanded declares id as a flexible child with the given factor, keeping
// any other props it already has.
func Expanded(t *layout.Tree, id layout.NodeID, flex float32) {
	p, _ := t.Props(id)
	p.Flex, p.HasFlex = flex, true
	t.SetProps(id, p)
}

// AlignSelf overrides the container's cross-axis alignment for id.
func AlignSelf(t *layout.Tree, id layout.NodeID, a layout.Align) {
	p, _ := t.Props(id)
	p.AlignSelf = &a
	t.SetProps(id, p)
}

// InParentLayout asks a Stack parent to lay id out against its final size.
func InParentLayout(t *layout.Tree, id layout.NodeID) {
	p, _ := t.Props(id)
	p.InParentLayout = true
	t.SetProps(id, p)
}
