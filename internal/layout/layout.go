package layout

// VisualBox describes what a node covers on screen.
type VisualBox struct {
	// Rect is the node's own paint bounds, in its local space.
	Rect *Rect

	// Subtree is the union of the descendants' bounds, in the node's local space.
	Subtree *Rect
}

// BoundsRect returns the union of the own and subtree bounds, or whichever is present.
func (v VisualBox) BoundsRect() (Rect, bool) {
	switch {
	case v.Rect != nil && v.Subtree != nil:
		return v.Rect.Union(*v.Subtree), true
	case v.Rect != nil:
		return *v.Rect, true
	case v.Subtree != nil:
		return *v.Subtree, true
	default:
		return Rect{}, false
	}
}

// LayoutInfo holds the cached layout result of one node.
type LayoutInfo struct {
	// Clamp is the constraint the node was last measured under.
	Clamp BoxClamp

	// Size is the measured size; nil means not laid out in this pass.
	Size *Size

	// Pos is the offset from the parent's origin.
	Pos Point

	VisualBox VisualBox

	// Version counts how many times the participant computed this entry.
	Version uint64
}

// Measured reports whether the entry holds a size.
func (l *LayoutInfo) Measured() bool {
	return l.Size != nil
}

// BoxRect returns the node's box in its parent's space.
func (l *LayoutInfo) BoxRect() (Rect, bool) {
	if l.Size == nil {
		return Rect{}, false
	}
	return Rect{Origin: l.Pos, Size: *l.Size}, true
}
