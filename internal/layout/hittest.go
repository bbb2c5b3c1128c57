package layout

import "slices"

// HitTestCtx is handed to HitTester implementations.
type HitTestCtx struct {
	tree *Tree
	id   NodeID
}

// ID returns the node under test.
func (c *HitTestCtx) ID() NodeID {
	return c.id
}

// BoxRect returns the node's box in its own space.
func (c *HitTestCtx) BoxRect() (Rect, bool) {
	size, ok := c.tree.store.LayoutBoxSize(c.id)
	if !ok {
		return Rect{}, false
	}
	return RectFromSize(size), true
}

// HitTest returns the deepest node under the global point pos. Children are
// tested topmost first, in reverse tree order. Subtrees whose visual box
// does not contain the point are skipped.
func (t *Tree) HitTest(pos Point) (NodeID, bool) {
	if t.root.IsZero() {
		return NodeID{}, false
	}
	return t.hitTest(t.root, pos)
}

// HitTestPath returns the root-to-deepest chain of the node hit at pos.
func (t *Tree) HitTestPath(pos Point) []NodeID {
	hit, ok := t.HitTest(pos)
	if !ok {
		return nil
	}
	path := slices.Collect(t.Ancestors(hit))
	slices.Reverse(path)
	return path
}

// hitTest tests id with pos in id's local space.
func (t *Tree) hitTest(id NodeID, pos Point) (NodeID, bool) {
	info, ok := t.store.LayoutInfo(id)
	if !ok || info.Size == nil {
		return NodeID{}, false
	}
	if bounds, ok := info.VisualBox.BoundsRect(); ok && !bounds.Contains(pos) {
		return NodeID{}, false
	}

	n := t.mustGet(id)
	res := HitResult{Hit: RectFromSize(*info.Size).Contains(pos), CanHitChild: true}
	if h, ok := n.render.(HitTester); ok {
		res = h.HitTest(&HitTestCtx{tree: t, id: id}, pos)
	}
	if res.CanHitChild {
		for i := len(n.children) - 1; i >= 0; i-- {
			c := n.children[i]
			if hit, ok := t.hitTest(c, t.MapFromParent(c, pos)); ok {
				return hit, true
			}
		}
	}
	if res.Hit {
		return id, true
	}
	return NodeID{}, false
}
