package layout

// MapToParent maps pos from id's local space into its parent's space: the
// node's transform is applied first, then its cached position. Nodes that
// were never laid out pass the point through.
//
// The mapper reads cached layout only and never triggers a pass.
func (t *Tree) MapToParent(id NodeID, pos Point) Point {
	offset, ok := t.store.LayoutBoxPos(id)
	if !ok {
		return pos
	}
	if tr := t.mustGet(id).transform; tr != nil {
		pos = tr.Transform(pos)
	}
	return pos.Add(offset)
}

// MapFromParent is the inverse of MapToParent. A non-invertible transform
// is skipped, leaving only the translation undone.
func (t *Tree) MapFromParent(id NodeID, pos Point) Point {
	offset, ok := t.store.LayoutBoxPos(id)
	if !ok {
		return pos
	}
	pos = pos.Sub(offset)
	if tr := t.mustGet(id).transform; tr != nil && invertible(*tr) {
		pos = tr.Invert().Transform(pos)
	}
	return pos
}

// MapToGlobal maps pos from id's local space into global space, the local
// space of the root.
func (t *Tree) MapToGlobal(pos Point, id NodeID) Point {
	for a := range t.Ancestors(id) {
		if a == t.root {
			break
		}
		pos = t.MapToParent(a, pos)
	}
	return pos
}

// MapFromGlobal maps pos from global space into id's local space.
func (t *Tree) MapFromGlobal(pos Point, id NodeID) Point {
	var chain []NodeID
	for a := range t.Ancestors(id) {
		if a == t.root {
			break
		}
		chain = append(chain, a)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		pos = t.MapFromParent(chain[i], pos)
	}
	return pos
}

// GlobalRect returns the axis-aligned global bounds of id's box.
func (t *Tree) GlobalRect(id NodeID) (Rect, bool) {
	size, ok := t.store.LayoutBoxSize(id)
	if !ok {
		return Rect{}, false
	}
	corners := RectFromSize(size).Corners()
	return boundsOf(t.GlobalQuad(id, corners)), true
}

// GlobalQuad maps the given local points of id into global space.
func (t *Tree) GlobalQuad(id NodeID, pts [4]Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = t.MapToGlobal(p, id)
	}
	return out
}
