package layout

import (
	"cmp"
	"slices"
	"time"
)

// PassStats summarises one layout pass.
type PassStats struct {
	// Roots is the number of relayout roots that had to be re-measured.
	Roots int
	// Performed counts PerformLayout invocations.
	Performed int
	// CacheHits counts child layout requests served from the Store.
	CacheHits int
}

// pass holds the state of one RunLayoutPass call.
type pass struct {
	tree    *Tree
	stats   PassStats
	touched map[NodeID]struct{}
}

func (p *pass) touch(id NodeID) {
	p.touched[id] = struct{}{}
}

// layout measures id under clamp, serving the cached size when the node is
// clean and the clamp is unchanged.
func (p *pass) layout(id NodeID, clamp BoxClamp) Size {
	t := p.tree
	n := t.mustGet(id)
	info := t.store.LayoutInfoOrDefault(id)
	if info.Size != nil && info.Clamp == clamp {
		p.stats.CacheHits++
		return *info.Size
	}

	size := clamp.Clamp(n.render.PerformLayout(clamp, &Ctx{pass: p, id: id}))
	info.Clamp = clamp
	info.Size = &size
	info.Version++
	p.stats.Performed++
	p.touch(id)
	return size
}

// RunLayoutPass lays out the tree under clamp. Only dirty nodes, their
// dependent ancestors, and nodes whose clamp changed are re-measured.
//
// The pass runs to completion; the tree must not be mutated until it returns.
func (t *Tree) RunLayoutPass(clamp BoxClamp) PassStats {
	t.mustOutsidePass("RunLayoutPass")
	if t.root.IsZero() {
		return PassStats{}
	}
	start := time.Now()
	roots := t.relayoutRoots()

	t.inPass = true
	defer func() { t.inPass = false }()

	p := &pass{tree: t, touched: make(map[NodeID]struct{})}
	p.layout(t.root, clamp)
	if p.stats.Performed > 0 {
		p.stats.Roots++
	}
	for _, id := range roots {
		info, ok := t.store.LayoutInfo(id)
		if !ok || info.Size != nil || !t.attached(id) {
			continue
		}
		t.logger.Debug("relayout", "node", id, "clamp", info.Clamp)
		p.layout(id, info.Clamp)
		p.stats.Roots++
	}
	p.updateVisualBoxes()

	t.logger.Debug("layout pass",
		"roots", p.stats.Roots,
		"performed", p.stats.Performed,
		"cache_hits", p.stats.CacheHits,
		"elapsed", time.Since(start))
	return p.stats
}

// relayoutRoots consumes the dirty set. Each dirty node loses its cached
// size, and so does every ancestor that may depend on it: the walk stops
// after an ancestor that is only sized by its parent, since that ancestor's
// size cannot change. A cached fixed clamp does not stop the walk: Flex
// derives stretched clamps from the child's previous size. The topmost node
// reached is re-measured with its cached clamp, shallowest first.
func (t *Tree) relayoutRoots() []NodeID {
	seen := make(map[NodeID]struct{})
	var roots []NodeID
	for id := range t.dirty {
		if !t.Alive(id) {
			continue
		}
		root := id
		if info, ok := t.store.LayoutInfo(id); ok {
			info.Size = nil
		}
		for a := range t.Ancestors(id) {
			if a == id {
				continue
			}
			ainfo, ok := t.store.LayoutInfo(a)
			if !ok || ainfo.Size == nil {
				break
			}
			ainfo.Size = nil
			root = a
			if onlySizedByParent(t.mustGet(a).render) {
				break
			}
		}
		if _, dup := seen[root]; !dup {
			seen[root] = struct{}{}
			roots = append(roots, root)
		}
	}
	clear(t.dirty)

	depth := make(map[NodeID]int, len(roots))
	for _, id := range roots {
		depth[id] = t.Depth(id)
	}
	slices.SortFunc(roots, func(a, b NodeID) int {
		return cmp.Or(cmp.Compare(depth[a], depth[b]), cmp.Compare(a.index, b.index))
	})
	return roots
}

// updateVisualBoxes recomputes the visual box of every node touched by the
// pass, and of their ancestors, deepest first.
func (p *pass) updateVisualBoxes() {
	t := p.tree
	for id := range t.visualDirty {
		if t.Alive(id) {
			p.touch(id)
		}
	}
	clear(t.visualDirty)

	depth := make(map[NodeID]int)
	for id := range p.touched {
		for a := range t.Ancestors(id) {
			if _, ok := depth[a]; ok {
				break
			}
			depth[a] = t.Depth(a)
		}
	}
	order := make([]NodeID, 0, len(depth))
	for id := range depth {
		order = append(order, id)
	}
	slices.SortFunc(order, func(a, b NodeID) int {
		return cmp.Or(cmp.Compare(depth[b], depth[a]), cmp.Compare(a.index, b.index))
	})
	for _, id := range order {
		t.updateVisualBox(id)
	}
}

func (t *Tree) updateVisualBox(id NodeID) {
	info, ok := t.store.LayoutInfo(id)
	if !ok || info.Size == nil {
		return
	}
	own := RectFromSize(*info.Size)
	info.VisualBox.Rect = &own
	info.VisualBox.Subtree = nil

	var subtree Rect
	var found bool
	for _, c := range t.mustGet(id).children {
		cinfo, ok := t.store.LayoutInfo(c)
		if !ok {
			continue
		}
		b, ok := cinfo.VisualBox.BoundsRect()
		if !ok {
			continue
		}
		b = t.rectToParent(c, b)
		if !found {
			subtree, found = b, true
			continue
		}
		subtree = subtree.Union(b)
	}
	if found {
		info.VisualBox.Subtree = &subtree
	}
}

// rectToParent maps a rect in id's local space to the axis-aligned bounds of
// its image in the parent's space.
func (t *Tree) rectToParent(id NodeID, r Rect) Rect {
	corners := r.Corners()
	pts := corners[:]
	for i := range pts {
		pts[i] = t.MapToParent(id, pts[i])
	}
	return boundsOf(pts)
}
