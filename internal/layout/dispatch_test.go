package layout

import (
	"reflect"
	"testing"
)

type snapshot struct {
	Clamp   BoxClamp
	Size    Size
	Pos     Point
	Visual  Rect
	Version uint64
}

func takeSnapshot(tree *Tree) map[NodeID]snapshot {
	out := make(map[NodeID]snapshot)
	for id := range tree.Descendants(tree.Root()) {
		info, ok := tree.Store().LayoutInfo(id)
		if !ok || info.Size == nil {
			continue
		}
		v, _ := info.VisualBox.BoundsRect()
		out[id] = snapshot{Clamp: info.Clamp, Size: *info.Size, Pos: info.Pos, Visual: v, Version: info.Version}
	}
	return out
}

// buildMixedTree builds a wrapping flex with a flexible child, a nested
// fitting chain and a stretched column.
func buildMixedTree() *Tree {
	tree := newQuietTree()
	root := tree.NewNode(&Flex{Wrap: true, AlignItems: AlignCenter})
	tree.SetRoot(root)

	a := tree.NewNode(&testBox{size: Sz(120, 30)})
	tree.AppendChild(root, a)
	tree.SetProps(a, FlexProps(1))

	chain := tree.NewNode(&fitBox{size: Sz(10, 10)})
	inner := tree.NewNode(&fitBox{size: Sz(90, 45)})
	tree.AppendChild(root, chain)
	tree.AppendChild(chain, inner)

	col := tree.NewNode(&Flex{Direction: Column, AlignItems: AlignStretch})
	tree.AppendChild(root, col)
	for _, s := range []Size{Sz(40, 20), Sz(300, 20)} {
		tree.AppendChild(col, tree.NewNode(&testBox{size: s}))
	}
	return tree
}

func TestRunLayoutPass_Idempotent(t *testing.T) {
	tree := buildMixedTree()
	clamp := MaxSize(Sz(400, 400))

	first := tree.RunLayoutPass(clamp)
	if first.Performed == 0 {
		t.Fatal("first pass should lay out every node")
	}
	before := takeSnapshot(tree)

	stats := tree.RunLayoutPass(clamp)
	if stats.Performed != 0 || stats.Roots != 0 {
		t.Errorf("clean pass performed %d layouts from %d roots, want none", stats.Performed, stats.Roots)
	}
	if after := takeSnapshot(tree); !reflect.DeepEqual(before, after) {
		t.Errorf("second pass changed the cache:\nbefore %v\nafter  %v", before, after)
	}
}

func TestRunLayoutPass_SizesRespectClamp(t *testing.T) {
	type tc struct {
		clamp BoxClamp
	}

	tests := map[string]tc{
		"loose":     {clamp: MaxSize(Sz(400, 400))},
		"tight":     {clamp: FixedSize(Sz(150, 90))},
		"narrow":    {clamp: MaxSize(Sz(50, 1000))},
		"unlimited": {clamp: Unlimited()},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := buildMixedTree()
			tree.RunLayoutPass(tt.clamp)
			for id := range tree.Descendants(tree.Root()) {
				info, ok := tree.Store().LayoutInfo(id)
				if !ok || info.Size == nil {
					t.Fatalf("%v was not laid out", id)
				}
				if got := info.Clamp.Clamp(*info.Size); got != *info.Size {
					t.Errorf("%v size %v escapes its clamp %v", id, *info.Size, info.Clamp)
				}
			}
		})
	}
}

func TestRunLayoutPass_CacheHitSkipsParticipant(t *testing.T) {
	tree := newQuietTree()
	parent := &fitBox{size: Sz(10, 10)}
	child := &fitBox{size: Sz(50, 50), sizedByParent: true}
	root := tree.NewNode(parent)
	c := tree.NewNode(child)
	tree.SetRoot(root)
	tree.AppendChild(root, c)

	tree.RunLayoutPass(MaxSize(Sz(100, 100)))
	if parent.calls != 1 || child.calls != 1 {
		t.Fatalf("first pass calls = %d/%d, want 1/1", parent.calls, child.calls)
	}

	tree.MarkDirty(root)
	stats := tree.RunLayoutPass(MaxSize(Sz(100, 100)))
	if parent.calls != 2 {
		t.Errorf("parent calls = %d, want 2", parent.calls)
	}
	if child.calls != 1 {
		t.Errorf("child calls = %d, want 1 (same clamp, still clean)", child.calls)
	}
	if stats.CacheHits != 1 {
		t.Errorf("CacheHits = %d, want 1", stats.CacheHits)
	}
}

func TestRunLayoutPass_ClampChangeRelayouts(t *testing.T) {
	tree := newQuietTree()
	parent := &passBox{}
	child := &testBox{size: Sz(80, 80)}
	root := tree.NewNode(parent)
	c := tree.NewNode(child)
	tree.SetRoot(root)
	tree.AppendChild(root, c)

	tree.RunLayoutPass(MaxSize(Sz(100, 100)))
	tree.RunLayoutPass(MaxSize(Sz(50, 50)))

	if child.calls != 2 {
		t.Errorf("child calls = %d, want 2", child.calls)
	}
	if got, _ := tree.Store().LayoutBoxSize(c); got != Sz(50, 50) {
		t.Errorf("child size = %v, want 50x50", got)
	}
}

func TestRunLayoutPass_DirtyLeafPropagates(t *testing.T) {
	tree := newQuietTree()
	root := tree.NewNode(&fitBox{})
	a := tree.NewNode(&fitBox{})
	b := tree.NewNode(&fitBox{})
	leaf := &fitBox{size: Sz(10, 10)}
	c := tree.NewNode(leaf)
	sibling := tree.NewNode(&testBox{size: Sz(5, 5)})
	tree.SetRoot(root)
	tree.AppendChild(root, a)
	tree.AppendChild(a, b)
	tree.AppendChild(b, c)
	tree.AppendChild(root, sibling)

	clamp := MaxSize(Sz(200, 200))
	tree.RunLayoutPass(clamp)

	versions := make(map[NodeID]uint64)
	for id := range tree.Descendants(root) {
		info, _ := tree.Store().LayoutInfo(id)
		versions[id] = info.Version
	}
	sibInfo, _ := tree.Store().LayoutInfo(sibling)

	leaf.size = Sz(60, 30)
	tree.MarkDirty(c)
	tree.RunLayoutPass(clamp)

	for _, id := range []NodeID{root, a, b, c} {
		if got, _ := tree.Store().LayoutBoxSize(id); got != Sz(60, 30) {
			t.Errorf("%v size = %v, want 60x30", id, got)
		}
		info, _ := tree.Store().LayoutInfo(id)
		if info.Version != versions[id]+1 {
			t.Errorf("%v version = %d, want %d", id, info.Version, versions[id]+1)
		}
	}

	after, _ := tree.Store().LayoutInfo(sibling)
	if after != sibInfo {
		t.Error("sibling entry should keep its identity")
	}
	if after.Version != versions[sibling] {
		t.Errorf("sibling version = %d, want %d", after.Version, versions[sibling])
	}
}

func TestRunLayoutPass_PropagationStops(t *testing.T) {
	type tc struct {
		// stop is the render of the middle node.
		stop Render
		// clamp is the root clamp; the middle node sees its loose version.
		clamp BoxClamp
		// rootRelaid reports whether the root should be performed again.
		rootRelaid bool
	}

	tests := map[string]tc{
		"fitting ancestor propagates": {
			stop:       &fitBox{},
			clamp:      MaxSize(Sz(100, 100)),
			rootRelaid: true,
		},
		"only sized by parent stops": {
			stop:       &fitBox{sizedByParent: true},
			clamp:      MaxSize(Sz(100, 100)),
			rootRelaid: false,
		},
		"fixed clamp propagates": {
			stop:       &passBox{},
			clamp:      FixedSize(Sz(100, 100)),
			rootRelaid: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newQuietTree()
			rootBox := &passBox{}
			root := tree.NewNode(rootBox)
			mid := tree.NewNode(tt.stop)
			leaf := tree.NewNode(&testBox{size: Sz(10, 10)})
			tree.SetRoot(root)
			tree.AppendChild(root, mid)
			tree.AppendChild(mid, leaf)

			tree.RunLayoutPass(tt.clamp)
			calls := rootBox.calls

			tree.MarkDirty(leaf)
			stats := tree.RunLayoutPass(tt.clamp)
			if got := rootBox.calls > calls; got != tt.rootRelaid {
				t.Errorf("root relaid = %v, want %v", got, tt.rootRelaid)
			}
			if stats.Roots != 1 {
				t.Errorf("Roots = %d, want 1", stats.Roots)
			}
		})
	}
}

func TestRunLayoutPass_StructuralChange(t *testing.T) {
	tree, root, ids := newFlexTree(&Flex{}, Sz(10, 10), Sz(20, 10))
	tree.RunLayoutPass(Unlimited())

	extra := tree.NewNode(&testBox{size: Sz(30, 10)})
	tree.InsertChild(root, 1, extra)
	tree.RunLayoutPass(Unlimited())

	if got, _ := tree.Store().LayoutBoxSize(root); got != Sz(60, 10) {
		t.Errorf("root size = %v, want 60x10", got)
	}
	if got := mustRect(t, tree, ids[1]).Origin; got != Pt(40, 0) {
		t.Errorf("shifted sibling at %v, want (40,0)", got)
	}

	tree.RemoveChild(root, extra)
	if _, ok := tree.Store().LayoutInfo(extra); ok {
		t.Error("removed child should lose its cache entry")
	}
	tree.RunLayoutPass(Unlimited())
	if got, _ := tree.Store().LayoutBoxSize(root); got != Sz(30, 10) {
		t.Errorf("root size after removal = %v, want 30x10", got)
	}
}

func TestRunLayoutPass_DetachedDirtyNodeIgnored(t *testing.T) {
	tree := newQuietTree()
	root := tree.NewNode(&testBox{size: Sz(10, 10)})
	tree.SetRoot(root)
	loose := &testBox{size: Sz(5, 5)}
	orphan := tree.NewNode(loose)
	tree.MarkDirty(orphan)

	tree.RunLayoutPass(Unlimited())
	if loose.calls != 0 {
		t.Errorf("detached node laid out %d times", loose.calls)
	}
	if tree.IsDirty(orphan) {
		t.Error("dirty set should be consumed")
	}
}

func TestRunLayoutPass_VisualBoxes(t *testing.T) {
	tree := newQuietTree()
	root := tree.NewNode(&offsetBox{size: Sz(100, 100), offset: Pt(80, 80)})
	child := tree.NewNode(&testBox{size: Sz(50, 40)})
	tree.SetRoot(root)
	tree.AppendChild(root, child)
	tree.RunLayoutPass(Unlimited())

	info, _ := tree.Store().LayoutInfo(root)
	if info.VisualBox.Rect == nil || *info.VisualBox.Rect != NewRect(0, 0, 100, 100) {
		t.Errorf("own visual rect = %v", info.VisualBox.Rect)
	}
	if info.VisualBox.Subtree == nil || *info.VisualBox.Subtree != NewRect(80, 80, 50, 40) {
		t.Errorf("subtree rect = %v", info.VisualBox.Subtree)
	}

	// A transform only refreshes visual boxes.
	tree.SetTransform(child, Transform{}.Scale(Point{}, Pt(2, 2)))
	stats := tree.RunLayoutPass(Unlimited())
	if stats.Performed != 0 {
		t.Errorf("transform caused %d layouts", stats.Performed)
	}
	if got := *info.VisualBox.Subtree; got != NewRect(80, 80, 100, 80) {
		t.Errorf("scaled subtree rect = %v, want (80,80 100x80)", got)
	}
	bounds, _ := info.VisualBox.BoundsRect()
	if bounds != NewRect(0, 0, 180, 160) {
		t.Errorf("bounds = %v", bounds)
	}
}
