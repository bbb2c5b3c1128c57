package layout

import (
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"
)

// testBox reports a fixed size and lays its children out loosely at the origin.
type testBox struct {
	size  Size
	calls int
}

func (b *testBox) PerformLayout(clamp BoxClamp, ctx *Ctx) Size {
	b.calls++
	for _, c := range ctx.Children() {
		ctx.PerformChildLayout(c, clamp.Loose())
	}
	return b.size
}

// fitBox grows to fit its children, never smaller than its own size.
type fitBox struct {
	size          Size
	sizedByParent bool
	calls         int
}

func (b *fitBox) PerformLayout(clamp BoxClamp, ctx *Ctx) Size {
	b.calls++
	size := b.size
	for _, c := range ctx.Children() {
		size = size.Max(ctx.PerformChildLayout(c, clamp.Loose()))
	}
	return size
}

func (b *fitBox) OnlySizedByParent() bool { return b.sizedByParent }

// offsetBox places every child at a fixed offset.
type offsetBox struct {
	size   Size
	offset Point
}

func (b *offsetBox) PerformLayout(clamp BoxClamp, ctx *Ctx) Size {
	for _, c := range ctx.Children() {
		ctx.PerformChildLayout(c, clamp.Loose())
		ctx.UpdatePosition(c, b.offset)
	}
	return b.size
}

// passBox forwards its clamp unchanged to each child.
type passBox struct {
	calls int
}

func (b *passBox) PerformLayout(clamp BoxClamp, ctx *Ctx) Size {
	b.calls++
	var size Size
	for _, c := range ctx.Children() {
		size = size.Max(ctx.PerformChildLayout(c, clamp))
	}
	return size
}

// shieldBox hides its box from hit testing but lets children be hit.
type shieldBox struct {
	offsetBox
	blockChildren bool
}

func (b *shieldBox) HitTest(ctx *HitTestCtx, pos Point) HitResult {
	return HitResult{CanHitChild: !b.blockChildren}
}

func newQuietTree() *Tree {
	return NewTree(WithLogger(log.New(io.Discard)))
}

// newFlexTree builds a flex root with one testBox child per size.
func newFlexTree(f *Flex, sizes ...Size) (*Tree, NodeID, []NodeID) {
	tree := newQuietTree()
	root := tree.NewNode(f)
	tree.SetRoot(root)
	ids := make([]NodeID, len(sizes))
	for i, s := range sizes {
		ids[i] = tree.NewNode(&testBox{size: s})
		tree.AppendChild(root, ids[i])
	}
	return tree, root, ids
}

func repeatSize(s Size, n int) []Size {
	out := make([]Size, n)
	for i := range out {
		out[i] = s
	}
	return out
}

func mustRect(t *testing.T, tree *Tree, id NodeID) Rect {
	t.Helper()
	r, ok := tree.Store().LayoutBoxRect(id)
	if !ok {
		t.Fatalf("%v has no layout box", id)
	}
	return r
}

func approxEq(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func approxPt(a, b Point) bool {
	return approxEq(a.X, b.X) && approxEq(a.Y, b.Y)
}

func mustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	fn()
}
