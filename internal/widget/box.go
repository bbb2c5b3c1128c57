package widget

import "github.com/grindlemire/go-boxtree/internal/layout"

var (
	_ layout.Render        = (*SizedBox)(nil)
	_ layout.SizedByParent = (*SizedBox)(nil)
	_ layout.Render        = (*Box)(nil)
)

// SizedBox forces itself and its child to a specific size, as far as the
// parent's clamp permits.
type SizedBox struct {
	Size layout.Size
}

// PerformLayout lays the child out under a clamp fixed to the box size.
func (b *SizedBox) PerformLayout(_ layout.BoxClamp, ctx *layout.Ctx) layout.Size {
	ctx.PerformSingleChildLayout(layout.FixedSize(b.Size))
	return b.Size
}

// OnlySizedByParent reports true: the box ignores its child's size.
func (b *SizedBox) OnlySizedByParent() bool {
	return true
}

// Box prefers a size and lays every child out within it, at its origin.
// Unlike SizedBox its children may be any size up to the box's.
type Box struct {
	Size layout.Size
}

// PerformLayout clamps the preferred size and loosely lays out the children.
func (b *Box) PerformLayout(clamp layout.BoxClamp, ctx *layout.Ctx) layout.Size {
	size := clamp.Clamp(b.Size)
	for _, child := range ctx.Children() {
		ctx.PerformChildLayout(child, layout.MaxSize(size))
	}
	return size
}
