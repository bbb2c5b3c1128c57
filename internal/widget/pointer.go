package widget

import "github.com/grindlemire/go-boxtree/internal/layout"

var (
	_ layout.Render    = (*Visibility)(nil)
	_ layout.HitTester = (*Visibility)(nil)
	_ layout.Render    = (*IgnorePointer)(nil)
	_ layout.HitTester = (*IgnorePointer)(nil)
)

// Visibility shows or hides its single child. A hidden child takes no space
// and cannot be hit.
type Visibility struct {
	Visible bool
}

// PerformLayout passes the clamp through when visible and collapses otherwise.
func (v *Visibility) PerformLayout(clamp layout.BoxClamp, ctx *layout.Ctx) layout.Size {
	if !v.Visible {
		return layout.Size{}
	}
	return ctx.AssertPerformSingleChildLayout(clamp)
}

// HitTest never hits the wrapper itself.
func (v *Visibility) HitTest(_ *layout.HitTestCtx, _ layout.Point) layout.HitResult {
	return layout.HitResult{CanHitChild: v.Visible}
}

// IgnorePointer lays its child out unchanged but can hide it from hit testing.
type IgnorePointer struct {
	Ignore bool
}

// PerformLayout passes the clamp through to the child.
func (p *IgnorePointer) PerformLayout(clamp layout.BoxClamp, ctx *layout.Ctx) layout.Size {
	return ctx.AssertPerformSingleChildLayout(clamp)
}

// HitTest never hits the wrapper itself.
func (p *IgnorePointer) HitTest(_ *layout.HitTestCtx, _ layout.Point) layout.HitResult {
	return layout.HitResult{CanHitChild: !p.Ignore}
}
