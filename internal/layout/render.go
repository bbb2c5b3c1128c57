package layout

// Render is the capability every layout participant implements.
// The layout engine works entirely with this interface, enabling custom implementations.
type Render interface {
	// PerformLayout computes the node's size under clamp. Children are laid
	// out through ctx.PerformChildLayout and placed with ctx.UpdatePosition.
	// The returned size is clamped by the engine before it is cached.
	PerformLayout(clamp BoxClamp, ctx *Ctx) Size
}

// SizedByParent is implemented by participants whose size depends only on the
// incoming clamp, never on their children. When such a node relayouts, its
// ancestors do not need to.
type SizedByParent interface {
	OnlySizedByParent() bool
}

// HitResult is a participant's answer to a hit test.
type HitResult struct {
	// Hit reports whether the point hits the node itself.
	Hit bool
	// CanHitChild reports whether the node's children may be tested.
	CanHitChild bool
}

// HitTester customises hit testing. Participants without it are hit when the
// point lies inside their box, and always let their children be tested.
type HitTester interface {
	HitTest(ctx *HitTestCtx, pos Point) HitResult
}

func onlySizedByParent(r Render) bool {
	s, ok := r.(SizedByParent)
	return ok && s.OnlySizedByParent()
}
