package widget

import (
	"math"

	"github.com/grindlemire/go-boxtree/internal/layout"
)

var _ layout.Render = (*Stack)(nil)

// StackFit determines how a Stack passes its clamp on to its children.
type StackFit uint8

const (
	// StackLoose drops the minimum: a 350x600 clamp lets children be
	// anything from 0x0 to 350x600.
	StackLoose StackFit = iota
	// StackExpand pins every finite maximum, so children fill the stack.
	StackExpand
	// StackPassthrough hands the clamp on unchanged.
	StackPassthrough
)

func (f StackFit) String() string {
	switch f {
	case StackExpand:
		return "expand"
	case StackPassthrough:
		return "passthrough"
	default:
		return "loose"
	}
}

// Stack overlaps its children at its origin.
//
// Children marked InParentLayout in their props do not contribute to the
// stack's size; they are laid out last, bounded by the stack's final size.
type Stack struct {
	Fit StackFit
}

// PerformLayout sizes the stack to its largest regular child.
func (s *Stack) PerformLayout(clamp layout.BoxClamp, ctx *layout.Ctx) layout.Size {
	childClamp := clamp
	switch s.Fit {
	case StackLoose:
		childClamp = clamp.Loose()
	case StackExpand:
		if w := clamp.Max.Width; !isInf(w) {
			childClamp = childClamp.WithFixedWidth(w)
		}
		if h := clamp.Max.Height; !isInf(h) {
			childClamp = childClamp.WithFixedHeight(h)
		}
	}

	var size layout.Size
	var inParent []layout.NodeID
	for _, child := range ctx.Children() {
		if ctx.Props(child).InParentLayout {
			inParent = append(inParent, child)
			continue
		}
		size = size.Max(ctx.PerformChildLayout(child, childClamp))
	}
	size = clamp.Clamp(size)
	for _, child := range inParent {
		ctx.PerformChildLayout(child, layout.MaxSize(size))
	}
	return size
}

func isInf(v float32) bool {
	return math.IsInf(float64(v), 0)
}
