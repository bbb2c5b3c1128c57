package layout

import "fmt"

// BoxClamp is the (min, max) size range a parent allows a child to take.
//
// BoxClamp is a value type and is never validated: callers may build an
// inverted clamp transiently, and Clamp always resolves it componentwise.
type BoxClamp struct {
	Min, Max Size
}

// Unlimited returns the clamp [0,0]..[∞,∞].
func Unlimited() BoxClamp {
	return BoxClamp{Max: InfinitySize()}
}

// FixedSize returns a clamp that can only be satisfied by size.
func FixedSize(size Size) BoxClamp {
	return BoxClamp{Min: size, Max: size}
}

// FixedWidth pins the width and leaves the height in [0, ∞).
func FixedWidth(width float32) BoxClamp {
	return BoxClamp{Min: Sz(width, 0), Max: Sz(width, Inf)}
}

// FixedHeight pins the height and leaves the width in [0, ∞).
func FixedHeight(height float32) BoxClamp {
	return BoxClamp{Min: Sz(0, height), Max: Sz(Inf, height)}
}

// MinSize returns a clamp with the given minimum and no maximum.
func MinSize(size Size) BoxClamp {
	return BoxClamp{Min: size, Max: InfinitySize()}
}

// MaxSize returns a clamp with the given maximum and a zero minimum.
func MaxSize(size Size) BoxClamp {
	return BoxClamp{Max: size}
}

// MinWidth returns an unlimited clamp with a minimum width.
func MinWidth(width float32) BoxClamp {
	c := Unlimited()
	c.Min.Width = width
	return c
}

// MinHeight returns an unlimited clamp with a minimum height.
func MinHeight(height float32) BoxClamp {
	c := Unlimited()
	c.Min.Height = height
	return c
}

// MaxWidth returns a clamp bounded only in width.
func MaxWidth(width float32) BoxClamp {
	return BoxClamp{Max: Sz(width, Inf)}
}

// MaxHeight returns a clamp bounded only in height.
func MaxHeight(height float32) BoxClamp {
	return BoxClamp{Max: Sz(Inf, height)}
}

// Clamp restricts size componentwise into [Min, Max].
// For an inverted clamp Max wins.
func (c BoxClamp) Clamp(size Size) Size {
	return Size{
		Width:  clampAxis(size.Width, c.Min.Width, c.Max.Width),
		Height: clampAxis(size.Height, c.Min.Height, c.Max.Height),
	}
}

// clampAxis resolves NaN to lo so a degenerate measurement never escapes.
func clampAxis(v, lo, hi float32) float32 {
	if v != v {
		v = lo
	}
	return min(max(v, lo), hi)
}

// IsFixed reports whether the clamp admits exactly one size.
func (c BoxClamp) IsFixed() bool {
	return c.Min == c.Max
}

// Loose drops the minimum, keeping the maximum.
func (c BoxClamp) Loose() BoxClamp {
	c.Min = Size{}
	return c
}

// Expand drops the maximum, keeping the minimum.
func (c BoxClamp) Expand() BoxClamp {
	c.Max = InfinitySize()
	return c
}

// FreeWidth removes the horizontal bounds.
func (c BoxClamp) FreeWidth() BoxClamp {
	c.Min.Width = 0
	c.Max.Width = Inf
	return c
}

// FreeHeight removes the vertical bounds.
func (c BoxClamp) FreeHeight() BoxClamp {
	c.Min.Height = 0
	c.Max.Height = Inf
	return c
}

// WithMinSize sets the minimum, capped by the current maximum.
func (c BoxClamp) WithMinSize(size Size) BoxClamp {
	c.Min = size.Min(c.Max)
	return c
}

// WithMaxSize sets the maximum, raised to at least the current minimum.
func (c BoxClamp) WithMaxSize(size Size) BoxClamp {
	c.Max = size.Max(c.Min)
	return c
}

// WithFixedWidth pins the width.
func (c BoxClamp) WithFixedWidth(width float32) BoxClamp {
	c.Min.Width = width
	c.Max.Width = width
	return c
}

// WithFixedHeight pins the height.
func (c BoxClamp) WithFixedHeight(height float32) BoxClamp {
	c.Min.Height = height
	c.Max.Height = height
	return c
}

// WithMaxWidth sets the maximum width, never below the minimum width.
func (c BoxClamp) WithMaxWidth(width float32) BoxClamp {
	c.Max.Width = max(width, c.Min.Width)
	return c
}

// WithMaxHeight sets the maximum height, never below the minimum height.
func (c BoxClamp) WithMaxHeight(height float32) BoxClamp {
	c.Max.Height = max(height, c.Min.Height)
	return c
}

// WithMinWidth sets the minimum width, never above the maximum width.
func (c BoxClamp) WithMinWidth(width float32) BoxClamp {
	c.Min.Width = min(width, c.Max.Width)
	return c
}

// WithMinHeight sets the minimum height, never above the maximum height.
func (c BoxClamp) WithMinHeight(height float32) BoxClamp {
	c.Min.Height = min(height, c.Max.Height)
	return c
}

// ContainerWidth estimates the width of a container whose final size is not
// known yet while its children are being laid out. A finite maximum wins;
// otherwise the child width, raised to the minimum.
//
// The result is a hypothesis and may be overridden once the container's real
// size is resolved.
func (c BoxClamp) ContainerWidth(childWidth float32) float32 {
	if isFinite(c.Max.Width) {
		return c.Max.Width
	}
	return max(c.Min.Width, childWidth)
}

// ContainerHeight is the vertical counterpart of ContainerWidth.
func (c BoxClamp) ContainerHeight(childHeight float32) float32 {
	if isFinite(c.Max.Height) {
		return c.Max.Height
	}
	return max(c.Min.Height, childHeight)
}

func (c BoxClamp) String() string {
	return fmt.Sprintf("[%s..%s]", c.Min, c.Max)
}
