package layout

import (
	"fmt"
	"math"
)

// Inf is the unbounded extent used by clamps with no upper limit.
var Inf = float32(math.Inf(1))

// Size is a width/height pair.
type Size struct {
	Width, Height float32
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float32) Size {
	return Size{Width: w, Height: h}
}

// InfinitySize returns a Size that is unbounded on both axes.
func InfinitySize() Size {
	return Size{Width: Inf, Height: Inf}
}

// Min returns the componentwise minimum of s and o.
func (s Size) Min(o Size) Size {
	return Size{Width: min(s.Width, o.Width), Height: min(s.Height, o.Height)}
}

// Max returns the componentwise maximum of s and o.
func (s Size) Max(o Size) Size {
	return Size{Width: max(s.Width, o.Width), Height: max(s.Height, o.Height)}
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return !(s.Width > 0 && s.Height > 0)
}

// IsFinite reports whether both dimensions are finite.
func (s Size) IsFinite() bool {
	return isFinite(s.Width) && isFinite(s.Height)
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

func isFinite(v float32) bool {
	return !math.IsInf(float64(v), 0) && !math.IsNaN(float64(v))
}
