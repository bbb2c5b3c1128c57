package layout

import "gioui.org/f32"

// Point is a position in a node's coordinate space.
type Point = f32.Point

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return f32.Pt(x, y)
}

// Transform is a node's local affine transform.
type Transform = f32.Affine2D

// invertible reports whether t has a non-degenerate inverse.
func invertible(t Transform) bool {
	sx, hx, _, hy, sy, _ := t.Elems()
	det := sx*sy - hx*hy
	return det != 0 && isFinite(det)
}
