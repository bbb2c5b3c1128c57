package layout

import "fmt"

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	Origin Point
	Size   Size
}

// NewRect creates a Rect with the given origin and dimensions.
func NewRect(x, y, width, height float32) Rect {
	return Rect{Origin: Pt(x, y), Size: Sz(width, height)}
}

// RectFromSize returns a Rect of the given size anchored at the origin.
func RectFromSize(s Size) Rect {
	return Rect{Size: s}
}

// MinX returns the x-coordinate of the left edge.
func (r Rect) MinX() float32 { return r.Origin.X }

// MinY returns the y-coordinate of the top edge.
func (r Rect) MinY() float32 { return r.Origin.Y }

// MaxX returns the x-coordinate of the right edge (exclusive).
func (r Rect) MaxX() float32 { return r.Origin.X + r.Size.Width }

// MaxY returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) MaxY() float32 { return r.Origin.Y + r.Size.Height }

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Size.IsEmpty()
}

// Contains returns true if p is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

// Translate returns a new Rect moved by offset.
func (r Rect) Translate(offset Point) Rect {
	return Rect{Origin: r.Origin.Add(offset), Size: r.Size}
}

// Union returns the smallest rectangle that contains both rectangles.
// If either rectangle is empty, returns the other rectangle.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	x := min(r.MinX(), other.MinX())
	y := min(r.MinY(), other.MinY())
	right := max(r.MaxX(), other.MaxX())
	bottom := max(r.MaxY(), other.MaxY())

	return NewRect(x, y, right-x, bottom-y)
}

// Corners returns the four corners clockwise from the origin.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		Pt(r.MinX(), r.MinY()),
		Pt(r.MaxX(), r.MinY()),
		Pt(r.MaxX(), r.MaxY()),
		Pt(r.MinX(), r.MaxY()),
	}
}

// boundsOf returns the axis-aligned bounds of a set of points.
func boundsOf(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return NewRect(minX, minY, maxX-minX, maxY-minY)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %s)", r.Origin.X, r.Origin.Y, r.Size)
}
