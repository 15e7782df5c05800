// Package geom provides the small set of 2D value types shared by the layout
// engine: pointer positions, canvas sizes and absolute rendered boxes.
//
// All values are in canvas pixels with the origin at the top-left corner and
// y growing downward.
package geom

// Point is a pointer position or a displacement.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// IsZero reports whether both components are zero.
func (p Point) IsZero() bool { return p.X == 0 && p.Y == 0 }

// Size is a width/height pair, used for the canvas and intrinsic element sizes.
type Size struct {
	W, H float64
}

// Rect is an absolute, axis-aligned rendered box.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Contains reports whether p lies inside r. Edges on the right and bottom
// are exclusive so adjacent boxes never both claim a point.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right() && p.Y >= r.Top && p.Y < r.Bottom()
}

// Encloses reports whether inner fits entirely within r on all four sides.
// Touching edges count as enclosed.
func (r Rect) Encloses(inner Rect) bool {
	return inner.Left >= r.Left && inner.Top >= r.Top &&
		inner.Right() <= r.Right() && inner.Bottom() <= r.Bottom()
}
