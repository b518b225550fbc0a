// Package geom provides float64 vector and rectangle primitives for the
// simulation core. It contains no external dependencies so game logic
// stays pure and testable.
package geom

import "math"

// Vec is a 2D vector used for positions and velocities.
// X grows rightward, Y grows downward (screen orientation).
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by a scalar.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the magnitude of v.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSq returns the squared magnitude of v. Use when comparing distances
// to avoid the sqrt cost.
func (v Vec) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalized returns a unit vector in the direction of v, or the zero
// vector if v has zero length.
func (v Vec) Normalized() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// ClampLen returns v with its magnitude restricted to [minLen, maxLen].
// A zero vector is returned unchanged: there is no direction to scale along.
func (v Vec) ClampLen(minLen, maxLen float64) Vec {
	l := v.Len()
	if l == 0 {
		return v
	}
	if l < minLen {
		return v.Scale(minLen / l)
	}
	if l > maxLen {
		return v.Scale(maxLen / l)
	}
	return v
}

// Reflect returns v reflected about the unit surface normal n:
// v' = v - 2*(v.n)*n.
func Reflect(v, n Vec) Vec {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Rect is an axis-aligned rectangle: top-left corner plus extent.
// Width and height must be positive.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Extent
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside the rectangle. The right and
// bottom edges are exclusive.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ClosestPoint returns the point inside r nearest to p.
func (r Rect) ClosestPoint(p Vec) Vec {
	return Vec{
		X: ClampF(p.X, r.X, r.Right()),
		Y: ClampF(p.Y, r.Y, r.Bottom()),
	}
}

// Contact describes a resolved circle-rectangle overlap.
type Contact struct {
	Normal Vec     // Unit normal of the penetrated edge, pointing away from the rect
	Depth  float64 // Penetration depth along the normal
}

// CircleRectContact tests a circle against a rectangle and, on overlap,
// returns the contact normal of the nearest penetrated edge.
//
// When the circle overlaps a corner region the contact resolves against
// the axis with the larger penetration depth; on an exact tie the vertical
// (top/bottom) normal wins, which avoids the ball sticking to paddle ends.
func CircleRectContact(center Vec, radius float64, r Rect) (Contact, bool) {
	closest := r.ClosestPoint(center)
	delta := center.Sub(closest)
	if delta.LenSq() > radius*radius {
		return Contact{}, false
	}

	// Penetration depth toward each edge, measured from the circle center.
	penLeft := center.X + radius - r.Left()
	penRight := r.Right() - (center.X - radius)
	penTop := center.Y + radius - r.Top()
	penBottom := r.Bottom() - (center.Y - radius)

	penX := penLeft
	nx := Vec{X: -1}
	if penRight < penX {
		penX = penRight
		nx = Vec{X: 1}
	}

	penY := penTop
	ny := Vec{Y: -1}
	if penBottom < penY {
		penY = penBottom
		ny = Vec{Y: 1}
	}

	if penY <= penX {
		return Contact{Normal: ny, Depth: penY}, true
	}
	return Contact{Normal: nx, Depth: penX}, true
}

// ClampF restricts a float64 value to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
