// Package arkanoid implements the Arkanoid brick-breaker simulation:
// entities, collision resolution, and the per-tick game state machine.
package arkanoid

import "github.com/vovakirdan/arkanoid-tui/internal/geom"

// Ball is the moving ball: center position, velocity in cells per second,
// and radius in cells. Owned exclusively by the Game and mutated only by
// Step and the collision resolver.
type Ball struct {
	Pos    geom.Vec
	Vel    geom.Vec
	Radius float64
}

// Step integrates the ball position over the elapsed time.
func (b *Ball) Step(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// Speed returns the current velocity magnitude.
func (b *Ball) Speed() float64 {
	return b.Vel.Len()
}

// ClampSpeed restricts the velocity magnitude to [lo, hi], preserving
// direction. Glancing paddle hits would otherwise slowly pump energy
// into the ball.
func (b *Ball) ClampSpeed(lo, hi float64) {
	b.Vel = b.Vel.ClampLen(lo, hi)
}

// Paddle is the player paddle: a rectangle plus the horizontal velocity
// derived from the last tick's input.
type Paddle struct {
	Rect geom.Rect
	Vel  float64 // cells per second, signed
}

// MoveBy shifts the paddle horizontally, clamped to the playfield.
func (p *Paddle) MoveBy(dx float64, field geom.Rect) {
	p.Rect.X = geom.ClampF(p.Rect.X+dx, field.Left(), field.Right()-p.Rect.W)
}

// CenterX returns the x-coordinate of the paddle center.
func (p *Paddle) CenterX() float64 {
	return p.Rect.X + p.Rect.W/2
}

// Brick is a destructible block. Destroyed bricks stay in the slice
// (tombstoned) but never collide or render.
type Brick struct {
	Rect      geom.Rect
	HP        int
	Points    int
	Destroyed bool
}

// Hit applies one hit to the brick and reports whether it was destroyed
// by this hit. Hitting an already destroyed brick is a no-op.
func (b *Brick) Hit() bool {
	if b.Destroyed {
		return false
	}
	b.HP--
	if b.HP <= 0 {
		b.Destroyed = true
		return true
	}
	return false
}

// Playfield holds the immutable simulation bounds for a session.
// The left, right and top edges are walls; crossing the bottom edge
// loses the ball.
type Playfield struct {
	Bounds geom.Rect
}
