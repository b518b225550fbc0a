package arkanoid

import (
	"math"

	"github.com/vovakirdan/arkanoid-tui/internal/geom"
)

// Small outward nudge applied after a brick bounce so the ball does not
// re-trigger the same contact on the next tick.
const contactEpsilon = 1e-3

// EventKind tags a resolver event.
type EventKind int

const (
	// EventBallLost signals the ball crossed the bottom edge.
	EventBallLost EventKind = iota
	// EventBrickHit signals a brick absorbed a hit but survived.
	EventBrickHit
	// EventBrickDestroyed signals a brick's hit points reached zero.
	EventBrickDestroyed
)

// Event is a single resolver outcome, consumed synchronously by the
// state machine in the same tick it was produced.
type Event struct {
	Kind   EventKind
	Brick  int // index into the brick slice, -1 when not brick-related
	Points int // point value for EventBrickDestroyed
}

// PhysicsParams carries the tunables the resolver needs for one tick.
type PhysicsParams struct {
	BaseSpeed float64 // nominal ball speed, drives launch and steering
	MinSpeed  float64 // lower speed clamp
	MaxSpeed  float64 // upper speed clamp
	Steer     float64 // paddle steering strength multiplier
}

// Resolve detects and resolves every contact for one tick, after the ball
// position has already been integrated (move-then-resolve). Contacts are
// handled in a fixed priority order to avoid double-resolution artifacts:
// walls, then paddle, then bricks. At most one brick is resolved per tick
// so reflections stay physically sensible when bricks are adjacent.
//
// Resolve never fails; it only mutates the ball and bricks and returns
// the events it produced.
func Resolve(ball *Ball, paddle *Paddle, bricks []Brick, field Playfield, p PhysicsParams) []Event {
	var events []Event

	lost := resolveWalls(ball, field.Bounds)
	if lost {
		// The ball is gone; nothing else may move it this tick.
		return append(events, Event{Kind: EventBallLost, Brick: -1})
	}

	if resolvePaddle(ball, paddle, p) {
		return events
	}

	if idx, destroyed, ok := resolveBrick(ball, bricks, field.Bounds, p); ok {
		if destroyed {
			events = append(events, Event{Kind: EventBrickDestroyed, Brick: idx, Points: bricks[idx].Points})
		} else {
			events = append(events, Event{Kind: EventBrickHit, Brick: idx})
		}
	}

	return events
}

// resolveWalls reflects off the left/right/top walls, clamping the ball
// back inside, and reports loss through the bottom edge.
func resolveWalls(ball *Ball, bounds geom.Rect) (lost bool) {
	if ball.Pos.X-ball.Radius < bounds.Left() {
		ball.Pos.X = bounds.Left() + ball.Radius
		ball.Vel.X = math.Abs(ball.Vel.X)
	}
	if ball.Pos.X+ball.Radius > bounds.Right() {
		ball.Pos.X = bounds.Right() - ball.Radius
		ball.Vel.X = -math.Abs(ball.Vel.X)
	}
	if ball.Pos.Y-ball.Radius < bounds.Top() {
		ball.Pos.Y = bounds.Top() + ball.Radius
		ball.Vel.Y = math.Abs(ball.Vel.Y)
	}
	// No reflection at the bottom: the ball is lost once fully below.
	return ball.Pos.Y-ball.Radius > bounds.Bottom()
}

// resolvePaddle bounces the ball off the paddle, steering it based on
// where it landed. Only applies while the ball moves downward; a ball
// embedded in the paddle after a bounce must not re-trigger.
func resolvePaddle(ball *Ball, paddle *Paddle, p PhysicsParams) bool {
	if ball.Vel.Y <= 0 {
		return false
	}

	_, ok := geom.CircleRectContact(ball.Pos, ball.Radius, paddle.Rect)
	if !ok {
		return false
	}

	// Contact offset from paddle center, normalized to [-1, 1].
	half := paddle.Rect.W / 2
	offset := 0.0
	if half > 0 {
		offset = geom.ClampF((ball.Pos.X-paddle.CenterX())/half, -1, 1)
	}

	// Always bounce upward, with a floor on the vertical component so
	// extreme edge hits cannot send the ball nearly horizontal.
	vy := -math.Abs(ball.Vel.Y)
	if vy > -p.BaseSpeed/2 {
		vy = -p.BaseSpeed / 2
	}
	ball.Vel = geom.Vec{X: offset * p.BaseSpeed * p.Steer, Y: vy}
	ball.ClampSpeed(p.MinSpeed, p.MaxSpeed)

	// Lift the ball out of the paddle.
	ball.Pos.Y = paddle.Rect.Top() - ball.Radius
	return true
}

// resolveBrick finds the first live brick the ball overlaps, applies one
// hit, and reflects the ball off the contact normal. Returns the brick
// index, whether it was destroyed, and whether any brick was hit.
func resolveBrick(ball *Ball, bricks []Brick, bounds geom.Rect, p PhysicsParams) (idx int, destroyed, hit bool) {
	for i := range bricks {
		if bricks[i].Destroyed {
			continue
		}
		contact, ok := geom.CircleRectContact(ball.Pos, ball.Radius, bricks[i].Rect)
		if !ok {
			continue
		}

		destroyed = bricks[i].Hit()
		ball.Vel = geom.Reflect(ball.Vel, contact.Normal)
		ball.Pos = ball.Pos.Add(contact.Normal.Scale(contact.Depth + contactEpsilon))
		// A wall-adjacent brick can push the ball past a wall that was
		// already resolved this tick; keep it inside.
		ball.Pos.X = geom.ClampF(ball.Pos.X, bounds.Left()+ball.Radius, bounds.Right()-ball.Radius)
		if ball.Pos.Y-ball.Radius < bounds.Top() {
			ball.Pos.Y = bounds.Top() + ball.Radius
		}
		ball.ClampSpeed(p.MinSpeed, p.MaxSpeed)
		return i, destroyed, true
	}
	return -1, false, false
}
