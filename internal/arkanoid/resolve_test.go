package arkanoid

import (
	"math"
	"testing"

	"github.com/vovakirdan/arkanoid-tui/internal/geom"
)

func testParams() PhysicsParams {
	return PhysicsParams{
		BaseSpeed: 18,
		MinSpeed:  10,
		MaxSpeed:  40,
		Steer:     1,
	}
}

func testField() Playfield {
	// 80x24 screen: HUD row, top border, open bottom.
	return Playfield{Bounds: geom.NewRect(1, 2, 78, 22)}
}

func TestResolveTopWallBounce(t *testing.T) {
	field := testField()
	ball := &Ball{
		Pos:    geom.Vec{X: 40, Y: field.Bounds.Top() - 0.1},
		Vel:    geom.Vec{X: 0, Y: -5},
		Radius: 0.45,
	}
	paddle := &Paddle{Rect: geom.NewRect(36, 22, 8, 1)}

	events := Resolve(ball, paddle, nil, field, testParams())

	if len(events) != 0 {
		t.Errorf("wall bounce should produce no events, got %d", len(events))
	}
	if ball.Vel.Y != 5 {
		t.Errorf("VY should flip to +5, got %v", ball.Vel.Y)
	}
	if ball.Vel.X != 0 {
		t.Errorf("VX should be unchanged, got %v", ball.Vel.X)
	}
	want := field.Bounds.Top() + ball.Radius
	if ball.Pos.Y != want {
		t.Errorf("ball Y should clamp to %v, got %v", want, ball.Pos.Y)
	}
}

func TestResolveSideWalls(t *testing.T) {
	field := testField()
	tests := []struct {
		name   string
		pos    geom.Vec
		vel    geom.Vec
		wantVX float64
		wantX  float64
	}{
		{
			name:   "left wall flips VX positive",
			pos:    geom.Vec{X: field.Bounds.Left() + 0.1, Y: 10},
			vel:    geom.Vec{X: -6, Y: 3},
			wantVX: 6,
			wantX:  field.Bounds.Left() + 0.45,
		},
		{
			name:   "right wall flips VX negative",
			pos:    geom.Vec{X: field.Bounds.Right() - 0.1, Y: 10},
			vel:    geom.Vec{X: 6, Y: 3},
			wantVX: -6,
			wantX:  field.Bounds.Right() - 0.45,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := &Ball{Pos: tt.pos, Vel: tt.vel, Radius: 0.45}
			paddle := &Paddle{Rect: geom.NewRect(36, 22, 8, 1)}

			Resolve(ball, paddle, nil, field, testParams())

			if ball.Vel.X != tt.wantVX {
				t.Errorf("VX = %v, want %v", ball.Vel.X, tt.wantVX)
			}
			if ball.Vel.Y != tt.vel.Y {
				t.Errorf("VY should be unchanged, got %v", ball.Vel.Y)
			}
			if math.Abs(ball.Pos.X-tt.wantX) > 1e-9 {
				t.Errorf("X = %v, want %v", ball.Pos.X, tt.wantX)
			}
		})
	}
}

func TestResolveBallLost(t *testing.T) {
	field := testField()
	ball := &Ball{
		Pos:    geom.Vec{X: 40, Y: field.Bounds.Bottom() + 1},
		Vel:    geom.Vec{X: 2, Y: 8},
		Radius: 0.45,
	}
	paddle := &Paddle{Rect: geom.NewRect(36, 22, 8, 1)}
	bricks := []Brick{{Rect: geom.NewRect(40, 26, 4, 1), HP: 1, Points: 10}}

	events := Resolve(ball, paddle, bricks, field, testParams())

	if len(events) != 1 {
		t.Fatalf("expected exactly one event, got %d", len(events))
	}
	if events[0].Kind != EventBallLost {
		t.Errorf("expected EventBallLost, got %v", events[0].Kind)
	}
	// Loss terminates resolution: the brick at the ball's position must
	// not have been touched.
	if bricks[0].Destroyed || bricks[0].HP != 1 {
		t.Error("brick should be untouched after ball loss")
	}
}

func TestResolveBallNotLostWhilePartiallyBelow(t *testing.T) {
	field := testField()
	ball := &Ball{
		// Center below the bottom edge but the top of the ball still
		// inside: not lost yet.
		Pos:    geom.Vec{X: 40, Y: field.Bounds.Bottom() + 0.2},
		Vel:    geom.Vec{X: 0, Y: 8},
		Radius: 0.45,
	}
	paddle := &Paddle{Rect: geom.NewRect(60, 22, 8, 1)}

	events := Resolve(ball, paddle, nil, field, testParams())

	if len(events) != 0 {
		t.Errorf("ball should not be lost until fully below, got %d events", len(events))
	}
}

func TestResolvePaddleCenterBounce(t *testing.T) {
	field := testField()
	paddle := &Paddle{Rect: geom.NewRect(36, 22, 8, 1)}
	ball := &Ball{
		Pos:    geom.Vec{X: paddle.CenterX(), Y: 22.1},
		Vel:    geom.Vec{X: 0, Y: 18},
		Radius: 0.45,
	}

	events := Resolve(ball, paddle, nil, field, testParams())

	if len(events) != 0 {
		t.Errorf("paddle bounce should produce no events, got %d", len(events))
	}
	if ball.Vel.Y >= 0 {
		t.Errorf("ball should move upward after paddle bounce, VY = %v", ball.Vel.Y)
	}
	if math.Abs(ball.Vel.X) > 1e-9 {
		t.Errorf("center hit should not steer, VX = %v", ball.Vel.X)
	}
	want := paddle.Rect.Top() - ball.Radius
	if ball.Pos.Y != want {
		t.Errorf("ball should rest on paddle top, Y = %v, want %v", ball.Pos.Y, want)
	}
}

func TestResolvePaddleEdgeSteering(t *testing.T) {
	field := testField()
	p := testParams()

	tests := []struct {
		name  string
		hitX  float64 // offset from paddle center
		wantS float64 // sign of resulting VX
	}{
		{"left edge steers left", -4, -1},
		{"right edge steers right", 4, 1},
		{"left half steers left", -2, -1},
		{"right half steers right", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paddle := &Paddle{Rect: geom.NewRect(36, 22, 8, 1)}
			ball := &Ball{
				Pos:    geom.Vec{X: paddle.CenterX() + tt.hitX, Y: 22.1},
				Vel:    geom.Vec{X: 0, Y: 18},
				Radius: 0.45,
			}

			Resolve(ball, paddle, nil, field, p)

			if tt.wantS < 0 && ball.Vel.X >= 0 {
				t.Errorf("expected leftward VX, got %v", ball.Vel.X)
			}
			if tt.wantS > 0 && ball.Vel.X <= 0 {
				t.Errorf("expected rightward VX, got %v", ball.Vel.X)
			}
			if ball.Vel.Y >= 0 {
				t.Errorf("ball should always bounce upward, VY = %v", ball.Vel.Y)
			}
			// Steering is bounded by the offset clamp.
			if math.Abs(ball.Vel.X) > p.BaseSpeed*p.Steer+1e-9 {
				t.Errorf("steering exceeded bound: VX = %v", ball.Vel.X)
			}
		})
	}
}

func TestResolvePaddleIgnoredWhileMovingUp(t *testing.T) {
	field := testField()
	paddle := &Paddle{Rect: geom.NewRect(36, 22, 8, 1)}
	ball := &Ball{
		Pos:    geom.Vec{X: paddle.CenterX(), Y: 22.1},
		Vel:    geom.Vec{X: 1, Y: -18},
		Radius: 0.45,
	}
	before := ball.Vel

	Resolve(ball, paddle, nil, field, testParams())

	if ball.Vel != before {
		t.Errorf("upward-moving ball must pass through the paddle, vel changed %v -> %v", before, ball.Vel)
	}
}

func TestResolvePaddleSpeedClamped(t *testing.T) {
	field := testField()
	p := testParams()
	paddle := &Paddle{Rect: geom.NewRect(36, 22, 8, 1)}
	ball := &Ball{
		// Extreme edge hit: steering plus the vertical floor must not
		// exceed the speed cap.
		Pos:    geom.Vec{X: paddle.Rect.Right() - 0.01, Y: 22.1},
		Vel:    geom.Vec{X: 0, Y: 39},
		Radius: 0.45,
	}

	Resolve(ball, paddle, nil, field, p)

	if s := ball.Speed(); s > p.MaxSpeed+1e-9 || s < p.MinSpeed-1e-9 {
		t.Errorf("speed %v outside [%v, %v]", s, p.MinSpeed, p.MaxSpeed)
	}
}

func TestResolveBrickHit(t *testing.T) {
	field := testField()
	paddle := &Paddle{Rect: geom.NewRect(36, 22, 8, 1)}
	bricks := []Brick{
		{Rect: geom.NewRect(38, 4, 4, 1), HP: 1, Points: 10},
	}
	// Ball just under the brick moving up: vertical contact.
	ball := &Ball{
		Pos:    geom.Vec{X: 40, Y: 5.2},
		Vel:    geom.Vec{X: 0, Y: -15},
		Radius: 0.45,
	}
	speedBefore := ball.Speed()

	events := Resolve(ball, paddle, bricks, field, testParams())

	if len(events) != 1 || events[0].Kind != EventBrickDestroyed {
		t.Fatalf("expected one EventBrickDestroyed, got %v", events)
	}
	if events[0].Points != 10 {
		t.Errorf("Points = %d, want 10", events[0].Points)
	}
	if !bricks[0].Destroyed {
		t.Error("brick should be destroyed")
	}
	if ball.Vel.Y <= 0 {
		t.Errorf("ball should reflect downward off the brick underside, VY = %v", ball.Vel.Y)
	}
	if math.Abs(ball.Speed()-speedBefore) > 1e-9 {
		t.Errorf("reflection should conserve speed: %v -> %v", speedBefore, ball.Speed())
	}
}

func TestResolveHardBrickSurvivesFirstHit(t *testing.T) {
	field := testField()
	paddle := &Paddle{Rect: geom.NewRect(36, 22, 8, 1)}
	bricks := []Brick{
		{Rect: geom.NewRect(38, 4, 4, 1), HP: 2, Points: 20},
	}
	ball := &Ball{
		Pos:    geom.Vec{X: 40, Y: 5.2},
		Vel:    geom.Vec{X: 0, Y: -15},
		Radius: 0.45,
	}

	events := Resolve(ball, paddle, bricks, field, testParams())

	if len(events) != 1 || events[0].Kind != EventBrickHit {
		t.Fatalf("expected one EventBrickHit, got %v", events)
	}
	if bricks[0].Destroyed {
		t.Error("hard brick should survive the first hit")
	}
	if bricks[0].HP != 1 {
		t.Errorf("HP = %d, want 1", bricks[0].HP)
	}
}

func TestResolveOneBrickPerTick(t *testing.T) {
	field := testField()
	paddle := &Paddle{Rect: geom.NewRect(36, 22, 8, 1)}
	// Two adjacent bricks, ball overlapping the seam from below.
	bricks := []Brick{
		{Rect: geom.NewRect(36, 4, 4, 1), HP: 1, Points: 10},
		{Rect: geom.NewRect(40, 4, 4, 1), HP: 1, Points: 10},
	}
	ball := &Ball{
		Pos:    geom.Vec{X: 40, Y: 5.2},
		Vel:    geom.Vec{X: 0, Y: -15},
		Radius: 0.45,
	}

	events := Resolve(ball, paddle, bricks, field, testParams())

	if len(events) != 1 {
		t.Fatalf("at most one brick may resolve per tick, got %d events", len(events))
	}
	destroyed := 0
	for i := range bricks {
		if bricks[i].Destroyed {
			destroyed++
		}
	}
	if destroyed != 1 {
		t.Errorf("exactly one brick should be destroyed, got %d", destroyed)
	}
}

func TestResolveBrickPushOutStaysInBounds(t *testing.T) {
	field := testField()
	paddle := &Paddle{Rect: geom.NewRect(36, 22, 8, 1)}
	// Brick flush against the left wall; the ball squeezes into the gap
	// and hits the brick's left face, so the push-out points at the wall.
	bricks := []Brick{
		{Rect: geom.NewRect(field.Bounds.Left()+0.8, 6, 2, 1), HP: 1, Points: 10},
	}
	ball := &Ball{
		Pos:    geom.Vec{X: field.Bounds.Left() + 0.5, Y: 6.5},
		Vel:    geom.Vec{X: -12, Y: 3},
		Radius: 0.45,
	}

	events := Resolve(ball, paddle, bricks, field, testParams())

	if len(events) != 1 || events[0].Kind != EventBrickDestroyed {
		t.Fatalf("expected one EventBrickDestroyed, got %v", events)
	}
	if ball.Vel.X <= 0 {
		t.Errorf("ball should reflect away from the brick face, VX = %v", ball.Vel.X)
	}
	if ball.Pos.X-ball.Radius < field.Bounds.Left() {
		t.Errorf("push-out ejected the ball past the wall, X = %v", ball.Pos.X)
	}
	if want := field.Bounds.Left() + ball.Radius; ball.Pos.X != want {
		t.Errorf("ball should clamp to the wall, X = %v, want %v", ball.Pos.X, want)
	}
}

func TestResolveDestroyedBrickIgnored(t *testing.T) {
	field := testField()
	paddle := &Paddle{Rect: geom.NewRect(36, 22, 8, 1)}
	bricks := []Brick{
		{Rect: geom.NewRect(38, 4, 4, 1), HP: 0, Points: 10, Destroyed: true},
	}
	ball := &Ball{
		Pos:    geom.Vec{X: 40, Y: 4.5},
		Vel:    geom.Vec{X: 0, Y: -15},
		Radius: 0.45,
	}
	before := ball.Vel

	events := Resolve(ball, paddle, bricks, field, testParams())

	if len(events) != 0 {
		t.Errorf("destroyed brick must not collide, got %d events", len(events))
	}
	if ball.Vel != before {
		t.Error("ball should pass through destroyed bricks")
	}
}

func TestBrickHitTombstone(t *testing.T) {
	b := Brick{Rect: geom.NewRect(0, 0, 4, 1), HP: 2, Points: 20}

	if b.Hit() {
		t.Error("first hit on HP 2 should not destroy")
	}
	if !b.Hit() {
		t.Error("second hit should destroy")
	}
	if b.Hit() {
		t.Error("hit on destroyed brick must be a no-op")
	}
	if b.HP != 0 {
		t.Errorf("HP = %d, want 0", b.HP)
	}
}

func TestPaddleMoveByClamped(t *testing.T) {
	field := geom.NewRect(1, 2, 78, 22)
	p := Paddle{Rect: geom.NewRect(36, 22, 8, 1)}

	p.MoveBy(-1000, field)
	if p.Rect.X != field.Left() {
		t.Errorf("paddle should clamp to left edge, X = %v", p.Rect.X)
	}

	p.MoveBy(1000, field)
	if p.Rect.X != field.Right()-p.Rect.W {
		t.Errorf("paddle should clamp to right edge, X = %v", p.Rect.X)
	}
}
