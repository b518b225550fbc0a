package arkanoid

import "math"

// Snapshot captures the complete simulation state for determinism
// testing. Float fields are stored as IEEE 754 bit patterns so equal
// states always hash equal.
type Snapshot struct {
	Tick       uint64
	Phase      int
	Score      int
	Lives      int
	LevelIndex int
	Mode       int
	Cycle      int
	ServeDelay int

	BallX, BallY   uint64
	BallVX, BallVY uint64
	BallRadius     uint64

	PaddleX     uint64
	PaddleWidth uint64

	BaseSpeed uint64

	BricksRemaining int
	// Each brick is 2 ints: destroyed flag, HP.
	BrickData []int
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, len(g.bricks)*2)
	for i, b := range g.bricks {
		idx := i * 2
		if b.Destroyed {
			brickData[idx] = 1
		}
		brickData[idx+1] = b.HP
	}

	return Snapshot{
		Tick:       uint64(g.tick), //#nosec G115 -- tick count is always positive
		Phase:      int(g.phase),
		Score:      g.score,
		Lives:      g.lives,
		LevelIndex: g.levelIndex,
		Mode:       int(g.mode),
		Cycle:      g.cycle,
		ServeDelay: g.serveDelay,

		BallX:      math.Float64bits(g.ball.Pos.X),
		BallY:      math.Float64bits(g.ball.Pos.Y),
		BallVX:     math.Float64bits(g.ball.Vel.X),
		BallVY:     math.Float64bits(g.ball.Vel.Y),
		BallRadius: math.Float64bits(g.ball.Radius),

		PaddleX:     math.Float64bits(g.paddle.Rect.X),
		PaddleWidth: math.Float64bits(g.paddle.Rect.W),

		BaseSpeed: math.Float64bits(g.baseSpeed),

		BricksRemaining: g.alive,
		BrickData:       brickData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Cycle)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ServeDelay)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation

	h = h*31 + snap.BallX
	h = h*31 + snap.BallY
	h = h*31 + snap.BallVX
	h = h*31 + snap.BallVY
	h = h*31 + snap.BallRadius
	h = h*31 + snap.PaddleX
	h = h*31 + snap.PaddleWidth
	h = h*31 + snap.BaseSpeed

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
