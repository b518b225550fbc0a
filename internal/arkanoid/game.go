package arkanoid

import (
	"sync"

	"github.com/vovakirdan/arkanoid-tui/internal/config"
	"github.com/vovakirdan/arkanoid-tui/internal/core"
	"github.com/vovakirdan/arkanoid-tui/internal/geom"
	"github.com/vovakirdan/arkanoid-tui/internal/registry"
)

// Phase is the state of the per-session state machine.
type Phase int

const (
	PhaseReady     Phase = iota // ball on paddle, waiting for launch
	PhasePlaying                // ball in flight
	PhasePaused                 // simulation frozen
	PhaseBallLost               // transient: ball fell out this tick
	PhaseLevelClear             // transient: last brick destroyed this tick
	PhaseGameOver               // terminal: no lives left
	PhaseWin                    // terminal: campaign completed
)

// String returns a stable lowercase name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseBallLost:
		return "ball_lost"
	case PhaseLevelClear:
		return "level_clear"
	case PhaseGameOver:
		return "game_over"
	case PhaseWin:
		return "win"
	default:
		return "unknown"
	}
}

// Mode represents the game mode.
type Mode int

const (
	ModeCampaign Mode = iota // play through the levels, win at the end
	ModeEndless              // cycle layouts forever, score until game over
)

// Dimensions of generated scatter layouts (endless mode).
const (
	scatterCols   = 20
	scatterRows   = 6
	scatterBricks = 60
)

// options are the launch settings shared by every entry point. The CLI
// sets the process-wide defaults once at startup; per-session values
// travel in core.RuntimeConfig and take precedence, so concurrent SSH
// sessions never read each other's choices.
type options struct {
	configPath string
	preset     config.DifficultyPreset
	startLevel int
	pack       []*Layout
}

var (
	optMu       sync.Mutex
	defaultOpts options
)

func parsePreset(preset string) config.DifficultyPreset {
	switch preset {
	case "easy":
		return config.DifficultyEasy
	case "normal":
		return config.DifficultyNormal
	case "hard":
		return config.DifficultyHard
	case "fixed":
		return config.DifficultyFixed
	default:
		return ""
	}
}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	optMu.Lock()
	defer optMu.Unlock()
	defaultOpts.configPath = path
}

// SetDifficultyPreset sets the default difficulty preset by name.
func SetDifficultyPreset(preset string) {
	optMu.Lock()
	defer optMu.Unlock()
	defaultOpts.preset = parsePreset(preset)
}

// SetStartLevel sets the default 1-based starting level.
func SetStartLevel(level int) {
	optMu.Lock()
	defer optMu.Unlock()
	defaultOpts.startLevel = level
}

// SetLevelPack replaces the built-in layouts with an externally loaded pack.
func SetLevelPack(layouts []*Layout) {
	optMu.Lock()
	defer optMu.Unlock()
	defaultOpts.pack = layouts
}

// ActivePack returns the level pack in effect: an externally loaded
// pack if one was set, otherwise the built-in campaign layouts.
func ActivePack() []*Layout {
	optMu.Lock()
	pack := defaultOpts.pack
	optMu.Unlock()
	if len(pack) > 0 {
		return append([]*Layout(nil), pack...)
	}
	return BuiltinLayouts()
}

// launchOptions snapshots the process defaults once and applies the
// per-session overrides carried in the runtime config.
func launchOptions(runtime core.RuntimeConfig) options {
	optMu.Lock()
	opts := defaultOpts
	optMu.Unlock()

	if runtime.Difficulty != "" {
		opts.preset = parsePreset(runtime.Difficulty)
	}
	if runtime.StartLevel > 0 {
		opts.startLevel = runtime.StartLevel
	}
	return opts
}

// Game is the single mutable simulation root: it owns the ball, paddle
// and bricks exclusively, and is mutated only by Step.
type Game struct {
	mode Mode

	field  Playfield
	ball   Ball
	paddle Paddle
	bricks []Brick
	alive  int // live destructible bricks

	phase      Phase
	score      int
	lives      int
	levelIndex int
	tick       int
	serveDelay int
	cycle      int     // completed layout cycles (endless mode)
	baseSpeed  float64 // nominal ball speed before difficulty scaling

	runtime    core.RuntimeConfig
	opts       options
	cfg        config.ArkanoidConfig
	difficulty *config.DifficultyManager
	layouts    []*Layout

	// Layout geometry (computed from screen size)
	brickTop       float64
	brickW, brickH float64
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a campaign-mode game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates an endless-mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "arkanoid_endless"
	}
	return "arkanoid"
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Arkanoid (Endless)"
	}
	return "Arkanoid"
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.opts = launchOptions(runtime)

	cfg, err := config.LoadArkanoid(g.opts.configPath)
	if err != nil {
		cfg = config.DefaultArkanoidConfig()
	}
	if g.opts.preset != "" {
		config.ApplyArkanoidPreset(&cfg, g.opts.preset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.minScreenW = 30
	g.minScreenH = 15
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
	if g.screenTooSmall {
		return
	}

	// Row 0 is the HUD, row 1 the top border; the bottom edge is open.
	g.field = Playfield{Bounds: geom.NewRect(
		1, 2,
		float64(runtime.ScreenW-2),
		float64(runtime.ScreenH-2),
	)}

	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.levelIndex = 0
	if g.opts.startLevel > 0 {
		g.levelIndex = g.opts.startLevel - 1
	}
	g.tick = 0
	g.serveDelay = 0
	g.cycle = 0
	g.baseSpeed = cfg.Physics.BallSpeed

	g.layouts = g.basePack()
	if g.mode == ModeEndless {
		g.layouts = append(g.layouts, ScatterLayout(runtime.Seed, scatterCols, scatterRows, scatterBricks))
	}
	if g.levelIndex >= len(g.layouts) {
		g.levelIndex = 0
	}
	g.loadLevel(g.levelIndex)

	paddleY := g.field.Bounds.Bottom() - 2
	g.paddle = Paddle{
		Rect: geom.NewRect(
			g.field.Bounds.Center().X-cfg.Paddle.Width/2,
			paddleY,
			cfg.Paddle.Width,
			1,
		),
	}

	g.placeBallOnPaddle()
	g.phase = PhaseReady
}

// basePack returns the level pack to play: an externally loaded pack if
// one was set, otherwise the built-in layouts.
func (g *Game) basePack() []*Layout {
	if len(g.opts.pack) > 0 {
		return append([]*Layout(nil), g.opts.pack...)
	}
	return BuiltinLayouts()
}

// loadLevel instantiates positioned bricks from a layout.
func (g *Game) loadLevel(index int) {
	layout := g.layouts[index%len(g.layouts)]

	g.brickTop = g.field.Bounds.Top() + 1
	g.brickH = 1
	g.brickW = g.field.Bounds.W / float64(layout.Width)

	g.bricks = g.bricks[:0]
	for row := range layout.Height {
		for col := range layout.Width {
			spec := layout.Cells[row][col]
			if spec.HP == 0 {
				continue
			}
			g.bricks = append(g.bricks, Brick{
				Rect: geom.NewRect(
					g.field.Bounds.Left()+float64(col)*g.brickW,
					g.brickTop+float64(row)*g.brickH,
					g.brickW,
					g.brickH,
				),
				HP:     spec.HP,
				Points: spec.Points,
			})
		}
	}
	g.alive = len(g.bricks)
}

// placeBallOnPaddle rests a fresh ball on the paddle center.
func (g *Game) placeBallOnPaddle() {
	g.ball = Ball{
		Pos:    geom.Vec{X: g.paddle.CenterX(), Y: g.paddle.Rect.Top() - g.cfg.Physics.BallRadius},
		Radius: g.cfg.Physics.BallRadius,
	}
}

// currentSpeed returns the difficulty-scaled nominal ball speed.
func (g *Game) currentSpeed() float64 {
	s := g.difficulty.Speed(g.baseSpeed, g.score, g.tick)
	return geom.ClampF(s, g.cfg.Physics.MinBallSpeed, g.cfg.Physics.MaxBallSpeed)
}

// physicsParams assembles the resolver tunables for this tick.
func (g *Game) physicsParams() PhysicsParams {
	return PhysicsParams{
		BaseSpeed: g.currentSpeed(),
		MinSpeed:  g.cfg.Physics.MinBallSpeed,
		MaxSpeed:  g.cfg.Physics.MaxBallSpeed,
		Steer:     g.cfg.Physics.SteerStrength,
	}
}

// launch sends the ball off the paddle with a slight horizontal bias.
func (g *Game) launch() {
	speed := g.currentSpeed()
	g.ball.Vel = geom.Vec{X: 0.25, Y: -1}.Normalized().Scale(speed)
	g.phase = PhasePlaying
}

// Step advances the game by one tick of elapsed time. dt is in seconds;
// non-positive or oversized values are normalized against the tick rate
// so a stalled frame can never tunnel the ball through geometry.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && (g.phase == PhaseGameOver || g.phase == PhaseWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.phase {
		case PhasePaused:
			g.phase = PhasePlaying
		case PhasePlaying:
			g.phase = PhasePaused
		}
	}

	if g.phase == PhasePaused || g.phase == PhaseGameOver || g.phase == PhaseWin {
		return core.StepResult{State: g.State()}
	}

	tickRate := g.runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	nominal := 1.0 / float64(tickRate)
	if dt <= 0 {
		dt = nominal
	}
	if dt > 3*nominal {
		dt = 3 * nominal
	}

	g.tick++
	if g.serveDelay > 0 {
		g.serveDelay--
	}

	g.updatePaddle(dt, in)

	switch g.phase {
	case PhaseReady:
		// Ball follows the paddle until launched.
		g.ball.Pos = geom.Vec{X: g.paddle.CenterX(), Y: g.paddle.Rect.Top() - g.ball.Radius}
		if in.Has(core.ActionLaunch) && g.serveDelay == 0 {
			g.launch()
		}

	case PhasePlaying:
		g.ball.Step(dt)
		events := Resolve(&g.ball, &g.paddle, g.bricks, g.field, g.physicsParams())
		g.apply(events)
	}

	return core.StepResult{State: g.State()}
}

// updatePaddle moves the paddle from this tick's input. Simultaneous
// left+right sum to zero displacement (sum-then-clamp).
func (g *Game) updatePaddle(dt float64, in core.InputFrame) {
	dx := 0.0
	if in.Has(core.ActionLeft) {
		dx -= g.cfg.Physics.PaddleSpeed * dt
	}
	if in.Has(core.ActionRight) {
		dx += g.cfg.Physics.PaddleSpeed * dt
	}
	g.paddle.MoveBy(dx, g.field.Bounds)
	g.paddle.Vel = dx / dt
}

// apply consumes the resolver events for this tick.
func (g *Game) apply(events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventBallLost:
			g.phase = PhaseBallLost
			g.handleBallLost()
			return

		case EventBrickDestroyed:
			g.score += ev.Points
			g.alive--

		case EventBrickHit:
			// Brick survived; nothing to apply.
		}
	}

	// Level clear fires on the same tick the last brick dies.
	if g.alive == 0 && g.phase == PhasePlaying {
		g.phase = PhaseLevelClear
		g.handleLevelClear()
	}
}

// handleBallLost resolves the transient BallLost phase: a life is lost,
// then either the game ends or the ball is re-served.
func (g *Game) handleBallLost() {
	g.lives--
	if g.lives <= 0 {
		g.phase = PhaseGameOver
		return
	}

	g.placeBallOnPaddle()
	g.serveDelay = g.cfg.Gameplay.ServeDelayTicks
	g.phase = PhaseReady
}

// handleLevelClear resolves the transient LevelClear phase: the next
// layout is loaded, or the campaign is won.
func (g *Game) handleLevelClear() {
	g.levelIndex++

	if g.mode == ModeCampaign {
		if g.levelIndex >= len(g.layouts) {
			g.phase = PhaseWin
			return
		}
	} else if g.levelIndex >= len(g.layouts) {
		// Endless: cycle layouts with a fresh scatter board and a small
		// speed ramp per cycle.
		g.levelIndex = 0
		g.cycle++
		g.baseSpeed = geom.ClampF(g.baseSpeed+1, g.cfg.Physics.MinBallSpeed, g.cfg.Physics.MaxBallSpeed)
		g.layouts[len(g.layouts)-1] = ScatterLayout(g.runtime.Seed+int64(g.cycle), scatterCols, scatterRows, scatterBricks)
	}

	g.loadLevel(g.levelIndex)
	g.placeBallOnPaddle()
	g.serveDelay = g.cfg.Gameplay.ServeDelayTicks
	g.phase = PhaseReady
}

// LevelReached returns the 1-based level the run got to, counting
// completed endless cycles.
func (g *Game) LevelReached() int {
	if len(g.layouts) == 0 {
		return 1
	}
	return g.cycle*len(g.layouts) + g.levelIndex + 1
}

// State returns the current game status for the platform layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver || g.phase == PhaseWin,
		Paused:   g.phase == PhasePaused,
	}
}

// Register the modes with the registry.
func init() {
	registry.Register("arkanoid", func() registry.Game {
		return New()
	})
	registry.Register("arkanoid_endless", func() registry.Game {
		return NewEndless()
	})
}
