package runner

import (
	"math/rand"

	"github.com/vovakirdan/boxrunner/internal/config"
	"github.com/vovakirdan/boxrunner/internal/core"
)

// Game owns the whole world state: player, active obstacles (spawn order is
// left-to-right order), mutable gravity, score and the running/game-over
// state machine. The platform never mutates any of it; it feeds input frames
// in and reads snapshots out.
type Game struct {
	cfg config.RunnerConfig
	rng *rand.Rand

	tick     uint64
	score    int
	gravity  float64
	player   Player
	obstacle []*Obstacle
	gen      *Generator

	gameOver bool
	paused   bool

	runtime core.RuntimeConfig
}

// New creates a game from a validated configuration.
// Invalid configuration is a construction-time failure; nothing mid-run
// returns errors.
func New(cfg config.RunnerConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{cfg: cfg}, nil
}

// ID returns the game identifier used for score storage.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Box Runner"
}

// Config returns the game configuration.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// TickRate returns the fixed simulation rate in ticks per second.
func (g *Game) TickRate() int {
	return g.cfg.World.TickRate
}

// Reset initializes or restarts the run: player back at spawn, obstacle set
// cleared, gravity at default, score zeroed, state Running.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.runtime = rc
	g.tick = 0
	g.score = 0
	g.gravity = g.cfg.Physics.Gravity
	g.player = NewPlayer(g.cfg.Player.X, g.cfg.World.GroundY(), g.cfg.Player.Width, g.cfg.Player.Height)
	g.obstacle = nil
	g.gen = NewGenerator(g.rng, g.cfg)
	g.gameOver = false
	g.paused = false
}

// Step advances the simulation by one fixed tick.
//
// Running tick order: buffered commands, gravity integration and ground
// clamp, generator, obstacle advance and cull, collision check, score.
// A game-over tick is a no-op until a restart command arrives.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.gameOver {
		if in.Has(core.ActionRestart) {
			rc := g.runtime
			rc.Seed = g.rng.Int63()
			g.Reset(rc)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Apply buffered input commands
	if in.Has(core.ActionJump) {
		g.player.Jump(g.cfg.Physics.JumpImpulse)
	}
	if in.Has(core.ActionFastFallOn) {
		g.gravity = g.cfg.Physics.Gravity * g.cfg.Physics.FastFallMultiplier
	}
	if in.Has(core.ActionFastFallOff) {
		g.gravity = g.cfg.Physics.Gravity
	}

	// Integrate player physics
	g.player.ApplyGravity(g.gravity)
	g.clampToGround()

	// Spawn, then advance and cull obstacles
	if spawned := g.gen.Step(g.score, g.rightmost()); spawned != nil {
		g.obstacle = append(g.obstacle, spawned)
	}
	alive := g.obstacle[:0]
	for _, o := range g.obstacle {
		o.Move()
		if !o.OffScreen() {
			alive = append(alive, o)
		}
	}
	g.obstacle = alive

	// Collision ends the run and suppresses this tick's score increment.
	if g.collides() {
		g.gameOver = true
		return core.StepResult{State: g.State()}
	}

	g.score++
	return core.StepResult{State: g.State()}
}

// clampToGround pins the player to the ground contact line. Landing zeroes
// vertical velocity and clears the airborne flag.
func (g *Game) clampToGround() {
	groundY := g.cfg.World.GroundY()
	if g.player.Y >= groundY {
		g.player.Y = groundY
		g.player.VelY = 0
		g.player.StopJump()
	}
}

// rightmost returns the most recently spawned live obstacle. Spawn order is
// positional order, so this is the last element.
func (g *Game) rightmost() *Obstacle {
	if len(g.obstacle) == 0 {
		return nil
	}
	return g.obstacle[len(g.obstacle)-1]
}

// collides reports whether the player overlaps any obstacle. Short-circuits
// on the first hit; the effect is identical either way.
func (g *Game) collides() bool {
	pr := g.player.Rect()
	for _, o := range g.obstacle {
		if pr.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}

// Render draws the current frame snapshot into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	DrawFrame(dst, g.Snapshot())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
