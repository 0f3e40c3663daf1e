package runner

import "github.com/vovakirdan/boxrunner/internal/core"

// Frame is a read-only snapshot of one simulation tick, handed to the render
// sink and to tests. It carries everything needed to draw the scene so the
// sink never reaches back into game state.
type Frame struct {
	Tick      uint64
	Player    core.RectF
	Obstacles []core.RectF
	Score     int
	Gravity   float64
	GameOver  bool
	Paused    bool

	// World geometry for the projection
	WorldW      float64
	WorldH      float64
	GroundY     float64
	GroundBandY float64
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Frame {
	obstacles := make([]core.RectF, len(g.obstacle))
	for i, o := range g.obstacle {
		obstacles[i] = o.Rect()
	}

	return Frame{
		Tick:        g.tick,
		Player:      g.player.Rect(),
		Obstacles:   obstacles,
		Score:       g.score,
		Gravity:     g.gravity,
		GameOver:    g.gameOver,
		Paused:      g.paused,
		WorldW:      g.cfg.World.Width,
		WorldH:      g.cfg.World.Height,
		GroundY:     g.cfg.World.GroundY(),
		GroundBandY: g.cfg.World.GroundBandY(),
	}
}
