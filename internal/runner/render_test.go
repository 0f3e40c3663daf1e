package runner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/boxrunner/internal/core"
)

func TestDrawFrameBasics(t *testing.T) {
	g := newTestGame(t, 1, noSpawns)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	content := screen.String()

	if !strings.Contains(content, "Score: 0") {
		t.Error("rendered frame should contain the score")
	}

	// Ground band fills the bottom third of the projection.
	bandTop := int(g.cfg.World.GroundBandY() * 24 / g.cfg.World.Height)
	for y := bandTop; y < 24; y++ {
		if screen.Get(0, y) != '░' {
			t.Fatalf("expected ground band at row %d", y)
		}
	}
	if screen.Get(0, bandTop-1) == '░' {
		t.Error("ground band should not extend above the band line")
	}
}

func TestDrawFramePlayerVisible(t *testing.T) {
	g := newTestGame(t, 1, noSpawns)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	// Player spawn (50, 187) in an 800x300 world projects into the 80x24 grid.
	px := int(g.cfg.Player.X * 80 / g.cfg.World.Width)
	py := int(g.cfg.World.GroundY() * 24 / g.cfg.World.Height)

	cell := screen.GetCell(px, py)
	if cell.Rune != '█' || cell.Color != core.ColorBrightGreen {
		t.Errorf("expected green player block at (%d, %d), got %+v", px, py, cell)
	}
}

func TestDrawFrameObstacleColors(t *testing.T) {
	g := newTestGame(t, 1, noSpawns)
	g.obstacle = []*Obstacle{
		NewObstacle(400, g.cfg.World.GroundY(), 33, 13, -10, -0.1), // ground
		NewObstacle(600, 120, 33, 13, -10, -0.1),                   // floating
	}
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	groundCell := screen.GetCell(int(400*80/g.cfg.World.Width), int(g.cfg.World.GroundY()*24/g.cfg.World.Height))
	if groundCell.Color != core.ColorOrange {
		t.Errorf("ground obstacle color = %v, expected orange", groundCell.Color)
	}

	floatCell := screen.GetCell(int(600*80/g.cfg.World.Width), int(120*24/g.cfg.World.Height))
	if floatCell.Color != core.ColorBrightRed {
		t.Errorf("floating obstacle color = %v, expected bright red", floatCell.Color)
	}
}

func TestDrawFrameGameOverBanner(t *testing.T) {
	g := newTestGame(t, 1, noSpawns)
	g.gameOver = true

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	content := screen.String()

	if !strings.Contains(content, "GAME OVER") {
		t.Error("rendered frame should contain the game over banner")
	}
	if !strings.Contains(content, "Press any key to restart") {
		t.Error("rendered frame should contain the restart hint")
	}
}

func TestDrawFramePausedOverlay(t *testing.T) {
	g := newTestGame(t, 1, noSpawns)
	g.paused = true

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("rendered frame should contain the paused overlay")
	}
}

func TestProjectRectMinimumSize(t *testing.T) {
	// Tiny world rects still occupy at least one cell.
	r := projectRect(core.NewRectF(100, 100, 1, 1), 0.1, 0.08)
	if r.W < 1 || r.H < 1 {
		t.Errorf("projected rect %+v collapsed below one cell", r)
	}
}
