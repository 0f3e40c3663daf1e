package runner

import (
	"fmt"

	"github.com/vovakirdan/boxrunner/internal/core"
)

// DrawFrame is the render sink: it projects a frame snapshot onto the screen
// buffer. World coordinates scale to whatever cell grid the terminal offers;
// the simulation itself never sees cells.
func DrawFrame(dst *core.Screen, f Frame) {
	sx := float64(dst.Width()) / f.WorldW
	sy := float64(dst.Height()) / f.WorldH

	// Ground band (bottom third of the viewport)
	bandTop := int(f.GroundBandY * sy)
	for y := bandTop; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			dst.SetCell(x, y, '░', core.ColorGray)
		}
	}

	// Obstacles; floating ones sit above the ground line
	for _, o := range f.Obstacles {
		color := core.ColorOrange
		if o.Y < f.GroundY {
			color = core.ColorBrightRed
		}
		dst.DrawRectColored(projectRect(o, sx, sy), '█', color)
	}

	// Player
	dst.DrawRectColored(projectRect(f.Player, sx, sy), '█', core.ColorBrightGreen)

	// HUD
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", f.Score), core.ColorBrightWhite)

	switch {
	case f.GameOver:
		dst.DrawTextCentered(dst.Height()/2-1, "GAME OVER")
		dst.DrawTextCentered(dst.Height()/2+1, "Press any key to restart")
	case f.Paused:
		dst.DrawTextCentered(dst.Height()/2, "PAUSED")
	}
}

// projectRect maps a world rect to cells, keeping it at least one cell in
// each dimension so small boxes stay visible on narrow terminals.
func projectRect(r core.RectF, sx, sy float64) core.Rect {
	x0 := int(r.X * sx)
	y0 := int(r.Y * sy)
	w := core.Max(1, int(r.Right()*sx)-x0)
	h := core.Max(1, int(r.Bottom()*sy)-y0)
	return core.NewRect(x0, y0, w, h)
}
