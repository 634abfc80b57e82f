package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"cube-world/internal/mapgen"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
	logLines       = 4
)

// Debug draws runtime overlays: FPS and heap usage top-right, world stats and recent log
// lines top-left. FPS and memory are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStats    bool

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
	statsText    []string
	history      func() []string
}

// New returns a Debug system with the world stats overlay shown.
// history, if non-nil, supplies log lines; the last few are drawn under the stats.
func New(history func() []string) *Debug {
	return &Debug{ShowStats: true, history: history}
}

// ToggleFPS flips the FPS counter.
func (d *Debug) ToggleFPS() {
	d.ShowFPS = !d.ShowFPS
}

// SetWorld formats the stats overlay for w. Call when the viewed world changes.
func (d *Debug) SetWorld(w mapgen.World) {
	d.statsText = StatsLines(w.Width, w.Depth, w.Stats())
}

// StatsLines formats world stats for the overlay, one line per entry.
func StatsLines(width, depth uint32, s mapgen.Stats) []string {
	return []string{
		fmt.Sprintf("World: %dx%d (%d tiles)", width, depth, s.Tiles),
		fmt.Sprintf("Solid: %d vertices, %d triangles", s.Vertices, s.Triangles),
		fmt.Sprintf("Wire: %d segments", s.WireSegments),
		fmt.Sprintf("Bounds: %.1f x %.1f x %.1f", s.Bounds.Size()[0], s.Bounds.Size()[1], s.Bounds.Size()[2]),
	}
}

// Draw renders the enabled overlays. Call after the scene in the draw loop.
// FPS and memory text are only recomputed every updateInterval frames.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, screenW, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(d.lastMemStats.Alloc)/(1024*1024))
		}
		drawRight(d.lastMemText, screenW, y)
	}

	y = padding
	if d.ShowStats {
		for _, line := range d.statsText {
			rl.DrawText(line, padding, y, fontSize, rl.RayWhite)
			y += lineHeight
		}
	}
	if d.history != nil {
		lines := d.history()
		if len(lines) > logLines {
			lines = lines[len(lines)-logLines:]
		}
		for _, line := range lines {
			rl.DrawText(line, padding, y, fontSize-4, rl.LightGray)
			y += lineHeight - 4
		}
	}
}

func drawRight(text string, screenW, y int32) {
	if text == "" {
		return
	}
	x := screenW - rl.MeasureText(text, fontSize) - padding
	rl.DrawText(text, x, y, fontSize, rl.Green)
}
