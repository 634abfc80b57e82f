package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window configures the viewer window.
type Window struct {
	Width, Height int32
	Title         string
	TargetFPS     int32
}

// Run opens the window and drives the main loop. Each frame it calls update (input, camera),
// then clears the screen and calls draw. Returns when the window is closed or ESC is pressed.
func Run(win Window, update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()

	if win.TargetFPS > 0 {
		rl.SetTargetFPS(win.TargetFPS)
	}

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(32, 32, 36, 255))
		draw()
		rl.EndDrawing()
	}
}
