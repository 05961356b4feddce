package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the window Run opens.
type Window struct {
	Title     string
	Width     int32
	Height    int32
	TargetFPS int32
}

// Frame is what Run calls each frame.
type Frame struct {
	// Init runs once after the window and GL context exist (load shaders, meshes, textures).
	Init func()
	// Update gets the real frame time in seconds and the current window size.
	// Returning false ends the loop.
	Update func(dt float32, width, height int32) bool
	// Background is the clear color for this frame.
	Background func() rl.Color
	// Draw renders the frame after the clear.
	Draw func()
	// Close runs before the window is destroyed (unload GPU resources).
	Close func()
}

// Run opens a resizable window and runs the frame loop until the window is closed
// or Update returns false. Esc does not close the window; hosts decide what it does.
func Run(w Window, f Frame) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	fps := w.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	rl.SetTargetFPS(fps)

	if f.Init != nil {
		f.Init()
	}
	if f.Close != nil {
		defer f.Close()
	}

	for !rl.WindowShouldClose() {
		if !f.Update(rl.GetFrameTime(), int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())) {
			return
		}

		rl.BeginDrawing()
		bg := rl.Black
		if f.Background != nil {
			bg = f.Background()
		}
		rl.ClearBackground(bg)
		f.Draw()
		rl.EndDrawing()
	}
}
