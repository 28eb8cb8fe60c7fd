package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window is the raylib window and GL context. Only one may exist at a time.
type Window struct {
	Width  int
	Height int
}

// CreateWindow opens the window and makes its GL context current.
// The frame rate is left uncapped so the physics timestep is exercised.
func CreateWindow(width, height int, title string) *Window {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetTargetFPS(0)

	return &Window{Width: width, Height: height}
}

// ShouldClose reports a close request (window button or escape)
func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// PollEvents reads pending input. Present already does this once per frame, so it
// is only needed by loops that run without drawing.
func (w *Window) PollEvents() {
	rl.PollInputEvents()
}

// Now returns the monotonic time in seconds since CreateWindow
func (w *Window) Now() float64 {
	return rl.GetTime()
}

// Aspect returns width/height
func (w *Window) Aspect() float32 {
	return float32(w.Width) / float32(w.Height)
}

func (w *Window) Close() {
	rl.CloseWindow()
}
