package app

import (
	"log"

	"VoxelForge/shared/editor"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// readFrameInput traduz teclado e mouse do raylib para o contrato do editor.
// Com o console aberto, as teclas de movimento e de ferramenta ficam mudas.
func (a *App) readFrameInput() editor.FrameInput {
	mouse := rl.GetMousePosition()
	delta := rl.GetMouseDelta()

	in := editor.FrameInput{
		DT:     rl.GetFrameTime(),
		Look:   mgl32.Vec2{delta.X, delta.Y},
		Scroll: rl.GetMouseWheelMove(),
		Cursor: mgl32.Vec2{mouse.X, mouse.Y},
		Screen: mgl32.Vec2{float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())},

		MouseLeft:  rl.IsMouseButtonDown(rl.MouseLeftButton),
		MouseRight: rl.IsMouseButtonDown(rl.MouseRightButton),

		Control: rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl),
		Alt:     rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt),
	}
	if a.consoleOpen {
		return in
	}

	in.Forward = rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp)
	in.Back = rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown)
	in.Left = rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft)
	in.Right = rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight)
	in.Up = rl.IsKeyDown(rl.KeySpace)
	in.Down = rl.IsKeyDown(rl.KeyLeftShift)

	in.Tab = rl.IsKeyDown(rl.KeyTab)
	in.Prior = rl.IsKeyDown(rl.KeyPageUp)
	in.Next = rl.IsKeyDown(rl.KeyPageDown)
	return in
}

// updateInput processa as teclas gerais da janela.
func (a *App) updateInput() {
	if rl.IsKeyPressed(rl.KeyF1) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}

	if !a.consoleOpen && rl.IsKeyPressed(rl.KeyG) {
		a.Config.ShowGrid = !a.Config.ShowGrid
		log.Printf("[App] Grid: %v", a.Config.ShowGrid)
	}

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
}
